package users

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/avolkov/walletkeeper/internal/common"
	"github.com/avolkov/walletkeeper/internal/server/auth"
	"github.com/avolkov/walletkeeper/internal/server/config"
	"github.com/avolkov/walletkeeper/internal/server/refreshtokens"
	"github.com/avolkov/walletkeeper/internal/server/wallets"
)

const (
	minPasswordLength = 8
	defaultWalletName = "Main"
	defaultCurrency   = "EUR"
)

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type RegistrationInput struct {
	Email       string
	Password    string
	DisplayName string
	Currency    string
	Locale      string
	Country     string
}

// TxRunner executes fn atomically with transaction-scoped repositories.
// Account creation must not leave a user without their default wallet.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context, userRepo Repository, walletRepo wallets.Repository) error) error
}

type Service struct {
	tx                           TxRunner
	repo                         Repository
	walletRepo                   wallets.Repository
	refreshTokenRepo             refreshtokens.Repository
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

func NewService(tx TxRunner, repo Repository, walletRepo wallets.Repository, refreshTokenRepo refreshtokens.Repository, cfg *config.Config) *Service {
	return &Service{
		tx:                           tx,
		repo:                         repo,
		walletRepo:                   walletRepo,
		refreshTokenRepo:             refreshTokenRepo,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Register creates an account together with its default wallet and signs the
// user in.
func (s *Service) Register(ctx context.Context, in RegistrationInput) (*User, *TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !emailRx.MatchString(email) {
		return nil, nil, common.ErrInvalidEmail
	}
	if len(in.Password) < minPasswordLength {
		return nil, nil, common.ErrWeakPassword
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, nil, common.ErrEmailInUse
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, nil, common.ErrorInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	currency := in.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	user := &User{
		Email:                email,
		PasswordHash:         hash,
		DisplayName:          strings.TrimSpace(in.DisplayName),
		Currency:             currency,
		Locale:               in.Locale,
		Country:              in.Country,
		NotificationsEnabled: true,
	}

	if err := s.createWithWallet(ctx, user); err != nil {
		return nil, nil, common.ErrorInternal
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	return user, tokens, nil
}

// createWithWallet inserts the user, provisions the default wallet and links
// it, in one transaction.
func (s *Service) createWithWallet(ctx context.Context, user *User) error {
	return s.tx.InTx(ctx, func(ctx context.Context, userRepo Repository, walletRepo wallets.Repository) error {
		created, err := userRepo.Create(ctx, user)
		if err != nil {
			return err
		}

		wallet, err := walletRepo.Create(ctx, &wallets.Wallet{
			UserID:   created.ID,
			Name:     defaultWalletName,
			Currency: created.Currency,
			Balance:  decimal.Zero,
		})
		if err != nil {
			return err
		}

		if err := userRepo.SetDefaultWallet(ctx, created.ID, wallet.ID); err != nil {
			return err
		}
		created.DefaultWalletID = wallet.ID
		return nil
	})
}

// Login authenticates with email and password.
func (s *Service) Login(ctx context.Context, email, password string) (*User, *TokenPair, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return nil, nil, common.ErrorUnauthorized
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	return user, tokens, nil
}

// ExternalLogin exchanges an external-provider token for a session, creating
// the account (with its default wallet) on first sign-in.
func (s *Service) ExternalLogin(ctx context.Context, providerToken, email, displayName string) (*User, *TokenPair, error) {
	if providerToken == "" {
		return nil, nil, common.ErrInvalidToken
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRx.MatchString(email) {
		return nil, nil, common.ErrInvalidEmail
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorInternal
		}

		user = &User{
			Email:                email,
			DisplayName:          strings.TrimSpace(displayName),
			Currency:             defaultCurrency,
			NotificationsEnabled: true,
			ExternalProvider:     true,
		}
		if err := s.createWithWallet(ctx, user); err != nil {
			return nil, nil, common.ErrorInternal
		}
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	return user, tokens, nil
}

// Refresh rotates the refresh token and issues a new access token. The
// presented token is consumed whether or not it is still valid.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	rt, err := s.refreshTokenRepo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if err := s.refreshTokenRepo.Delete(ctx, refreshToken); err != nil {
		return nil, common.ErrorInternal
	}

	if time.Now().After(rt.ExpiresAt) {
		return nil, common.ErrRefreshTokenExpired
	}

	user, err := s.repo.GetByID(ctx, rt.UserID)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return tokens, nil
}

// Logout revokes every refresh token of the user.
func (s *Service) Logout(ctx context.Context, userID string) error {
	if err := s.refreshTokenRepo.DeleteByUser(ctx, userID); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// IsExternalProviderUser reports whether the account came through the
// external provider.
func (s *Service) IsExternalProviderUser(ctx context.Context, userID string) (bool, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, common.ErrorUnauthorized
		}
		return false, common.ErrorInternal
	}
	return user.ExternalProvider, nil
}

// GetByID returns the user's current profile.
func (s *Service) GetByID(ctx context.Context, userID string) (*User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

func (s *Service) issueTokens(ctx context.Context, user *User) (*TokenPair, error) {
	accessToken, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, err
	}

	refreshToken, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, err
	}

	if err := s.refreshTokenRepo.Create(ctx, user.ID, refreshToken, s.refreshTokenValidityDuration); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

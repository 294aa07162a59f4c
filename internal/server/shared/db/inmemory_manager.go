package db

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avolkov/walletkeeper/internal/common"
	"github.com/avolkov/walletkeeper/internal/server/refreshtokens"
	"github.com/avolkov/walletkeeper/internal/server/users"
	"github.com/avolkov/walletkeeper/internal/server/wallets"
)

// InMemoryRepositoryManager keeps all state in process memory. It backs the
// gRPC handler tests and lets the server run without Postgres in development.
type InMemoryRepositoryManager struct {
	users         *inMemoryUserRepo
	wallets       *inMemoryWalletRepo
	refreshTokens *inMemoryRefreshTokenRepo
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:         &inMemoryUserRepo{byID: map[string]*users.User{}},
		wallets:       &inMemoryWalletRepo{byID: map[string]*wallets.Wallet{}},
		refreshTokens: &inMemoryRefreshTokenRepo{byToken: map[string]*refreshtokens.RefreshToken{}},
	}
}

func (m *InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Wallets() wallets.Repository {
	return m.wallets
}

func (m *InMemoryRepositoryManager) RefreshTokens() refreshtokens.Repository {
	return m.refreshTokens
}

// InTx has no real transaction to offer; fn runs against the live maps.
func (m *InMemoryRepositoryManager) InTx(ctx context.Context, fn func(ctx context.Context, userRepo users.Repository, walletRepo wallets.Repository) error) error {
	return fn(ctx, m.users, m.wallets)
}

type inMemoryUserRepo struct {
	mu   sync.Mutex
	byID map[string]*users.User
}

func (r *inMemoryUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byID {
		if u.Email == user.Email {
			return nil, common.ErrEmailInUse
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.byID[user.ID] = user
	return user, nil
}

func (r *inMemoryUserRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *inMemoryUserRepo) GetByID(ctx context.Context, id string) (*users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (r *inMemoryUserRepo) SetDefaultWallet(ctx context.Context, userID, walletID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[userID]
	if !ok {
		return common.ErrorNotFound
	}
	u.DefaultWalletID = walletID
	u.UpdatedAt = time.Now()
	return nil
}

type inMemoryWalletRepo struct {
	mu   sync.Mutex
	byID map[string]*wallets.Wallet
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, wallet *wallets.Wallet) (*wallets.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wallet.ID = uuid.NewString()
	wallet.CreatedAt = time.Now()
	r.byID[wallet.ID] = wallet
	return wallet, nil
}

func (r *inMemoryWalletRepo) GetByUser(ctx context.Context, userID string) ([]*wallets.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*wallets.Wallet
	for _, w := range r.byID {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *inMemoryWalletRepo) GetByID(ctx context.Context, id string) (*wallets.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return w, nil
}

type inMemoryRefreshTokenRepo struct {
	mu      sync.Mutex
	byToken map[string]*refreshtokens.RefreshToken
}

func (r *inMemoryRefreshTokenRepo) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byToken[token] = &refreshtokens.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(validity),
	}
	return nil
}

func (r *inMemoryRefreshTokenRepo) Find(ctx context.Context, token string) (*refreshtokens.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rt, ok := r.byToken[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return rt, nil
}

func (r *inMemoryRefreshTokenRepo) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byToken, token)
	return nil
}

func (r *inMemoryRefreshTokenRepo) DeleteByUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for tok, rt := range r.byToken {
		if rt.UserID == userID {
			delete(r.byToken, tok)
		}
	}
	return nil
}

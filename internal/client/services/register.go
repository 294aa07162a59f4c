// Package services contains application services for the WalletKeeper
// client. This file defines the registration use case: input validation and
// normalization around the remote account-creation call.
package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/avolkov/walletkeeper/internal/client/models"
	"github.com/avolkov/walletkeeper/internal/common"
)

const minPasswordLength = 8

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// RegistrationProvider is the remote side of account creation. The server
// also provisions the default wallet for the new account.
type RegistrationProvider interface {
	Register(ctx context.Context, input models.RegistrationInput) (*models.UserProfile, error)
}

// RegistrationService creates new accounts.
//
// Contract:
//   - Execute validates and normalizes the input, then delegates to the
//     provider. Validation failures come back as common.ErrInvalidEmail or
//     common.ErrWeakPassword; provider failures arrive already mapped to the
//     shared sentinel set and pass through unmodified.
type RegistrationService interface {
	Execute(ctx context.Context, input models.RegistrationInput) (*models.UserProfile, error)
}

type registrationService struct {
	provider RegistrationProvider
}

// NewRegistrationService constructs a RegistrationService bound to the given
// provider.
func NewRegistrationService(provider RegistrationProvider) RegistrationService {
	return &registrationService{provider: provider}
}

func (s *registrationService) Execute(ctx context.Context, input models.RegistrationInput) (*models.UserProfile, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.DisplayName = strings.TrimSpace(input.DisplayName)

	if !emailRx.MatchString(input.Email) {
		return nil, common.ErrInvalidEmail
	}
	if len(input.Password) < minPasswordLength {
		return nil, common.ErrWeakPassword
	}
	if input.DisplayName == "" {
		input.DisplayName = input.Email[:strings.IndexByte(input.Email, '@')]
	}

	return s.provider.Register(ctx, input)
}

package authmgr

import (
	"context"

	"github.com/avolkov/walletkeeper/internal/client/models"
)

// State is the published authentication view. Subscribers receive a copy;
// mutation happens only inside the manager.
type State struct {
	User          *models.UserProfile
	Loading       bool
	Err           string
	IsInitialized bool
}

// AuthProvider is the remote side of authentication. Implementations map
// transport failures to the shared sentinel errors; raw provider codes never
// reach the manager.
type AuthProvider interface {
	// Login authenticates with email and password.
	Login(ctx context.Context, email, password string) (*models.UserProfile, error)

	// ExternalLogin runs the external-provider sign-in flow. A (nil, nil)
	// result means the user cancelled the flow; that is not an error.
	ExternalLogin(ctx context.Context) (*models.UserProfile, error)

	// Logout revokes the remote session. Best-effort from the manager's
	// point of view.
	Logout(ctx context.Context) error

	// IsExternalProviderUser reports whether the current account was
	// created through the external provider.
	IsExternalProviderUser(ctx context.Context) (bool, error)

	// OnAuthStateChanged attaches cb to the remote auth-state stream.
	// cb receives the signed-in user, or nil on sign-out. The returned
	// function detaches the callback.
	OnAuthStateChanged(cb func(user *models.UserProfile)) (func(), error)
}

// Registrar creates new accounts. The server side also provisions the
// default wallet; the manager only cares about the resulting profile.
type Registrar interface {
	Execute(ctx context.Context, input models.RegistrationInput) (*models.UserProfile, error)
}

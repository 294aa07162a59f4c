package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/avolkov/walletkeeper/internal/client/models"
	"github.com/avolkov/walletkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the new account's details and creates it through the
// auth manager. On success the user is signed in and the local session is
// already persisted by the time the method returns.
//
// The password byte slice is securely wiped before returning. Any I/O or
// service error is logged and returned unchanged.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	displayName, err := getSimpleText(a.reader, "Enter display name (optional)", os.Stdout)
	if err != nil {
		return err
	}

	currency, err := getSimpleText(a.reader, "Enter currency (optional, default EUR)", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.manager.Register(ctx, models.RegistrationInput{
		Email:       email,
		Password:    string(password),
		DisplayName: displayName,
		Currency:    currency,
	})
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Printf("Registered %s\n", user.Email)
	return nil
}

// Login prompts for credentials and authenticates through the auth manager.
// The session is persisted before the method returns, so a restart picks the
// user up without contacting the server.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.manager.Login(ctx, email, string(password))
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	log.Printf("Logged in as %s", user.Email)
	return nil
}

// LoginProvider runs the external-provider sign-in flow. A cancelled flow is
// not an error: the manager returns no user and the state stays signed out.
func (a *App) LoginProvider(ctx context.Context) error {
	user, err := a.manager.LoginWithProvider(ctx)
	if err != nil {
		log.Printf("Provider login unsuccessful: %s", err.Error())
		return err
	}
	if user == nil {
		fmt.Println("Provider sign-in cancelled")
		return nil
	}

	log.Printf("Logged in as %s", user.Email)
	return nil
}

// Logout clears the local session immediately; server-side revocation runs
// in the background.
func (a *App) Logout(ctx context.Context) error {
	a.manager.Logout(ctx)
	fmt.Println("Logged out")
	return nil
}

// Whoami prints the signed-in profile, or a hint when nobody is.
func (a *App) Whoami(ctx context.Context) error {
	st := a.currentState()
	if st.User == nil {
		fmt.Println("Not signed in")
		return nil
	}

	fmt.Printf("%s <%s>\n", st.User.DisplayName, st.User.Email)
	fmt.Printf("  currency: %s\n", st.User.Currency)
	if st.User.Preferences.DefaultWalletID != "" {
		fmt.Printf("  default wallet: %s\n", st.User.Preferences.DefaultWalletID)
	}
	if a.manager.IsProviderLinked(ctx) {
		fmt.Println("  linked to external provider")
	}
	return nil
}

// Session prints the persisted session record.
func (a *App) Session(ctx context.Context) error {
	snap := a.sess.Snapshot(ctx)

	fmt.Printf("authenticated: %v\n", snap.IsAuthenticated)
	if snap.User != nil {
		fmt.Printf("user: %s\n", snap.User.Email)
	}
	if snap.LoginMethod != "" {
		fmt.Printf("login method: %s\n", snap.LoginMethod)
	}
	if !snap.LastLogin.IsZero() {
		fmt.Printf("last login: %s\n", snap.LastLogin.Format(time.RFC3339))
	}
	if snap.SessionExpired {
		fmt.Println("session expired")
	}
	return nil
}

// Ping probes the server and reports reachability.
func (a *App) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.api.Ping(ctx); err != nil {
		fmt.Println("Server unreachable")
		return err
	}

	fmt.Println("Server is up")
	return nil
}

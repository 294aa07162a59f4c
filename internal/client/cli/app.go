package cli

import (
	"bufio"
	"context"
	"log"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/avolkov/walletkeeper/internal/client/authmgr"
	"github.com/avolkov/walletkeeper/internal/client/client"
	"github.com/avolkov/walletkeeper/internal/client/config"
	"github.com/avolkov/walletkeeper/internal/client/kvstore"
	"github.com/avolkov/walletkeeper/internal/client/models"
	"github.com/avolkov/walletkeeper/internal/client/services"
	"github.com/avolkov/walletkeeper/internal/client/session"
	"github.com/avolkov/walletkeeper/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// authManager is the slice of authmgr.Manager the CLI needs.
type authManager interface {
	Subscribe(fn func(authmgr.State)) func()
	State() authmgr.State
	Register(ctx context.Context, input models.RegistrationInput) (*models.UserProfile, error)
	Login(ctx context.Context, email, password string) (*models.UserProfile, error)
	LoginWithProvider(ctx context.Context) (*models.UserProfile, error)
	Logout(ctx context.Context)
	IsProviderLinked(ctx context.Context) bool
	Destroy()
}

// pinger probes server reachability.
type pinger interface {
	Ping(ctx context.Context) error
	Close() error
}

type App struct {
	config  *config.Config
	manager authManager
	api     pinger
	sess    *session.Store
	reader  *bufio.Reader

	mu    sync.Mutex
	state authmgr.State
	Mode  Mode
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := client.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	kv := kvstore.New(db, logger)
	kv.ConfigureNamespace(c.Namespace)
	sess := session.New(kv, logger)

	api, err := client.NewGRPCClient(c.ServerEndpointAddr, logger)
	if err != nil {
		return nil, err
	}

	registrar := services.NewRegistrationService(api)
	manager := authmgr.New(sess, api, registrar, logger)

	return &App{
		config:  c,
		manager: manager,
		api:     api,
		sess:    sess,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {

	unsubscribe := a.manager.Subscribe(func(st authmgr.State) {
		a.mu.Lock()
		a.state = st
		a.mu.Unlock()
	})
	defer unsubscribe()
	defer a.manager.Destroy()
	defer a.api.Close()

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	log.Println("Welcome to WalletKeeper CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) currentState() authmgr.State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *App) isLoggedIn() bool {
	return a.currentState().User != nil
}

func (a *App) getStatus() string {
	s := ""
	if st := a.currentState(); st.User != nil {
		s = st.User.Email + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.api.Ping(ctx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}

package authmgr

import (
	"context"
	"sync"
	"time"

	"github.com/avolkov/walletkeeper/internal/client/models"
	"github.com/avolkov/walletkeeper/internal/client/session"
	"github.com/avolkov/walletkeeper/internal/common"
	"github.com/avolkov/walletkeeper/internal/logging"
)

const (
	// Auth streams burst during token refresh; events arriving closer
	// together than this are dropped, not queued.
	eventDebounceInterval = 500 * time.Millisecond

	// Delay before applying a swap between two authenticated users, so the
	// UI does not flash one identity over another.
	userSwapStabilizeDelay = 100 * time.Millisecond

	// Delay before applying an external sign-out. Longer than the swap
	// delay: a transient null from the stream should not flash the user
	// out.
	signOutStabilizeDelay = 200 * time.Millisecond

	// Delay between the fast-path publish from the local session and
	// attaching to the remote stream, letting the first render settle.
	fastPathAttachDelay = 100 * time.Millisecond
)

// pendingStabilization is the single delayed-update slot. A newly scheduled
// stabilization replaces the previous one; only the latest payload is ever
// applied.
type pendingStabilization struct {
	dueAt   time.Time
	payload *models.UserProfile
	timer   Timer
}

// Manager reconciles the locally cached session with the remote auth-state
// stream and publishes the merged view to subscribers. Instances are
// explicitly constructed; there is no package-level singleton. Lifetime is
// per process, ended by Destroy.
type Manager struct {
	session   *session.Store
	provider  AuthProvider
	registrar Registrar
	clock     Clock
	log       logging.Logger

	mu              sync.Mutex
	state           State
	initLatch       bool
	hadLocalSession bool
	lastEventAt     time.Time
	pending         *pendingStabilization
	subscribers     map[int]func(State)
	nextSubID       int
	attachTimer     Timer
	detachStream    func()
	destroyed       bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces the real clock, for tests.
func WithClock(c Clock) Option {
	return func(m *Manager) { m.clock = c }
}

// New builds a Manager over the given session store, auth provider and
// registrar. Initialization is lazy: nothing touches the store or the
// provider until the first Subscribe.
func New(sess *session.Store, provider AuthProvider, registrar Registrar, log logging.Logger, opts ...Option) *Manager {
	m := &Manager{
		session:     sess,
		provider:    provider,
		registrar:   registrar,
		clock:       NewRealClock(),
		log:         log,
		state:       State{Loading: true},
		subscribers: make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Subscribe registers fn for state notifications and returns a function
// that removes it. fn is called once immediately with the current state.
// The first subscription triggers initialization; later ones do not.
func (m *Manager) Subscribe(fn func(State)) func() {
	m.mu.Lock()
	if m.destroyed {
		m.mu.Unlock()
		return func() {}
	}
	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = fn
	cur := m.state
	needInit := !m.initLatch
	m.initLatch = true
	m.mu.Unlock()

	fn(cur)

	if needInit {
		m.initialize()
	}

	return func() {
		m.mu.Lock()
		delete(m.subscribers, id)
		m.mu.Unlock()
	}
}

// State returns a copy of the current published state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// initialize runs once, on the first subscription. A valid local session is
// published immediately (fast path) and the stream is attached after a short
// delay; otherwise stale data is cleared and the stream attached right away.
// Any failure degrades to the unauthenticated path, the stream is attached
// regardless.
func (m *Manager) initialize() {
	ctx := context.Background()
	snap := m.session.Snapshot(ctx)

	if snap.IsAuthenticated && snap.User != nil && !snap.SessionExpired {
		m.log.Info(ctx, "restoring session from local cache", "user_id", snap.User.ID)
		m.mu.Lock()
		m.hadLocalSession = true
		m.state = State{User: snap.User, IsInitialized: true}
		m.mu.Unlock()
		m.notify()

		m.mu.Lock()
		if !m.destroyed {
			m.attachTimer = m.clock.AfterFunc(fastPathAttachDelay, m.attachStream)
		}
		m.mu.Unlock()
		return
	}

	if !m.session.ClearSession(ctx) {
		m.log.Warn(ctx, "could not clear stale session during init")
	}
	m.attachStream()
}

func (m *Manager) attachStream() {
	detach, err := m.provider.OnAuthStateChanged(m.handleAuthEvent)
	if err != nil {
		m.log.Error(context.Background(), "could not attach auth-state stream", "error", err)
		return
	}
	m.mu.Lock()
	if m.destroyed {
		m.mu.Unlock()
		detach()
		return
	}
	m.detachStream = detach
	m.mu.Unlock()
}

// handleAuthEvent reconciles one event from the remote stream. Persistence
// failures here are logged and swallowed: a local hiccup must never tear
// down the stream.
func (m *Manager) handleAuthEvent(user *models.UserProfile) {
	ctx := context.Background()

	m.mu.Lock()
	if m.destroyed {
		m.mu.Unlock()
		return
	}
	now := m.clock.Now()
	if !m.lastEventAt.IsZero() && now.Sub(m.lastEventAt) < eventDebounceInterval {
		m.mu.Unlock()
		m.log.Debug(ctx, "auth event dropped by debounce")
		return
	}
	m.lastEventAt = now
	cur := m.state.User
	hadLocal := m.hadLocalSession
	wasInitialized := m.state.IsInitialized
	m.mu.Unlock()

	switch {
	case user != nil && cur != nil && user.ID == cur.ID:
		// Refresh signal. Touch the session, do not republish.
		m.session.RefreshTouch(ctx)

	case user != nil:
		if !m.session.PersistUser(ctx, user, "") {
			m.log.Error(ctx, "could not persist user from auth stream", "user_id", user.ID)
		}
		if hadLocal && cur != nil {
			m.scheduleStabilize(user, userSwapStabilizeDelay)
		} else {
			m.publishUser(user)
		}

	default:
		if !m.session.ClearSession(ctx) {
			m.log.Error(ctx, "could not clear session on remote sign-out")
		}
		if cur != nil {
			m.scheduleStabilize(nil, signOutStabilizeDelay)
		}
	}

	if !wasInitialized {
		m.mu.Lock()
		if m.state.IsInitialized {
			// The event itself already published the terminal state.
			m.mu.Unlock()
			return
		}
		m.state.Loading = false
		m.state.IsInitialized = true
		m.mu.Unlock()
		m.notify()
	}
}

// scheduleStabilize arms the single pending-update slot. An already pending
// update is cancelled; last write wins.
func (m *Manager) scheduleStabilize(payload *models.UserProfile, delay time.Duration) {
	m.mu.Lock()
	if m.pending != nil && m.pending.timer != nil {
		m.pending.timer.Stop()
	}
	p := &pendingStabilization{dueAt: m.clock.Now().Add(delay), payload: payload}
	m.pending = p
	p.timer = m.clock.AfterFunc(delay, func() { m.settle(p) })
	m.mu.Unlock()
}

// settle applies a pending stabilization, unless it was superseded.
func (m *Manager) settle(p *pendingStabilization) {
	m.mu.Lock()
	if m.pending != p {
		m.mu.Unlock()
		return
	}
	m.pending = nil
	m.state.User = p.payload
	m.state.Loading = false
	m.state.Err = ""
	m.state.IsInitialized = true
	m.hadLocalSession = p.payload != nil
	st := m.state
	subs := m.subscriberList()
	m.mu.Unlock()

	for _, fn := range subs {
		fn(st)
	}
}

// ForceStabilize applies the pending stabilization immediately. Escape hatch
// for a stuck debounce; a no-op when nothing is pending.
func (m *Manager) ForceStabilize() {
	m.mu.Lock()
	p := m.pending
	if p == nil {
		m.mu.Unlock()
		return
	}
	if p.timer != nil {
		p.timer.Stop()
	}
	m.mu.Unlock()
	m.settle(p)
}

// Register creates an account and publishes the authenticated state before
// returning. The error, if any, is recorded in the published state and
// returned.
func (m *Manager) Register(ctx context.Context, input models.RegistrationInput) (*models.UserProfile, error) {
	m.setLoading()
	user, err := m.registrar.Execute(ctx, input)
	if err != nil {
		m.setError(err)
		return nil, err
	}
	if !m.session.PersistUser(ctx, user, common.LoginMethodEmail) {
		m.log.Warn(ctx, "could not persist session after registration", "user_id", user.ID)
	}
	m.publishUser(user)
	return user, nil
}

// Login authenticates with email and password. The session is persisted and
// the state published before Login returns, without waiting for the stream
// to echo the sign-in.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.UserProfile, error) {
	m.setLoading()
	user, err := m.provider.Login(ctx, email, password)
	if err != nil {
		m.setError(err)
		return nil, err
	}
	if !m.session.PersistUser(ctx, user, common.LoginMethodEmail) {
		m.log.Warn(ctx, "could not persist session after login", "user_id", user.ID)
	}
	m.publishUser(user)
	return user, nil
}

// LoginWithProvider runs the external-provider flow. Cancellation by the
// user yields (nil, nil) and only clears the loading flag.
func (m *Manager) LoginWithProvider(ctx context.Context) (*models.UserProfile, error) {
	m.setLoading()
	user, err := m.provider.ExternalLogin(ctx)
	if err != nil {
		m.setError(err)
		return nil, err
	}
	if user == nil {
		m.mu.Lock()
		m.state.Loading = false
		m.mu.Unlock()
		m.notify()
		return nil, nil
	}
	if !m.session.PersistUser(ctx, user, common.LoginMethodProvider) {
		m.log.Warn(ctx, "could not persist session after provider login", "user_id", user.ID)
	}
	m.publishUser(user)
	return user, nil
}

// Logout clears the local session and publishes the signed-out state, then
// fires the remote sign-out in the background. Remote failure is logged
// only; logout never fails from the caller's perspective.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	if m.pending != nil {
		if m.pending.timer != nil {
			m.pending.timer.Stop()
		}
		m.pending = nil
	}
	m.mu.Unlock()

	if !m.session.ClearSession(ctx) {
		m.log.Warn(ctx, "could not clear local session on logout")
	}

	m.mu.Lock()
	m.state = State{IsInitialized: true}
	m.hadLocalSession = false
	m.mu.Unlock()
	m.notify()

	go func() {
		if err := m.provider.Logout(context.Background()); err != nil {
			m.log.Warn(context.Background(), "remote sign-out failed", "error", err)
		}
	}()
}

// IsProviderLinked reports whether the current account signed in through
// the external provider. The local marker is consulted first; absent that,
// the provider is asked. Any failure yields false.
func (m *Manager) IsProviderLinked(ctx context.Context) bool {
	if method := m.session.LoginMethod(ctx); method != "" {
		return method == common.LoginMethodProvider
	}
	linked, err := m.provider.IsExternalProviderUser(ctx)
	if err != nil {
		m.log.Warn(ctx, "provider linkage check failed", "error", err)
		return false
	}
	return linked
}

// Destroy detaches from the stream, cancels pending timers and drops all
// subscribers. The manager must not be used afterwards.
func (m *Manager) Destroy() {
	m.mu.Lock()
	m.destroyed = true
	if m.pending != nil {
		if m.pending.timer != nil {
			m.pending.timer.Stop()
		}
		m.pending = nil
	}
	if m.attachTimer != nil {
		m.attachTimer.Stop()
		m.attachTimer = nil
	}
	detach := m.detachStream
	m.detachStream = nil
	m.subscribers = make(map[int]func(State))
	m.mu.Unlock()

	if detach != nil {
		detach()
	}
}

// publishUser installs user as the published identity and notifies. The
// debounce clock is left alone: only accepted external events advance it,
// so a genuine stream event right after a local sign-in is still applied.
// The stream's echo of the sign-in itself is absorbed by the same-user
// refresh no-op in handleAuthEvent.
func (m *Manager) publishUser(user *models.UserProfile) {
	m.mu.Lock()
	m.state = State{User: user, IsInitialized: true}
	m.hadLocalSession = true
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) setLoading() {
	m.mu.Lock()
	m.state.Loading = true
	m.state.Err = ""
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) setError(err error) {
	m.mu.Lock()
	m.state.Loading = false
	m.state.Err = err.Error()
	m.mu.Unlock()
	m.notify()
}

// notify delivers the current state to all subscribers, unless a
// stabilization is pending, in which case intermediate states stay
// unobserved.
func (m *Manager) notify() {
	m.mu.Lock()
	if m.pending != nil {
		m.mu.Unlock()
		return
	}
	st := m.state
	subs := m.subscriberList()
	m.mu.Unlock()

	for _, fn := range subs {
		fn(st)
	}
}

func (m *Manager) subscriberList() []func(State) {
	subs := make([]func(State), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		subs = append(subs, fn)
	}
	return subs
}

package authmgr

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/walletkeeper/internal/client/kvstore"
	"github.com/avolkov/walletkeeper/internal/client/models"
	"github.com/avolkov/walletkeeper/internal/client/session"
	"github.com/avolkov/walletkeeper/internal/logging"
	_ "modernc.org/sqlite"
)

type fakeTimer struct {
	clock    *fakeClock
	deadline time.Time
	f        func()
	stopped  bool
	fired    bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, deadline: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward and fires every due timer.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	var rest []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && !t.deadline.After(c.now) {
			t.fired = true
			due = append(due, t)
			continue
		}
		rest = append(rest, t)
	}
	c.timers = rest
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

type fakeProvider struct {
	mu           sync.Mutex
	loginUser    *models.UserProfile
	loginErr     error
	externalUser *models.UserProfile
	externalErr  error
	logoutErr    error
	logoutGate   chan struct{}
	logoutDone   chan struct{}
	linked       bool
	linkedErr    error
	cb           func(*models.UserProfile)
	detached     bool
}

func (p *fakeProvider) Login(ctx context.Context, email, password string) (*models.UserProfile, error) {
	return p.loginUser, p.loginErr
}

func (p *fakeProvider) ExternalLogin(ctx context.Context) (*models.UserProfile, error) {
	return p.externalUser, p.externalErr
}

func (p *fakeProvider) Logout(ctx context.Context) error {
	if p.logoutGate != nil {
		<-p.logoutGate
	}
	if p.logoutDone != nil {
		close(p.logoutDone)
	}
	return p.logoutErr
}

func (p *fakeProvider) IsExternalProviderUser(ctx context.Context) (bool, error) {
	return p.linked, p.linkedErr
}

func (p *fakeProvider) OnAuthStateChanged(cb func(*models.UserProfile)) (func(), error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cb = cb
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.detached = true
		p.cb = nil
	}, nil
}

func (p *fakeProvider) emit(user *models.UserProfile) {
	p.mu.Lock()
	cb := p.cb
	p.mu.Unlock()
	if cb != nil {
		cb(user)
	}
}

func (p *fakeProvider) attached() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cb != nil
}

type fakeRegistrar struct {
	user *models.UserProfile
	err  error
}

func (r *fakeRegistrar) Execute(ctx context.Context, input models.RegistrationInput) (*models.UserProfile, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.user != nil {
		return r.user, nil
	}
	return &models.UserProfile{ID: "reg-1", Email: input.Email, DisplayName: input.DisplayName, Currency: input.Currency}, nil
}

// recorder collects every published state.
type recorder struct {
	mu     sync.Mutex
	states []State
}

func (r *recorder) record(st State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, st)
}

func (r *recorder) all() []State {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]State, len(r.states))
	copy(out, r.states)
	return out
}

func (r *recorder) last() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.states) == 0 {
		return State{}
	}
	return r.states[len(r.states)-1]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

func userA() *models.UserProfile {
	return &models.UserProfile{ID: "user-a", Email: "a@b.com", DisplayName: "Alice"}
}

func userB() *models.UserProfile {
	return &models.UserProfile{ID: "user-b", Email: "b@b.com", DisplayName: "Bob"}
}

type fixture struct {
	mgr       *Manager
	sess      *session.Store
	clock     *fakeClock
	provider  *fakeProvider
	registrar *fakeRegistrar
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	kv := kvstore.New(db, logging.NewNopLogger())
	kv.ConfigureNamespace("walletkeeper.")

	f := &fixture{
		clock:     newFakeClock(),
		provider:  &fakeProvider{},
		registrar: &fakeRegistrar{},
	}
	f.sess = session.New(kv, logging.NewNopLogger(), session.WithNow(f.clock.Now))
	f.mgr = New(f.sess, f.provider, f.registrar, logging.NewNopLogger(), WithClock(f.clock))
	t.Cleanup(f.mgr.Destroy)
	return f
}

func TestSubscribe_FastPathFromLocalSession(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.sess.PersistUser(context.Background(), userA(), "email"))

	rec := &recorder{}
	f.mgr.Subscribe(rec.record)

	st := rec.last()
	require.NotNil(t, st.User, "cached session must publish without any external event")
	assert.Equal(t, "user-a", st.User.ID)
	assert.True(t, st.IsInitialized)
	assert.False(t, st.Loading)

	// The stream attaches only after the fast-path render settles.
	assert.False(t, f.provider.attached())
	f.clock.Advance(fastPathAttachDelay)
	assert.True(t, f.provider.attached())
}

func TestSubscribe_StartsLoadingUntilFirstReconciliation(t *testing.T) {
	f := newFixture(t)

	rec := &recorder{}
	f.mgr.Subscribe(rec.record)

	// Before any reconciliation the state is "still finding out", never a
	// settled signed-out state.
	first := rec.all()[0]
	assert.True(t, first.Loading)
	assert.False(t, first.IsInitialized)
	assert.Nil(t, first.User)

	f.provider.emit(nil)
	st := f.mgr.State()
	assert.False(t, st.Loading)
	assert.True(t, st.IsInitialized)
}

func TestSubscribe_EmptyStoreAttachesImmediately(t *testing.T) {
	f := newFixture(t)

	rec := &recorder{}
	f.mgr.Subscribe(rec.record)

	assert.True(t, f.provider.attached())
	assert.Nil(t, f.mgr.State().User)
}

func TestSubscribe_InitRunsOnce(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.sess.PersistUser(context.Background(), userA(), "email"))

	f.mgr.Subscribe(func(State) {})
	f.clock.Advance(fastPathAttachDelay)
	require.True(t, f.provider.attached())

	rec := &recorder{}
	f.mgr.Subscribe(rec.record)

	// A later subscriber sees the current state once and triggers nothing.
	assert.Equal(t, 1, rec.count())
	assert.Equal(t, "user-a", rec.last().User.ID)
}

func TestHandleAuthEvent_DebounceDropsCloseEvents(t *testing.T) {
	f := newFixture(t)
	f.mgr.Subscribe(func(State) {})

	f.provider.emit(userA())
	assert.Equal(t, "user-a", f.mgr.State().User.ID)

	f.clock.Advance(200 * time.Millisecond)
	f.provider.emit(userB())

	// Dropped outright: the state still matches the first event.
	f.clock.Advance(time.Second)
	assert.Equal(t, "user-a", f.mgr.State().User.ID)
}

func TestHandleAuthEvent_FirstEventPublishesOnce(t *testing.T) {
	f := newFixture(t)
	rec := &recorder{}
	f.mgr.Subscribe(rec.record)
	before := rec.count()

	f.provider.emit(userA())

	st := f.mgr.State()
	assert.Equal(t, "user-a", st.User.ID)
	assert.True(t, st.IsInitialized)
	assert.False(t, st.Loading)
	assert.Equal(t, before+1, rec.count(), "one state change, one notification")
}

func TestHandleAuthEvent_ExternalSignOutRightAfterLogin(t *testing.T) {
	f := newFixture(t)
	f.provider.loginUser = userA()
	f.mgr.Subscribe(func(State) {})
	require.True(t, f.provider.attached())

	_, err := f.mgr.Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	require.NotNil(t, f.mgr.State().User)

	// A genuine remote sign-out moments after a local sign-in must still be
	// applied: only accepted stream events advance the debounce clock.
	f.clock.Advance(100 * time.Millisecond)
	f.provider.emit(nil)

	f.clock.Advance(signOutStabilizeDelay)
	assert.Nil(t, f.mgr.State().User)
	assert.Nil(t, f.sess.CurrentUser(context.Background()))
}

func TestHandleAuthEvent_SameUserOnlyTouches(t *testing.T) {
	f := newFixture(t)
	rec := &recorder{}
	f.mgr.Subscribe(rec.record)

	f.provider.emit(userA())
	notified := rec.count()
	lastLogin := f.sess.LastLogin(context.Background())

	f.clock.Advance(eventDebounceInterval)
	refreshed := userA()
	refreshed.DisplayName = "Alice Updated"
	f.provider.emit(refreshed)

	assert.Equal(t, "Alice", f.mgr.State().User.DisplayName, "refresh must not replace the published user")
	assert.Equal(t, notified, rec.count(), "refresh must not republish")
	assert.True(t, f.sess.LastLogin(context.Background()).After(lastLogin))
}

func TestHandleAuthEvent_UserSwapStabilizes(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.sess.PersistUser(context.Background(), userA(), "email"))

	rec := &recorder{}
	f.mgr.Subscribe(rec.record)
	f.clock.Advance(fastPathAttachDelay)
	require.True(t, f.provider.attached())

	f.clock.Advance(eventDebounceInterval)
	f.provider.emit(userB())

	// Still the old identity until the swap delay elapses.
	assert.Equal(t, "user-a", f.mgr.State().User.ID)

	f.clock.Advance(userSwapStabilizeDelay)
	assert.Equal(t, "user-b", f.mgr.State().User.ID)
	assert.Equal(t, "user-b", rec.last().User.ID)
}

func TestHandleAuthEvent_SignOutStabilizesSlower(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.sess.PersistUser(context.Background(), userA(), "email"))

	f.mgr.Subscribe(func(State) {})
	f.clock.Advance(fastPathAttachDelay)

	f.clock.Advance(eventDebounceInterval)
	f.provider.emit(nil)

	// Local data clears right away, the published state holds on longer.
	assert.Nil(t, f.sess.CurrentUser(context.Background()))
	assert.NotNil(t, f.mgr.State().User)

	f.clock.Advance(userSwapStabilizeDelay)
	assert.NotNil(t, f.mgr.State().User, "sign-out delay is longer than the swap delay")

	f.clock.Advance(signOutStabilizeDelay - userSwapStabilizeDelay)
	assert.Nil(t, f.mgr.State().User)
}

func TestHandleAuthEvent_NullWithNoUserIsNoop(t *testing.T) {
	f := newFixture(t)
	rec := &recorder{}
	f.mgr.Subscribe(rec.record)
	before := rec.count()

	f.provider.emit(nil)

	st := f.mgr.State()
	assert.Nil(t, st.User)
	assert.True(t, st.IsInitialized, "first reconciliation must still finish initialization")
	assert.Equal(t, before+1, rec.count())
}

func TestStabilize_CoalescesToLastUpdate(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.sess.PersistUser(context.Background(), userA(), "email"))
	rec := &recorder{}
	f.mgr.Subscribe(rec.record)
	before := rec.count()

	f.mgr.scheduleStabilize(userB(), userSwapStabilizeDelay)
	f.clock.Advance(50 * time.Millisecond)
	f.mgr.scheduleStabilize(nil, signOutStabilizeDelay)

	f.clock.Advance(time.Second)

	assert.Nil(t, f.mgr.State().User, "only the last scheduled update applies")
	assert.Equal(t, before+1, rec.count(), "exactly one notification for the settled state")
}

func TestStabilize_SuppressesIntermediateNotifications(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.sess.PersistUser(context.Background(), userA(), "email"))
	rec := &recorder{}
	f.mgr.Subscribe(rec.record)
	before := rec.count()

	f.mgr.scheduleStabilize(userB(), userSwapStabilizeDelay)
	f.mgr.notify()

	assert.Equal(t, before, rec.count(), "notification is held back while a stabilization is pending")
}

func TestForceStabilize_AppliesImmediately(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.sess.PersistUser(context.Background(), userA(), "email"))
	f.mgr.Subscribe(func(State) {})

	f.mgr.scheduleStabilize(userB(), userSwapStabilizeDelay)
	f.mgr.ForceStabilize()

	assert.Equal(t, "user-b", f.mgr.State().User.ID)

	// The original timer firing later must not re-apply anything.
	f.mgr.scheduleStabilize(nil, signOutStabilizeDelay)
	f.mgr.ForceStabilize()
	f.clock.Advance(time.Second)
	assert.Nil(t, f.mgr.State().User)
}

func TestForceStabilize_NoopWhenNothingPending(t *testing.T) {
	f := newFixture(t)
	f.mgr.ForceStabilize()
	assert.Nil(t, f.mgr.State().User)
}

func TestLogin_PersistsAndPublishesBeforeReturn(t *testing.T) {
	f := newFixture(t)
	f.provider.loginUser = userA()
	f.mgr.Subscribe(func(State) {})

	user, err := f.mgr.Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	require.NotNil(t, user)

	st := f.mgr.State()
	assert.Equal(t, "user-a", st.User.ID)
	assert.False(t, st.Loading)
	assert.Empty(t, st.Err)

	snap := f.sess.Snapshot(context.Background())
	assert.True(t, snap.IsAuthenticated)
	assert.Equal(t, "email", snap.LoginMethod)
}

func TestLogin_FailureSetsError(t *testing.T) {
	f := newFixture(t)
	f.provider.loginErr = errors.New("unauthorized")

	_, err := f.mgr.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)

	st := f.mgr.State()
	assert.Equal(t, "unauthorized", st.Err)
	assert.False(t, st.Loading)
	assert.Nil(t, st.User)
}

func TestLoginWithProvider_CancelClearsLoadingOnly(t *testing.T) {
	f := newFixture(t)
	// (nil, nil) from the flow means the user backed out.
	user, err := f.mgr.LoginWithProvider(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)

	st := f.mgr.State()
	assert.False(t, st.Loading)
	assert.Empty(t, st.Err)
	assert.Nil(t, st.User)
}

func TestLoginWithProvider_SetsProviderMethod(t *testing.T) {
	f := newFixture(t)
	f.provider.externalUser = userA()

	_, err := f.mgr.LoginWithProvider(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "external-provider", f.sess.LoginMethod(context.Background()))
	assert.True(t, f.mgr.IsProviderLinked(context.Background()))
}

func TestLogout_LocalFirst(t *testing.T) {
	f := newFixture(t)
	f.provider.loginUser = userA()
	f.provider.logoutGate = make(chan struct{})
	f.provider.logoutDone = make(chan struct{})
	f.provider.logoutErr = errors.New("remote down")

	_, err := f.mgr.Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)

	f.mgr.Logout(context.Background())

	// Local state reflects logout while the remote call is still blocked.
	st := f.mgr.State()
	assert.Nil(t, st.User)
	assert.True(t, st.IsInitialized)
	assert.Nil(t, f.sess.CurrentUser(context.Background()))

	close(f.provider.logoutGate)
	select {
	case <-f.provider.logoutDone:
	case <-time.After(time.Second):
		t.Fatal("remote sign-out never ran")
	}
	// The remote failure changes nothing.
	assert.Nil(t, f.mgr.State().User)
}

func TestLogout_CancelsPendingStabilization(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.sess.PersistUser(context.Background(), userA(), "email"))
	f.mgr.Subscribe(func(State) {})

	f.mgr.scheduleStabilize(userB(), userSwapStabilizeDelay)
	f.mgr.Logout(context.Background())

	f.clock.Advance(time.Second)
	assert.Nil(t, f.mgr.State().User, "a cancelled stabilization must not resurrect a user")
}

func TestIsProviderLinked_FallsBackToProvider(t *testing.T) {
	f := newFixture(t)

	f.provider.linked = true
	assert.True(t, f.mgr.IsProviderLinked(context.Background()))

	f.provider.linkedErr = errors.New("unavailable")
	assert.False(t, f.mgr.IsProviderLinked(context.Background()))
}

func TestIsProviderLinked_LocalMarkerWins(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.sess.PersistUser(context.Background(), userA(), "email"))

	f.provider.linked = true
	assert.False(t, f.mgr.IsProviderLinked(context.Background()), "an email session is not provider-linked")
}

func TestRegister_PublishesAuthenticatedState(t *testing.T) {
	f := newFixture(t)

	user, err := f.mgr.Register(context.Background(), models.RegistrationInput{
		Email: "a@b.com", Password: "s3cret!", DisplayName: "Alice", Currency: "EUR",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	snap := f.sess.Snapshot(context.Background())
	assert.True(t, snap.IsAuthenticated)
	assert.Equal(t, user.ID, snap.User.ID)
}

func TestRegister_FailureSetsErrorAndRethrows(t *testing.T) {
	f := newFixture(t)
	f.registrar.err = errors.New("email already in use")

	_, err := f.mgr.Register(context.Background(), models.RegistrationInput{Email: "a@b.com"})
	require.Error(t, err)
	assert.Equal(t, "email already in use", f.mgr.State().Err)
}

func TestDestroy_DetachesStreamAndIgnoresEvents(t *testing.T) {
	f := newFixture(t)
	f.mgr.Subscribe(func(State) {})
	require.True(t, f.provider.attached())

	f.mgr.Destroy()
	assert.True(t, f.provider.detached)

	f.mgr.handleAuthEvent(userA())
	assert.Nil(t, f.mgr.State().User)
}

func TestRestart_RegisterThenFastPathFromSameStore(t *testing.T) {
	f := newFixture(t)

	user, err := f.mgr.Register(context.Background(), models.RegistrationInput{
		Email: "a@b.com", Password: "s3cret!", DisplayName: "Alice",
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.True(t, f.sess.Snapshot(context.Background()).IsAuthenticated)

	f.mgr.Destroy()

	// New manager, same store: the session survives the restart.
	second := New(f.sess, f.provider, f.registrar, logging.NewNopLogger(), WithClock(f.clock))
	defer second.Destroy()

	rec := &recorder{}
	second.Subscribe(rec.record)

	st := rec.last()
	require.NotNil(t, st.User, "restart must restore the session without any external event")
	assert.Equal(t, user.ID, st.User.ID)
	assert.True(t, st.IsInitialized)
	assert.False(t, st.Loading)
}

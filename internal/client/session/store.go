// Package session persists the durable local representation of "who is
// logged in and since when" on top of the key/value store.
package session

import (
	"context"
	"time"

	"github.com/avolkov/walletkeeper/internal/client/kvstore"
	"github.com/avolkov/walletkeeper/internal/client/models"
	"github.com/avolkov/walletkeeper/internal/logging"
)

// Logical keys of the session record. The kvstore namespace keeps them out
// of the way of any other local state.
const (
	keyCurrentUser = "currentUser"
	keyAuthState   = "authState"
	keyLastLogin   = "lastLogin"
	keyLoginMethod = "loginMethod"
)

// authStateAuthenticated is the only marker value with meaning; anything
// else counts as absent.
const authStateAuthenticated = "authenticated"

// ExpiryPolicy decides whether a session with the given last-login time is
// expired at now. The default is NeverExpires: "session exists" and
// "session expired" are deliberately decoupled, and a real TTL can be wired
// in without touching the reconciliation logic.
type ExpiryPolicy func(lastLogin time.Time, now time.Time) bool

// NeverExpires is the default policy: a session is valid for as long as the
// record exists.
func NeverExpires(time.Time, time.Time) bool { return false }

// TTLPolicy returns a policy expiring sessions whose last login is older
// than ttl.
func TTLPolicy(ttl time.Duration) ExpiryPolicy {
	return func(lastLogin, now time.Time) bool {
		if lastLogin.IsZero() {
			return false
		}
		return now.Sub(lastLogin) > ttl
	}
}

// Snapshot is an internally consistent view of the session record: it never
// reports IsAuthenticated without a user, because the self-heal has already
// happened by the time the snapshot is taken.
type Snapshot struct {
	IsAuthenticated bool
	User            *models.UserProfile
	LastLogin       time.Time // zero when absent
	LoginMethod     string    // "" when absent
	SessionExpired  bool
}

// Store reads and writes the session record. It is the only writer of those
// keys under normal operation.
type Store struct {
	kv      *kvstore.Store
	log     logging.Logger
	expired ExpiryPolicy
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithExpiryPolicy replaces the default never-expires policy.
func WithExpiryPolicy(p ExpiryPolicy) Option {
	return func(s *Store) { s.expired = p }
}

// WithNow replaces the wall clock, for deterministic tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(kv *kvstore.Store, log logging.Logger, opts ...Option) *Store {
	s := &Store{
		kv:      kv,
		log:     log.With("module", "session"),
		expired: NeverExpires,
		now:     time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// PersistUser stores the user, stamps lastLogin=now, and sets the
// authenticated marker. method updates the login-method marker when
// non-empty; an empty method leaves the existing marker alone (events from
// the auth stream do not know how the user signed in). Returns false if any
// underlying put fails; callers must not assume the user was saved then.
func (s *Store) PersistUser(ctx context.Context, user *models.UserProfile, method string) bool {
	if user == nil {
		return false
	}
	if !s.kv.PutObject(ctx, keyCurrentUser, user) {
		return false
	}
	if !s.kv.PutNumber(ctx, keyLastLogin, unixMillis(s.now())) {
		return false
	}
	if !s.kv.PutString(ctx, keyAuthState, authStateAuthenticated) {
		return false
	}
	if method != "" {
		if !s.kv.PutString(ctx, keyLoginMethod, method) {
			return false
		}
	}
	return true
}

// CurrentUser returns the stored user, or nil when absent or unreadable.
func (s *Store) CurrentUser(ctx context.Context) *models.UserProfile {
	var user models.UserProfile
	if !s.kv.GetObject(ctx, keyCurrentUser, &user) {
		return nil
	}
	return &user
}

// LastLogin returns the stored last-login time, zero when absent.
func (s *Store) LastLogin(ctx context.Context) time.Time {
	ms, ok := s.kv.GetNumber(ctx, keyLastLogin)
	if !ok {
		return time.Time{}
	}
	return fromUnixMillis(ms)
}

// LoginMethod returns the stored login-method marker, "" when absent.
func (s *Store) LoginMethod(ctx context.Context) string {
	m, _ := s.kv.GetString(ctx, keyLoginMethod)
	return m
}

// HasValidLocalSession reports whether a locally valid session exists:
// either the authenticated marker is set and a user is stored, or a user is
// stored with the marker missing — in which case the marker is repaired
// (self-heal) before returning true. A user is never silently dropped to
// satisfy the marker invariant. Finding a valid session refreshes lastLogin
// as a sliding touch.
func (s *Store) HasValidLocalSession(ctx context.Context) bool {
	user := s.CurrentUser(ctx)
	if user == nil {
		return false
	}

	marker, _ := s.kv.GetString(ctx, keyAuthState)
	if marker != authStateAuthenticated {
		s.log.Warn(ctx, "user present without auth marker, repairing", "user_id", user.ID)
		if !s.kv.PutString(ctx, keyAuthState, authStateAuthenticated) {
			s.log.Error(ctx, "could not repair auth marker")
		}
	}

	s.RefreshTouch(ctx)
	return true
}

// ClearSession removes the whole session record. All-or-nothing from the
// caller's point of view: false means at least one key could not be
// guaranteed gone.
func (s *Store) ClearSession(ctx context.Context) bool {
	return s.kv.RemoveMany(ctx, []string{
		keyCurrentUser, keyAuthState, keyLastLogin, keyLoginMethod,
	})
}

// RefreshTouch updates lastLogin only, as a heartbeat independent of full
// persistence.
func (s *Store) RefreshTouch(ctx context.Context) bool {
	return s.kv.PutNumber(ctx, keyLastLogin, unixMillis(s.now()))
}

// Snapshot assembles the session view. The self-heal runs as part of the
// read, so a caller can never observe IsAuthenticated with a nil user.
func (s *Store) Snapshot(ctx context.Context) Snapshot {
	user := s.CurrentUser(ctx)
	if user == nil {
		return Snapshot{}
	}

	marker, _ := s.kv.GetString(ctx, keyAuthState)
	if marker != authStateAuthenticated {
		s.log.Warn(ctx, "user present without auth marker, repairing", "user_id", user.ID)
		if !s.kv.PutString(ctx, keyAuthState, authStateAuthenticated) {
			s.log.Error(ctx, "could not repair auth marker")
		}
	}

	lastLogin := s.LastLogin(ctx)
	return Snapshot{
		IsAuthenticated: true,
		User:            user,
		LastLogin:       lastLogin,
		LoginMethod:     s.LoginMethod(ctx),
		SessionExpired:  s.expired(lastLogin, s.now()),
	}
}

func unixMillis(t time.Time) float64 {
	return float64(t.UnixMilli())
}

func fromUnixMillis(ms float64) time.Time {
	return time.UnixMilli(int64(ms))
}

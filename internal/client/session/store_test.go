package session

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/walletkeeper/internal/client/kvstore"
	"github.com/avolkov/walletkeeper/internal/client/models"
	"github.com/avolkov/walletkeeper/internal/logging"
	_ "modernc.org/sqlite"
)

func setupKV(t *testing.T) *kvstore.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	kv := kvstore.New(db, logging.NewNopLogger())
	kv.ConfigureNamespace("walletkeeper.")
	return kv
}

func testUser() *models.UserProfile {
	return &models.UserProfile{
		ID:          "user-1",
		Email:       "a@b.com",
		DisplayName: "Alice",
		Currency:    "EUR",
		Locale:      "en-US",
		Preferences: models.Preferences{NotificationsEnabled: true, DefaultWalletID: "w1"},
		CreatedAt:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC),
	}
}

func TestPersistUser_ThenSnapshot(t *testing.T) {
	kv := setupKV(t)
	s := New(kv, logging.NewNopLogger())
	ctx := context.Background()

	require.True(t, s.PersistUser(ctx, testUser(), "email"))

	snap := s.Snapshot(ctx)
	require.True(t, snap.IsAuthenticated)
	require.NotNil(t, snap.User)
	assert.Equal(t, "user-1", snap.User.ID)
	assert.Equal(t, "a@b.com", snap.User.Email)
	assert.Equal(t, "email", snap.LoginMethod)
	assert.False(t, snap.LastLogin.IsZero())
	assert.False(t, snap.SessionExpired)
}

func TestPersistUser_NilUserFails(t *testing.T) {
	s := New(setupKV(t), logging.NewNopLogger())
	assert.False(t, s.PersistUser(context.Background(), nil, "email"))
}

func TestPersistUser_EmptyMethodKeepsMarker(t *testing.T) {
	s := New(setupKV(t), logging.NewNopLogger())
	ctx := context.Background()

	require.True(t, s.PersistUser(ctx, testUser(), "external-provider"))
	require.True(t, s.PersistUser(ctx, testUser(), ""))

	assert.Equal(t, "external-provider", s.LoginMethod(ctx))
}

func TestHasValidLocalSession_SelfHealsMissingMarker(t *testing.T) {
	kv := setupKV(t)
	s := New(kv, logging.NewNopLogger())
	ctx := context.Background()

	// user stored without the authenticated marker
	require.True(t, kv.PutObject(ctx, "currentUser", testUser()))

	require.True(t, s.HasValidLocalSession(ctx))

	marker, ok := kv.GetString(ctx, "authState")
	require.True(t, ok, "self-heal must persist the marker")
	assert.Equal(t, "authenticated", marker)
}

func TestHasValidLocalSession_NoUser(t *testing.T) {
	s := New(setupKV(t), logging.NewNopLogger())
	assert.False(t, s.HasValidLocalSession(context.Background()))
}

func TestHasValidLocalSession_TouchesLastLogin(t *testing.T) {
	kv := setupKV(t)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := New(kv, logging.NewNopLogger(), WithNow(func() time.Time { return now }))
	ctx := context.Background()

	require.True(t, s.PersistUser(ctx, testUser(), "email"))

	now = now.Add(2 * time.Hour)
	require.True(t, s.HasValidLocalSession(ctx))

	assert.Equal(t, now.UnixMilli(), s.LastLogin(ctx).UnixMilli(), "valid session must slide lastLogin")
}

func TestClearSession_RemovesEverything(t *testing.T) {
	kv := setupKV(t)
	s := New(kv, logging.NewNopLogger())
	ctx := context.Background()

	require.True(t, s.PersistUser(ctx, testUser(), "email"))
	require.True(t, s.ClearSession(ctx))

	assert.Nil(t, s.CurrentUser(ctx))
	assert.False(t, kv.Exists(ctx, "authState"))
	assert.False(t, kv.Exists(ctx, "lastLogin"))
	assert.False(t, kv.Exists(ctx, "loginMethod"))
	assert.False(t, s.HasValidLocalSession(ctx))
}

func TestSnapshot_EmptyStore(t *testing.T) {
	s := New(setupKV(t), logging.NewNopLogger())

	snap := s.Snapshot(context.Background())
	assert.False(t, snap.IsAuthenticated)
	assert.Nil(t, snap.User)
	assert.True(t, snap.LastLogin.IsZero())
	assert.Empty(t, snap.LoginMethod)
}

func TestSnapshot_NeverTorn(t *testing.T) {
	kv := setupKV(t)
	s := New(kv, logging.NewNopLogger())
	ctx := context.Background()

	// Marker present without a user: a snapshot must not claim
	// authentication it cannot back with a user.
	require.True(t, kv.PutString(ctx, "authState", "authenticated"))

	snap := s.Snapshot(ctx)
	assert.False(t, snap.IsAuthenticated)
	assert.Nil(t, snap.User)
}

func TestExpiryPolicy_TTL(t *testing.T) {
	kv := setupKV(t)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := New(kv, logging.NewNopLogger(),
		WithNow(func() time.Time { return now }),
		WithExpiryPolicy(TTLPolicy(24*time.Hour)),
	)
	ctx := context.Background()

	require.True(t, s.PersistUser(ctx, testUser(), "email"))

	snap := s.Snapshot(ctx)
	assert.False(t, snap.SessionExpired)

	now = now.Add(25 * time.Hour)
	snap = s.Snapshot(ctx)
	assert.True(t, snap.SessionExpired, "TTL policy must mark the session expired")
	assert.True(t, snap.IsAuthenticated, "expiry is policy, existence is data")
}

func TestNeverExpires_Default(t *testing.T) {
	assert.False(t, NeverExpires(time.Time{}, time.Now()))
	assert.False(t, NeverExpires(time.Now().Add(-1000*time.Hour), time.Now()))
}

package kvstore

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/walletkeeper/internal/logging"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newStore(t *testing.T, db *sql.DB, prefix string) *Store {
	t.Helper()
	s := New(db, logging.NewNopLogger())
	s.ConfigureNamespace(prefix)
	return s
}

type testPrefs struct {
	Enabled  bool   `json:"enabled"`
	WalletID string `json:"walletId"`
}

func TestRoundTrip_AllKinds(t *testing.T) {
	s := newStore(t, setupDB(t), "app.")
	ctx := context.Background()

	require.True(t, s.PutString(ctx, "s", "hello"))
	require.True(t, s.PutNumber(ctx, "n", 42.5))
	require.True(t, s.PutBool(ctx, "b", true))
	require.True(t, s.PutObject(ctx, "o", testPrefs{Enabled: true, WalletID: "w1"}))

	str, ok := s.GetString(ctx, "s")
	require.True(t, ok)
	assert.Equal(t, "hello", str)

	n, ok := s.GetNumber(ctx, "n")
	require.True(t, ok)
	assert.Equal(t, 42.5, n)

	b, ok := s.GetBool(ctx, "b")
	require.True(t, ok)
	assert.True(t, b)

	var p testPrefs
	require.True(t, s.GetObject(ctx, "o", &p))
	assert.Equal(t, testPrefs{Enabled: true, WalletID: "w1"}, p)
}

func TestGet_Absent(t *testing.T) {
	s := newStore(t, setupDB(t), "app.")
	ctx := context.Background()

	_, ok := s.GetString(ctx, "missing")
	assert.False(t, ok)
	assert.False(t, s.Exists(ctx, "missing"))
}

func TestPut_OverwritesAndRetags(t *testing.T) {
	s := newStore(t, setupDB(t), "app.")
	ctx := context.Background()

	require.True(t, s.PutString(ctx, "k", "old"))
	require.True(t, s.PutNumber(ctx, "k", 7))

	// the old kind must not survive the overwrite
	_, ok := s.GetString(ctx, "k")
	assert.False(t, ok)

	n, ok := s.GetNumber(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, float64(7), n)
}

func TestGet_KindMismatchIsAbsence(t *testing.T) {
	s := newStore(t, setupDB(t), "app.")
	ctx := context.Background()

	require.True(t, s.PutString(ctx, "k", "123"))

	// "123" would parse as a number, but the tag says string: never decode
	// with the wrong kind.
	_, ok := s.GetNumber(ctx, "k")
	assert.False(t, ok)
	_, ok = s.GetBool(ctx, "k")
	assert.False(t, ok)

	var out testPrefs
	assert.False(t, s.GetObject(ctx, "k", &out))
}

func TestRemoveAndExists(t *testing.T) {
	s := newStore(t, setupDB(t), "app.")
	ctx := context.Background()

	require.True(t, s.PutBool(ctx, "k", false))
	require.True(t, s.Exists(ctx, "k"))

	require.True(t, s.Remove(ctx, "k"))
	assert.False(t, s.Exists(ctx, "k"))
	_, ok := s.GetBool(ctx, "k")
	assert.False(t, ok)

	// removing an absent key still succeeds
	require.True(t, s.Remove(ctx, "k"))
}

func TestPutMany_StopsOnFirstFailure(t *testing.T) {
	s := newStore(t, setupDB(t), "app.")
	ctx := context.Background()

	bad := Value{kind: ValueKind("mystery"), raw: "?"}

	ok := s.PutMany(ctx, []Entry{
		{Key: "a", Value: StringValue("1")},
		{Key: "b", Value: bad},
		{Key: "c", Value: StringValue("3")},
	})
	require.False(t, ok)

	// a stays committed, b was rejected, c was never attempted
	_, found := s.GetString(ctx, "a")
	assert.True(t, found)
	assert.False(t, s.Exists(ctx, "b"))
	assert.False(t, s.Exists(ctx, "c"))
}

func TestGetMany_SkipsAbsent(t *testing.T) {
	s := newStore(t, setupDB(t), "app.")
	ctx := context.Background()

	require.True(t, s.PutString(ctx, "a", "1"))
	require.True(t, s.PutNumber(ctx, "b", 2))

	got := s.GetMany(ctx, []string{"a", "b", "missing"})
	require.Len(t, got, 2)
	assert.Equal(t, KindString, got["a"].Kind())
	assert.Equal(t, KindNumber, got["b"].Kind())
}

func TestRemoveMany(t *testing.T) {
	s := newStore(t, setupDB(t), "app.")
	ctx := context.Background()

	require.True(t, s.PutString(ctx, "a", "1"))
	require.True(t, s.PutString(ctx, "b", "2"))
	require.True(t, s.RemoveMany(ctx, []string{"a", "b", "missing"}))
	assert.False(t, s.Exists(ctx, "a"))
	assert.False(t, s.Exists(ctx, "b"))
}

func TestClear_NamespaceIsolation(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	mine := newStore(t, db, "mine.")
	other := newStore(t, db, "other.")

	require.True(t, mine.PutString(ctx, "k1", "v1"))
	require.True(t, mine.PutString(ctx, "k2", "v2"))
	require.True(t, other.PutString(ctx, "k1", "keep"))

	require.True(t, mine.Clear(ctx))

	assert.Empty(t, mine.ListKeys(ctx))
	v, ok := other.GetString(ctx, "k1")
	require.True(t, ok)
	assert.Equal(t, "keep", v)
}

func TestListKeys_StripsPrefix(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	s := newStore(t, db, "ns.")
	other := newStore(t, db, "other.")

	require.True(t, s.PutString(ctx, "alpha", "1"))
	require.True(t, s.PutString(ctx, "beta", "2"))
	require.True(t, other.PutString(ctx, "gamma", "3"))

	assert.Equal(t, []string{"alpha", "beta"}, s.ListKeys(ctx))
}

func TestClear_MultiByteNamespace(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	mine := newStore(t, db, "кошелёк.")
	other := newStore(t, db, "кошелька.")

	require.True(t, mine.PutString(ctx, "k1", "v1"))
	require.True(t, other.PutString(ctx, "k1", "keep"))

	require.True(t, mine.Clear(ctx))

	assert.Equal(t, []string{"k1"}, other.ListKeys(ctx))
	v, ok := other.GetString(ctx, "k1")
	require.True(t, ok)
	assert.Equal(t, "keep", v)
}

func TestClear_WildcardNamespaceMatchesItselfOnly(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	// "_" and "%" are LIKE metacharacters; a namespace containing them must
	// not bleed into sibling namespaces.
	mine := newStore(t, db, "ns_1.")
	sibling := newStore(t, db, "nsX1.")

	require.True(t, mine.PutString(ctx, "k", "v"))
	require.True(t, sibling.PutString(ctx, "k", "keep"))

	require.True(t, mine.Clear(ctx))

	assert.Empty(t, mine.ListKeys(ctx))
	assert.Equal(t, []string{"k"}, sibling.ListKeys(ctx))
}

func TestLazyInit_IdempotentAcrossStores(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	// Two stores over the same bare database: each triggers its own lazy
	// schema setup; the second must not fail on the existing table.
	a := newStore(t, db, "a.")
	b := newStore(t, db, "b.")

	require.True(t, a.PutString(ctx, "k", "1"))
	require.True(t, b.PutString(ctx, "k", "2"))

	va, _ := a.GetString(ctx, "k")
	vb, _ := b.GetString(ctx, "k")
	assert.Equal(t, "1", va)
	assert.Equal(t, "2", vb)
}

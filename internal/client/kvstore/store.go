// Package kvstore implements a typed, namespaced key/value store over a
// local SQLite database. It backs the durable session state of the client.
//
// Every value carries a kind tag chosen at write time; reads match the tag
// exhaustively, so a value written as one kind can never be silently decoded
// as another. All operations degrade on failure: puts report false, gets
// report absence, and errors are logged rather than propagated.
package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/avolkov/walletkeeper/internal/logging"
)

// Store is a prefix-scoped view over the kv_store table. The underlying
// *sql.DB serializes physical access; Store adds a mutex only around the
// namespace configuration and lazy schema init.
type Store struct {
	db  *sql.DB
	log logging.Logger

	mu     sync.Mutex
	prefix string

	initOnce sync.Once
	initErr  error
}

// New creates a Store over db. The namespace starts empty; call
// ConfigureNamespace before first use.
func New(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log.With("module", "kvstore")}
}

// ConfigureNamespace sets the prefix applied to every key from this point
// on. Calling it again with the same prefix is a no-op; the intended usage
// is a single call at startup.
func (s *Store) ConfigureNamespace(prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefix = prefix
}

func (s *Store) namespace() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefix
}

func (s *Store) fullKey(key string) string {
	return s.namespace() + key
}

// ensureInit creates the schema on the first operation, exactly once per
// Store. Migrations normally run at startup; this covers bare databases in
// tests and first launches.
func (s *Store) ensureInit(ctx context.Context) error {
	s.initOnce.Do(func() {
		_, s.initErr = s.db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS kv_store (
				key   TEXT PRIMARY KEY,
				kind  TEXT NOT NULL,
				value TEXT NOT NULL
			)`)
	})
	return s.initErr
}

// Put stores a tagged value under key, overwriting any prior value. Returns
// false on any failure; the failure is logged, never thrown.
func (s *Store) Put(ctx context.Context, key string, v Value) bool {
	if err := s.put(ctx, key, v); err != nil {
		s.log.Error(ctx, "put failed", "key", key, "error", err)
		return false
	}
	return true
}

func (s *Store) put(ctx context.Context, key string, v Value) error {
	if !validKind(v.kind) {
		return fmt.Errorf("refusing to store value with unknown kind %q", v.kind)
	}
	if err := s.ensureInit(ctx); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, kind, value) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET kind = excluded.kind, value = excluded.value
	`, s.fullKey(key), string(v.kind), v.raw)
	return err
}

// Get returns the tagged value stored under key. ok is false when the key
// is absent or any step of the read fails.
func (s *Store) Get(ctx context.Context, key string) (Value, bool) {
	if err := s.ensureInit(ctx); err != nil {
		s.log.Error(ctx, "get failed", "key", key, "error", err)
		return Value{}, false
	}
	var kind, raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT kind, value FROM kv_store WHERE key = ?`, s.fullKey(key),
	).Scan(&kind, &raw)
	if errors.Is(err, sql.ErrNoRows) {
		return Value{}, false
	}
	if err != nil {
		s.log.Error(ctx, "get failed", "key", key, "error", err)
		return Value{}, false
	}
	if !validKind(ValueKind(kind)) {
		s.log.Warn(ctx, "stored value has unknown kind, treating as absent", "key", key, "kind", kind)
		return Value{}, false
	}
	return Value{kind: ValueKind(kind), raw: raw}, true
}

// Typed convenience accessors. Each put records the matching kind tag; each
// get returns absence on a tag mismatch instead of a wrongly decoded value.

func (s *Store) PutString(ctx context.Context, key, value string) bool {
	return s.Put(ctx, key, StringValue(value))
}

func (s *Store) GetString(ctx context.Context, key string) (string, bool) {
	v, ok := s.Get(ctx, key)
	if !ok {
		return "", false
	}
	return v.AsString()
}

func (s *Store) PutNumber(ctx context.Context, key string, value float64) bool {
	return s.Put(ctx, key, NumberValue(value))
}

func (s *Store) GetNumber(ctx context.Context, key string) (float64, bool) {
	v, ok := s.Get(ctx, key)
	if !ok {
		return 0, false
	}
	return v.AsNumber()
}

func (s *Store) PutBool(ctx context.Context, key string, value bool) bool {
	return s.Put(ctx, key, BoolValue(value))
}

func (s *Store) GetBool(ctx context.Context, key string) (bool, bool) {
	v, ok := s.Get(ctx, key)
	if !ok {
		return false, false
	}
	return v.AsBool()
}

func (s *Store) PutObject(ctx context.Context, key string, value any) bool {
	v, err := ObjectValue(value)
	if err != nil {
		s.log.Error(ctx, "put failed", "key", key, "error", err)
		return false
	}
	return s.Put(ctx, key, v)
}

func (s *Store) GetObject(ctx context.Context, key string, out any) bool {
	v, ok := s.Get(ctx, key)
	if !ok {
		return false
	}
	return v.DecodeObject(out)
}

// Remove deletes key. Returns false only on storage failure; removing an
// absent key succeeds.
func (s *Store) Remove(ctx context.Context, key string) bool {
	if err := s.ensureInit(ctx); err != nil {
		s.log.Error(ctx, "remove failed", "key", key, "error", err)
		return false
	}
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM kv_store WHERE key = ?`, s.fullKey(key)); err != nil {
		s.log.Error(ctx, "remove failed", "key", key, "error", err)
		return false
	}
	return true
}

// Exists reports whether key is present. Failures degrade to false.
func (s *Store) Exists(ctx context.Context, key string) bool {
	if err := s.ensureInit(ctx); err != nil {
		s.log.Error(ctx, "exists failed", "key", key, "error", err)
		return false
	}
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM kv_store WHERE key = ?`, s.fullKey(key)).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		s.log.Error(ctx, "exists failed", "key", key, "error", err)
		return false
	}
	return true
}

// Entry is one key/value pair of a batch put.
type Entry struct {
	Key   string
	Value Value
}

// PutMany applies the puts in order and stops at the first failure,
// returning false. Previously applied puts stay committed and later entries
// are not attempted; the batch is a convenience, not a transaction.
func (s *Store) PutMany(ctx context.Context, entries []Entry) bool {
	for _, e := range entries {
		if !s.Put(ctx, e.Key, e.Value) {
			return false
		}
	}
	return true
}

// GetMany returns the present keys with their tagged values. Absent or
// unreadable keys are simply missing from the result.
func (s *Store) GetMany(ctx context.Context, keys []string) map[string]Value {
	result := make(map[string]Value, len(keys))
	for _, key := range keys {
		if v, ok := s.Get(ctx, key); ok {
			result[key] = v
		}
	}
	return result
}

// RemoveMany removes each key, reporting false if any removal fails.
func (s *Store) RemoveMany(ctx context.Context, keys []string) bool {
	ok := true
	for _, key := range keys {
		if !s.Remove(ctx, key) {
			ok = false
		}
	}
	return ok
}

// Clear removes all keys under the active namespace only. Keys written
// under other prefixes are never touched.
func (s *Store) Clear(ctx context.Context) bool {
	if err := s.ensureInit(ctx); err != nil {
		s.log.Error(ctx, "clear failed", "error", err)
		return false
	}
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM kv_store WHERE key LIKE ? ESCAPE '\'`, likePrefix(s.namespace()))
	if err != nil {
		s.log.Error(ctx, "clear failed", "error", err)
		return false
	}
	return true
}

// likePrefix builds a LIKE pattern matching keys that start with prefix,
// with the LIKE metacharacters escaped so a namespace containing "%" or
// "_" matches only itself. LIKE compares characters, not bytes, so
// multi-byte namespaces scope correctly too.
func likePrefix(prefix string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(prefix) + "%"
}

// ListKeys returns all keys under the active namespace, with the prefix
// stripped. Failures degrade to an empty list.
func (s *Store) ListKeys(ctx context.Context) []string {
	if err := s.ensureInit(ctx); err != nil {
		s.log.Error(ctx, "list keys failed", "error", err)
		return nil
	}
	prefix := s.namespace()
	rows, err := s.db.QueryContext(ctx,
		`SELECT key FROM kv_store WHERE key LIKE ? ESCAPE '\' ORDER BY key`, likePrefix(prefix))
	if err != nil {
		s.log.Error(ctx, "list keys failed", "error", err)
		return nil
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			s.log.Error(ctx, "list keys failed", "error", err)
			return nil
		}
		keys = append(keys, strings.TrimPrefix(key, prefix))
	}
	if err := rows.Err(); err != nil {
		s.log.Error(ctx, "list keys failed", "error", err)
		return nil
	}
	return keys
}

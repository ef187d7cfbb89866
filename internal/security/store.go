package security

import (
	"log/slog"
	"maps"
	"sync"

	"github.com/pmhub/secctx/internal/platform/convert"
)

// Store holds the security attributes of one request.
// It is safe for use by several goroutines working on the same request.
// A nil *Store behaves as an empty store for reads and drops writes;
// use Ensure to obtain a writable store for a context.
type Store struct {
	mu     sync.RWMutex
	values map[string]Value
}

// New creates an empty store.
func New() *Store {
	return &Store{values: make(map[string]Value)}
}

// Set stores value under key. Nil is stored as the Empty sentinel.
func (s *Store) Set(key string, value any) {
	if s == nil {
		return
	}

	v := ValueOf(value)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.values == nil {
		s.values = make(map[string]Value)
	}
	s.values[key] = v
}

// Get returns the textual form of the value under key, or Empty.
func (s *Store) Get(key string) string {
	v, ok := s.Lookup(key)
	if !ok {
		return Empty
	}

	return v.String()
}

// Lookup returns the value under key and whether it was set.
func (s *Store) Lookup(key string) (Value, bool) {
	if s == nil {
		return Value{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]

	return v, ok
}

// Values returns a copy of every attribute. The result is never nil.
func (s *Store) Values() map[string]Value {
	if s == nil {
		return make(map[string]Value)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Value, len(s.values))
	maps.Copy(out, s.values)

	return out
}

// Replace swaps the whole attribute set for a copy of values.
func (s *Store) Replace(values map[string]Value) {
	if s == nil {
		return
	}

	next := make(map[string]Value, len(values))
	maps.Copy(next, values)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = next
}

// Reset drops every attribute. The next access starts from an empty store.
func (s *Store) Reset() {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string]Value)
}

// Len returns the number of attributes.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.values)
}

// Snapshot returns an independent copy of the store.
func (s *Store) Snapshot() *Store {
	return &Store{values: s.Values()}
}

// As converts the value under key to T.
// Absent or unconvertible values yield the zero value of T.
func As[T any](s *Store, key string) T {
	var zero T
	return AsOr(s, key, zero)
}

// AsOr converts the value under key to T, returning def when the key is
// absent or the value cannot be converted.
func AsOr[T any](s *Store, key string, def T) T {
	v, ok := s.Lookup(key)
	if !ok {
		return def
	}

	out, ok := convert.To[T](v.Any())
	if !ok {
		return def
	}

	return out
}

// UserID returns the user id, or 0 when it is absent or not numeric.
func (s *Store) UserID() int64 {
	return convert.ToInt64(s.Get(KeyUserID), 0)
}

// SetUserID stores the user id as received from the gateway.
func (s *Store) SetUserID(id string) {
	s.Set(KeyUserID, id)
}

// UserName returns the login name.
func (s *Store) UserName() string {
	return s.Get(KeyUserName)
}

// SetUserName stores the login name.
func (s *Store) SetUserName(name string) {
	s.Set(KeyUserName, name)
}

// UserKey returns the session key.
func (s *Store) UserKey() string {
	return s.Get(KeyUserKey)
}

// SetUserKey stores the session key.
func (s *Store) SetUserKey(key string) {
	s.Set(KeyUserKey, key)
}

// Permission returns the raw permission string.
func (s *Store) Permission() string {
	return s.Get(KeyPermission)
}

// SetPermission stores the raw permission string.
func (s *Store) SetPermission(perms string) {
	s.Set(KeyPermission, perms)
}

// Permissions returns the permission string split on commas.
func (s *Store) Permissions() []string {
	v, ok := s.Lookup(KeyPermission)
	if !ok {
		return []string{}
	}

	return v.Strings()
}

// LogValue implements slog.LogValuer. The user key is reduced to a presence flag.
func (s *Store) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64(KeyUserID, s.UserID()),
		slog.String(KeyUserName, s.UserName()),
		slog.Bool("has_user_key", s.UserKey() != Empty),
		slog.String(KeyPermission, s.Permission()),
	)
}

package authprovider

import "sync"

// StorageKey is the fixed key the access token is persisted under.
const StorageKey = "authProvider:accessToken"

// TokenStore abstracts the durable client-side storage the access token lives
// in. Implementations must report a missing key as ("", nil), not an error,
// and must be safe for concurrent use.
type TokenStore interface {
	// Get returns the value stored under key, or "" if none.
	Get(key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Remove deletes the value stored under key. Removing a missing key is
	// not an error.
	Remove(key string) error
}

// MemoryTokenStore is an in-memory TokenStore. It is the default store and is
// suitable for tests and short-lived processes; nothing survives a restart.
type MemoryTokenStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryTokenStore creates an empty in-memory token store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{values: make(map[string]string)}
}

// Get returns the value stored under key, or "" if none.
func (s *MemoryTokenStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.values[key], nil
}

// Set stores value under key.
func (s *MemoryTokenStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Remove deletes the value stored under key.
func (s *MemoryTokenStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

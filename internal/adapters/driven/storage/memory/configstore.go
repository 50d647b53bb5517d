package memory

import (
	"sync"

	"github.com/custodia-labs/contractai-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps settings in a map. Used by tests and by CLI runs
// that must not touch the user's config file.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore creates an empty store; every setting reads as its default.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{values: make(map[string]any)}
}

// Get returns the raw value for key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

// GetString returns the string stored under key.
func (s *ConfigStore) GetString(key string) string {
	str, _ := lookup[string](s, key)
	return str
}

// GetInt returns key as an int. TOML decodes integers as int64 and
// JSON as float64, so both are accepted.
func (s *ConfigStore) GetInt(key string) int {
	val, _ := s.Get(key)
	switch n := val.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

// GetBool returns the bool stored under key.
func (s *ConfigStore) GetBool(key string) bool {
	b, _ := lookup[bool](s, key)
	return b
}

// Set stores value under key.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	return nil
}

func lookup[T any](s *ConfigStore, key string) (T, bool) {
	val, _ := s.Get(key)
	typed, ok := val.(T)
	return typed, ok
}

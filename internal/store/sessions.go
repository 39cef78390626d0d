package store

import "sync"

// Sessions holds per-user scratch state for multi-step flows, e.g. an
// order awaiting a payment-method choice or an admin about to upload a
// welcome image. Entries persist until cleared or process restart.
type Sessions struct {
	mu    sync.RWMutex
	users map[int64]map[string]any
}

// NewSessions creates an empty session store.
func NewSessions() *Sessions {
	return &Sessions{users: make(map[int64]map[string]any)}
}

// Set stores a value under the user's session key.
func (s *Sessions) Set(userID int64, key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.users[userID]
	if !ok {
		m = make(map[string]any)
		s.users[userID] = m
	}
	m[key] = value
}

// Get returns the value stored under the user's session key.
func (s *Sessions) Get(userID int64, key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.users[userID]
	if !ok {
		return nil, false
	}
	v, ok := m[key]
	return v, ok
}

// GetString returns the value as a string, or "" when absent or not a string.
func (s *Sessions) GetString(userID int64, key string) string {
	v, ok := s.Get(userID, key)
	if !ok {
		return ""
	}
	str, _ := v.(string)
	return str
}

// Has reports whether the user has a value stored under key.
func (s *Sessions) Has(userID int64, key string) bool {
	_, ok := s.Get(userID, key)
	return ok
}

// Clear drops the user's entire session map.
func (s *Sessions) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, userID)
}

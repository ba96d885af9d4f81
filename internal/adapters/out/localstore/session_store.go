// internal/adapters/out/localstore/session_store.go
package localstore

import "sync"

// SessionStore is the session-scoped Store: plain process memory, gone when
// the process ends. Backs the visitor-tracking flag.
type SessionStore struct {
	mu   sync.Mutex
	data map[string]string
}

func NewSessionStore() *SessionStore {
	return &SessionStore{data: map[string]string{}}
}

func (s *SessionStore) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *SessionStore) Set(key, value string) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

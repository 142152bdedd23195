package session

import (
	"context"
	"sync"
)

// memoryStore is the single-instance Store implementation. Sessions do not
// survive restarts; deployments with more than one instance need an
// externally shared Store instead.
type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]Session
}

// NewMemoryStore creates an in-process session store
func NewMemoryStore() Store {
	return &memoryStore{
		sessions: make(map[string]Session),
	}
}

func (s *memoryStore) Get(ctx context.Context, token string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[token], nil
}

func (s *memoryStore) Update(ctx context.Context, token string, fn func(*Session)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[token]
	fn(&sess)
	s.sessions[token] = sess
	return nil
}

func (s *memoryStore) Clear(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

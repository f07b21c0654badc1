// Package memory guarda las credenciales en proceso (dev y tests).
package memory

import (
	"context"
	"sync"
)

type Store struct {
	mu      sync.RWMutex
	token   string
	session string
}

func NewStore(token, session string) *Store {
	return &Store{token: token, session: session}
}

func (s *Store) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *Store) Session(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, nil
}

// Set reemplaza ambos valores (login/logout).
func (s *Store) Set(token, session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.session = token, session
}

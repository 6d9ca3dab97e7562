// Package memory provides an in-memory credential store for tests.
package memory

import (
	"context"
	"sync"

	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
	"github.com/ledgerworks/shoebox-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CredentialStore = (*Store)(nil)

// Store is an in-memory implementation of driven.CredentialStore.
type Store struct {
	mu    sync.RWMutex
	creds map[string]domain.Credentials
}

// NewStore creates an empty in-memory credential store.
func NewStore() *Store {
	return &Store{creds: make(map[string]domain.Credentials)}
}

// Load retrieves the credentials stored under key.
func (s *Store) Load(_ context.Context, key string) (*domain.Credentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	creds, ok := s.creds[key]
	if !ok {
		return nil, nil
	}
	out := creds
	return &out, nil
}

// Save stores credentials under key.
func (s *Store) Save(_ context.Context, key string, creds domain.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds[key] = creds
	return nil
}

// Delete removes the credentials stored under key.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.creds, key)
	return nil
}

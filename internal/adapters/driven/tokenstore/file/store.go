// Package file persists OAuth credentials as JSON files, one per scope
// key, under the shoebox token directory.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
	"github.com/ledgerworks/shoebox-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CredentialStore = (*Store)(nil)

// Store is a file-based implementation of driven.CredentialStore.
// Each scope key gets its own token file so consent granted for one
// scope set never leaks into another.
type Store struct {
	dir string
}

// NewStore creates a token store rooted at dir.
// If dir is empty, defaults to ~/.shoebox/tokens.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".shoebox", "tokens")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	return &Store{dir: dir}, nil
}

// Load retrieves the credentials stored under key. A missing file is not
// an error, it just means no one has authorized yet.
func (s *Store) Load(_ context.Context, key string) (*domain.Credentials, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading token file: %w", err)
	}

	var creds domain.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parsing token file: %w", err)
	}
	return &creds, nil
}

// Save stores credentials under key, replacing any previous value.
// Token files hold refresh tokens, so permissions are restricted.
func (s *Store) Save(_ context.Context, key string, creds domain.Credentials) error {
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding credentials: %w", err)
	}

	if err := os.WriteFile(s.path(key), data, 0600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}
	return nil
}

// Delete removes the credentials stored under key, if any.
func (s *Store) Delete(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing token file: %w", err)
	}
	return nil
}

// Path returns the token file path for key.
func (s *Store) Path(key string) string {
	return s.path(key)
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, fmt.Sprintf("token-%s.json", key))
}

package driven

import (
	"context"

	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
)

// CredentialStore persists OAuth credentials keyed by scope key.
// Injected into the auth service so tests can substitute a double for the
// on-disk token files.
type CredentialStore interface {
	// Load retrieves the credentials stored under key.
	// Returns (nil, nil) when nothing is stored.
	Load(ctx context.Context, key string) (*domain.Credentials, error)

	// Save stores credentials under key, replacing any previous value.
	Save(ctx context.Context, key string, creds domain.Credentials) error

	// Delete removes the credentials stored under key, if any.
	Delete(ctx context.Context, key string) error
}

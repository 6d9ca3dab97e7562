package driven

import (
	"context"

	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
)

// Authorizer runs the provider's authorization machinery.
// The Google implementation opens a browser to the consent page, receives
// the code on a localhost callback server, and exchanges it for tokens.
type Authorizer interface {
	// Authorize performs the interactive authorization handshake for the
	// requested scopes and returns the resulting credentials.
	Authorize(ctx context.Context, scopes []string) (*domain.Credentials, error)

	// Refresh exchanges a refresh token for a fresh access token.
	// The returned credentials carry the scopes actually granted.
	Refresh(ctx context.Context, creds domain.Credentials) (*domain.Credentials, error)
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
	"github.com/ledgerworks/shoebox-cli/internal/core/ports/driven"
	"github.com/ledgerworks/shoebox-cli/internal/logger"
)

// AuthService acquires credentials for a requested scope set: reuse a
// persisted grant when it is still valid, refresh when possible, and fall
// back to the interactive authorization flow otherwise.
type AuthService struct {
	store      driven.CredentialStore
	authorizer driven.Authorizer
}

// NewAuthService creates a new auth service.
func NewAuthService(store driven.CredentialStore, authorizer driven.Authorizer) *AuthService {
	return &AuthService{
		store:      store,
		authorizer: authorizer,
	}
}

// Acquire returns valid credentials covering scopes, persisting any newly
// obtained or refreshed tokens before returning.
//
// Refresh failure is non-fatal: it falls through to re-authorization.
// Failure of the interactive flow itself is returned to the caller.
func (s *AuthService) Acquire(ctx context.Context, scopes []string) (*domain.Credentials, error) {
	if len(scopes) == 0 {
		return nil, fmt.Errorf("%w: no scopes requested", domain.ErrInvalidInput)
	}

	key := domain.ScopeKey(scopes)

	creds, err := s.store.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}

	if creds.IsAuthenticated() && !creds.IsExpired() && creds.CoversScopes(scopes) {
		logger.Debug("reusing stored credentials for %s", key)
		return creds, nil
	}

	if creds.IsAuthenticated() && creds.HasRefreshToken() {
		refreshed, refreshErr := s.authorizer.Refresh(ctx, *creds)
		if refreshErr == nil && refreshed.CoversScopes(scopes) {
			refreshed.CreatedAt = creds.CreatedAt
			refreshed.UpdatedAt = time.Now()
			if err := s.store.Save(ctx, key, *refreshed); err != nil {
				return nil, fmt.Errorf("save refreshed credentials: %w", err)
			}
			logger.Debug("refreshed credentials for %s", key)
			return refreshed, nil
		}
		if refreshErr != nil {
			logger.Warn("token refresh failed, re-authorizing: %v", refreshErr)
		} else {
			logger.Warn("refreshed grant does not cover requested scopes, re-authorizing")
		}
	}

	fresh, err := s.authorizer.Authorize(ctx, scopes)
	if err != nil {
		return nil, fmt.Errorf("authorize: %w", err)
	}
	now := time.Now()
	fresh.CreatedAt = now
	fresh.UpdatedAt = now

	if err := s.store.Save(ctx, key, *fresh); err != nil {
		return nil, fmt.Errorf("save credentials: %w", err)
	}

	logger.Debug("stored new credentials for %s", key)
	return fresh, nil
}

// Status reports the stored credentials for a scope set without touching
// the network. Returns (nil, nil) when nothing is stored.
func (s *AuthService) Status(ctx context.Context, scopes []string) (*domain.Credentials, error) {
	return s.store.Load(ctx, domain.ScopeKey(scopes))
}

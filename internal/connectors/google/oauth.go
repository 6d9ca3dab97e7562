package google

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"

	driving "github.com/ledgerworks/shoebox-cli/internal/adapters/driving/oauth"
	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
	"github.com/ledgerworks/shoebox-cli/internal/core/ports/driven"
	"github.com/ledgerworks/shoebox-cli/internal/logger"
)

// Ensure Flow implements the Authorizer port.
var _ driven.Authorizer = (*Flow)(nil)

// authTimeout is how long the interactive flow waits for the user to finish
// the consent screen.
const authTimeout = 5 * time.Minute

// Flow is the Google implementation of the interactive OAuth flow: it opens
// the consent page in a browser, receives the code on a localhost callback
// server, and exchanges it for tokens. The OAuth app identity comes from a
// desktop-app client secret JSON downloaded from the Cloud Console.
type Flow struct {
	clientSecretPath string

	// openBrowser is swappable for tests.
	openBrowser func(url string) error
}

// NewFlow creates a flow reading the OAuth client identity from
// clientSecretPath.
func NewFlow(clientSecretPath string) *Flow {
	return &Flow{
		clientSecretPath: clientSecretPath,
		openBrowser:      driving.OpenBrowser,
	}
}

// config parses the client secret file into an oauth2 config for scopes.
func (f *Flow) config(scopes []string) (*oauth2.Config, error) {
	b, err := os.ReadFile(f.clientSecretPath)
	if err != nil {
		return nil, fmt.Errorf("read client secret %s: %w", f.clientSecretPath, err)
	}
	cfg, err := googleoauth.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("parse client secret: %w", err)
	}
	return cfg, nil
}

// Authorize performs the interactive authorization handshake.
func (f *Flow) Authorize(ctx context.Context, scopes []string) (*domain.Credentials, error) {
	cfg, err := f.config(scopes)
	if err != nil {
		return nil, err
	}

	state, err := generateState()
	if err != nil {
		return nil, fmt.Errorf("generate state: %w", err)
	}

	server := driving.NewCallbackServer(0, state)
	if err := server.Start(); err != nil {
		return nil, fmt.Errorf("start callback server: %w", err)
	}
	defer server.Stop()

	cfg.RedirectURL = server.RedirectURI()

	verifier := oauth2.GenerateVerifier()
	authURL := cfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.S256ChallengeOption(verifier),
	)

	fmt.Fprintf(os.Stderr, "Opening browser for authorization. If it does not open, visit:\n%s\n", authURL)
	if err := f.openBrowser(authURL); err != nil {
		logger.Warn("could not open browser: %v", err)
	}

	code, err := server.WaitForCode(authTimeout)
	if err != nil {
		return nil, fmt.Errorf("authorization callback: %w", err)
	}

	token, err := cfg.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	return tokenToCredentials(token, scopes), nil
}

// Refresh exchanges the refresh token for a fresh access token.
func (f *Flow) Refresh(ctx context.Context, creds domain.Credentials) (*domain.Credentials, error) {
	if creds.RefreshToken == "" {
		return nil, domain.ErrTokenRefreshFailed
	}

	cfg, err := f.config(creds.Scopes)
	if err != nil {
		return nil, err
	}

	ts := cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: creds.RefreshToken})
	token, err := ts.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenRefreshFailed, err)
	}

	refreshed := tokenToCredentials(token, creds.Scopes)
	if refreshed.RefreshToken == "" {
		// Google only returns the refresh token on first consent.
		refreshed.RefreshToken = creds.RefreshToken
	}
	return refreshed, nil
}

// tokenToCredentials converts an oauth2 token into domain credentials,
// preferring the granted scopes reported in the token response over the
// requested ones.
func tokenToCredentials(token *oauth2.Token, requested []string) *domain.Credentials {
	scopes := requested
	if granted, ok := token.Extra("scope").(string); ok && granted != "" {
		scopes = strings.Fields(granted)
	}

	return &domain.Credentials{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
		Scopes:       scopes,
	}
}

// generateState creates a random state parameter for CSRF protection.
func generateState() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

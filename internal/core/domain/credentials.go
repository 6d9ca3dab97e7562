package domain

import (
	"strings"
	"time"
)

// Credentials stores the OAuth token bundle for one scope set.
// Credentials are persisted under a scope-derived key so that, for example,
// a read-only metadata grant and an upload grant live side by side.
type Credentials struct {
	// AccessToken is the bearer token for API access.
	AccessToken string `json:"access_token"`
	// RefreshToken is used to obtain new access tokens.
	RefreshToken string `json:"refresh_token,omitempty"`
	// TokenType is typically "Bearer".
	TokenType string `json:"token_type"`
	// Expiry is when the access token expires.
	Expiry time.Time `json:"expiry,omitempty"`
	// Scopes are the scopes actually granted by the provider.
	// These may be broader than the scopes that were requested.
	Scopes []string `json:"scopes,omitempty"`

	// CreatedAt is when the credentials were first obtained.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is when the credentials were last refreshed or replaced.
	UpdatedAt time.Time `json:"updated_at"`
}

// IsExpired returns true if the access token has expired.
// A zero expiry means the token does not expire.
func (c *Credentials) IsExpired() bool {
	if c.Expiry.IsZero() {
		return false
	}
	return time.Now().After(c.Expiry)
}

// IsAuthenticated returns true if the credentials contain an access token.
func (c *Credentials) IsAuthenticated() bool {
	return c != nil && c.AccessToken != ""
}

// HasRefreshToken returns true if a refresh token is available.
func (c *Credentials) HasRefreshToken() bool {
	return c != nil && c.RefreshToken != ""
}

// CoversScopes returns true if every requested scope is present in the
// granted scope set. Credentials with no recorded scopes are assumed to
// cover nothing except an empty request.
func (c *Credentials) CoversScopes(requested []string) bool {
	if len(requested) == 0 {
		return true
	}
	granted := make(map[string]struct{}, len(c.Scopes))
	for _, s := range c.Scopes {
		granted[s] = struct{}{}
	}
	for _, s := range requested {
		if _, ok := granted[s]; !ok {
			return false
		}
	}
	return true
}

// ScopeKey derives the storage key for a scope set from the trailing path
// segment of the first scope. For example the scope
// "https://www.googleapis.com/auth/drive.metadata.readonly" maps to the key
// "drive.metadata.readonly".
func ScopeKey(scopes []string) string {
	if len(scopes) == 0 {
		return "default"
	}
	first := scopes[0]
	if idx := strings.LastIndex(first, "/"); idx >= 0 {
		first = first[idx+1:]
	}
	if first == "" {
		return "default"
	}
	return first
}

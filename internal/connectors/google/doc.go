// Package google provides shared plumbing for the Google API connectors:
// service construction, OAuth flow, error classification and rate limiting.
// The Drive and Sheets clients live in subpackages.
package google

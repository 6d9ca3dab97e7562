package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgerworks/shoebox-cli/internal/connectors/google"
	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage Google authorization",
	Long: `Authorize shoebox against Google Drive and Sheets, or inspect the
stored grants.

Tokens are stored per scope set, so authorizing for uploads does not
grant spreadsheet access and vice versa.

Examples:
  # Authorize for uploads (Drive file creation + metadata reads)
  shoebox auth login

  # Authorize for spreadsheet writes
  shoebox auth login --scope sheets

  # Show what is currently authorized
  shoebox auth status`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Run the interactive authorization flow",
	RunE:  runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show stored authorization state",
	RunE:  runAuthStatus,
}

var authLoginScope string

func init() {
	authLoginCmd.Flags().StringVar(
		&authLoginScope, "scope", "upload", "Scope set to authorize (upload, sheets, readonly)")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

// scopeSet maps a scope set name to the Google scopes it stands for.
func scopeSet(name string) ([]string, error) {
	switch name {
	case "upload":
		return google.UploadScopes, nil
	case "sheets":
		return google.SheetScopes, nil
	case "readonly":
		return google.ReadOnlyScopes, nil
	default:
		return nil, fmt.Errorf("unknown scope set %q (expected upload, sheets or readonly)", name)
	}
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	scopes, err := scopeSet(authLoginScope)
	if err != nil {
		return err
	}

	creds, err := authService.Acquire(cmd.Context(), scopes)
	if err != nil {
		return fmt.Errorf("authorization failed: %w", err)
	}

	cmd.Printf("Authorized scope set %q (key %s).\n", authLoginScope, domain.ScopeKey(scopes))
	if !creds.Expiry.IsZero() {
		cmd.Printf("Access token valid until %s.\n", creds.Expiry.Local().Format(time.RFC1123))
	}
	if creds.HasRefreshToken() {
		cmd.Println("A refresh token is stored; future runs will not need the browser.")
	}
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	sets := []struct {
		name   string
		scopes []string
	}{
		{"upload", google.UploadScopes},
		{"sheets", google.SheetScopes},
		{"readonly", google.ReadOnlyScopes},
	}

	for _, set := range sets {
		creds, err := authService.Status(cmd.Context(), set.scopes)
		if err != nil {
			return fmt.Errorf("read stored credentials for %s: %w", set.name, err)
		}

		cmd.Printf("%-9s (key %s): ", set.name, domain.ScopeKey(set.scopes))
		switch {
		case !creds.IsAuthenticated():
			cmd.Println("not authorized")
		case creds.IsExpired() && creds.HasRefreshToken():
			cmd.Println("expired, will refresh on next use")
		case creds.IsExpired():
			cmd.Println("expired, run 'shoebox auth login' again")
		case creds.Expiry.IsZero():
			cmd.Println("valid, no expiry recorded")
		default:
			cmd.Printf("valid until %s\n", creds.Expiry.Local().Format(time.RFC1123))
		}
	}
	return nil
}

package google

import (
	"context"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
)

// Drive and Sheets scope sets used by the CLI commands.
var (
	// ReadOnlyScopes is enough for folder and document lookups.
	ReadOnlyScopes = []string{drive.DriveMetadataReadonlyScope}

	// UploadScopes covers creating files and folders the app owns.
	UploadScopes = []string{drive.DriveFileScope, drive.DriveMetadataReadonlyScope}

	// SheetScopes covers spreadsheet writes plus read access to Drive
	// metadata for link resolution.
	SheetScopes = []string{sheets.SpreadsheetsScope, drive.DriveReadonlyScope}
)

// NewTokenSource wraps stored credentials as an oauth2.TokenSource for use
// with option.WithTokenSource(). The token is static for the lifetime of one
// CLI invocation; the auth service refreshes before clients are built.
func NewTokenSource(creds *domain.Credentials) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: creds.AccessToken,
		TokenType:   creds.TokenType,
		Expiry:      creds.Expiry,
	})
}

// NewDriveService creates a Google Drive API service using the provided TokenSource.
func NewDriveService(ctx context.Context, ts oauth2.TokenSource) (*drive.Service, error) {
	return drive.NewService(ctx, option.WithTokenSource(ts))
}

// NewSheetsService creates a Google Sheets API service using the provided TokenSource.
func NewSheetsService(ctx context.Context, ts oauth2.TokenSource) (*sheets.Service, error) {
	return sheets.NewService(ctx, option.WithTokenSource(ts))
}

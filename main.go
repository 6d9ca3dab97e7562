// Command shoebox files receipts: it uploads them to Google Drive, makes
// them viewable by link, and logs the expense in a grouped Google Sheet.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ledgerworks/shoebox-cli/internal/adapters/driven/config/file"
	tokenfile "github.com/ledgerworks/shoebox-cli/internal/adapters/driven/tokenstore/file"
	"github.com/ledgerworks/shoebox-cli/internal/adapters/driven/storage/sqlite"
	"github.com/ledgerworks/shoebox-cli/internal/adapters/driving/cli"
	"github.com/ledgerworks/shoebox-cli/internal/connectors/google"
	"github.com/ledgerworks/shoebox-cli/internal/connectors/google/drive"
	gsheets "github.com/ledgerworks/shoebox-cli/internal/connectors/google/sheets"
	"github.com/ledgerworks/shoebox-cli/internal/core/ports/driven"
	"github.com/ledgerworks/shoebox-cli/internal/core/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// SHOEBOX_CONFIG_DIR overrides the default ~/.shoebox.
	baseDir := os.Getenv("SHOEBOX_CONFIG_DIR")

	configStore, err := file.NewConfigStore(baseDir)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	if baseDir == "" {
		baseDir = filepath.Dir(configStore.Path())
	}

	tokens, err := tokenfile.NewStore(filepath.Join(baseDir, "tokens"))
	if err != nil {
		return fmt.Errorf("open token store: %w", err)
	}

	secretPath := configStore.GetString("google.credentials_file")
	if secretPath == "" {
		secretPath = filepath.Join(baseDir, "credentials.json")
	}

	auth := services.NewAuthService(tokens, google.NewFlow(secretPath))
	dataDir := filepath.Join(baseDir, "data")

	cli.SetDependencies(cli.Dependencies{
		ConfigStore: configStore,
		AuthService: auth,
		NewStorage: func(ctx context.Context, scopes []string) (driven.Storage, error) {
			creds, err := auth.Acquire(ctx, scopes)
			if err != nil {
				return nil, err
			}
			svc, err := google.NewDriveService(ctx, google.NewTokenSource(creds))
			if err != nil {
				return nil, fmt.Errorf("create drive client: %w", err)
			}
			return drive.NewClient(svc), nil
		},
		NewSheetClient: func(ctx context.Context) (driven.SheetClient, error) {
			creds, err := auth.Acquire(ctx, google.SheetScopes)
			if err != nil {
				return nil, err
			}
			svc, err := google.NewSheetsService(ctx, google.NewTokenSource(creds))
			if err != nil {
				return nil, fmt.Errorf("create sheets client: %w", err)
			}
			return gsheets.NewClient(svc), nil
		},
		OpenHistory: func() (driven.HistoryStore, io.Closer, error) {
			store, err := sqlite.NewStore(dataDir)
			if err != nil {
				return nil, nil, fmt.Errorf("open filing history: %w", err)
			}
			return store.HistoryStore(), store, nil
		},
	})

	return cli.Execute()
}

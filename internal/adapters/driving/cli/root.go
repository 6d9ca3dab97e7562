// Package cli implements the shoebox command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/ledgerworks/shoebox-cli/internal/core/ports/driven"
	"github.com/ledgerworks/shoebox-cli/internal/core/services"
	"github.com/ledgerworks/shoebox-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "0.1.0"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "shoebox",
	Short: "File receipts to Drive and log them in a grouped spreadsheet",
	Long: `Shoebox uploads receipt files to Google Drive, makes them viewable by
link, and appends the expense under its group header in a Google Sheet,
with the receipt cell rendered as a rich-link chip.

Authorize once with 'shoebox auth login'; tokens are stored per scope
set and refreshed automatically.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

// Dependencies the commands run against. Wired by main, swapped by tests.
var (
	configStore driven.ConfigStore
	authService *services.AuthService

	// newStorage returns a Drive storage client authorized for scopes.
	newStorage func(ctx context.Context, scopes []string) (driven.Storage, error)

	// newSheetClient returns an authorized Sheets client.
	newSheetClient func(ctx context.Context) (driven.SheetClient, error)

	// openHistory opens the local filing history store. The closer must be
	// called when the command is done with it.
	openHistory func() (driven.HistoryStore, io.Closer, error)
)

// Dependencies bundles everything the commands need.
type Dependencies struct {
	ConfigStore    driven.ConfigStore
	AuthService    *services.AuthService
	NewStorage     func(ctx context.Context, scopes []string) (driven.Storage, error)
	NewSheetClient func(ctx context.Context) (driven.SheetClient, error)
	OpenHistory    func() (driven.HistoryStore, io.Closer, error)
}

// SetDependencies installs the wiring the commands run against.
func SetDependencies(deps Dependencies) {
	configStore = deps.ConfigStore
	authService = deps.AuthService
	newStorage = deps.NewStorage
	newSheetClient = deps.NewSheetClient
	openHistory = deps.OpenHistory
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// newLedgerService builds a ledger service over client, honouring the
// configured scan ceiling.
func newLedgerService(client driven.SheetClient) *services.LedgerService {
	ledger := services.NewLedgerService(client)
	if configStore != nil {
		if ceiling := configStore.GetInt("scan_ceiling"); ceiling > 0 {
			ledger.SetScanCeiling(int64(ceiling))
		}
	}
	return ledger
}

// configString returns the flag value, falling back to the config store.
func configString(flagValue, key string) string {
	if flagValue != "" {
		return flagValue
	}
	if configStore == nil {
		return ""
	}
	return configStore.GetString(key)
}

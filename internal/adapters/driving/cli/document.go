package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerworks/shoebox-cli/internal/connectors/google"
	"github.com/ledgerworks/shoebox-cli/internal/core/services"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Work with Drive documents",
}

var documentFindCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Locate documents by exact name",
	Long: `Search the whole drive for non-folder items with the exact given
name. Shortcuts are resolved to their targets and duplicates collapsed,
so each listed ID is directly usable with the Sheets and Drive APIs.

The name match is case-sensitive; it is the API's own exact-name query.`,
	Args: cobra.ExactArgs(1),
	RunE: runDocumentFind,
}

var documentFindIDOnly bool

func init() {
	documentFindCmd.Flags().BoolVar(
		&documentFindIDOnly, "id-only", false, "Print only document IDs")

	documentCmd.AddCommand(documentFindCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentFind(cmd *cobra.Command, args []string) error {
	if newStorage == nil {
		return errors.New("storage not configured")
	}

	name := args[0]
	ctx := cmd.Context()

	storage, err := newStorage(ctx, google.ReadOnlyScopes)
	if err != nil {
		return err
	}

	matches, err := services.NewDocumentService(storage).List(ctx, name)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return fmt.Errorf("no document named %q found", name)
	}

	// id-only output is a single pipeable value: the first match.
	if documentFindIDOnly {
		cmd.Println(matches[0].ID)
		return nil
	}

	for _, m := range matches {
		marker := ""
		if m.ViaShortcut {
			marker = "  (via shortcut)"
		}
		cmd.Printf("%s  %s%s\n", m.ID, m.Name, marker)
	}
	return nil
}

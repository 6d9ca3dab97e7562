package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ledgerworks/shoebox-cli/internal/connectors/google"
	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
	"github.com/ledgerworks/shoebox-cli/internal/core/services"
)

var folderCmd = &cobra.Command{
	Use:   "folder",
	Short: "Work with Drive folders",
}

var folderFindCmd = &cobra.Command{
	Use:   "find <path|name>",
	Short: "Resolve a folder path or search folders by name",
	Long: `Resolve a slash-delimited folder path from the Drive root, or search
the whole drive for folders with an exact name.

A path (anything containing a separator, or anything given with
--create) is walked segment by segment; matching ignores case and
collapses whitespace, and folder shortcuts are followed. A bare name
lists every folder with that exact name.

Examples:
  shoebox folder find "Finance/2025/Receipts"
  shoebox folder find "Finance/2025/Receipts" --create
  shoebox folder find Receipts`,
	Args: cobra.ExactArgs(1),
	RunE: runFolderFind,
}

var (
	folderFindCreate bool
	folderFindIDOnly bool
)

func init() {
	folderFindCmd.Flags().BoolVar(
		&folderFindCreate, "create", false, "Create missing path segments")
	folderFindCmd.Flags().BoolVar(
		&folderFindIDOnly, "id-only", false, "Print only the folder ID")

	folderCmd.AddCommand(folderFindCmd)
	rootCmd.AddCommand(folderCmd)
}

func runFolderFind(cmd *cobra.Command, args []string) error {
	if newStorage == nil {
		return errors.New("storage not configured")
	}

	arg := args[0]
	ctx := cmd.Context()

	scopes := google.ReadOnlyScopes
	if folderFindCreate {
		scopes = google.UploadScopes
	}
	storage, err := newStorage(ctx, scopes)
	if err != nil {
		return err
	}
	folders := services.NewFolderService(storage)

	// A separator makes it a path; --create does too, since a bare name
	// then means "ensure this folder exists under the root".
	isPath := strings.ContainsAny(arg, `/\`) || folderFindCreate
	if isPath {
		segments := domain.SplitFolderPath(arg)
		id, err := folders.Resolve(ctx, domain.RootFolderID, segments, folderFindCreate)
		if err != nil {
			var notFound *services.PathNotFoundError
			if errors.As(err, &notFound) {
				return fmt.Errorf("path %q not found (resolved up to %q); use --create to create the rest",
					arg, strings.Join(notFound.ResolvedPrefix, "/"))
			}
			return err
		}

		if folderFindIDOnly {
			cmd.Println(id)
			return nil
		}
		cmd.Printf("%s  %s\n", id, strings.Join(segments, "/"))
		return nil
	}

	matches, err := folders.Find(ctx, arg)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return fmt.Errorf("no folder named %q found", arg)
	}

	// id-only output is a single pipeable value: the first match.
	if folderFindIDOnly {
		cmd.Println(matches[0].ID)
		return nil
	}

	for _, m := range matches {
		cmd.Printf("%s  %s\n", m.ID, m.Name)
	}
	return nil
}

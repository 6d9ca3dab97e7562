package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerworks/shoebox-cli/internal/connectors/google"
	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
	"github.com/ledgerworks/shoebox-cli/internal/core/ports/driven"
	"github.com/ledgerworks/shoebox-cli/internal/core/services"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file> [folder]",
	Short: "Upload a file to Drive and make it viewable by link",
	Long: `Upload a local file to Drive, grant "anyone with the link can view",
and print the shareable link.

The optional folder argument is either a folder ID (used as-is) or a
slash-delimited path resolved from the Drive root. Without it the file
lands in the root.

Examples:
  shoebox upload receipt.pdf
  shoebox upload receipt.pdf "Finance/2025/Receipts" --create
  shoebox upload receipt.pdf 1a2B3c4D5e6F7g8H9i0JkLmNoPqRsTuV`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runUpload,
}

var uploadCreate bool

func init() {
	uploadCmd.Flags().BoolVar(
		&uploadCreate, "create", false, "Create missing folder path segments")

	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	if newStorage == nil {
		return errors.New("storage not configured")
	}

	localPath := args[0]
	if err := services.CheckLocalFile(localPath); err != nil {
		return fmt.Errorf("no such file: %s", localPath)
	}
	ctx := cmd.Context()

	storage, err := newStorage(ctx, google.UploadScopes)
	if err != nil {
		return err
	}

	var folderID string
	if len(args) == 2 {
		folderID, err = resolveFolderArg(cmd, args[1], storage)
		if err != nil {
			return err
		}
	}

	result, err := services.NewUploadService(storage).Upload(ctx, localPath, folderID)
	if err != nil {
		if errors.Is(err, domain.ErrLocalFileMissing) {
			return fmt.Errorf("no such file: %s", localPath)
		}
		return err
	}

	cmd.Printf("Uploaded %s\n", localPath)
	cmd.Printf("  File ID: %s\n", result.FileID)
	cmd.Printf("  Link:    %s\n", result.Link)
	return nil
}

// resolveFolderArg turns the folder argument into a folder ID: IDs pass
// through, paths are resolved (creating segments when --create is set).
func resolveFolderArg(cmd *cobra.Command, arg string, storage driven.Storage) (string, error) {
	if domain.LooksLikeDriveID(arg) {
		return arg, nil
	}

	segments := domain.SplitFolderPath(arg)
	id, err := services.NewFolderService(storage).Resolve(cmd.Context(), domain.RootFolderID, segments, uploadCreate)
	if err != nil {
		var notFound *services.PathNotFoundError
		if errors.As(err, &notFound) {
			return "", fmt.Errorf("folder path %q not found; use --create to create it", arg)
		}
		return "", err
	}
	return id, nil
}

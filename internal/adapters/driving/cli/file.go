package cli

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ledgerworks/shoebox-cli/internal/connectors/google"
	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
	"github.com/ledgerworks/shoebox-cli/internal/core/ports/driven"
	"github.com/ledgerworks/shoebox-cli/internal/core/services"
	"github.com/ledgerworks/shoebox-cli/internal/logger"
)

var fileCmd = &cobra.Command{
	Use:   "file <receipt>",
	Short: "Upload a receipt and log it in one step",
	Long: `The end-to-end flow: upload the receipt to the destination folder
(created if missing), make it viewable by link, append the expense row
under its group header with the link in the receipt column, and render
that cell as a rich-link chip. Each completed filing is recorded in the
local history.

Examples:
  shoebox file receipt.pdf --folder "Finance/2025/Receipts" \
    --group "Vendor X" --date 2025-03-07 --vendor "Vendor X" \
    --amount 12.50 --method card --description "Team lunch"`,
	Args: cobra.ExactArgs(1),
	RunE: runFile,
}

var (
	fileFolder      string
	fileSpreadsheet string
	fileSheet       string
	fileGroup       string
	fileDate        string
	fileVendor      string
	fileAmount      string
	fileMethod      string
	fileDescription string
)

func init() {
	flags := fileCmd.Flags()
	flags.StringVar(&fileFolder, "folder", "", "Destination folder path, created if missing (default Drive root)")
	flags.StringVar(&fileSpreadsheet, "spreadsheet", "", "Spreadsheet ID (default from config)")
	flags.StringVar(&fileSheet, "sheet", "", "Sheet name (default from config)")
	flags.StringVar(&fileGroup, "group", "", "Group header to append under (required)")
	flags.StringVar(&fileDate, "date", "", "Expense date")
	flags.StringVar(&fileVendor, "vendor", "", "Vendor name")
	flags.StringVar(&fileAmount, "amount", "", "Amount (validated as a decimal)")
	flags.StringVar(&fileMethod, "method", "", "Payment method")
	flags.StringVar(&fileDescription, "description", "", "Description")

	rootCmd.AddCommand(fileCmd)
}

func runFile(cmd *cobra.Command, args []string) error {
	if newStorage == nil || newSheetClient == nil {
		return errors.New("storage or sheets client not configured")
	}

	spreadsheetID := configString(fileSpreadsheet, "spreadsheet_id")
	sheetName := configString(fileSheet, "sheet_name")
	if spreadsheetID == "" {
		return errors.New("no spreadsheet ID: pass --spreadsheet or set 'spreadsheet_id' in config")
	}
	if sheetName == "" {
		return errors.New("no sheet name: pass --sheet or set 'sheet_name' in config")
	}
	if fileGroup == "" {
		return errors.New("--group is required")
	}
	if fileAmount != "" {
		if _, err := decimal.NewFromString(fileAmount); err != nil {
			return fmt.Errorf("invalid amount %q: %w", fileAmount, err)
		}
	}

	if err := services.CheckLocalFile(args[0]); err != nil {
		return fmt.Errorf("no such file: %s", args[0])
	}

	ctx := cmd.Context()

	storage, err := newStorage(ctx, google.UploadScopes)
	if err != nil {
		return err
	}
	sheetClient, err := newSheetClient(ctx)
	if err != nil {
		return err
	}

	var history driven.HistoryStore
	if openHistory != nil {
		store, closer, err := openHistory()
		if err != nil {
			logger.Warn("filing history unavailable: %v", err)
		} else {
			history = store
			defer closer.Close()
		}
	}

	filing := services.NewFilingService(
		services.NewFolderService(storage),
		services.NewUploadService(storage),
		newLedgerService(sheetClient),
		history,
	)

	result, err := filing.File(ctx, services.FilingRequest{
		LocalPath:     args[0],
		FolderPath:    fileFolder,
		SpreadsheetID: spreadsheetID,
		SheetName:     sheetName,
		GroupLabel:    fileGroup,
		Record: domain.RowRecord{
			Date:        fileDate,
			Vendor:      fileVendor,
			Amount:      fileAmount,
			Method:      fileMethod,
			Description: fileDescription,
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLocalFileMissing):
			return fmt.Errorf("no such file: %s", args[0])
		case errors.Is(err, domain.ErrGroupNotFound):
			return fmt.Errorf("group %q not found in column A of sheet %q", fileGroup, sheetName)
		}
		return err
	}

	cmd.Printf("Filed %s\n", args[0])
	cmd.Printf("  File ID: %s\n", result.FileID)
	cmd.Printf("  Link:    %s\n", result.Link)
	cmd.Printf("  Row:     %d (%s)\n", result.Append.Row, result.Append.UpdatedRange)
	return nil
}

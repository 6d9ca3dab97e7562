package cli

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Append expense rows to the grouped spreadsheet",
}

var expenseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append one expense row under its group header",
	Long: `Append a six-column expense row (date, vendor, amount, method,
receipt, description) directly below the existing rows of the named
group. The group header is found by scanning column A; matching trims
whitespace and ignores case.

The spreadsheet ID and sheet name fall back to the configured
'spreadsheet_id' and 'sheet_name' values when the flags are omitted.

Examples:
  shoebox expense add --group "Vendor X" --date 2025-03-07 \
    --vendor "Vendor X" --amount 12.50 --method card \
    --description "Team lunch"

  # With an existing receipt link rendered as a chip
  shoebox expense add --group "Vendor X" --amount 12.50 \
    --receipt "https://drive.google.com/file/d/abc/view" --chip`,
	RunE: runExpenseAdd,
}

var (
	expenseSpreadsheet string
	expenseSheet       string
	expenseGroup       string
	expenseDate        string
	expenseVendor      string
	expenseAmount      string
	expenseMethod      string
	expenseReceipt     string
	expenseDescription string
	expenseChip        bool
)

func init() {
	flags := expenseAddCmd.Flags()
	flags.StringVar(&expenseSpreadsheet, "spreadsheet", "", "Spreadsheet ID (default from config)")
	flags.StringVar(&expenseSheet, "sheet", "", "Sheet name (default from config)")
	flags.StringVar(&expenseGroup, "group", "", "Group header to append under (required)")
	flags.StringVar(&expenseDate, "date", "", "Expense date")
	flags.StringVar(&expenseVendor, "vendor", "", "Vendor name")
	flags.StringVar(&expenseAmount, "amount", "", "Amount (validated as a decimal)")
	flags.StringVar(&expenseMethod, "method", "", "Payment method")
	flags.StringVar(&expenseReceipt, "receipt", "", "Receipt link")
	flags.StringVar(&expenseDescription, "description", "", "Description")
	flags.BoolVar(&expenseChip, "chip", false, "Render the receipt cell as a rich-link chip")

	expenseCmd.AddCommand(expenseAddCmd)
	rootCmd.AddCommand(expenseCmd)
}

func runExpenseAdd(cmd *cobra.Command, _ []string) error {
	if newSheetClient == nil {
		return errors.New("sheets client not configured")
	}

	spreadsheetID := configString(expenseSpreadsheet, "spreadsheet_id")
	sheetName := configString(expenseSheet, "sheet_name")
	if spreadsheetID == "" {
		return errors.New("no spreadsheet ID: pass --spreadsheet or set 'spreadsheet_id' in config")
	}
	if sheetName == "" {
		return errors.New("no sheet name: pass --sheet or set 'sheet_name' in config")
	}
	if expenseGroup == "" {
		return errors.New("--group is required")
	}
	if expenseChip && expenseReceipt == "" {
		return errors.New("--chip requires --receipt")
	}

	// The amount is written verbatim, but reject obvious typos up front.
	if expenseAmount != "" {
		if _, err := decimal.NewFromString(expenseAmount); err != nil {
			return fmt.Errorf("invalid amount %q: %w", expenseAmount, err)
		}
	}

	record := domain.RowRecord{
		Date:        expenseDate,
		Vendor:      expenseVendor,
		Amount:      expenseAmount,
		Method:      expenseMethod,
		Receipt:     expenseReceipt,
		Description: expenseDescription,
	}

	ctx := cmd.Context()
	client, err := newSheetClient(ctx)
	if err != nil {
		return err
	}
	ledger := newLedgerService(client)

	var result *domain.AppendResult
	if expenseChip {
		result, err = ledger.AppendWithChip(ctx, spreadsheetID, sheetName, expenseGroup, record, expenseReceipt)
	} else {
		result, err = ledger.Append(ctx, spreadsheetID, sheetName, expenseGroup, record)
	}
	if err != nil {
		if errors.Is(err, domain.ErrGroupNotFound) {
			return fmt.Errorf("group %q not found in column A of sheet %q", expenseGroup, sheetName)
		}
		return err
	}

	cmd.Printf("Appended row %d (%s)\n", result.Row, result.UpdatedRange)
	if result.ChipSet {
		cmd.Println("Receipt cell rendered as a link chip.")
	}
	return nil
}

package driven

import "context"

// SheetClient is the tabular-spreadsheet port backing the grouped-row
// appender. The Sheets v4 connector implements it.
type SheetClient interface {
	// SheetID resolves a sheet title to its numeric sheet ID.
	// Returns domain.ErrSheetNotFound when no sheet carries the title.
	SheetID(ctx context.Context, spreadsheetID, title string) (int64, error)

	// ColumnValues returns the values of column A for rows 1..maxRows of the
	// named sheet. Trailing empty rows may be omitted, matching the API.
	ColumnValues(ctx context.Context, spreadsheetID, sheetName string, maxRows int64) ([]string, error)

	// AppendRow appends values to the table anchored at anchorRange using the
	// service's own contiguous-block placement (insert-rows, user-entered
	// input). It returns the updated A1 range and the cell count.
	AppendRow(ctx context.Context, spreadsheetID, anchorRange string, values []any) (updatedRange string, updatedCells int64, err error)

	// SetLinkChip overwrites one cell (0-based grid indices) with a
	// rich-link chip referencing url.
	SetLinkChip(ctx context.Context, spreadsheetID string, sheetID, rowIndex, colIndex int64, url string) error
}

// Package sheets implements the spreadsheet port on the Google Sheets v4
// API: sheet lookup, column scans, grouped appends and rich-link chips.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"

	"github.com/ledgerworks/shoebox-cli/internal/connectors/google"
	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
	"github.com/ledgerworks/shoebox-cli/internal/core/ports/driven"
)

// Ensure Client implements the SheetClient port.
var _ driven.SheetClient = (*Client)(nil)

// Client wraps a Sheets service with rate limiting.
type Client struct {
	svc     *sheets.Service
	limiter *google.RateLimiter
}

// NewClient creates a Sheets client.
func NewClient(svc *sheets.Service) *Client {
	return &Client{
		svc:     svc,
		limiter: google.NewRateLimiter(google.ServiceSheets),
	}
}

// SheetID resolves a sheet title to its numeric sheet ID.
func (c *Client) SheetID(ctx context.Context, spreadsheetID, title string) (int64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	ss, err := c.svc.Spreadsheets.Get(spreadsheetID).
		Fields("sheets(properties(sheetId,title))").
		Context(ctx).Do()
	if err != nil {
		return 0, google.WrapError(err)
	}

	for _, sheet := range ss.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == title {
			return sheet.Properties.SheetId, nil
		}
	}
	return 0, fmt.Errorf("sheet %q in spreadsheet %s: %w", title, spreadsheetID, domain.ErrSheetNotFound)
}

// ColumnValues returns the values of column A for rows 1..maxRows of the
// named sheet. The API omits trailing empty rows.
func (c *Client) ColumnValues(ctx context.Context, spreadsheetID, sheetName string, maxRows int64) ([]string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	readRange := fmt.Sprintf("%s!A1:A%d", sheetName, maxRows)
	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).
		Context(ctx).Do()
	if err != nil {
		return nil, google.WrapError(err)
	}

	values := make([]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cell := ""
		if len(row) > 0 {
			cell = fmt.Sprint(row[0])
		}
		values = append(values, cell)
	}
	return values, nil
}

// AppendRow appends values to the table anchored at anchorRange. The API is
// configured to insert a new row and parse input as user-entered, so its own
// "first empty row within the contiguous block below the anchor" logic picks
// the final row.
func (c *Client) AppendRow(ctx context.Context, spreadsheetID, anchorRange string, values []any) (string, int64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", 0, err
	}

	body := &sheets.ValueRange{Values: [][]any{values}}
	resp, err := c.svc.Spreadsheets.Values.Append(spreadsheetID, anchorRange, body).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return "", 0, google.WrapError(err)
	}

	if resp.Updates == nil {
		return "", 0, fmt.Errorf("append response carried no update summary")
	}
	return resp.Updates.UpdatedRange, resp.Updates.UpdatedCells, nil
}

// SetLinkChip overwrites one cell with a rich-link chip referencing url.
// Row and column are 0-based grid indices.
func (c *Client) SetLinkChip(ctx context.Context, spreadsheetID string, sheetID, rowIndex, colIndex int64, url string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				UpdateCells: &sheets.UpdateCellsRequest{
					Range: &sheets.GridRange{
						SheetId:          sheetID,
						StartRowIndex:    rowIndex,
						EndRowIndex:      rowIndex + 1,
						StartColumnIndex: colIndex,
						EndColumnIndex:   colIndex + 1,
					},
					Rows: []*sheets.RowData{
						{
							Values: []*sheets.CellData{
								{
									// "@" is the chip placeholder character.
									UserEnteredValue: &sheets.ExtendedValue{StringValue: stringPtr("@")},
									ChipRuns: []*sheets.ChipRun{
										{
											Chip: &sheets.Chip{
												RichLinkProperties: &sheets.RichLinkProperties{
													Uri: url,
												},
											},
										},
									},
								},
							},
						},
					},
					Fields: "userEnteredValue,chipRuns",
				},
			},
		},
	}

	_, err := c.svc.Spreadsheets.BatchUpdate(spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return google.WrapError(err)
	}
	return nil
}

func stringPtr(s string) *string {
	return &s
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
	"github.com/ledgerworks/shoebox-cli/internal/core/ports/driven"
	"github.com/ledgerworks/shoebox-cli/internal/logger"
)

// DefaultScanCeiling is how many rows of column A are scanned for the group
// header before giving up.
const DefaultScanCeiling = 1000

// LedgerService appends expense rows beneath a grouped table's header row.
// The table's extent is never computed here: the append call supplies the
// header row as the anchor and the Sheets API's own contiguous-block logic
// picks the first empty row below it.
type LedgerService struct {
	sheets      driven.SheetClient
	scanCeiling int64
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(sheets driven.SheetClient) *LedgerService {
	return &LedgerService{
		sheets:      sheets,
		scanCeiling: DefaultScanCeiling,
	}
}

// SetScanCeiling overrides the header scan ceiling. Values below 1 keep the
// current ceiling.
func (s *LedgerService) SetScanCeiling(n int64) {
	if n >= 1 {
		s.scanCeiling = n
	}
}

// FindHeaderRow scans column A of the sheet from row 1 up to the scan
// ceiling and returns the 1-based row number of the first cell whose
// trimmed, case-insensitive text equals groupLabel. A label not found within
// the ceiling returns domain.ErrGroupNotFound.
func (s *LedgerService) FindHeaderRow(ctx context.Context, spreadsheetID, sheetName, groupLabel string) (int64, error) {
	values, err := s.sheets.ColumnValues(ctx, spreadsheetID, sheetName, s.scanCeiling)
	if err != nil {
		return 0, fmt.Errorf("scan column A: %w", err)
	}

	want := strings.ToLower(strings.TrimSpace(groupLabel))
	for i, cell := range values {
		if cell == "" {
			continue
		}
		if strings.ToLower(strings.TrimSpace(cell)) == want {
			return int64(i + 1), nil
		}
	}

	return 0, fmt.Errorf("label %q in column A of %q: %w", groupLabel, sheetName, domain.ErrGroupNotFound)
}

// Append writes record beneath the table whose header matches groupLabel.
// The six fields go out positionally and verbatim; the API's USER_ENTERED
// parsing is the only type coercion that happens.
func (s *LedgerService) Append(ctx context.Context, spreadsheetID, sheetName, groupLabel string, record domain.RowRecord) (*domain.AppendResult, error) {
	anchor, err := s.FindHeaderRow(ctx, spreadsheetID, sheetName, groupLabel)
	if err != nil {
		return nil, err
	}

	anchorRange := fmt.Sprintf("%s!A%d:F%d", sheetName, anchor, anchor)
	logger.Debug("appending under header row %d (range %s)", anchor, anchorRange)

	updatedRange, cells, err := s.sheets.AppendRow(ctx, spreadsheetID, anchorRange, record.Values())
	if err != nil {
		return nil, fmt.Errorf("append row: %w", err)
	}

	row, err := RowFromRange(updatedRange)
	if err != nil {
		return nil, err
	}

	return &domain.AppendResult{
		UpdatedRange: updatedRange,
		Row:          row,
		UpdatedCells: cells,
	}, nil
}

// AppendWithChip appends record like Append, then overwrites the receipt
// cell (column index domain.ReceiptColumn) of the appended row with a
// rich-link chip referencing chipURL, replacing whatever the append wrote
// there.
func (s *LedgerService) AppendWithChip(ctx context.Context, spreadsheetID, sheetName, groupLabel string, record domain.RowRecord, chipURL string) (*domain.AppendResult, error) {
	result, err := s.Append(ctx, spreadsheetID, sheetName, groupLabel, record)
	if err != nil {
		return nil, err
	}

	sheetID, err := s.sheets.SheetID(ctx, spreadsheetID, sheetName)
	if err != nil {
		return nil, fmt.Errorf("resolve sheet id: %w", err)
	}

	// GridRange indices are 0-based.
	if err := s.sheets.SetLinkChip(ctx, spreadsheetID, sheetID, result.Row-1, domain.ReceiptColumn, chipURL); err != nil {
		return nil, fmt.Errorf("set link chip: %w", err)
	}

	result.ChipSet = true
	return result, nil
}

// RowFromRange recovers the 1-based start row from an A1 updated-range
// descriptor such as "'2025'!A47:F47".
func RowFromRange(updatedRange string) (int64, error) {
	a1 := updatedRange
	if idx := strings.LastIndex(a1, "!"); idx >= 0 {
		a1 = a1[idx+1:]
	}
	if idx := strings.Index(a1, ":"); idx >= 0 {
		a1 = a1[:idx]
	}

	var row int64
	for _, ch := range a1 {
		if ch >= '0' && ch <= '9' {
			row = row*10 + int64(ch-'0')
		}
	}
	if row == 0 {
		return 0, fmt.Errorf("%w: no row number in range %q", domain.ErrInvalidInput, updatedRange)
	}
	return row, nil
}

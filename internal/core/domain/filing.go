package domain

import "time"

// AppendResult describes where a grouped-row append landed.
type AppendResult struct {
	// UpdatedRange is the A1 range reported by the API, e.g. "'2025'!A47:F47".
	UpdatedRange string
	// Row is the 1-based row number parsed from UpdatedRange.
	Row int64
	// UpdatedCells is the number of cells written.
	UpdatedCells int64
	// ChipSet reports whether the receipt cell was overwritten with a
	// rich-link chip after the append.
	ChipSet bool
}

// FilingEntry records one completed receipt filing in the local history.
type FilingEntry struct {
	// ID is the unique identifier (UUID).
	ID string
	// LocalPath is the path of the uploaded file on this machine.
	LocalPath string
	// FileID is the Drive identifier of the uploaded file.
	FileID string
	// Link is the shareable view link.
	Link string
	// SpreadsheetID and SheetName identify the destination table.
	SpreadsheetID string
	SheetName     string
	// GroupLabel is the header the row was appended under.
	GroupLabel string
	// AppendedRange is the A1 range the row landed in.
	AppendedRange string
	// FiledAt is when the filing completed.
	FiledAt time.Time
}

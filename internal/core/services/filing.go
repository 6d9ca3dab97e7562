package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
	"github.com/ledgerworks/shoebox-cli/internal/core/ports/driven"
	"github.com/ledgerworks/shoebox-cli/internal/logger"
)

// FilingRequest describes one end-to-end receipt filing.
type FilingRequest struct {
	// LocalPath is the receipt file on this machine.
	LocalPath string
	// FolderPath is the destination folder path in Drive, created if missing.
	// When empty the file lands in the Drive root.
	FolderPath string
	// SpreadsheetID, SheetName and GroupLabel address the grouped table.
	SpreadsheetID string
	SheetName     string
	GroupLabel    string
	// Record is the row to append. Its Receipt field is overwritten with the
	// uploaded file's share link.
	Record domain.RowRecord
}

// FilingResult is the outcome of a completed filing.
type FilingResult struct {
	FolderID string
	FileID   string
	Link     string
	Append   domain.AppendResult
}

// FilingService composes the folder resolver, uploader and ledger appender
// into the full receipt-filing flow, and records each completed filing in
// the local history. History write failures do not undo the filing.
type FilingService struct {
	folders *FolderService
	uploads *UploadService
	ledger  *LedgerService
	history driven.HistoryStore
}

// NewFilingService creates a new filing service. The history store may be
// nil, in which case filings are not recorded locally.
func NewFilingService(folders *FolderService, uploads *UploadService, ledger *LedgerService, history driven.HistoryStore) *FilingService {
	return &FilingService{
		folders: folders,
		uploads: uploads,
		ledger:  ledger,
		history: history,
	}
}

// File resolves (creating if needed) the destination folder, uploads the
// receipt, appends the row with the share link under the group header, and
// injects the rich-link chip into the receipt cell.
func (s *FilingService) File(ctx context.Context, req FilingRequest) (*FilingResult, error) {
	// A missing receipt must fail before the folder walk so it cannot
	// create path segments on Drive as a side effect.
	if err := CheckLocalFile(req.LocalPath); err != nil {
		return nil, err
	}

	var folderID string
	if req.FolderPath != "" {
		segments := domain.SplitFolderPath(req.FolderPath)
		id, err := s.folders.Resolve(ctx, domain.RootFolderID, segments, true)
		if err != nil {
			return nil, fmt.Errorf("resolve folder path: %w", err)
		}
		folderID = id
	}

	uploaded, err := s.uploads.Upload(ctx, req.LocalPath, folderID)
	if err != nil {
		return nil, err
	}

	record := req.Record
	record.Receipt = uploaded.Link

	appended, err := s.ledger.AppendWithChip(ctx, req.SpreadsheetID, req.SheetName, req.GroupLabel, record, uploaded.Link)
	if err != nil {
		return nil, err
	}

	result := &FilingResult{
		FolderID: folderID,
		FileID:   uploaded.FileID,
		Link:     uploaded.Link,
		Append:   *appended,
	}

	if s.history != nil {
		entry := domain.FilingEntry{
			ID:            uuid.NewString(),
			LocalPath:     req.LocalPath,
			FileID:        uploaded.FileID,
			Link:          uploaded.Link,
			SpreadsheetID: req.SpreadsheetID,
			SheetName:     req.SheetName,
			GroupLabel:    req.GroupLabel,
			AppendedRange: appended.UpdatedRange,
			FiledAt:       time.Now(),
		}
		if err := s.history.Record(ctx, entry); err != nil {
			logger.Warn("record filing history: %v", err)
		}
	}

	return result, nil
}

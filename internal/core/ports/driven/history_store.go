package driven

import (
	"context"

	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
)

// HistoryStore persists the local filing history.
type HistoryStore interface {
	// Record stores one completed filing.
	Record(ctx context.Context, entry domain.FilingEntry) error

	// List returns filings in reverse chronological order, at most limit
	// entries (all entries when limit <= 0).
	List(ctx context.Context, limit int) ([]domain.FilingEntry, error)
}

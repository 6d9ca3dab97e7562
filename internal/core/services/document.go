package services

import (
	"context"
	"fmt"

	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
	"github.com/ledgerworks/shoebox-cli/internal/core/ports/driven"
)

// DocumentMatch is one located document, after shortcut resolution.
type DocumentMatch struct {
	// ID is the effective identifier (the shortcut target for shortcuts).
	ID string
	// Name is the display name of the listed entry.
	Name string
	// ViaShortcut reports whether the entry was a shortcut.
	ViaShortcut bool
}

// DocumentService locates non-folder documents by display name.
type DocumentService struct {
	storage driven.Storage
}

// NewDocumentService creates a new document service.
func NewDocumentService(storage driven.Storage) *DocumentService {
	return &DocumentService{storage: storage}
}

// Locate returns the effective identifier of the first document named name.
// An empty result set returns domain.ErrNotFound; the caller decides whether
// absence is fatal.
func (s *DocumentService) Locate(ctx context.Context, name string) (string, error) {
	matches, err := s.List(ctx, name)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("document %q: %w", name, domain.ErrNotFound)
	}
	return matches[0].ID, nil
}

// List returns all documents named name, shortcuts resolved one hop and
// deduplicated by effective identifier in first-seen order. Used by the CLI
// for diagnostic display.
func (s *DocumentService) List(ctx context.Context, name string) ([]DocumentMatch, error) {
	nodes, err := s.storage.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("search documents: %w", err)
	}

	seen := make(map[string]struct{}, len(nodes))
	matches := make([]DocumentMatch, 0, len(nodes))
	for _, n := range nodes {
		id := n.EffectiveID()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		matches = append(matches, DocumentMatch{
			ID:          id,
			Name:        n.Name,
			ViaShortcut: n.Kind == domain.KindShortcut,
		})
	}
	return matches, nil
}

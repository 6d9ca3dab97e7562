package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
	"github.com/ledgerworks/shoebox-cli/internal/core/ports/driven"
	"github.com/ledgerworks/shoebox-cli/internal/logger"
)

// PathNotFoundError reports a folder path that could not be fully resolved.
// ResolvedPrefix holds the segments that did resolve, in order.
type PathNotFoundError struct {
	Path           []string
	ResolvedPrefix []string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("folder path not found at %q (resolved prefix %q)",
		strings.Join(e.Path, "/"), strings.Join(e.ResolvedPrefix, "/"))
}

// Unwrap lets callers test with errors.Is(err, domain.ErrNotFound).
func (e *PathNotFoundError) Unwrap() error {
	return domain.ErrNotFound
}

// FolderService resolves slash-delimited folder paths against Drive,
// optionally creating missing segments.
type FolderService struct {
	storage driven.Storage
}

// NewFolderService creates a new folder service.
func NewFolderService(storage driven.Storage) *FolderService {
	return &FolderService{storage: storage}
}

// Resolve walks segments top-down starting at rootID and returns the final
// folder's identifier. Matching is case-insensitive with whitespace
// collapsed; shortcuts are dereferenced one hop and adopted only when the
// target is a folder. When createMissing is set, unmatched segments are
// created with their literal names; otherwise a PathNotFoundError reporting
// the resolved prefix is returned.
//
// Matched folders are never mutated; creation only appends the missing
// suffix. When several children normalize to the same name, the first in
// API order wins.
func (s *FolderService) Resolve(ctx context.Context, rootID string, segments []string, createMissing bool) (string, error) {
	if rootID == "" {
		rootID = domain.RootFolderID
	}
	if len(segments) == 0 {
		return "", fmt.Errorf("%w: empty folder path", domain.ErrInvalidInput)
	}

	parentID := rootID
	for i, segment := range segments {
		matchID, err := s.findChildFolder(ctx, parentID, segment)
		if err != nil {
			return "", err
		}

		if matchID == "" {
			if !createMissing {
				return "", &PathNotFoundError{
					Path:           segments,
					ResolvedPrefix: segments[:i],
				}
			}
			created, err := s.storage.CreateFolder(ctx, segment, parentID)
			if err != nil {
				return "", fmt.Errorf("create folder %q: %w", segment, err)
			}
			logger.Debug("created folder %q under %s -> %s", segment, parentID, created.ID)
			matchID = created.ID
		}

		parentID = matchID
	}

	return parentID, nil
}

// findChildFolder returns the identifier of the first direct child of
// parentID whose normalized name matches segment and whose effective kind is
// folder, or "" when there is no such child.
func (s *FolderService) findChildFolder(ctx context.Context, parentID, segment string) (string, error) {
	children, err := s.storage.ListFolderChildren(ctx, parentID)
	if err != nil {
		return "", fmt.Errorf("list children of %s: %w", parentID, err)
	}

	want := domain.NormalizeName(segment)
	for _, child := range children {
		if domain.NormalizeName(child.Name) != want {
			continue
		}

		switch child.Kind {
		case domain.KindFolder:
			return child.ID, nil
		case domain.KindShortcut:
			if child.TargetID == "" {
				continue
			}
			target, err := s.storage.GetNode(ctx, child.TargetID)
			if err != nil {
				return "", fmt.Errorf("resolve shortcut %s: %w", child.ID, err)
			}
			if target.Kind == domain.KindFolder {
				return target.ID, nil
			}
			// Shortcut to a non-folder: keep looking.
		}
	}

	return "", nil
}

// FolderMatch is one result of a global folder search.
type FolderMatch struct {
	ID   string
	Name string
}

// Find searches the whole drive for folders named name (exact, API-side
// match) and returns all hits in API order. Used by the CLI's single-name
// lookup mode.
func (s *FolderService) Find(ctx context.Context, name string) ([]FolderMatch, error) {
	nodes, err := s.storage.FindFoldersByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("search folders: %w", err)
	}
	matches := make([]FolderMatch, 0, len(nodes))
	for _, n := range nodes {
		matches = append(matches, FolderMatch{ID: n.ID, Name: n.Name})
	}
	return matches, nil
}

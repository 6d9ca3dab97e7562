package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
	"github.com/ledgerworks/shoebox-cli/internal/core/ports/driven"
	"github.com/ledgerworks/shoebox-cli/internal/logger"
)

// UploadResult describes a completed upload.
type UploadResult struct {
	// FileID is the Drive identifier of the created file.
	FileID string
	// Link is the shareable "anyone with the link can view" URL.
	Link string
}

// UploadService uploads local files to Drive and makes them link-viewable.
type UploadService struct {
	storage driven.Storage
}

// NewUploadService creates a new upload service.
func NewUploadService(storage driven.Storage) *UploadService {
	return &UploadService{storage: storage}
}

// CheckLocalFile verifies localPath names a readable regular file, wrapping
// domain.ErrLocalFileMissing otherwise. Callers run it before touching the
// network so a typo'ed filename has no remote side effects.
func CheckLocalFile(localPath string) error {
	info, err := os.Stat(localPath)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", domain.ErrLocalFileMissing, localPath)
	}
	return nil
}

// Upload creates a Drive file named after localPath's base name, parented
// under folderID when non-empty, grants public read-only access, and returns
// the shareable link. A missing local file fails before any network call.
//
// There is no rollback: if the permission grant fails after the file was
// created, the created file stays.
func (s *UploadService) Upload(ctx context.Context, localPath, folderID string) (*UploadResult, error) {
	if err := CheckLocalFile(localPath); err != nil {
		return nil, err
	}

	f, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", localPath, err)
	}
	defer f.Close()

	name := filepath.Base(localPath)
	logger.Debug("uploading %q (folder %q)", name, folderID)

	node, err := s.storage.Upload(ctx, name, folderID, f)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", name, err)
	}

	if err := s.storage.ShareWithLink(ctx, node.ID); err != nil {
		return nil, fmt.Errorf("share %s: %w", node.ID, err)
	}

	link := node.WebViewLink
	if link == "" {
		link = ViewLink(node.ID)
	}

	return &UploadResult{FileID: node.ID, Link: link}, nil
}

// ViewLink constructs the deterministic viewer link for a Drive file ID,
// used when the API response does not carry one.
func ViewLink(fileID string) string {
	return fmt.Sprintf("https://drive.google.com/file/d/%s/view?usp=sharing", fileID)
}

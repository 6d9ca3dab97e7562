package driven

import (
	"context"
	"io"

	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
)

// Storage is the document-storage port backing the folder resolver, the
// document locator and the uploader. The Google Drive connector implements
// it; service tests use an in-memory fake.
type Storage interface {
	// ListFolderChildren lists the direct children of parentID that are
	// folders or shortcuts, excluding trashed items.
	ListFolderChildren(ctx context.Context, parentID string) ([]domain.RemoteNode, error)

	// GetNode fetches a single node by identifier.
	GetNode(ctx context.Context, id string) (*domain.RemoteNode, error)

	// CreateFolder creates a folder named name under parentID and returns it.
	// The name is passed through verbatim, not normalized.
	CreateFolder(ctx context.Context, name, parentID string) (*domain.RemoteNode, error)

	// FindByName lists non-folder, non-trashed items whose name equals name
	// exactly (case-sensitive), including shortcut target details.
	FindByName(ctx context.Context, name string) ([]domain.RemoteNode, error)

	// FindFoldersByName lists non-trashed folders whose name equals name
	// exactly (case-sensitive), anywhere in the drive.
	FindFoldersByName(ctx context.Context, name string) ([]domain.RemoteNode, error)

	// Upload creates a file named name under parentID (or in the root when
	// parentID is empty) with the given content and returns the created node.
	Upload(ctx context.Context, name, parentID string, content io.Reader) (*domain.RemoteNode, error)

	// ShareWithLink grants "anyone with the link, reader" on the item.
	ShareWithLink(ctx context.Context, id string) error
}

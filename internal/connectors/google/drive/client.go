// Package drive implements the document-storage port on the Google Drive
// v3 API: folder listing, shortcut resolution, name search, upload and
// link sharing.
package drive

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/ledgerworks/shoebox-cli/internal/connectors/google"
	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
	"github.com/ledgerworks/shoebox-cli/internal/core/ports/driven"
)

// Drive MIME types the resolver and locator care about.
const (
	MimeTypeFolder   = "application/vnd.google-apps.folder"
	MimeTypeShortcut = "application/vnd.google-apps.shortcut"
)

// nodeFields is the field projection requested on list and get calls.
const nodeFields = "id, name, mimeType, parents, trashed, webViewLink, shortcutDetails(targetId)"

// defaultPageSize is the page size for list queries.
const defaultPageSize = 100

// Ensure Client implements the Storage port.
var _ driven.Storage = (*Client)(nil)

// Client wraps a Drive service with rate limiting and node conversion.
type Client struct {
	svc     *drive.Service
	limiter *google.RateLimiter
}

// NewClient creates a Drive storage client.
func NewClient(svc *drive.Service) *Client {
	return &Client{
		svc:     svc,
		limiter: google.NewRateLimiter(google.ServiceDrive),
	}
}

// ListFolderChildren lists the direct children of parentID that are folders
// or shortcuts, excluding trashed items. Pagination is followed to the end.
func (c *Client) ListFolderChildren(ctx context.Context, parentID string) ([]domain.RemoteNode, error) {
	query := fmt.Sprintf(
		"'%s' in parents and trashed=false and (mimeType='%s' or mimeType='%s')",
		EscapeQueryTerm(parentID), MimeTypeFolder, MimeTypeShortcut,
	)
	return c.list(ctx, query)
}

// FindByName lists non-folder, non-trashed items named name exactly.
func (c *Client) FindByName(ctx context.Context, name string) ([]domain.RemoteNode, error) {
	query := fmt.Sprintf(
		"name = '%s' and mimeType != '%s' and trashed = false",
		EscapeQueryTerm(name), MimeTypeFolder,
	)
	return c.list(ctx, query)
}

// FindFoldersByName lists non-trashed folders named name exactly, anywhere
// in the drive.
func (c *Client) FindFoldersByName(ctx context.Context, name string) ([]domain.RemoteNode, error) {
	query := fmt.Sprintf(
		"name = '%s' and mimeType = '%s' and trashed = false",
		EscapeQueryTerm(name), MimeTypeFolder,
	)
	return c.list(ctx, query)
}

// list runs a files.list query and converts the results.
func (c *Client) list(ctx context.Context, query string) ([]domain.RemoteNode, error) {
	var nodes []domain.RemoteNode

	call := c.svc.Files.List().
		Q(query).
		Spaces("drive").
		Corpora("allDrives").
		IncludeItemsFromAllDrives(true).
		SupportsAllDrives(true).
		Fields(googleapi.Field(fmt.Sprintf("nextPageToken, files(%s)", nodeFields))).
		PageSize(defaultPageSize)

	pageToken := ""
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		resp, err := call.PageToken(pageToken).Context(ctx).Do()
		if err != nil {
			return nil, google.WrapError(err)
		}
		for _, f := range resp.Files {
			nodes = append(nodes, toNode(f))
		}
		if resp.NextPageToken == "" {
			return nodes, nil
		}
		pageToken = resp.NextPageToken
	}
}

// GetNode fetches a single node by identifier.
func (c *Client) GetNode(ctx context.Context, id string) (*domain.RemoteNode, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	f, err := c.svc.Files.Get(id).
		SupportsAllDrives(true).
		Fields(nodeFields).
		Context(ctx).Do()
	if err != nil {
		return nil, google.WrapError(err)
	}

	node := toNode(f)
	return &node, nil
}

// CreateFolder creates a folder named name under parentID. The name goes
// out verbatim, not normalized.
func (c *Client) CreateFolder(ctx context.Context, name, parentID string) (*domain.RemoteNode, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	meta := &drive.File{
		Name:     name,
		MimeType: MimeTypeFolder,
		Parents:  []string{parentID},
	}
	f, err := c.svc.Files.Create(meta).
		SupportsAllDrives(true).
		Fields(nodeFields).
		Context(ctx).Do()
	if err != nil {
		return nil, google.WrapError(err)
	}

	node := toNode(f)
	return &node, nil
}

// Upload creates a file named name with the given content, parented under
// parentID when non-empty.
func (c *Client) Upload(ctx context.Context, name, parentID string, content io.Reader) (*domain.RemoteNode, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	meta := &drive.File{Name: name}
	if parentID != "" {
		meta.Parents = []string{parentID}
	}

	f, err := c.svc.Files.Create(meta).
		Media(content).
		SupportsAllDrives(true).
		Fields("id, name, parents, webViewLink").
		Context(ctx).Do()
	if err != nil {
		return nil, google.WrapError(err)
	}

	node := toNode(f)
	return &node, nil
}

// ShareWithLink grants "anyone with the link, reader" on the item.
func (c *Client) ShareWithLink(ctx context.Context, id string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	perm := &drive.Permission{
		Type: "anyone",
		Role: "reader",
	}
	_, err := c.svc.Permissions.Create(id, perm).
		SupportsAllDrives(true).
		Fields("id").
		Context(ctx).Do()
	if err != nil {
		return google.WrapError(err)
	}
	return nil
}

// toNode converts a Drive file to a RemoteNode.
func toNode(f *drive.File) domain.RemoteNode {
	node := domain.RemoteNode{
		ID:          f.Id,
		Name:        f.Name,
		MIMEType:    f.MimeType,
		Parents:     f.Parents,
		WebViewLink: f.WebViewLink,
		Trashed:     f.Trashed,
	}

	switch f.MimeType {
	case MimeTypeFolder:
		node.Kind = domain.KindFolder
	case MimeTypeShortcut:
		node.Kind = domain.KindShortcut
		if f.ShortcutDetails != nil {
			node.TargetID = f.ShortcutDetails.TargetId
		}
	default:
		node.Kind = domain.KindFile
	}

	return node
}

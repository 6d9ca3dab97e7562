package services

import (
	"context"
	"fmt"
	"io"

	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
)

// fakeStorage is an in-memory Storage double. Nodes are keyed by ID;
// children preserve insertion order so "first match wins" is observable.
type fakeStorage struct {
	nodes    map[string]domain.RemoteNode
	children map[string][]string
	order    []string

	created []domain.RemoteNode
	nextID  int

	listErr  error
	shareErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		nodes:    make(map[string]domain.RemoteNode),
		children: make(map[string][]string),
	}
}

func (f *fakeStorage) add(node domain.RemoteNode, parentID string) {
	node.Parents = append(node.Parents, parentID)
	f.nodes[node.ID] = node
	f.children[parentID] = append(f.children[parentID], node.ID)
	f.order = append(f.order, node.ID)
}

func (f *fakeStorage) addFolder(id, name, parentID string) {
	f.add(domain.RemoteNode{ID: id, Name: name, Kind: domain.KindFolder}, parentID)
}

func (f *fakeStorage) ListFolderChildren(_ context.Context, parentID string) ([]domain.RemoteNode, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.RemoteNode
	for _, id := range f.children[parentID] {
		n := f.nodes[id]
		if n.Trashed || n.Kind == domain.KindFile {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (f *fakeStorage) GetNode(_ context.Context, id string) (*domain.RemoteNode, error) {
	n, ok := f.nodes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &n, nil
}

func (f *fakeStorage) CreateFolder(_ context.Context, name, parentID string) (*domain.RemoteNode, error) {
	f.nextID++
	node := domain.RemoteNode{
		ID:   fmt.Sprintf("created-%d", f.nextID),
		Name: name,
		Kind: domain.KindFolder,
	}
	f.add(node, parentID)
	f.created = append(f.created, f.nodes[node.ID])
	return &node, nil
}

func (f *fakeStorage) FindByName(_ context.Context, name string) ([]domain.RemoteNode, error) {
	var out []domain.RemoteNode
	for _, id := range f.order {
		n := f.nodes[id]
		if n.Name == name && n.Kind != domain.KindFolder && !n.Trashed {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeStorage) FindFoldersByName(_ context.Context, name string) ([]domain.RemoteNode, error) {
	var out []domain.RemoteNode
	for _, id := range f.order {
		n := f.nodes[id]
		if n.Name == name && n.Kind == domain.KindFolder && !n.Trashed {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeStorage) Upload(_ context.Context, name, parentID string, content io.Reader) (*domain.RemoteNode, error) {
	if _, err := io.ReadAll(content); err != nil {
		return nil, err
	}
	f.nextID++
	node := domain.RemoteNode{
		ID:   fmt.Sprintf("file-%d", f.nextID),
		Name: name,
		Kind: domain.KindFile,
	}
	f.add(node, parentID)
	return &node, nil
}

func (f *fakeStorage) ShareWithLink(_ context.Context, id string) error {
	if f.shareErr != nil {
		return f.shareErr
	}
	n, ok := f.nodes[id]
	if !ok {
		return domain.ErrNotFound
	}
	f.nodes[id] = n
	return nil
}

// fakeSheets is an in-memory SheetClient double. columnA holds the scanned
// column; appends land at the first empty row below the anchor, mimicking
// the API's contiguous-block placement.
type fakeSheets struct {
	sheetTitle string
	sheetID    int64
	columnA    []string

	appendedAnchor string
	appendedValues []any
	appendRow      int64

	chipSheetID int64
	chipRow     int64
	chipCol     int64
	chipURL     string
	chipCalls   int
}

func (f *fakeSheets) SheetID(_ context.Context, _, title string) (int64, error) {
	if title != f.sheetTitle {
		return 0, domain.ErrSheetNotFound
	}
	return f.sheetID, nil
}

func (f *fakeSheets) ColumnValues(_ context.Context, _, _ string, maxRows int64) ([]string, error) {
	if int64(len(f.columnA)) > maxRows {
		return f.columnA[:maxRows], nil
	}
	return f.columnA, nil
}

func (f *fakeSheets) AppendRow(_ context.Context, _, anchorRange string, values []any) (string, int64, error) {
	f.appendedAnchor = anchorRange
	f.appendedValues = values

	anchor, err := RowFromRange(anchorRange)
	if err != nil {
		return "", 0, err
	}

	// First empty row in the contiguous block below the anchor.
	row := anchor + 1
	for int(row) <= len(f.columnA) && f.columnA[row-1] != "" {
		row++
	}
	f.appendRow = row

	rng := fmt.Sprintf("'%s'!A%d:F%d", f.sheetTitle, row, row)
	return rng, int64(len(values)), nil
}

func (f *fakeSheets) SetLinkChip(_ context.Context, _ string, sheetID, rowIndex, colIndex int64, url string) error {
	f.chipCalls++
	f.chipSheetID = sheetID
	f.chipRow = rowIndex
	f.chipCol = colIndex
	f.chipURL = url
	return nil
}

// fakeHistory records filings in memory.
type fakeHistory struct {
	entries []domain.FilingEntry
}

func (f *fakeHistory) Record(_ context.Context, entry domain.FilingEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeHistory) List(_ context.Context, limit int) ([]domain.FilingEntry, error) {
	out := make([]domain.FilingEntry, len(f.entries))
	copy(out, f.entries)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeAuthorizer returns canned credentials.
type fakeAuthorizer struct {
	authorizeCreds *domain.Credentials
	authorizeErr   error
	authorizeCalls int

	refreshCreds *domain.Credentials
	refreshErr   error
	refreshCalls int
}

func (f *fakeAuthorizer) Authorize(_ context.Context, _ []string) (*domain.Credentials, error) {
	f.authorizeCalls++
	if f.authorizeErr != nil {
		return nil, f.authorizeErr
	}
	c := *f.authorizeCreds
	return &c, nil
}

func (f *fakeAuthorizer) Refresh(_ context.Context, _ domain.Credentials) (*domain.Credentials, error) {
	f.refreshCalls++
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	c := *f.refreshCreds
	return &c, nil
}

// memCredStore is an in-memory CredentialStore double.
type memCredStore struct {
	creds map[string]domain.Credentials
	saves int
}

func newMemCredStore() *memCredStore {
	return &memCredStore{creds: make(map[string]domain.Credentials)}
}

func (m *memCredStore) Load(_ context.Context, key string) (*domain.Credentials, error) {
	c, ok := m.creds[key]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memCredStore) Save(_ context.Context, key string, creds domain.Credentials) error {
	m.saves++
	m.creds[key] = creds
	return nil
}

func (m *memCredStore) Delete(_ context.Context, key string) error {
	delete(m.creds, key)
	return nil
}

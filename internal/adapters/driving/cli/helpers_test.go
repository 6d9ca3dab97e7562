package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
	"github.com/ledgerworks/shoebox-cli/internal/core/ports/driven"
)

// swapDeps installs test dependencies and restores the previous wiring
// when the test finishes.
func swapDeps(t *testing.T, deps Dependencies) {
	t.Helper()

	old := Dependencies{
		ConfigStore:    configStore,
		AuthService:    authService,
		NewStorage:     newStorage,
		NewSheetClient: newSheetClient,
		OpenHistory:    openHistory,
	}
	SetDependencies(deps)
	t.Cleanup(func() { SetDependencies(old) })
}

// runCommand executes the root command with args and captures its output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// storageFactory wraps a fake storage as a NewStorage dependency.
func storageFactory(s driven.Storage) func(context.Context, []string) (driven.Storage, error) {
	return func(context.Context, []string) (driven.Storage, error) {
		return s, nil
	}
}

// sheetsFactory wraps a fake sheet client as a NewSheetClient dependency.
func sheetsFactory(c driven.SheetClient) func(context.Context) (driven.SheetClient, error) {
	return func(context.Context) (driven.SheetClient, error) {
		return c, nil
	}
}

// historyFactory wraps a fake history store as an OpenHistory dependency.
func historyFactory(h driven.HistoryStore) func() (driven.HistoryStore, io.Closer, error) {
	return func() (driven.HistoryStore, io.Closer, error) {
		return h, io.NopCloser(nil), nil
	}
}

// fakeStorage is an in-memory driven.Storage.
type fakeStorage struct {
	nodes    map[string]domain.RemoteNode
	children map[string][]string
	order    []string
	created  int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		nodes:    make(map[string]domain.RemoteNode),
		children: make(map[string][]string),
	}
}

func (f *fakeStorage) add(node domain.RemoteNode, parentID string) {
	f.nodes[node.ID] = node
	f.order = append(f.order, node.ID)
	if parentID != "" {
		f.children[parentID] = append(f.children[parentID], node.ID)
	}
}

func (f *fakeStorage) ListFolderChildren(_ context.Context, parentID string) ([]domain.RemoteNode, error) {
	var out []domain.RemoteNode
	for _, id := range f.children[parentID] {
		n := f.nodes[id]
		if n.Kind == domain.KindFolder || n.Kind == domain.KindShortcut {
			out = append(out, n)
		}
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
	f.created++
	node := domain.RemoteNode{
		ID:   fmt.Sprintf("created-%d", f.created),
		Name: name,
		Kind: domain.KindFolder,
	}
	f.add(node, parentID)
	return &node, nil
}

func (f *fakeStorage) FindByName(_ context.Context, name string) ([]domain.RemoteNode, error) {
	var out []domain.RemoteNode
	for _, id := range f.order {
		n := f.nodes[id]
		if n.Name == name && n.Kind != domain.KindFolder {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeStorage) FindFoldersByName(_ context.Context, name string) ([]domain.RemoteNode, error) {
	var out []domain.RemoteNode
	for _, id := range f.order {
		n := f.nodes[id]
		if n.Name == name && n.Kind == domain.KindFolder {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeStorage) Upload(_ context.Context, name, parentID string, _ io.Reader) (*domain.RemoteNode, error) {
	node := domain.RemoteNode{
		ID:          "up-1",
		Name:        name,
		Kind:        domain.KindFile,
		Parents:     []string{parentID},
		WebViewLink: "https://drive.google.com/file/d/up-1/view",
	}
	f.add(node, parentID)
	return &node, nil
}

func (f *fakeStorage) ShareWithLink(_ context.Context, _ string) error {
	return nil
}

// fakeSheets is an in-memory driven.SheetClient with a single sheet whose
// column A is preloaded.
type fakeSheets struct {
	sheetName string
	sheetID   int64
	columnA   []string

	appendedAnchor string
	appendedValues []any
	chipRow        int64
	chipCol        int64
	chipURL        string
}

func (f *fakeSheets) SheetID(_ context.Context, _, title string) (int64, error) {
	if title != f.sheetName {
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

	var row int64
	if _, err := fmt.Sscanf(anchorRange, f.sheetName+"!A%d", &row); err != nil {
		return "", 0, fmt.Errorf("bad anchor %q: %w", anchorRange, err)
	}
	// Land on the first empty row below the anchor.
	landed := row
	for int(landed) <= len(f.columnA) && f.columnA[landed-1] != "" {
		landed++
	}
	return fmt.Sprintf("'%s'!A%d:F%d", f.sheetName, landed, landed), int64(len(values)), nil
}

func (f *fakeSheets) SetLinkChip(_ context.Context, _ string, _, rowIndex, colIndex int64, url string) error {
	f.chipRow = rowIndex
	f.chipCol = colIndex
	f.chipURL = url
	return nil
}

// fakeHistory is an in-memory driven.HistoryStore.
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
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// memConfig is an in-memory driven.ConfigStore.
type memConfig struct {
	data map[string]any
}

func newMemConfig() *memConfig {
	return &memConfig{data: make(map[string]any)}
}

func (m *memConfig) Get(key string) (any, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *memConfig) GetString(key string) string {
	if s, ok := m.data[key].(string); ok {
		return s
	}
	return ""
}

func (m *memConfig) GetInt(key string) int {
	if n, ok := m.data[key].(int); ok {
		return n
	}
	return 0
}

func (m *memConfig) Set(key string, value any) error {
	m.data[key] = value
	return nil
}

var (
	_ driven.Storage      = (*fakeStorage)(nil)
	_ driven.SheetClient  = (*fakeSheets)(nil)
	_ driven.HistoryStore = (*fakeHistory)(nil)
	_ driven.ConfigStore  = (*memConfig)(nil)
)

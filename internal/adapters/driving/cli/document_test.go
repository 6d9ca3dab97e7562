package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
)

func resetDocumentFlags() {
	documentFindIDOnly = false
}

func TestDocumentFind_ListsMatches(t *testing.T) {
	storage := newFakeStorage()
	storage.add(domain.RemoteNode{ID: "d1", Name: "Ledger 2025", Kind: domain.KindFile}, domain.RootFolderID)
	storage.add(domain.RemoteNode{
		ID: "s1", Name: "Ledger 2025", Kind: domain.KindShortcut, TargetID: "d2",
	}, domain.RootFolderID)
	swapDeps(t, Dependencies{NewStorage: storageFactory(storage)})
	t.Cleanup(resetDocumentFlags)

	out, err := runCommand(t, "document", "find", "Ledger 2025")

	assert.NoError(t, err)
	assert.Contains(t, out, "d1")
	assert.Contains(t, out, "d2")
	assert.Contains(t, out, "(via shortcut)")
}

func TestDocumentFind_ShortcutAndTargetCollapse(t *testing.T) {
	storage := newFakeStorage()
	storage.add(domain.RemoteNode{
		ID: "s1", Name: "Ledger 2025", Kind: domain.KindShortcut, TargetID: "d1",
	}, domain.RootFolderID)
	storage.add(domain.RemoteNode{ID: "d1", Name: "Ledger 2025", Kind: domain.KindFile}, domain.RootFolderID)
	swapDeps(t, Dependencies{NewStorage: storageFactory(storage)})
	t.Cleanup(resetDocumentFlags)

	out, err := runCommand(t, "document", "find", "Ledger 2025", "--id-only")

	assert.NoError(t, err)
	assert.Equal(t, "d1\n", out)
}

func TestDocumentFind_IDOnlyPrintsFirstMatch(t *testing.T) {
	storage := newFakeStorage()
	storage.add(domain.RemoteNode{ID: "d1", Name: "Ledger 2025", Kind: domain.KindFile}, domain.RootFolderID)
	storage.add(domain.RemoteNode{ID: "d2", Name: "Ledger 2025", Kind: domain.KindFile}, domain.RootFolderID)
	swapDeps(t, Dependencies{NewStorage: storageFactory(storage)})
	t.Cleanup(resetDocumentFlags)

	out, err := runCommand(t, "document", "find", "Ledger 2025", "--id-only")

	assert.NoError(t, err)
	assert.Equal(t, "d1\n", out)
}

func TestDocumentFind_NotFound(t *testing.T) {
	swapDeps(t, Dependencies{NewStorage: storageFactory(newFakeStorage())})
	t.Cleanup(resetDocumentFlags)

	_, err := runCommand(t, "document", "find", "Missing Doc")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no document named")
}

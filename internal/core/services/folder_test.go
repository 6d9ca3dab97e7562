package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
)

func TestResolveExistingPath(t *testing.T) {
	storage := newFakeStorage()
	storage.addFolder("f1", "1415 Meridian", domain.RootFolderID)
	storage.addFolder("f2", "Receipts", "f1")
	svc := NewFolderService(storage)

	id, err := svc.Resolve(context.Background(), domain.RootFolderID, []string{"1415 Meridian", "Receipts"}, false)
	require.NoError(t, err)
	assert.Equal(t, "f2", id)
	assert.Empty(t, storage.created)
}

func TestResolveCreateMissingMatchesPlainResolve(t *testing.T) {
	// When all segments exist, createMissing must change nothing.
	storage := newFakeStorage()
	storage.addFolder("f1", "1415 Meridian", domain.RootFolderID)
	storage.addFolder("f2", "Receipts", "f1")
	svc := NewFolderService(storage)

	plain, err := svc.Resolve(context.Background(), domain.RootFolderID, []string{"1415 Meridian", "Receipts"}, false)
	require.NoError(t, err)

	withCreate, err := svc.Resolve(context.Background(), domain.RootFolderID, []string{"1415 Meridian", "Receipts"}, true)
	require.NoError(t, err)

	assert.Equal(t, plain, withCreate)
	assert.Empty(t, storage.created)
}

func TestResolveNormalizedMatching(t *testing.T) {
	storage := newFakeStorage()
	// Stored with a double space; queried with trailing space and NBSP.
	storage.addFolder("f1", "1415  Meridian", domain.RootFolderID)
	svc := NewFolderService(storage)

	for _, variant := range []string{"1415 Meridian ", "1415 Meridian"} {
		id, err := svc.Resolve(context.Background(), domain.RootFolderID, []string{variant}, false)
		require.NoError(t, err)
		assert.Equal(t, "f1", id)
	}
}

func TestResolveCreatesMissingSuffix(t *testing.T) {
	storage := newFakeStorage()
	storage.addFolder("f1", "1415 Meridian", domain.RootFolderID)
	svc := NewFolderService(storage)

	segments := []string{"1415 Meridian", "Receipts", "2025"}
	id, err := svc.Resolve(context.Background(), domain.RootFolderID, segments, true)
	require.NoError(t, err)

	// Exactly N-K folders created, left to right, each under the previous.
	require.Len(t, storage.created, 2)
	assert.Equal(t, "Receipts", storage.created[0].Name)
	assert.Equal(t, []string{"f1"}, storage.created[0].Parents)
	assert.Equal(t, "2025", storage.created[1].Name)
	assert.Equal(t, []string{storage.created[0].ID}, storage.created[1].Parents)
	assert.Equal(t, storage.created[1].ID, id)
}

func TestResolveNotFoundReportsPrefix(t *testing.T) {
	storage := newFakeStorage()
	storage.addFolder("f1", "1415 Meridian", domain.RootFolderID)
	svc := NewFolderService(storage)

	_, err := svc.Resolve(context.Background(), domain.RootFolderID, []string{"1415 Meridian", "Missing", "Deeper"}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var pathErr *PathNotFoundError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, []string{"1415 Meridian"}, pathErr.ResolvedPrefix)
	assert.Empty(t, storage.created)
}

func TestResolveFollowsShortcutToFolder(t *testing.T) {
	storage := newFakeStorage()
	storage.addFolder("real", "Receipts", "elsewhere")
	storage.add(domain.RemoteNode{
		ID:       "sc1",
		Name:     "Receipts",
		Kind:     domain.KindShortcut,
		TargetID: "real",
	}, domain.RootFolderID)
	svc := NewFolderService(storage)

	id, err := svc.Resolve(context.Background(), domain.RootFolderID, []string{"Receipts"}, false)
	require.NoError(t, err)
	assert.Equal(t, "real", id)
}

func TestResolveShortcutToFileIsNoMatch(t *testing.T) {
	storage := newFakeStorage()
	storage.add(domain.RemoteNode{ID: "doc", Name: "Receipts", Kind: domain.KindFile}, "elsewhere")
	storage.add(domain.RemoteNode{
		ID:       "sc1",
		Name:     "Receipts",
		Kind:     domain.KindShortcut,
		TargetID: "doc",
	}, domain.RootFolderID)
	svc := NewFolderService(storage)

	_, err := svc.Resolve(context.Background(), domain.RootFolderID, []string{"Receipts"}, false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolveFirstMatchWins(t *testing.T) {
	storage := newFakeStorage()
	storage.addFolder("first", "Receipts", domain.RootFolderID)
	storage.addFolder("second", "receipts ", domain.RootFolderID)
	svc := NewFolderService(storage)

	id, err := svc.Resolve(context.Background(), domain.RootFolderID, []string{"RECEIPTS"}, false)
	require.NoError(t, err)
	assert.Equal(t, "first", id)
}

func TestResolveEmptyPath(t *testing.T) {
	svc := NewFolderService(newFakeStorage())

	_, err := svc.Resolve(context.Background(), domain.RootFolderID, nil, false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolveListError(t *testing.T) {
	storage := newFakeStorage()
	storage.listErr = errors.New("boom")
	svc := NewFolderService(storage)

	_, err := svc.Resolve(context.Background(), domain.RootFolderID, []string{"Receipts"}, false)
	assert.ErrorContains(t, err, "boom")
}

func TestFindGlobalFolders(t *testing.T) {
	storage := newFakeStorage()
	storage.addFolder("f1", "Receipts", domain.RootFolderID)
	storage.addFolder("f2", "Receipts", "other-parent")
	svc := NewFolderService(storage)

	matches, err := svc.Find(context.Background(), "Receipts")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "f1", matches[0].ID)
	assert.Equal(t, "f2", matches[1].ID)
}

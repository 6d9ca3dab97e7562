package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerworks/shoebox-cli/internal/core/domain"
)

func TestStoreRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	creds := domain.Credentials{
		AccessToken:  "at-123",
		RefreshToken: "rt-456",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour).UTC().Truncate(time.Second),
		Scopes:       []string{"https://www.googleapis.com/auth/drive.file"},
	}

	require.NoError(t, store.Save(ctx, "drive.file", creds))

	loaded, err := store.Load(ctx, "drive.file")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, creds.AccessToken, loaded.AccessToken)
	assert.Equal(t, creds.RefreshToken, loaded.RefreshToken)
	assert.Equal(t, creds.Scopes, loaded.Scopes)
	assert.True(t, creds.Expiry.Equal(loaded.Expiry))
}

func TestStoreLoadMissing(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	loaded, err := store.Load(context.Background(), "spreadsheets")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStoreScopeKeysIsolated(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "drive.file", domain.Credentials{AccessToken: "a"}))
	require.NoError(t, store.Save(ctx, "spreadsheets", domain.Credentials{AccessToken: "b"}))

	first, err := store.Load(ctx, "drive.file")
	require.NoError(t, err)
	second, err := store.Load(ctx, "spreadsheets")
	require.NoError(t, err)

	assert.Equal(t, "a", first.AccessToken)
	assert.Equal(t, "b", second.AccessToken)
}

func TestStoreDelete(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "drive.file", domain.Credentials{AccessToken: "a"}))
	require.NoError(t, store.Delete(ctx, "drive.file"))

	loaded, err := store.Load(ctx, "drive.file")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Deleting again is not an error.
	require.NoError(t, store.Delete(ctx, "drive.file"))
}

func TestStoreFilePermissions(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), "drive.file", domain.Credentials{AccessToken: "a"}))

	info, err := os.Stat(filepath.Join(dir, "token-drive.file.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "token-drive.file.json"), []byte("not json"), 0600))

	_, err = store.Load(context.Background(), "drive.file")
	assert.Error(t, err)
}

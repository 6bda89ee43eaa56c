package tokenstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/broqhotels/broq-go/tokenstore"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := tokenstore.NewFileStore(t.TempDir(), "broq_refresh_token")

	value, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, value)

	require.NoError(t, store.Save("R1"))

	value, err = store.Load()
	require.NoError(t, err)
	require.Equal(t, "R1", value)

	require.NoError(t, store.Save("R2"))
	value, err = store.Load()
	require.NoError(t, err)
	require.Equal(t, "R2", value)

	require.NoError(t, store.Clear())
	value, err = store.Load()
	require.NoError(t, err)
	require.Empty(t, value)
}

func TestFileStoreClearIsIdempotent(t *testing.T) {
	store := tokenstore.NewFileStore(t.TempDir(), "broq_refresh_token")
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}

func TestFileStoreCreatesDataFolderOnSave(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "nested", "data")
	store := tokenstore.NewFileStore(folder, "broq_refresh_token")

	require.NoError(t, store.Save("R1"))

	_, err := os.Stat(filepath.Join(folder, "broq_refresh_token"))
	require.NoError(t, err)
}

func TestFileStoreSanitizesKey(t *testing.T) {
	folder := t.TempDir()
	store := tokenstore.NewFileStore(folder, "../escape/attempt")

	require.NoError(t, store.Save("R1"))

	entries, err := os.ReadDir(folder)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotContains(t, entries[0].Name(), "/")
}

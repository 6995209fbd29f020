package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comexa/stock-control-api/internal/application/ports"
)

func testStore(t *testing.T, store ports.BlobStore) {
	t.Helper()
	ctx := context.Background()

	var missing []string
	err := store.Load(ctx, "comexa_stock", &missing)
	assert.ErrorIs(t, err, ports.ErrBlobNotFound)

	require.NoError(t, store.Save(ctx, "comexa_stock", []string{"a", "b"}))

	var loaded []string
	require.NoError(t, store.Load(ctx, "comexa_stock", &loaded))
	assert.Equal(t, []string{"a", "b"}, loaded)

	// sobrescritura completa, no incremental
	require.NoError(t, store.Save(ctx, "comexa_stock", []string{"c"}))
	loaded = nil
	require.NoError(t, store.Load(ctx, "comexa_stock", &loaded))
	assert.Equal(t, []string{"c"}, loaded)

	require.NoError(t, store.Delete(ctx, "comexa_stock"))
	err = store.Load(ctx, "comexa_stock", &loaded)
	assert.ErrorIs(t, err, ports.ErrBlobNotFound)

	// borrar clave inexistente no es error
	require.NoError(t, store.Delete(ctx, "comexa_stock"))
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	testStore(t, store)
}

func TestFileStoreReabre(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, "comexa_techs", map[string]int{"x": 1}))

	// otro proceso sobre el mismo directorio ve lo persistido
	second, err := NewFileStore(dir)
	require.NoError(t, err)
	var loaded map[string]int
	require.NoError(t, second.Load(ctx, "comexa_techs", &loaded))
	assert.Equal(t, 1, loaded["x"])
}

package storage

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_StoreAndDelete(t *testing.T) {
	ctx := context.Background()

	dir := filepath.Join(t.TempDir(), "uploads")
	local, err := NewLocal(dir, "http://localhost:3001/")
	require.NoError(t, err)

	url, err := local.Store(ctx, "flat.jpg", []byte("jpeg-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:3001/uploads/"))
	assert.True(t, strings.HasSuffix(url, "_flat.jpg"))

	onDisk, err := os.ReadFile(filepath.Join(dir, path.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), onDisk)

	require.NoError(t, local.Delete(ctx, url))
	_, err = os.Stat(filepath.Join(dir, path.Base(url)))
	assert.True(t, os.IsNotExist(err))
}

func TestLocal_StoreStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	local, err := NewLocal(dir, "http://localhost:3001")
	require.NoError(t, err)

	url, err := local.Store(context.Background(), "../../etc/passwd", []byte("x"))
	require.NoError(t, err)

	assert.NotContains(t, url, "..")
	assert.True(t, strings.HasSuffix(url, "_passwd"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), "_passwd"))
}

func TestLocal_DeleteMissingFile(t *testing.T) {
	local, err := NewLocal(t.TempDir(), "http://localhost:3001")
	require.NoError(t, err)

	assert.NoError(t, local.Delete(context.Background(), "http://localhost:3001/uploads/gone.jpg"))
}

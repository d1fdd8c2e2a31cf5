package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWriter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "bindings")
	path := filepath.Join(dir, "generated.go")
	w := NewFileWriterAdapter()
	ctx := context.Background()

	require.NoError(t, w.EnsureDirectory(ctx, dir))
	require.NoError(t, w.WriteFile(ctx, path, []byte("package bindings\n")))
	require.NoError(t, w.WriteFile(ctx, path, []byte("package rdat\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package rdat\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileWriterMissingDirectory(t *testing.T) {
	err := NewFileWriterAdapter().WriteFile(context.Background(), filepath.Join(t.TempDir(), "nope", "x.go"), nil)
	assert.Error(t, err)
}

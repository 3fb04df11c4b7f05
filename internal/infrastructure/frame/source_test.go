package frame

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileSourceReadsFreshContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bottle.png")
	require.NoError(t, os.WriteFile(path, []byte("first"), 0o644))

	src := NewFileSource(path)
	ctx := context.Background()

	data, err := src.NextFrame(ctx)
	require.NoError(t, err)
	require.Equal(t, []byte("first"), data)

	// Файл перечитывается на каждом цикле
	require.NoError(t, os.WriteFile(path, []byte("second"), 0o644))
	data, err = src.NextFrame(ctx)
	require.NoError(t, err)
	require.Equal(t, []byte("second"), data)
}

func TestFileSourceMissingFile(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "missing.png"))

	_, err := src.NextFrame(context.Background())
	require.Error(t, err)
}

func TestFolderSourceCycles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.jpg"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	src, err := NewFolderSource(dir)
	require.NoError(t, err)

	ctx := context.Background()
	for _, want := range []string{"a", "b", "a"} {
		data, err := src.NextFrame(ctx)
		require.NoError(t, err)
		require.Equal(t, []byte(want), data)
	}
}

func TestFolderSourceEmptyDir(t *testing.T) {
	_, err := NewFolderSource(t.TempDir())
	require.Error(t, err)
}

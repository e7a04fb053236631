package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/vfsh/internal/adapters/file"
	"github.com/aretw0/vfsh/pkg/history"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	history.RunStoreContract(t, file.New(t.TempDir()))
}

func TestFileStore_MemFsContract(t *testing.T) {
	history.RunStoreContract(t, file.New("/history", file.WithFs(afero.NewMemMapFs())))
}

func TestFileStore_OnDiskFormat(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := file.New(dir)

	require.NoError(t, store.Append(ctx, "s1", "ls"))
	require.NoError(t, store.Append(ctx, "s1", "cd a\nb"))

	data, err := os.ReadFile(filepath.Join(dir, "s1.history"))
	require.NoError(t, err)
	assert.Equal(t, "ls\ncd a b\n", string(data))

	// A second store over the same directory sees the transcript.
	lines, err := file.New(dir).Lines(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ls", "cd a b"}, lines)
}

func TestFileStore_RejectsPathLikeIDs(t *testing.T) {
	ctx := context.Background()
	store := file.New(t.TempDir())

	for _, id := range []string{"../escape", "a/b", "..", `a\b`} {
		assert.Error(t, store.Append(ctx, id, "ls"), id)
	}
}

func TestFileStore_SessionsIgnoresOtherFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.history"), 0755))

	store := file.New(dir)
	require.NoError(t, store.Append(ctx, "s1", "ls"))

	ids, err := store.Sessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"s1"}, ids)
}

func TestFileStore_MissingDir(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "nope"))
	ids, err := store.Sessions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

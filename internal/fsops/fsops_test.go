package fsops_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocp/internal/fsops"
	"gocp/internal/schema"
)

func newTestHandler() *fsops.Handler {
	return fsops.NewHandler(&schema.OS{}, &schema.Unix{})
}

func writeFile(t *testing.T, path string, content []byte, perm os.FileMode) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, content, perm))
}

func TestExists(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()
	dir := t.TempDir()

	file := filepath.Join(dir, "present.txt")
	writeFile(t, file, []byte("content"), 0o644)

	assert.True(t, handler.Exists(file))
	assert.True(t, handler.Exists(dir))
	assert.False(t, handler.Exists(filepath.Join(dir, "missing.txt")))
}

func TestIsDirectory(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()
	dir := t.TempDir()

	file := filepath.Join(dir, "file.txt")
	writeFile(t, file, []byte("content"), 0o644)

	assert.True(t, handler.IsDirectory(dir))
	assert.False(t, handler.IsDirectory(file))
	assert.False(t, handler.IsDirectory(filepath.Join(dir, "missing")), "missing path is not an error")
}

func TestSize(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()
	dir := t.TempDir()

	file := filepath.Join(dir, "file.txt")
	writeFile(t, file, []byte("12345"), 0o644)

	size, err := handler.Size(file)
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)

	_, err = handler.Size(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
}

func TestEnsureDirectoryPath_Idempotent(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()
	dir := t.TempDir()

	nested := filepath.Join(dir, "a", "b", "c")

	require.NoError(t, handler.EnsureDirectoryPath(nested))
	assert.True(t, handler.IsDirectory(nested))

	require.NoError(t, handler.EnsureDirectoryPath(nested), "second call must not be an error")
	assert.True(t, handler.IsDirectory(nested))
}

func TestEnsureDirectoryPath_Failure(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()
	dir := t.TempDir()

	file := filepath.Join(dir, "occupied")
	writeFile(t, file, []byte("content"), 0o644)

	err := handler.EnsureDirectoryPath(filepath.Join(file, "child"))
	require.ErrorIs(t, err, fsops.ErrDirectoryCreate)
}

func TestMetadata(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()
	dir := t.TempDir()

	file := filepath.Join(dir, "file.txt")
	writeFile(t, file, []byte("content"), 0o640)

	metadata, err := handler.Metadata(file)
	require.NoError(t, err)

	assert.True(t, metadata.IsRegular)
	assert.False(t, metadata.IsDir)
	assert.False(t, metadata.IsSymlink)
	assert.Equal(t, int64(7), metadata.Size)
	assert.Equal(t, uint32(0o640), metadata.Perms)
	assert.False(t, metadata.ModTime().IsZero())

	dirMeta, err := handler.Metadata(dir)
	require.NoError(t, err)
	assert.True(t, dirMeta.IsDir)
}

func TestMetadata_Symlink(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()
	dir := t.TempDir()

	target := filepath.Join(dir, "target.txt")
	writeFile(t, target, []byte("content"), 0o644)

	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	metadata, err := handler.Metadata(link)
	require.NoError(t, err)

	assert.True(t, metadata.IsSymlink)
	assert.Equal(t, target, metadata.SymlinkTo)
}

func TestEntries(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "a.txt"), []byte("aa"), 0o644)
	writeFile(t, filepath.Join(dir, "b.txt"), []byte("bbb"), 0o644)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	entries, err := handler.Entries(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
		require.NotNil(t, entry.Metadata)
	}
	assert.ElementsMatch(t, []string{"a.txt", "b.txt", "sub"}, names)

	_, err = handler.Entries(filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, fsops.ErrDirectoryOpen)
}

func TestRemoveTree(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()
	dir := t.TempDir()

	root := filepath.Join(dir, "tree")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub", "deeper"), 0o755))
	writeFile(t, filepath.Join(root, "a.txt"), []byte("aa"), 0o644)
	writeFile(t, filepath.Join(root, "sub", "b.txt"), []byte("bb"), 0o644)
	writeFile(t, filepath.Join(root, "sub", "deeper", "c.txt"), []byte("cc"), 0o644)

	require.NoError(t, handler.RemoveTree(root))
	assert.False(t, handler.Exists(root))
}

func TestRemoveTree_MissingRoot(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()

	err := handler.RemoveTree(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, fsops.ErrDirectoryOpen)
}

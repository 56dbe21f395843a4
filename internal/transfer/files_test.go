package transfer_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocp/internal/transfer"
)

func TestCopyFile_RoundTrip(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()
	dir := t.TempDir()

	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")
	content := bytes.Repeat([]byte("roundtrip"), 10_000)
	writeFile(t, src, content, 0o644)

	require.NoError(t, handler.CopyFile(context.Background(), src, dst, nil))
	assert.Equal(t, content, readFile(t, dst))

	require.NoError(t, handler.Compare(context.Background(), src, dst))

	srcDigest, err := handler.Digest(context.Background(), src)
	require.NoError(t, err)
	dstDigest, err := handler.Digest(context.Background(), dst)
	require.NoError(t, err)
	assert.Equal(t, srcDigest, dstDigest)
}

func TestCopyFile_DestinationIsDirectory(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()
	dir := t.TempDir()

	src := filepath.Join(dir, "report.txt")
	writeFile(t, src, []byte("content"), 0o644)

	destDir := filepath.Join(dir, "target")
	require.NoError(t, os.Mkdir(destDir, 0o755))

	require.NoError(t, handler.CopyFile(context.Background(), src, destDir, nil))
	assert.Equal(t, []byte("content"), readFile(t, filepath.Join(destDir, "report.txt")))
}

func TestCopyFile_TruncatesExistingDestination(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()
	dir := t.TempDir()

	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	writeFile(t, src, []byte("short"), 0o644)
	writeFile(t, dst, []byte("a much longer pre-existing destination"), 0o644)

	require.NoError(t, handler.CopyFile(context.Background(), src, dst, nil))
	assert.Equal(t, []byte("short"), readFile(t, dst), "second copy truncates, never appends")

	require.NoError(t, handler.CopyFile(context.Background(), src, dst, nil))
	assert.Equal(t, []byte("short"), readFile(t, dst))
}

func TestCopyFile_PropagatesPermissions(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()
	dir := t.TempDir()

	src := filepath.Join(dir, "src.sh")
	dst := filepath.Join(dir, "dst.sh")
	writeFile(t, src, []byte("#!/bin/sh\n"), 0o750)

	require.NoError(t, handler.CopyFile(context.Background(), src, dst, nil))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o750), info.Mode().Perm())
}

func TestCopyFile_Progress(t *testing.T) {
	t.Parallel()

	handler := newTestHandler().WithBufferSize(8)
	dir := t.TempDir()

	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")
	content := bytes.Repeat([]byte("x"), 50)
	writeFile(t, src, content, 0o644)

	var calls int
	var lastCopied int64
	var lastTotal int64

	progress := func(copied, total int64, name string) {
		calls++
		assert.GreaterOrEqual(t, copied, lastCopied, "copied bytes must be monotonic")
		assert.Equal(t, src, name)
		lastCopied = copied
		lastTotal = total
	}

	require.NoError(t, handler.CopyFile(context.Background(), src, dst, progress))

	assert.Equal(t, 7, calls, "50 bytes in 8-byte chunks")
	assert.Equal(t, int64(50), lastCopied)
	assert.Equal(t, int64(50), lastTotal)
}

func TestCopyFile_SourceMissing(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()
	dir := t.TempDir()

	err := handler.CopyFile(context.Background(), filepath.Join(dir, "missing.txt"), filepath.Join(dir, "dst.txt"), nil)
	require.ErrorIs(t, err, transfer.ErrSourceOpen)
	assert.NoFileExists(t, filepath.Join(dir, "dst.txt"))
}

func TestCopyFile_DestinationUnopenable(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()
	dir := t.TempDir()

	src := filepath.Join(dir, "src.txt")
	writeFile(t, src, []byte("content"), 0o644)

	err := handler.CopyFile(context.Background(), src, filepath.Join(dir, "no", "such", "dir", "dst.txt"), nil)
	require.ErrorIs(t, err, transfer.ErrDestinationOpen)
}

func TestCopyFile_Canceled(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()
	dir := t.TempDir()

	src := filepath.Join(dir, "src.txt")
	writeFile(t, src, []byte("content"), 0o644)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := handler.CopyFile(ctx, src, filepath.Join(dir, "dst.txt"), nil)
	require.ErrorIs(t, err, transfer.ErrRead)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCopyFile_EmptyPaths(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()
	dir := t.TempDir()

	src := filepath.Join(dir, "src.txt")
	writeFile(t, src, []byte("content"), 0o644)

	require.ErrorIs(t, handler.CopyFile(context.Background(), "", filepath.Join(dir, "dst.txt"), nil), transfer.ErrInvalidPath)
	require.ErrorIs(t, handler.CopyFile(context.Background(), src, "  ", nil), transfer.ErrInvalidPath)
}

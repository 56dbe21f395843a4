package transfer_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocp/internal/transfer"
)

func TestDigest_FixedWidthToken(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()
	dir := t.TempDir()

	file := filepath.Join(dir, "file.bin")
	writeFile(t, file, []byte("digest me"), 0o644)

	digest, err := handler.Digest(context.Background(), file)
	require.NoError(t, err)

	assert.Len(t, digest, 32)
	assert.Equal(t, strings.ToLower(digest), digest)
	for _, r := range digest {
		assert.Contains(t, "0123456789abcdef", string(r))
	}
}

func TestDigest_Deterministic(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()
	dir := t.TempDir()

	a := filepath.Join(dir, "a.bin")
	b := filepath.Join(dir, "b.bin")
	c := filepath.Join(dir, "c.bin")
	writeFile(t, a, []byte("same content"), 0o644)
	writeFile(t, b, []byte("same content"), 0o644)
	writeFile(t, c, []byte("other content"), 0o644)

	digestA, err := handler.Digest(context.Background(), a)
	require.NoError(t, err)
	digestB, err := handler.Digest(context.Background(), b)
	require.NoError(t, err)
	digestC, err := handler.Digest(context.Background(), c)
	require.NoError(t, err)

	assert.Equal(t, digestA, digestB, "equal content must yield equal digests")
	assert.NotEqual(t, digestA, digestC)
}

func TestDigest_SourceMissing(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()

	_, err := handler.Digest(context.Background(), filepath.Join(t.TempDir(), "missing.bin"))
	require.ErrorIs(t, err, transfer.ErrSourceOpen)
}

func TestVerify(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()
	dir := t.TempDir()

	file := filepath.Join(dir, "file.bin")
	writeFile(t, file, []byte("verify me"), 0o644)

	digest, err := handler.Digest(context.Background(), file)
	require.NoError(t, err)

	require.NoError(t, handler.Verify(context.Background(), file, digest))
	require.NoError(t, handler.Verify(context.Background(), file, strings.ToUpper(digest)),
		"verification is case-insensitive")
	require.NoError(t, handler.Verify(context.Background(), file, "  "+digest+"\t"),
		"surrounding whitespace is tolerated")

	err = handler.Verify(context.Background(), file, strings.Repeat("0", 32))
	require.ErrorIs(t, err, transfer.ErrFilesDiffer)
}

package transfer_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"gocp/internal/fsops"
	"gocp/internal/schema"
	"gocp/internal/transfer"
)

// newTestHandler wires a [transfer.Handler] against the real filesystem.
func newTestHandler() *transfer.Handler {
	osProvider := &schema.OS{}
	unixProvider := &schema.Unix{}

	return transfer.NewHandler(
		fsops.NewHandler(osProvider, unixProvider),
		osProvider,
		unixProvider,
	)
}

// fakeOS wraps the real OS provider with injectable failures, so that rename
// and stat behavior can be simulated without a second filesystem.
type fakeOS struct {
	*schema.OS

	renameErr     error
	statRedirects map[string]string
	openFileErrs  map[string]error
}

func (f *fakeOS) Rename(oldpath, newpath string) error {
	if f.renameErr != nil {
		return f.renameErr
	}

	return f.OS.Rename(oldpath, newpath)
}

func (f *fakeOS) Stat(name string) (os.FileInfo, error) {
	if redirect, ok := f.statRedirects[name]; ok {
		return os.Stat(redirect)
	}

	return f.OS.Stat(name)
}

func (f *fakeOS) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	if err, ok := f.openFileErrs[name]; ok {
		return nil, err
	}

	return f.OS.OpenFile(name, flag, perm)
}

// newFakeHandler wires a [transfer.Handler] whose OS access goes through a
// [fakeOS] double, for both the transfer layer and its path inspector.
func newFakeHandler(fake *fakeOS) *transfer.Handler {
	unixProvider := &schema.Unix{}

	return transfer.NewHandler(
		fsops.NewHandler(fake, unixProvider),
		fake,
		unixProvider,
	)
}

func writeFile(t *testing.T, path string, content []byte, perm os.FileMode) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, content, perm))
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return content
}

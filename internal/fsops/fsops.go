// Package fsops provides stat-based path inspection and directory-level
// primitives for all other packages. All operating system access goes through
// the provider interfaces, so that callers can substitute implementations.
package fsops

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

type osProvider interface {
	Stat(name string) (os.FileInfo, error)
	ReadDir(name string) ([]os.DirEntry, error)
	Remove(name string) error
	Readlink(name string) (string, error)
	MkdirAll(path string, perm os.FileMode) error
}

type unixProvider interface {
	Lstat(path string, stat *unix.Stat_t) error
	Stat(path string, stat *unix.Stat_t) error
}

// Handler is the principal structure for path inspection operations.
type Handler struct {
	OSOps   osProvider
	UnixOps unixProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(osOps osProvider, unixOps unixProvider) *Handler {
	return &Handler{
		OSOps:   osOps,
		UnixOps: unixOps,
	}
}

// Exists reports whether a path resolves via a metadata query. Any stat
// failure, including permission denial, reports false; the method does not
// distinguish a missing path from an inaccessible one.
func (f *Handler) Exists(path string) bool {
	_, err := f.OSOps.Stat(path)

	return err == nil
}

// IsDirectory reports whether a path resolves and is a directory. A missing
// path reports false rather than an error.
func (f *Handler) IsDirectory(path string) bool {
	info, err := f.OSOps.Stat(path)
	if err != nil {
		return false
	}

	return info.IsDir()
}

// Size returns the byte size of a path, or an error when the path cannot be
// stat'ed. Directory sizes carry no defined meaning under this contract.
func (f *Handler) Size(path string) (int64, error) {
	info, err := f.OSOps.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("(fsops-size) failed to stat: %w", err)
	}

	return info.Size(), nil
}

// Package transfer implements the streaming file operations: single-file
// copy with progress accounting, byte-exact comparison, content digesting,
// recursive filtered tree copy and the rename-first move protocol with its
// cross-device copy/verify/delete fallback.
package transfer

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// defaultBufferSize is the chunk size for all streaming operations.
const defaultBufferSize = 64 * 1024

type fsProvider interface {
	Exists(path string) bool
	IsDirectory(path string) bool
	Size(path string) (int64, error)
	EnsureDirectoryPath(path string) error
	RemoveTree(path string) error
}

type osProvider interface {
	Open(name string) (*os.File, error)
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
	Remove(name string) error
	Rename(oldpath, newpath string) error
	Stat(name string) (os.FileInfo, error)
	ReadDir(name string) ([]os.DirEntry, error)
}

type unixProvider interface {
	Chmod(path string, mode uint32) error
}

// ProgressFunc receives a progress notification after each copied chunk, with
// the bytes copied so far, the total expected bytes (0 when unknown) and an
// identifying name for the transfer.
type ProgressFunc func(copied int64, total int64, name string)

// Handler is the principal structure for all streaming file operations.
type Handler struct {
	FSOps   fsProvider
	OSOps   osProvider
	UnixOps unixProvider

	bufferSize int
}

// NewHandler returns a pointer to a new [Handler] using the default buffer
// size.
func NewHandler(fsOps fsProvider, osOps osProvider, unixOps unixProvider) *Handler {
	return &Handler{
		FSOps:      fsOps,
		OSOps:      osOps,
		UnixOps:    unixOps,
		bufferSize: defaultBufferSize,
	}
}

// WithBufferSize sets the streaming chunk size; sizes < 1 keep the default.
func (t *Handler) WithBufferSize(size int) *Handler {
	if size > 0 {
		t.bufferSize = size
	}

	return t
}

// validatePaths rejects empty or whitespace-only path arguments before any
// filesystem access happens.
func validatePaths(paths ...string) error {
	for _, path := range paths {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("(transfer) %w: empty path", ErrInvalidPath)
		}
	}

	return nil
}

//nolint:containedctx
type contextReader struct {
	ctx    context.Context
	reader io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	select {
	case <-cr.ctx.Done():
		return 0, context.Canceled
	default:
		return cr.reader.Read(p)
	}
}

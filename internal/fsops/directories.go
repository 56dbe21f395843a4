package fsops

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const defaultDirPerms = os.FileMode(0o755)

// EnsureDirectoryPath creates a directory and all of its missing ancestors.
// The call is idempotent: an already existing directory at any level is not
// an error.
func (f *Handler) EnsureDirectoryPath(path string) error {
	if err := f.OSOps.MkdirAll(path, defaultDirPerms); err != nil {
		return fmt.Errorf("(fsops-ensure) %w: %w", ErrDirectoryCreate, err)
	}

	return nil
}

// RemoveTree recursively removes a directory and all of its contents,
// children depth-first before their parent. Removal continues past individual
// failures so that as much as possible is cleaned up, but the first failure
// is recorded and returned rather than swallowed, so callers cannot mistake a
// partial removal for a complete one.
func (f *Handler) RemoveTree(path string) error {
	var firstErr error

	entries, err := f.OSOps.ReadDir(path)
	if err != nil {
		return fmt.Errorf("(fsops-remove) %w: %w", ErrDirectoryOpen, err)
	}

	for _, entry := range entries {
		entryPath := filepath.Join(path, entry.Name())

		if f.IsDirectory(entryPath) {
			if err := f.RemoveTree(entryPath); err != nil {
				slog.Warn("Warning (cleanup): failure removing subdirectory (continuing)",
					"path", entryPath,
					"err", err,
				)
				if firstErr == nil {
					firstErr = err
				}
			}

			continue
		}

		if err := f.OSOps.Remove(entryPath); err != nil {
			slog.Warn("Warning (cleanup): failure removing file (continuing)",
				"path", entryPath,
				"err", err,
			)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if err := f.OSOps.Remove(path); err != nil && firstErr == nil {
		firstErr = err
	}

	return firstErr
}

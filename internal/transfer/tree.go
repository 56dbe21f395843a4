package transfer

import (
	"context"
	"fmt"
	"path/filepath"

	"gocp/internal/fsops"
	"gocp/internal/pattern"
)

// CopyTree recursively copies a directory tree. The destination directory and
// its missing ancestors are created before enumeration. Subdirectories are
// recursed into unconditionally; files pass the pattern filter (when one is
// supplied) before being copied, and a filtered-out file is silently skipped.
// When a [Stats] accumulator is supplied, every traversed directory and every
// successfully copied file is recorded, with the destination size counted.
// The first hard failure of any entry aborts the entire walk and propagates;
// there is no partial-success mode.
//
// The source directory must already exist; CopyTree reports
// [fsops.ErrDirectoryOpen]-wrapped failures when it cannot be enumerated.
func (t *Handler) CopyTree(ctx context.Context, srcDir string, dstDir string, patterns *pattern.Set, stats *Stats, progress ProgressFunc) error {
	if err := validatePaths(srcDir, dstDir); err != nil {
		return err
	}

	if err := t.FSOps.EnsureDirectoryPath(dstDir); err != nil {
		return fmt.Errorf("(transfer) failed to ensure destination: %w", err)
	}

	if stats != nil {
		stats.AddDir()
	}

	entries, err := t.OSOps.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("(transfer) %w: %s: %w", fsops.ErrDirectoryOpen, srcDir, err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("(transfer) walk canceled: %w", err)
		}

		srcPath := filepath.Join(srcDir, entry.Name())
		dstPath := filepath.Join(dstDir, entry.Name())

		if t.FSOps.IsDirectory(srcPath) {
			if err := t.CopyTree(ctx, srcPath, dstPath, patterns, stats, progress); err != nil {
				return err
			}

			continue
		}

		if !patterns.ShouldInclude(entry.Name()) {
			continue
		}

		if err := t.CopyFile(ctx, srcPath, dstPath, progress); err != nil {
			return err
		}

		if stats != nil {
			if size, err := t.FSOps.Size(dstPath); err == nil {
				stats.AddFile(size)
			} else {
				stats.AddFile(0)
			}
		}
	}

	return nil
}

package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// resolveTarget returns the effective destination path for a file copy. When
// the destination names an existing directory, the source basename is
// appended; otherwise the destination is used verbatim.
func (t *Handler) resolveTarget(src string, dst string) string {
	if info, err := t.OSOps.Stat(dst); err == nil && info.IsDir() {
		return filepath.Join(dst, filepath.Base(src))
	}

	return dst
}

// CopyFile streams the source file's content to the destination in fixed-size
// chunks. When the destination names an existing directory, the file is
// created inside it under the source basename; otherwise the destination path
// is created or truncated verbatim. A progress notification is emitted after
// each chunk. After a full copy the source's permission bits are propagated
// onto the target best-effort: a propagation failure is logged, never
// escalated. Read, write and open failures abort the copy.
func (t *Handler) CopyFile(ctx context.Context, src string, dst string, progress ProgressFunc) error {
	if err := validatePaths(src, dst); err != nil {
		return err
	}

	var totalSize int64
	if size, err := t.FSOps.Size(src); err == nil {
		totalSize = size
	}

	srcFile, err := t.OSOps.Open(src)
	if err != nil {
		return fmt.Errorf("(transfer) %w: %w", ErrSourceOpen, err)
	}
	defer srcFile.Close()

	target := t.resolveTarget(src, dst)

	dstFile, err := t.OSOps.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("(transfer) %w: %w", ErrDestinationOpen, err)
	}
	defer dstFile.Close()

	reader := &contextReader{ctx: ctx, reader: srcFile}
	buffer := make([]byte, t.bufferSize)

	var copied int64

	for {
		n, readErr := reader.Read(buffer)
		if n > 0 {
			written, writeErr := dstFile.Write(buffer[:n])
			if writeErr != nil {
				return fmt.Errorf("(transfer) %w: %w", ErrWrite, writeErr)
			}
			if written != n {
				return fmt.Errorf("(transfer) %w: short write (%d != %d)", ErrWrite, written, n)
			}

			copied += int64(written)
			if progress != nil {
				progress(copied, totalSize, src)
			}
		}

		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return fmt.Errorf("(transfer) %w: %w", ErrRead, readErr)
		}
	}

	if info, err := srcFile.Stat(); err == nil {
		if err := t.UnixOps.Chmod(target, uint32(info.Mode().Perm())); err != nil {
			slog.Warn("Warning (copy): failure propagating permissions (kept copy)",
				"path", target,
				"err", err,
			)
		}
	}

	return nil
}

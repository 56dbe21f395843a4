package transfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sys/unix"
)

// isCrossDevice reports whether a rename failure means that source and
// destination reside on different storage volumes.
func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return errors.Is(linkErr.Err, unix.EXDEV)
	}

	return errors.Is(err, unix.EXDEV)
}

// MoveFile moves a single file, attempting an atomic rename first. When the
// rename fails because source and destination are on different volumes, the
// file is copied, the copy is byte-compared against the source and only then
// is the source deleted. A failed verification removes the bad copy and
// reports [ErrMoveVerification] with the source left untouched; a failed
// source removal after a verified copy reports [ErrMoveFailed] but retains
// the destination, so no data is lost. A rename failure for any other reason
// reports [ErrMoveFailed] without a fallback attempt.
func (t *Handler) MoveFile(ctx context.Context, src string, dst string) error {
	if err := validatePaths(src, dst); err != nil {
		return err
	}

	err := t.OSOps.Rename(src, dst)
	if err == nil {
		return nil
	}

	if !isCrossDevice(err) {
		return fmt.Errorf("(transfer) %w: %w", ErrMoveFailed, err)
	}

	target := t.resolveTarget(src, dst)

	if err := t.CopyFile(ctx, src, dst, nil); err != nil {
		return err
	}

	if err := t.Compare(ctx, src, target); err != nil {
		if removeErr := t.OSOps.Remove(target); removeErr != nil {
			slog.Warn("Warning (move): failure removing unverified copy",
				"path", target,
				"err", removeErr,
			)
		}

		return fmt.Errorf("(transfer) %w: %w", ErrMoveVerification, err)
	}

	if err := t.OSOps.Remove(src); err != nil {
		return fmt.Errorf("(transfer) %w: verified copy retained at %s: %w", ErrMoveFailed, target, err)
	}

	return nil
}

// MoveDirectory moves a directory tree, attempting an atomic rename first.
// The cross-device fallback recursively copies the tree, verifies every
// copied file against its source and only then removes the source tree.
// A failed verification removes the copied destination tree and reports
// [ErrMoveVerification] with the source left untouched; a source-removal
// failure after verification reports [ErrMoveFailed] but retains the
// destination.
func (t *Handler) MoveDirectory(ctx context.Context, src string, dst string) error {
	if err := validatePaths(src, dst); err != nil {
		return err
	}

	err := t.OSOps.Rename(src, dst)
	if err == nil {
		return nil
	}

	if !isCrossDevice(err) {
		return fmt.Errorf("(transfer) %w: %w", ErrMoveFailed, err)
	}

	if err := t.CopyTree(ctx, src, dst, nil, nil, nil); err != nil {
		return err
	}

	if err := t.CompareTree(ctx, src, dst); err != nil {
		if removeErr := t.FSOps.RemoveTree(dst); removeErr != nil {
			slog.Warn("Warning (move): failure removing unverified tree copy",
				"path", dst,
				"err", removeErr,
			)
		}

		return fmt.Errorf("(transfer) %w: %w", ErrMoveVerification, err)
	}

	if err := t.FSOps.RemoveTree(src); err != nil {
		return fmt.Errorf("(transfer) %w: verified copy retained at %s: %w", ErrMoveFailed, dst, err)
	}

	return nil
}

package transfer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
)

// Compare checks two files for byte-exact equality. Differing sizes report
// [ErrFilesDiffer] without reading any content; otherwise both files are
// streamed in lockstep, fixed-size chunks, and any length or byte mismatch
// reports [ErrFilesDiffer]. A nil return means the contents are identical.
func (t *Handler) Compare(ctx context.Context, pathA string, pathB string) error {
	sizeA, err := t.FSOps.Size(pathA)
	if err != nil {
		return fmt.Errorf("(transfer) %w: %w", ErrSourceOpen, err)
	}

	sizeB, err := t.FSOps.Size(pathB)
	if err != nil {
		return fmt.Errorf("(transfer) %w: %w", ErrDestinationOpen, err)
	}

	if sizeA != sizeB {
		return fmt.Errorf("(transfer) %w: size mismatch", ErrFilesDiffer)
	}

	fileA, err := t.OSOps.Open(pathA)
	if err != nil {
		return fmt.Errorf("(transfer) %w: %w", ErrSourceOpen, err)
	}
	defer fileA.Close()

	fileB, err := t.OSOps.Open(pathB)
	if err != nil {
		return fmt.Errorf("(transfer) %w: %w", ErrDestinationOpen, err)
	}
	defer fileB.Close()

	readerA := &contextReader{ctx: ctx, reader: fileA}
	readerB := &contextReader{ctx: ctx, reader: fileB}

	bufferA := make([]byte, t.bufferSize)
	bufferB := make([]byte, t.bufferSize)

	for {
		nA, errA := io.ReadFull(readerA, bufferA)
		if errA != nil && !errors.Is(errA, io.EOF) && !errors.Is(errA, io.ErrUnexpectedEOF) {
			return fmt.Errorf("(transfer) %w: %w", ErrRead, errA)
		}

		nB, errB := io.ReadFull(readerB, bufferB)
		if errB != nil && !errors.Is(errB, io.EOF) && !errors.Is(errB, io.ErrUnexpectedEOF) {
			return fmt.Errorf("(transfer) %w: %w", ErrRead, errB)
		}

		if nA != nB {
			return fmt.Errorf("(transfer) %w: length mismatch", ErrFilesDiffer)
		}

		if nA == 0 {
			return nil
		}

		if !bytes.Equal(bufferA[:nA], bufferB[:nB]) {
			return fmt.Errorf("(transfer) %w: content mismatch", ErrFilesDiffer)
		}

		if errA != nil || errB != nil {
			// Both streams hit EOF on an equal final chunk.
			return nil
		}
	}
}

// CompareTree recursively compares every file beneath a source directory
// against its counterpart in the destination directory. It serves as the
// verification step of a cross-device directory move before the source tree
// is deleted.
func (t *Handler) CompareTree(ctx context.Context, srcDir string, dstDir string) error {
	entries, err := t.OSOps.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("(transfer) failed to enumerate %s: %w", srcDir, err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(srcDir, entry.Name())
		dstPath := filepath.Join(dstDir, entry.Name())

		if t.FSOps.IsDirectory(srcPath) {
			if err := t.CompareTree(ctx, srcPath, dstPath); err != nil {
				return err
			}

			continue
		}

		if err := t.Compare(ctx, srcPath, dstPath); err != nil {
			return err
		}
	}

	return nil
}

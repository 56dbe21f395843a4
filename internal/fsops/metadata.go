package fsops

import (
	"fmt"
	"path/filepath"

	"gocp/internal/schema"

	"golang.org/x/sys/unix"
)

// Metadata takes a fresh [schema.Metadata] snapshot of a path. Symlinks are
// not followed, so that the snapshot describes the link itself.
func (f *Handler) Metadata(path string) (*schema.Metadata, error) {
	var stat unix.Stat_t

	if err := f.UnixOps.Lstat(path, &stat); err != nil {
		return nil, fmt.Errorf("(fsops-meta) failed to lstat: %w", err)
	}

	metadata := &schema.Metadata{
		Inode:      stat.Ino,
		Perms:      (uint32(stat.Mode) & 0o777),
		UID:        stat.Uid,
		GID:        stat.Gid,
		AccessedAt: stat.Atim,
		ModifiedAt: stat.Mtim,
		Size:       stat.Size,
		IsDir:      (stat.Mode & unix.S_IFMT) == unix.S_IFDIR,
		IsRegular:  (stat.Mode & unix.S_IFMT) == unix.S_IFREG,
		IsSymlink:  (stat.Mode & unix.S_IFMT) == unix.S_IFLNK,
	}

	if metadata.IsSymlink {
		symlinkTarget, err := f.OSOps.Readlink(path)
		if err != nil {
			return nil, fmt.Errorf("(fsops-meta) failed to read symlink: %w", err)
		}
		metadata.SymlinkTo = symlinkTarget
	}

	return metadata, nil
}

// Entries enumerates a directory and snapshots metadata for every entry.
// Entries whose metadata can no longer be taken are skipped, as the directory
// content can change between enumeration and the stat calls.
func (f *Handler) Entries(path string) ([]schema.Entry, error) {
	dirEntries, err := f.OSOps.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("(fsops-entries) %w: %w", ErrDirectoryOpen, err)
	}

	entries := make([]schema.Entry, 0, len(dirEntries))

	for _, dirEntry := range dirEntries {
		entryPath := filepath.Join(path, dirEntry.Name())

		metadata, err := f.Metadata(entryPath)
		if err != nil {
			continue
		}

		entries = append(entries, schema.Entry{
			Name:     dirEntry.Name(),
			Path:     entryPath,
			Metadata: metadata,
		})
	}

	return entries, nil
}

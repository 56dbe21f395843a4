package schema

import (
	"time"

	"golang.org/x/sys/unix"
)

// Metadata is a point-in-time snapshot of a filesystem path. It is re-queried
// for every operation and never mutated in place, as the underlying path can
// change between queries.
type Metadata struct {
	Inode      uint64
	Perms      uint32
	UID        uint32
	GID        uint32
	AccessedAt unix.Timespec
	ModifiedAt unix.Timespec
	Size       int64
	IsDir      bool
	IsRegular  bool
	IsSymlink  bool
	SymlinkTo  string
}

// ModTime returns the last modification time as a [time.Time].
func (m *Metadata) ModTime() time.Time {
	return time.Unix(m.ModifiedAt.Sec, m.ModifiedAt.Nsec)
}

// Entry is a single directory entry, pairing the entry name and its full path
// with the metadata snapshot taken at enumeration time.
type Entry struct {
	Name     string
	Path     string
	Metadata *Metadata
}

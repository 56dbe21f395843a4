package fsops

import "errors"

var (
	// ErrDirectoryCreate is an error that occurs when a directory, or one of
	// its missing ancestors, cannot be created for a reason other than
	// already existing.
	ErrDirectoryCreate = errors.New("failed to create directory")

	// ErrDirectoryOpen is an error that occurs when a directory cannot be
	// opened for enumeration of its entries.
	ErrDirectoryOpen = errors.New("failed to open directory")
)

package transfer

import "errors"

var (
	// ErrSourceOpen is an error that occurs when a source file cannot be
	// opened for reading.
	ErrSourceOpen = errors.New("failed to open source file")

	// ErrDestinationOpen is an error that occurs when a destination file
	// cannot be created or truncated for writing.
	ErrDestinationOpen = errors.New("failed to open destination file")

	// ErrRead is an error that occurs when reading from an already opened
	// file fails mid-stream.
	ErrRead = errors.New("failed to read file")

	// ErrWrite is an error that occurs when writing to the destination fails,
	// including a short write not matching the read length.
	ErrWrite = errors.New("failed to write file")

	// ErrInvalidPath is an error that occurs when a given path is empty or
	// otherwise unusable for the requested operation.
	ErrInvalidPath = errors.New("invalid path")

	// ErrMoveFailed is an error that occurs when an atomic move fails for a
	// reason other than crossing filesystem boundaries, or when the source
	// cannot be removed after an already verified cross-device copy. In the
	// latter case the destination copy is retained.
	ErrMoveFailed = errors.New("failed to move file or directory")

	// ErrMoveVerification is an error that occurs when the post-copy
	// verification of a cross-device move fails. The partial destination copy
	// is removed and the source is left untouched.
	ErrMoveVerification = errors.New("move verification failed")

	// ErrFilesDiffer is a comparison outcome, not a defect: two compared
	// files (or a file and an expected digest) do not hold the same content.
	ErrFilesDiffer = errors.New("files are different")
)

package block

import "errors"

var (
	// ErrOutOfBounds indicates an offset or range outside [0, size).
	ErrOutOfBounds = errors.New("block: out of bounds")

	// ErrInvalidArgument indicates a malformed range, a size/data mismatch,
	// or a zero-length write.
	ErrInvalidArgument = errors.New("block: invalid argument")

	// ErrValueNotByte indicates a single-byte write of a value outside [0, 255].
	ErrValueNotByte = errors.New("block: value not an unsigned byte")

	// ErrFileAccess indicates the underlying file could not be read or written.
	ErrFileAccess = errors.New("block: file access failed")
)

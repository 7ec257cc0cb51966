// Package gerrors defines the sentinel error values shared across the
// object store, decoder, ref resolver, and façade, per the five error
// kinds the core distinguishes: NotARepository, NotFound, Corrupt,
// Malformed (recovered locally, never surfaced), and IO (passed through
// unwrapped).
package gerrors

import "errors"

var (
	// ErrNotARepository is returned at Open time when the given path does
	// not look like a valid repository layout. Fatal at init.
	ErrNotARepository = errors.New("not a valid git repository")

	// ErrNotFound is returned when a requested hash, branch, tag, or path
	// does not exist. Always surfaced to the caller, never escalated.
	ErrNotFound = errors.New("not found")

	// ErrCorrupt is returned when an object's on-disk framing is
	// malformed: bad header, truncated payload, failed decompression, or
	// an invalid tree entry. A single corrupt object must not abort an
	// enclosing traversal.
	ErrCorrupt = errors.New("corrupt object")
)

package object

import "errors"

var (
	// ErrInvalid is returned when an object's kind is not one of the four
	// recognized kinds.
	ErrInvalid = errors.New("invalid object kind")

	// ErrTreeInvalid is returned when a tree's entries cannot be parsed.
	ErrTreeInvalid = errors.New("invalid tree object")

	// ErrCommitInvalid is returned when a commit's headers cannot be
	// parsed, or a required header is missing.
	ErrCommitInvalid = errors.New("invalid commit object")

	// ErrTagInvalid is returned when an annotated tag's headers cannot be
	// parsed.
	ErrTagInvalid = errors.New("invalid tag object")
)

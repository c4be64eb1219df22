package fsbox

import "errors"

// Error kinds shared by every package. Concrete errors wrap one of these, so
// callers branch with errors.Is.
var (
	// ErrAccessDenied means the path lies outside the allowed directories,
	// either nominally or once symlinks are followed.
	ErrAccessDenied = errors.New("access denied")

	// ErrNotFound means a path, or the parent of a path to be created, does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrEditMismatch means an edit's old text matched neither exactly nor
	// line-by-line with whitespace tolerance.
	ErrEditMismatch = errors.New("edit mismatch")

	// ErrIOFailure covers read, write, stat and rename errors not described
	// by the other kinds.
	ErrIOFailure = errors.New("io failure")
)

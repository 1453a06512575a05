package anchor

import "errors"

// Sentinel errors for anchor location.
var (
	// ErrAnchorNotFound indicates a required marker pair is absent from the
	// file; the user likely removed or renamed the sentinel comment.
	ErrAnchorNotFound = errors.New("anchor: marker not found")

	// ErrAnchorAmbiguous indicates a marker occurs more than once.
	ErrAnchorAmbiguous = errors.New("anchor: marker is ambiguous")
)

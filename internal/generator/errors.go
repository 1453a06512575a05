// Package generator orchestrates incremental code generation against an
// existing mold project: rendering new files, wiring them into the shared
// route table and server configuration through the mutation engine, and
// recording the change in the project manifest. The manifest is only
// updated after every file write for a request has succeeded.
package generator

import "errors"

// Sentinel errors for generation requests.
var (
	// ErrInvalidResourceName indicates the name cannot be used as a Go
	// package and route segment.
	ErrInvalidResourceName = errors.New("generator: invalid resource name")

	// ErrReservedName indicates the name collides with a directory the
	// scaffolded project already owns.
	ErrReservedName = errors.New("generator: name is reserved")

	// ErrFileExists indicates a rendered file's destination already exists.
	ErrFileExists = errors.New("generator: destination file already exists")
)

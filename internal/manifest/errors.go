// Package manifest owns the project marker file (mold.yaml). It records
// which resources and features have been generated so repeated invocations
// are idempotent. All reads and writes of the marker file go through Store;
// no other package persists project state.
package manifest

import "errors"

// Sentinel errors for manifest operations.
var (
	// ErrNotAProject indicates no mold.yaml exists at the given root.
	ErrNotAProject = errors.New("manifest: not a mold project (mold.yaml not found)")

	// ErrResourceExists indicates the resource name is already registered.
	ErrResourceExists = errors.New("manifest: resource already generated")

	// ErrInvalidManifest indicates mold.yaml exists but could not be parsed.
	ErrInvalidManifest = errors.New("manifest: invalid mold.yaml")
)

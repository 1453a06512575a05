// Package scaffold creates new mold projects: it extracts the embedded
// project template tree, renders .tmpl files, writes the initial marker
// file, and leaves the anchor comments in place so the first
// "mold generate" invocation succeeds.
package scaffold

import "errors"

// Sentinel errors for project scaffolding.
var (
	// ErrProjectExists indicates the target directory already holds a mold.yaml.
	ErrProjectExists = errors.New("scaffold: project already scaffolded")

	// ErrFileExists indicates a template destination file already exists.
	ErrFileExists = errors.New("scaffold: destination file already exists")

	// ErrPathTraversal indicates a template path escapes the project root.
	ErrPathTraversal = errors.New("scaffold: template path escapes project root")

	// ErrInvalidName indicates a project name unusable as a directory name.
	ErrInvalidName = errors.New("scaffold: invalid project name")
)

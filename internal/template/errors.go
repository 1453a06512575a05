// Package template renders the embedded project, resource, and auth
// templates with strict mode enabled. Rendering is pure: the same template
// name and context always produce identical bytes, which the mutation
// engine's idempotence check depends on.
package template

import "errors"

// Sentinel errors for template rendering.
var (
	// ErrTemplateNotFound indicates the named template does not exist in
	// the embedded filesystem. This is a defect in the tool, not user error.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates the context lacks a key the template
	// references (missingkey=error).
	ErrMissingTemplateKey = errors.New("template: missing context key")

	// ErrUnexpandedToken indicates rendered output still contains a
	// template-style token, meaning a substitution silently failed.
	ErrUnexpandedToken = errors.New("template: unexpanded token in output")
)

package manifest

import (
	"fmt"
	"slices"
)

// ProjectInfo identifies the scaffolded project.
type ProjectInfo struct {
	Name   string `yaml:"name"`
	Module string `yaml:"module"`
}

// Manifest is the persisted record of a project's scaffolding history.
// The schema is additive-only: keys this version does not know about are
// captured in Extra on load and written back unchanged on save, so the file
// stays parseable across tool versions in both directions.
type Manifest struct {
	Project   ProjectInfo `yaml:"project"`
	Version   string      `yaml:"version"`
	CreatedAt string      `yaml:"created_at"`
	Resources []string    `yaml:"resources"`
	Features  []string    `yaml:"features"`

	Extra map[string]any `yaml:",inline"`
}

// New creates a Manifest for a freshly scaffolded project.
func New(name, module, toolVersion, createdAt string) *Manifest {
	return &Manifest{
		Project:   ProjectInfo{Name: name, Module: module},
		Version:   toolVersion,
		CreatedAt: createdAt,
		Resources: []string{},
		Features:  []string{},
	}
}

// HasResource reports whether the named resource is already registered.
func (m *Manifest) HasResource(name string) bool {
	return slices.Contains(m.Resources, name)
}

// HasFeature reports whether the named feature is enabled.
func (m *Manifest) HasFeature(name string) bool {
	return slices.Contains(m.Features, name)
}

// RegisterResource appends name to the generated-resource list.
// Returns ErrResourceExists when the name is already present; the caller
// decides whether that is fatal or a skip.
func (m *Manifest) RegisterResource(name string) error {
	if m.HasResource(name) {
		return fmt.Errorf("%w: %s", ErrResourceExists, name)
	}
	m.Resources = append(m.Resources, name)
	return nil
}

// RegisterFeature enables a feature flag. Enabling an already-enabled
// feature is a no-op, not an error, so "ensure auth is on" is always safe.
func (m *Manifest) RegisterFeature(name string) {
	if m.HasFeature(name) {
		return
	}
	m.Features = append(m.Features, name)
}

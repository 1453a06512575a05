package manifest

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/moldgen/mold/internal/defs"
	"github.com/moldgen/mold/internal/fsutil"
)

// Store reads and writes mold.yaml at a project root.
type Store struct {
	logger *slog.Logger
}

// NewStore creates a Store. A nil logger discards log output.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{logger: logger}
}

// Path returns the manifest file path for a project root.
func (s *Store) Path(root string) string {
	return filepath.Join(filepath.Clean(root), defs.ManifestFile)
}

// Load reads the manifest from the project root.
// Returns ErrNotAProject when no mold.yaml exists; this is the gate that
// keeps generators from running outside a scaffolded project.
func (s *Store) Load(root string) (*Manifest, error) {
	path := s.Path(root)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotAProject, root)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	if m.Resources == nil {
		m.Resources = []string{}
	}
	if m.Features == nil {
		m.Features = []string{}
	}

	s.logger.Debug("manifest loaded",
		"project", m.Project.Name,
		"resources", len(m.Resources),
		"features", len(m.Features),
	)
	return &m, nil
}

// Save persists the manifest atomically: marshal, write to a temp file in
// the same directory, then rename over the target. A crash mid-write never
// leaves a corrupt mold.yaml behind.
func (s *Store) Save(root string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	return fsutil.WriteFileAtomic(s.Path(root), data, defs.FilePerm)
}

package generator

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/moldgen/mold/internal/defs"
	"github.com/moldgen/mold/internal/manifest"
	"github.com/moldgen/mold/internal/mutate"
	"github.com/moldgen/mold/internal/template"
)

// Generator renders new files and applies mutation batches for one project.
type Generator struct {
	store    *manifest.Store
	renderer template.Renderer
	version  string
	logger   *slog.Logger
}

// New creates a Generator. A nil logger discards log output.
func New(store *manifest.Store, renderer template.Renderer, version string, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{
		store:    store,
		renderer: renderer,
		version:  version,
		logger:   logger,
	}
}

// renderedFile is one new file produced by a generation request.
type renderedFile struct {
	path    string // relative to the project root
	content []byte
}

// resourceNamePattern restricts resource names to valid lowercase Go
// package identifiers.
var resourceNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// reservedNames are directory names the scaffolded tree already owns plus
// identifiers the route table binds in its anchored scopes (the gin import,
// the engine parameter, the api group). A resource with one of these names
// would shadow or collide with them in the generated wiring.
var reservedNames = []string{
	"server", "routes", "handlers", "middleware", "internal", "main",
	"api", "engine", "gin",
}

// validateResourceName checks a resource name for package and path use.
func validateResourceName(name string) error {
	if !resourceNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q (must match %s)", ErrInvalidResourceName, name, resourceNamePattern)
	}
	if slices.Contains(reservedNames, name) {
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	}
	return nil
}

// render produces one renderedFile from a named template.
func (g *Generator) render(tmplName, destPath string, ctx *template.Context) (renderedFile, error) {
	content, err := g.renderer.Render(tmplName, ctx)
	if err != nil {
		return renderedFile{}, err
	}
	return renderedFile{path: destPath, content: content}, nil
}

// commit applies one generation request's file writes as a unit:
// the mutation batch is planned first (no writes), new files are then
// written, and finally the planned mutations are committed. Any failure
// rolls back files created by this invocation and leaves the manifest
// untouched, so the project is never left with a rendered file that
// nothing references.
func (g *Generator) commit(root string, files []renderedFile, batch *mutate.Batch, force bool) (created, mutated []string, err error) {
	for _, f := range files {
		abs := filepath.Join(root, filepath.FromSlash(f.path))
		if _, statErr := os.Stat(abs); statErr == nil && !force {
			return nil, nil, fmt.Errorf("%w: %s", ErrFileExists, f.path)
		}
	}

	results, err := batch.Plan()
	if err != nil {
		return nil, nil, err
	}

	for _, f := range files {
		abs := filepath.Join(root, filepath.FromSlash(f.path))
		if err := os.MkdirAll(filepath.Dir(abs), defs.DirPerm); err != nil {
			g.rollback(root, created)
			return nil, nil, fmt.Errorf("mkdir for %s: %w", f.path, err)
		}
		if err := os.WriteFile(abs, f.content, defs.FilePerm); err != nil {
			g.rollback(root, created)
			return nil, nil, fmt.Errorf("write %s: %w", f.path, err)
		}
		created = append(created, f.path)
	}

	mutated, err = batch.Commit()
	if err != nil {
		g.rollback(root, created)
		return nil, nil, err
	}

	for _, r := range results {
		g.logger.Debug("mutation applied",
			"file", r.Op.Path,
			"block", r.Op.Block,
			"outcome", r.Outcome.String(),
		)
	}
	return created, mutated, nil
}

// rollback removes files created earlier in a failed invocation. Pre-existing
// files are never touched; only paths this request wrote are removed.
func (g *Generator) rollback(root string, created []string) {
	for _, rel := range created {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.Remove(abs); err != nil {
			g.logger.Warn("rollback failed", "file", rel, "error", err)
			continue
		}
		// Drop now-empty parent directories this request introduced.
		_ = removeEmptyParents(root, filepath.Dir(abs))
	}
}

// removeEmptyParents removes empty directories from dir up to root.
func removeEmptyParents(root, dir string) error {
	root = filepath.Clean(root)
	for dir != root && len(dir) > len(root) {
		entries, err := os.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			return err
		}
		if err := os.Remove(dir); err != nil {
			return err
		}
		dir = filepath.Dir(dir)
	}
	return nil
}

package scaffold

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/moldgen/mold/internal/defs"
	"github.com/moldgen/mold/internal/manifest"
	"github.com/moldgen/mold/internal/template"
)

// Options configures a new-project scaffold.
type Options struct {
	Dir     string // Target directory, created if absent.
	Name    string // Project name; defaults to the directory base name.
	Module  string // Go module path of the generated service.
	Port    int    // HTTP listen port baked into the server template.
	Version string // Tool version recorded in the manifest.
	Force   bool   // Overwrite files that already exist at destinations.
}

// Result summarizes the outcome of scaffolding.
type Result struct {
	CreatedDirs  []string
	CreatedFiles []string
}

// Scaffolder extracts the embedded project tree into a target directory and
// writes the initial manifest.
type Scaffolder struct {
	fsys     fs.FS
	renderer template.Renderer
	store    *manifest.Store
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a Scaffolder. A nil logger discards log output.
func New(fsys fs.FS, renderer template.Renderer, store *manifest.Store, logger *slog.Logger) *Scaffolder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scaffolder{
		fsys:     fsys,
		renderer: renderer,
		store:    store,
		logger:   logger,
		now:      time.Now,
	}
}

// Scaffold creates the project tree described by opts.
func (s *Scaffolder) Scaffold(ctx context.Context, opts Options) (*Result, error) {
	opts.Dir = filepath.Clean(opts.Dir)
	if opts.Name == "" {
		opts.Name = filepath.Base(opts.Dir)
	}
	if err := validateName(opts.Name); err != nil {
		return nil, err
	}
	if opts.Module == "" {
		opts.Module = opts.Name
	}

	// Refuse to re-scaffold a tracked project; generators own it from here.
	if _, err := s.store.Load(opts.Dir); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrProjectExists, opts.Dir)
	}

	s.logger.Info("scaffolding project",
		"dir", opts.Dir,
		"name", opts.Name,
		"module", opts.Module,
	)

	result := &Result{}
	if err := os.MkdirAll(opts.Dir, defs.DirPerm); err != nil {
		return nil, fmt.Errorf("create project directory %q: %w", opts.Dir, err)
	}

	tmplCtx := template.NewContext(
		template.WithProject(opts.Name, opts.Module),
		template.WithPort(opts.Port),
		template.WithVersion(opts.Version),
		template.WithCreatedAt(s.now().UTC().Format(time.RFC3339)),
	)

	if err := s.deployTree(ctx, opts, tmplCtx, result); err != nil {
		return nil, err
	}

	m := manifest.New(opts.Name, opts.Module, opts.Version, tmplCtx.CreatedAt)
	if err := s.store.Save(opts.Dir, m); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}
	result.CreatedFiles = append(result.CreatedFiles, defs.ManifestFile)

	s.logger.Info("project scaffolded",
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
	)
	return result, nil
}

// deployTree walks the embedded project templates and writes each file to
// the target directory, rendering .tmpl files with the given context.
func (s *Scaffolder) deployTree(ctx context.Context, opts Options, tmplCtx *template.Context, result *Result) error {
	return fs.WalkDir(s.fsys, template.ProjectTemplateDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Check context cancellation before each file
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rel := strings.TrimPrefix(path, template.ProjectTemplateDir+"/")
		if path == template.ProjectTemplateDir {
			return nil
		}

		if entry.IsDir() {
			dirPath := filepath.Join(opts.Dir, filepath.FromSlash(rel))
			if err := os.MkdirAll(dirPath, defs.DirPerm); err != nil {
				return fmt.Errorf("mkdir %s: %w", rel, err)
			}
			result.CreatedDirs = append(result.CreatedDirs, rel)
			return nil
		}

		var content []byte
		destRel := rel
		if before, isTemplate := strings.CutSuffix(rel, ".tmpl"); isTemplate {
			destRel = before
			rendered, renderErr := s.renderer.Render(path, tmplCtx)
			if renderErr != nil {
				return fmt.Errorf("render %q: %w", path, renderErr)
			}
			content = rendered
		} else {
			raw, readErr := fs.ReadFile(s.fsys, path)
			if readErr != nil {
				return fmt.Errorf("read template %q: %w", path, readErr)
			}
			content = raw
		}

		if err := validateDestPath(opts.Dir, destRel); err != nil {
			return err
		}

		destPath := filepath.Join(opts.Dir, filepath.FromSlash(destRel))
		if !opts.Force {
			if _, statErr := os.Stat(destPath); statErr == nil {
				return fmt.Errorf("%w: %s", ErrFileExists, destRel)
			}
		}

		if err := os.MkdirAll(filepath.Dir(destPath), defs.DirPerm); err != nil {
			return fmt.Errorf("mkdir for %s: %w", destRel, err)
		}
		if err := os.WriteFile(destPath, content, defs.FilePerm); err != nil {
			return fmt.Errorf("write %s: %w", destRel, err)
		}

		result.CreatedFiles = append(result.CreatedFiles, destRel)
		s.logger.Debug("file scaffolded", "file", destRel)
		return nil
	})
}

// validateName rejects names unusable as directory or identifier stems.
func validateName(name string) error {
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if strings.ContainsAny(name, "/\\ ") {
		return fmt.Errorf("%w: %q must not contain separators or spaces", ErrInvalidName, name)
	}
	return nil
}

// validateDestPath ensures a template path does not escape the project root.
func validateDestPath(root, rel string) error {
	cleaned := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, rel)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, rel)
	}
	return nil
}

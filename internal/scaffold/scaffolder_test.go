package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/moldgen/mold/internal/manifest"
	"github.com/moldgen/mold/internal/template"
)

func newScaffolder(t *testing.T) *Scaffolder {
	t.Helper()
	fsys, err := template.Embedded()
	if err != nil {
		t.Fatalf("Embedded error: %v", err)
	}
	return New(fsys, template.NewRenderer(fsys), manifest.NewStore(nil), nil)
}

func TestScaffold(t *testing.T) {
	t.Run("creates_project_tree", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "blog")
		s := newScaffolder(t)

		result, err := s.Scaffold(context.Background(), Options{
			Dir:     dir,
			Name:    "blog",
			Module:  "example.com/blog",
			Port:    9000,
			Version: "v0.4.1",
		})
		if err != nil {
			t.Fatalf("Scaffold error: %v", err)
		}

		for _, rel := range []string{
			"go.mod",
			"main.go",
			"internal/server/server.go",
			"internal/routes/routes.go",
			"internal/handlers/health.go",
			"README.md",
			".gitignore",
			"mold.yaml",
		} {
			if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel))); err != nil {
				t.Errorf("expected %s to exist: %v", rel, err)
			}
		}
		if len(result.CreatedFiles) < 8 {
			t.Errorf("CreatedFiles = %v, want at least 8 entries", result.CreatedFiles)
		}

		routes, err := os.ReadFile(filepath.Join(dir, "internal", "routes", "routes.go"))
		if err != nil {
			t.Fatal(err)
		}
		for _, marker := range []string{
			"// mold:begin route-imports",
			"// mold:end route-imports",
			"// mold:begin routes",
			"// mold:end routes",
		} {
			if !strings.Contains(string(routes), marker) {
				t.Errorf("routes.go missing marker %q", marker)
			}
		}

		server, err := os.ReadFile(filepath.Join(dir, "internal", "server", "server.go"))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(server), "// mold:begin middleware") {
			t.Error("server.go missing middleware marker")
		}
		if !strings.Contains(string(server), `return "9000"`) {
			t.Error("server.go did not render the configured port")
		}

		gomod, err := os.ReadFile(filepath.Join(dir, "go.mod"))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(gomod), "module example.com/blog") {
			t.Errorf("go.mod did not render the module path:\n%s", gomod)
		}
	})

	t.Run("writes_manifest", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "shop")
		s := newScaffolder(t)

		if _, err := s.Scaffold(context.Background(), Options{Dir: dir, Module: "example.com/shop", Version: "v0.4.1"}); err != nil {
			t.Fatalf("Scaffold error: %v", err)
		}

		m, err := manifest.NewStore(nil).Load(dir)
		if err != nil {
			t.Fatalf("Load manifest error: %v", err)
		}
		if m.Project.Name != "shop" || m.Project.Module != "example.com/shop" {
			t.Errorf("manifest project = %+v", m.Project)
		}
		if m.Version != "v0.4.1" {
			t.Errorf("manifest version = %q, want v0.4.1", m.Version)
		}
		if len(m.Resources) != 0 || len(m.Features) != 0 {
			t.Errorf("fresh manifest not empty: %+v", m)
		}
	})

	t.Run("existing_project_rejected", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "blog")
		s := newScaffolder(t)

		if _, err := s.Scaffold(context.Background(), Options{Dir: dir, Module: "example.com/blog"}); err != nil {
			t.Fatalf("first Scaffold error: %v", err)
		}
		_, err := s.Scaffold(context.Background(), Options{Dir: dir, Module: "example.com/blog"})
		if !errors.Is(err, ErrProjectExists) {
			t.Fatalf("expected ErrProjectExists, got: %v", err)
		}
	})

	t.Run("file_collision_without_force", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "blog")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		s := newScaffolder(t)
		_, err := s.Scaffold(context.Background(), Options{Dir: dir, Module: "example.com/blog"})
		if !errors.Is(err, ErrFileExists) {
			t.Fatalf("expected ErrFileExists, got: %v", err)
		}
	})

	t.Run("invalid_name", func(t *testing.T) {
		s := newScaffolder(t)
		_, err := s.Scaffold(context.Background(), Options{Dir: t.TempDir(), Name: "my app"})
		if !errors.Is(err, ErrInvalidName) {
			t.Fatalf("expected ErrInvalidName, got: %v", err)
		}
	})

	t.Run("cancelled_context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		s := newScaffolder(t)
		_, err := s.Scaffold(ctx, Options{Dir: filepath.Join(t.TempDir(), "blog"), Module: "example.com/blog"})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got: %v", err)
		}
	})
}

package mutate

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/moldgen/mold/internal/anchor"
)

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

const routesFile = `package routes

import (
	// mold:begin route-imports
	// mold:end route-imports
)

func Register(api *gin.RouterGroup) {
	// mold:begin routes
	// mold:end routes
}
`

func TestBatchPlanCommit(t *testing.T) {
	t.Run("two_ops_one_file", func(t *testing.T) {
		root := t.TempDir()
		path := writeFile(t, root, "internal/routes/routes.go", routesFile)

		b := NewBatch(root, nil)
		b.Add(Op{
			Path:    "internal/routes/routes.go",
			Block:   "route-imports",
			Snippet: `post "example.com/blog/internal/post"`,
			Key:     "post",
		})
		b.Add(Op{
			Path:    "internal/routes/routes.go",
			Block:   "routes",
			Snippet: "post.Register(api)",
			Key:     "post",
		})

		results, err := b.Plan()
		if err != nil {
			t.Fatalf("Plan error: %v", err)
		}
		for _, r := range results {
			if r.Outcome != OutcomeInserted {
				t.Errorf("op %v outcome = %v, want inserted", r.Op.Block, r.Outcome)
			}
		}

		written, err := b.Commit()
		if err != nil {
			t.Fatalf("Commit error: %v", err)
		}
		if len(written) != 1 {
			t.Fatalf("written = %v, want one file", written)
		}

		got := readFile(t, path)
		if !strings.Contains(got, `post "example.com/blog/internal/post"`) {
			t.Errorf("import not inserted:\n%s", got)
		}
		if !strings.Contains(got, "post.Register(api)") {
			t.Errorf("registration not inserted:\n%s", got)
		}

		// Commit writes through temp file + rename; nothing may linger.
		entries, err := os.ReadDir(filepath.Dir(path))
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if strings.HasSuffix(e.Name(), ".tmp") {
				t.Errorf("temp file left behind by commit: %s", e.Name())
			}
		}
	})

	t.Run("failing_second_op_writes_nothing", func(t *testing.T) {
		root := t.TempDir()
		first := writeFile(t, root, "internal/routes/routes.go", routesFile)
		// Server file without any middleware markers.
		second := writeFile(t, root, "internal/server/server.go", "package server\n")

		b := NewBatch(root, nil)
		b.Add(Op{Path: "internal/routes/routes.go", Block: "routes", Snippet: "post.Register(api)", Key: "post"})
		b.Add(Op{Path: "internal/server/server.go", Block: "middleware", Snippet: "engine.Use(middleware.JWT())", Key: "middleware"})

		if _, err := b.Plan(); !errors.Is(err, anchor.ErrAnchorNotFound) {
			t.Fatalf("expected ErrAnchorNotFound, got: %v", err)
		}

		if got := readFile(t, first); got != routesFile {
			t.Error("first target modified despite failed batch")
		}
		if got := readFile(t, second); got != "package server\n" {
			t.Error("second target modified despite failed batch")
		}
	})

	t.Run("missing_target_file", func(t *testing.T) {
		b := NewBatch(t.TempDir(), nil)
		b.Add(Op{Path: "internal/routes/routes.go", Block: "routes", Snippet: "x", Key: "x"})

		if _, err := b.Plan(); !errors.Is(err, ErrTargetMissing) {
			t.Fatalf("expected ErrTargetMissing, got: %v", err)
		}
	})

	t.Run("all_present_batch_leaves_zero_diffs", func(t *testing.T) {
		content := "// mold:begin routes\npost.Register(api)\n// mold:end routes\n"
		root := t.TempDir()
		path := writeFile(t, root, "routes.go", content)

		b := NewBatch(root, nil)
		b.Add(Op{Path: "routes.go", Block: "routes", Snippet: "post.Register(api)", Key: "post"})

		results, err := b.Plan()
		if err != nil {
			t.Fatalf("Plan error: %v", err)
		}
		if results[0].Outcome != OutcomeAlreadyPresent {
			t.Fatalf("outcome = %v, want already-present", results[0].Outcome)
		}

		written, err := b.Commit()
		if err != nil {
			t.Fatalf("Commit error: %v", err)
		}
		if len(written) != 0 {
			t.Errorf("written = %v, want none", written)
		}
		if got := readFile(t, path); got != content {
			t.Error("file changed for already-present batch")
		}
	})

	t.Run("commit_without_plan_fails", func(t *testing.T) {
		b := NewBatch(t.TempDir(), nil)
		b.Add(Op{Path: "routes.go", Block: "routes", Snippet: "x", Key: "x"})
		if _, err := b.Commit(); err == nil {
			t.Fatal("expected error committing unplanned batch")
		}
	})
}

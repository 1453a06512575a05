package generator

import (
	"fmt"
	"path"

	"github.com/moldgen/mold/internal/defs"
	"github.com/moldgen/mold/internal/mutate"
	"github.com/moldgen/mold/internal/template"
)

// jwtDependency is the module line added to the generated project's go.mod
// when auth is scaffolded.
const jwtDependency = "github.com/golang-jwt/jwt/v5 v5.3.0"

// Auth scaffolds JWT authentication into the project at root: middleware and
// claims files under internal/middleware/, the middleware installed in the
// server configuration, and the jwt dependency added to the generated
// go.mod. The feature flag is idempotent; a second invocation reports
// OutcomeSkipped and changes nothing.
func (g *Generator) Auth(root string, force bool) (*Result, error) {
	m, err := g.store.Load(root)
	if err != nil {
		return nil, err
	}

	if m.HasFeature(defs.FeatureAuth) && !force {
		g.logger.Info("auth already enabled")
		return &Result{Outcome: OutcomeSkipped, Name: defs.FeatureAuth}, nil
	}

	ctx := template.NewContext(
		template.WithProject(m.Project.Name, m.Project.Module),
		template.WithSecretEnv(defs.JWTSecretEnv),
		template.WithVersion(g.version),
	)

	dir := path.Join("internal", "middleware")
	var files []renderedFile
	for _, pair := range []struct{ tmpl, dest string }{
		{template.AuthMiddlewareTmpl, path.Join(dir, "auth.go")},
		{template.AuthClaimsTmpl, path.Join(dir, "claims.go")},
	} {
		f, err := g.render(pair.tmpl, pair.dest, ctx)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", pair.dest, err)
		}
		files = append(files, f)
	}

	batch := mutate.NewBatch(root, g.logger)
	batch.Add(mutate.Op{
		Path:    defs.ServerFile,
		Block:   defs.BlockServerImports,
		Snippet: fmt.Sprintf("%q", m.Project.Module+"/internal/middleware"),
		Key:     `/internal/middleware"`,
	})
	batch.Add(mutate.Op{
		Path:    defs.ServerFile,
		Block:   defs.BlockMiddleware,
		Snippet: "engine.Use(middleware.JWT())",
		Key:     "middleware.JWT(",
	})
	batch.Add(mutate.Op{
		Path:    "go.mod",
		Block:   defs.BlockDeps,
		Snippet: jwtDependency,
		Key:     "golang-jwt",
	})

	created, mutated, err := g.commit(root, files, batch, force)
	if err != nil {
		return nil, fmt.Errorf("generate auth: %w", err)
	}

	if !m.HasFeature(defs.FeatureAuth) {
		m.RegisterFeature(defs.FeatureAuth)
		if err := g.store.Save(root, m); err != nil {
			return nil, fmt.Errorf("update manifest: %w", err)
		}
	}

	g.logger.Info("auth generated",
		"created", len(created),
		"mutated", len(mutated),
	)
	return &Result{
		Outcome:      OutcomeDone,
		Name:         defs.FeatureAuth,
		CreatedFiles: created,
		MutatedFiles: mutated,
	}, nil
}

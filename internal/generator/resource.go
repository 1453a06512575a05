package generator

import (
	"fmt"
	"path"

	"github.com/moldgen/mold/internal/defs"
	"github.com/moldgen/mold/internal/mutate"
	"github.com/moldgen/mold/internal/template"
)

// Resource generates a CRUD resource into the project at root: new model,
// handler, and route files under internal/<name>/, plus insertions wiring
// the resource into the shared route table. Re-running for a registered
// name reports OutcomeSkipped unless force is set.
func (g *Generator) Resource(root, name string, force bool) (*Result, error) {
	m, err := g.store.Load(root)
	if err != nil {
		return nil, err
	}

	if err := validateResourceName(name); err != nil {
		return nil, err
	}

	if m.HasResource(name) && !force {
		g.logger.Info("resource already generated", "resource", name)
		return &Result{Outcome: OutcomeSkipped, Name: name}, nil
	}

	ctx := template.NewContext(
		template.WithProject(m.Project.Name, m.Project.Module),
		template.WithResource(name),
		template.WithVersion(g.version),
	)

	dir := path.Join("internal", name)
	var files []renderedFile
	for _, pair := range []struct{ tmpl, dest string }{
		{template.ResourceModelTmpl, path.Join(dir, "model.go")},
		{template.ResourceHandlerTmpl, path.Join(dir, "handler.go")},
		{template.ResourceRoutesTmpl, path.Join(dir, "routes.go")},
	} {
		f, err := g.render(pair.tmpl, pair.dest, ctx)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", pair.dest, err)
		}
		files = append(files, f)
	}

	// Keys carry surrounding syntax so a resource name that also occurs as
	// an argument or path token in existing lines never suppresses the
	// insertion.
	batch := mutate.NewBatch(root, g.logger)
	batch.Add(mutate.Op{
		Path:    defs.RouteTableFile,
		Block:   defs.BlockRouteImports,
		Snippet: fmt.Sprintf("%q", m.Project.Module+"/internal/"+name),
		Key:     `/internal/` + name + `"`,
	})
	batch.Add(mutate.Op{
		Path:    defs.RouteTableFile,
		Block:   defs.BlockRoutes,
		Snippet: name + ".Register(api)",
		Key:     name + ".Register(",
	})

	created, mutated, err := g.commit(root, files, batch, force)
	if err != nil {
		return nil, fmt.Errorf("generate resource %s: %w", name, err)
	}

	if !m.HasResource(name) {
		if err := m.RegisterResource(name); err != nil {
			return nil, err
		}
		if err := g.store.Save(root, m); err != nil {
			return nil, fmt.Errorf("update manifest: %w", err)
		}
	}

	g.logger.Info("resource generated",
		"resource", name,
		"created", len(created),
		"mutated", len(mutated),
	)
	return &Result{
		Outcome:      OutcomeDone,
		Name:         name,
		CreatedFiles: created,
		MutatedFiles: mutated,
	}, nil
}

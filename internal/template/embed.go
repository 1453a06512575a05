package template

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed all:templates
var embeddedFS embed.FS

// Embedded returns the embedded template filesystem rooted at templates/.
func Embedded() (fs.FS, error) {
	sub, err := fs.Sub(embeddedFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("open embedded templates: %w", err)
	}
	return sub, nil
}

// Template names for new-file emission. Project templates map 1:1 onto
// their destination paths with the .tmpl suffix stripped; resource and auth
// templates are placed by the generator.
const (
	// Resource templates, rendered into internal/<name>/.
	ResourceModelTmpl   = "resource/model.go.tmpl"
	ResourceHandlerTmpl = "resource/handler.go.tmpl"
	ResourceRoutesTmpl  = "resource/routes.go.tmpl"

	// Auth templates, rendered into internal/middleware/.
	AuthMiddlewareTmpl = "auth/middleware.go.tmpl"
	AuthClaimsTmpl     = "auth/claims.go.tmpl"
)

// ProjectTemplateDir is the subdirectory holding the new-project tree.
const ProjectTemplateDir = "project"

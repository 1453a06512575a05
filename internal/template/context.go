package template

// Context provides data for template rendering. All fields are exported for
// use with Go's text/template package. Two invocations with equal Context
// values render byte-identical output; nothing time- or host-dependent may
// be added here without flowing through the constructor explicitly.
type Context struct {
	// Project
	ProjectName string
	Module      string
	Port        int

	// Resource being generated, empty for project and auth templates.
	Resource string

	// Auth
	SecretEnv string

	// Meta
	Version   string // mold version that rendered the template
	CreatedAt string // ISO 8601 timestamp chosen by the caller
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// NewContext creates a Context with defaults, then applies options.
func NewContext(opts ...ContextOption) *Context {
	ctx := &Context{
		Port: 8080,
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// WithProject sets project name and module path.
func WithProject(name, module string) ContextOption {
	return func(c *Context) {
		c.ProjectName = name
		c.Module = module
	}
}

// WithPort sets the HTTP listen port for the generated service.
func WithPort(port int) ContextOption {
	return func(c *Context) {
		if port > 0 {
			c.Port = port
		}
	}
}

// WithResource sets the resource name for resource templates.
func WithResource(name string) ContextOption {
	return func(c *Context) {
		c.Resource = name
	}
}

// WithSecretEnv sets the environment variable name the generated middleware
// reads its JWT secret from.
func WithSecretEnv(name string) ContextOption {
	return func(c *Context) {
		c.SecretEnv = name
	}
}

// WithVersion sets the mold version.
func WithVersion(version string) ContextOption {
	return func(c *Context) {
		c.Version = version
	}
}

// WithCreatedAt sets the project creation timestamp.
func WithCreatedAt(timestamp string) ContextOption {
	return func(c *Context) {
		c.CreatedAt = timestamp
	}
}

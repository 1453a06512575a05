// Package defs holds file names, marker blocks, and permission constants
// shared across mold packages.
package defs

import "io/fs"

// Common file names used across the project.
const (
	// ManifestFile is the project marker file written at the project root.
	// Its presence is what makes a directory a mold project.
	ManifestFile = "mold.yaml"

	// RouteTableFile is the shared route table mutated by resource generation.
	RouteTableFile = "internal/routes/routes.go"

	// ServerFile is the service-configuration file mutated by auth generation.
	ServerFile = "internal/server/server.go"
)

// Anchor block names placed as sentinel comments in generated files.
const (
	// BlockRouteImports marks the import list of the shared route table.
	BlockRouteImports = "route-imports"

	// BlockRoutes marks the resource-registration block of the route table.
	BlockRoutes = "routes"

	// BlockServerImports marks the import list of the server file.
	BlockServerImports = "server-imports"

	// BlockMiddleware marks the middleware-wiring block of the server file.
	BlockMiddleware = "middleware"

	// BlockDeps marks the require block of the generated go.mod.
	BlockDeps = "deps"
)

// JWTSecretEnv is the environment variable generated middleware reads its
// signing secret from. The tool never embeds a secret into generated source.
const JWTSecretEnv = "MOLD_JWT_SECRET"

// File-system permissions for generated artifacts.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
)

// FeatureAuth is the manifest feature flag recorded by "mold generate auth".
const FeatureAuth = "auth"

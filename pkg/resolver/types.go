// Package resolver maps Next.js-style route strings to the route definition
// files that declare their parameter schemas. It understands the filesystem
// conventions that do not map 1:1 onto URL segments: route groups like
// (auth), dynamic segments like [id], catch-alls, and %5F-escaped
// underscore folders.
package resolver

// DefaultDefinitionBase is the base name of route definition files when the
// project does not override it.
const DefaultDefinitionBase = "routeType"

// DefaultAppDirs are the app directories probed, in order, when the project
// does not configure one explicitly.
var DefaultAppDirs = []string{"src/app", "app"}

// Config carries the resolved per-project settings for one resolution call.
type Config struct {
	// AppDir is the app directory relative to the project root (e.g., "src/app")
	AppDir string
	// DefinitionBase is the route definition file name without extension
	// (e.g., "routeType" for routeType.ts / routeType.tsx)
	DefinitionBase string
}

// base returns the definition file base name, falling back to the default.
func (c Config) base() string {
	if c.DefinitionBase == "" {
		return DefaultDefinitionBase
	}
	return c.DefinitionBase
}

// Result is the outcome of a direct resolution.
type Result struct {
	// FilePath is the candidate definition file. It is populated even when
	// Exists is false so callers can offer to create the file.
	FilePath string
	// Exists reports whether FilePath existed at resolution time.
	Exists bool
}

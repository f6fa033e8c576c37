// Package scanner walks a Next.js-style app directory and indexes the route
// definition files it contains. It is the inverse of the resolver: where the
// resolver maps a route string to a file, the scanner lists every file and
// the route string that reaches it.
package scanner

// SegmentType represents the type of a route segment.
type SegmentType int

const (
	// SegmentStatic is a static path segment (e.g., "users")
	SegmentStatic SegmentType = iota
	// SegmentDynamic is a dynamic parameter (e.g., [id])
	SegmentDynamic
	// SegmentCatchAll is a catch-all parameter (e.g., [...slug])
	SegmentCatchAll
	// SegmentOptionalCatchAll is an optional catch-all (e.g., [[...slug]])
	SegmentOptionalCatchAll
	// SegmentGroup is a route group that doesn't affect the URL (e.g., (admin))
	SegmentGroup
)

// Segment represents a parsed directory name along a route.
type Segment struct {
	// Raw is the original directory name (e.g., "[id]", "(admin)")
	Raw string
	// Name is the extracted parameter or group name (e.g., "id" from "[id]")
	Name string
	// Type is the segment type
	Type SegmentType
}

// Param represents a route parameter contributed by a dynamic segment.
type Param struct {
	// Name is the parameter name
	Name string
	// IsCatchAll indicates a variadic parameter
	IsCatchAll bool
	// IsOptional indicates an optional variadic parameter
	IsOptional bool
}

// Route represents a discovered route definition file.
type Route struct {
	// FilePath is the absolute path to the definition file
	FilePath string
	// RelativePath is the path relative to the app directory
	RelativePath string
	// Segments are the parsed path segments, groups included
	Segments []Segment
	// Route is the route string as it appears in $path calls
	// (e.g., "/users/[id]"); groups are excluded
	Route string
	// Pattern is the URL pattern with template-style parameters
	// (e.g., "/users/{id}")
	Pattern string
	// Params are the parameters contributed by dynamic segments
	Params []Param
}

// Result holds everything discovered by one scan.
type Result struct {
	// Routes are the discovered route definition files
	Routes []Route
}

package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/routelens/routelens/pkg/resolver"
)

// Scanner scans an app directory for route definition files.
type Scanner struct {
	appDir string
	base   string
}

// New creates a Scanner over the given app directory. base is the definition
// file name without extension; empty means the default.
func New(appDir, base string) *Scanner {
	if base == "" {
		base = resolver.DefaultDefinitionBase
	}
	return &Scanner{appDir: appDir, base: base}
}

// Scan walks the app directory and discovers all route definition files.
// A missing app directory yields an empty result, not an error.
func (s *Scanner) Scan() (*Result, error) {
	result := &Result{}

	if _, err := os.Stat(s.appDir); os.IsNotExist(err) {
		return result, nil
	}

	err := filepath.Walk(s.appDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // unreadable entries degrade to "not there"
		}

		if info.IsDir() {
			if path != s.appDir && IsSkippedFolder(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !s.isDefinitionFile(info.Name()) {
			return nil
		}

		relPath, err := filepath.Rel(s.appDir, path)
		if err != nil {
			return nil
		}

		segments := parsePathSegments(filepath.Dir(relPath))
		result.Routes = append(result.Routes, Route{
			FilePath:     path,
			RelativePath: relPath,
			Segments:     segments,
			Route:        BuildRoute(segments),
			Pattern:      BuildURLPattern(segments),
			Params:       ExtractParams(segments),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// When both routeType.ts and routeType.tsx sit in one directory the .ts
	// file wins, matching resolution priority.
	result.Routes = dedupeByRoute(result.Routes)

	sort.Slice(result.Routes, func(i, j int) bool {
		return result.Routes[i].Route < result.Routes[j].Route
	})
	return result, nil
}

// isDefinitionFile reports whether a file name is {base}.ts or {base}.tsx.
func (s *Scanner) isDefinitionFile(name string) bool {
	return name == s.base+".ts" || name == s.base+".tsx"
}

// parsePathSegments parses a relative directory path into segments.
func parsePathSegments(relDir string) []Segment {
	if relDir == "." || relDir == "" {
		return nil
	}

	parts := strings.Split(relDir, string(filepath.Separator))
	segments := make([]Segment, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		segments = append(segments, ParseSegment(part))
	}
	return segments
}

// dedupeByRoute keeps one Route per directory, preferring the .ts file.
func dedupeByRoute(routes []Route) []Route {
	byDir := make(map[string]Route, len(routes))
	for _, route := range routes {
		dir := filepath.Dir(route.FilePath)
		existing, ok := byDir[dir]
		if !ok || strings.HasSuffix(existing.FilePath, ".tsx") && strings.HasSuffix(route.FilePath, ".ts") {
			byDir[dir] = route
		}
	}
	deduped := make([]Route, 0, len(byDir))
	for _, route := range byDir {
		deduped = append(deduped, route)
	}
	return deduped
}

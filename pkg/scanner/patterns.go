package scanner

import (
	"regexp"
	"strings"
)

// Next.js-style directory name matchers
var (
	// [id] - dynamic segment
	dynamicSegmentRe = regexp.MustCompile(`^\[([a-zA-Z_][a-zA-Z0-9_]*)\]$`)

	// [...slug] - catch-all segment
	catchAllSegmentRe = regexp.MustCompile(`^\[\.\.\.([a-zA-Z_][a-zA-Z0-9_]*)\]$`)

	// [[...slug]] - optional catch-all segment
	optionalCatchAllRe = regexp.MustCompile(`^\[\[\.\.\.([a-zA-Z_][a-zA-Z0-9_]*)\]\]$`)

	// (group) - route group (doesn't affect the URL)
	routeGroupRe = regexp.MustCompile(`^\(([^()]+)\)$`)
)

// skippedFolders are never descended into.
var skippedFolders = map[string]bool{
	"node_modules": true,
	".next":        true,
	".git":         true,
}

// ParseSegment parses a directory name into a Segment.
func ParseSegment(name string) Segment {
	seg := Segment{Raw: name}

	// Optional catch-all: [[...slug]]
	if matches := optionalCatchAllRe.FindStringSubmatch(name); len(matches) > 1 {
		seg.Name = matches[1]
		seg.Type = SegmentOptionalCatchAll
		return seg
	}

	if matches := catchAllSegmentRe.FindStringSubmatch(name); len(matches) > 1 {
		seg.Name = matches[1]
		seg.Type = SegmentCatchAll
		return seg
	}

	if matches := dynamicSegmentRe.FindStringSubmatch(name); len(matches) > 1 {
		seg.Name = matches[1]
		seg.Type = SegmentDynamic
		return seg
	}

	if matches := routeGroupRe.FindStringSubmatch(name); len(matches) > 1 {
		seg.Name = matches[1]
		seg.Type = SegmentGroup
		return seg
	}

	seg.Name = name
	seg.Type = SegmentStatic
	return seg
}

// IsSkippedFolder reports whether a directory is never scanned.
func IsSkippedFolder(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	return skippedFolders[name]
}

// BuildRoute builds the route string that reaches these segments in a $path
// call. Groups are excluded; a leading underscore is re-encoded as %5F, the
// way it must be written in a route string.
func BuildRoute(segments []Segment) string {
	var parts []string
	for _, seg := range segments {
		if seg.Type == SegmentGroup {
			continue
		}
		name := seg.Raw
		if strings.HasPrefix(name, "_") {
			name = "%5F" + name[1:]
		}
		parts = append(parts, name)
	}

	if len(parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(parts, "/")
}

// BuildURLPattern builds a URL pattern with template-style parameters.
// Groups are excluded from the URL.
func BuildURLPattern(segments []Segment) string {
	var parts []string
	for _, seg := range segments {
		switch seg.Type {
		case SegmentGroup:
			continue
		case SegmentDynamic, SegmentCatchAll, SegmentOptionalCatchAll:
			parts = append(parts, "{"+seg.Name+"}")
		case SegmentStatic:
			parts = append(parts, seg.Name)
		}
	}

	if len(parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(parts, "/")
}

// ExtractParams extracts parameter information from segments.
func ExtractParams(segments []Segment) []Param {
	var params []Param
	for _, seg := range segments {
		switch seg.Type {
		case SegmentDynamic:
			params = append(params, Param{Name: seg.Name})
		case SegmentCatchAll:
			params = append(params, Param{Name: seg.Name, IsCatchAll: true})
		case SegmentOptionalCatchAll:
			params = append(params, Param{Name: seg.Name, IsCatchAll: true, IsOptional: true})
		}
	}
	return params
}

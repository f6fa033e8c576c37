package resolver

import (
	"regexp"
	"strings"
)

// underscoreEscape is the only percent escape the resolver decodes. Next.js
// private folders start with an underscore, which cannot appear literally at
// the start of a URL segment, so route strings spell it %5F.
const underscoreEscape = "%5F"

// groupDirRe matches route group directories: a name fully wrapped in a
// single pair of parentheses with non-empty interior, e.g. "(auth)".
var groupDirRe = regexp.MustCompile(`^\([^()]+\)$`)

// ParseRoute splits a route string into its URL segments. The leading slash
// is stripped, empty components are discarded (so "/" yields no segments and
// "/a//b" yields ["a", "b"]), and %5F decodes to "_" in each segment.
func ParseRoute(route string) []string {
	route = strings.TrimPrefix(route, "/")
	parts := strings.Split(route, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		segments = append(segments, decodeSegment(part))
	}
	return segments
}

// decodeSegment decodes %5F to "_". No other percent-decoding is performed;
// bracketed dynamic segments are kept verbatim since the directory name on
// disk is the bracketed form.
func decodeSegment(segment string) string {
	return strings.ReplaceAll(segment, underscoreEscape, "_")
}

// IsGroupDir reports whether a directory name is a route group. Group
// directories organize files on disk without contributing a URL segment.
func IsGroupDir(name string) bool {
	return groupDirRe.MatchString(name)
}

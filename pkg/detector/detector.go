package detector

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// pathHelperName is the call whose route property we navigate from.
const pathHelperName = "$path"

// routePropertyName is the only property name that qualifies; similar names
// like "path" or "url" are rejected.
const routePropertyName = "route"

// RouteLiteral is a route string found in source.
type RouteLiteral struct {
	// Text is the unquoted string value (e.g., "/users/[id]")
	Text string
	// StartOffset is the byte offset of the opening quote
	StartOffset int
	// EndOffset is the byte offset just past the closing quote, so that
	// source[StartOffset:EndOffset] reproduces the literal as written
	EndOffset int
}

// Detect reports the route literal at offset, or nil when the offset does
// not sit on one. Absence of a match is the normal outcome for most cursor
// positions; Detect never panics and rejections carry no diagnostics.
func Detect(root *sitter.Node, source []byte, offset int) *RouteLiteral {
	if root == nil || offset < 0 || offset >= len(source) {
		return nil
	}

	node := innermostAt(root, uint32(offset))
	if node == nil {
		return nil
	}

	str := enclosingString(node)
	if str == nil {
		return nil
	}
	if !isRouteProperty(str, source) {
		return nil
	}
	if !insidePathCall(str, source) {
		return nil
	}

	text := unquote(str.Content(source))
	if !strings.HasPrefix(text, "/") {
		return nil
	}

	return &RouteLiteral{
		Text:        text,
		StartOffset: int(str.StartByte()),
		EndOffset:   int(str.EndByte()),
	}
}

// innermostAt descends to the deepest node whose span contains offset. A
// node strictly containing another never wins over its child. Sibling spans
// do not overlap, so the first containing child is the only one.
func innermostAt(node *sitter.Node, offset uint32) *sitter.Node {
	if offset < node.StartByte() || offset >= node.EndByte() {
		return nil
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if found := innermostAt(node.Child(i), offset); found != nil {
			return found
		}
	}
	return node
}

// enclosingString climbs from a string-internal token (a quote, a fragment,
// an escape sequence) to the string node itself. Any other node kind is not
// a string literal.
func enclosingString(node *sitter.Node) *sitter.Node {
	for cur := node; cur != nil; cur = cur.Parent() {
		switch cur.Type() {
		case "string":
			return cur
		case "string_fragment", "escape_sequence", `"`, "'":
			// keep climbing
		default:
			return nil
		}
	}
	return nil
}

// isRouteProperty reports whether str is the value of a property binding
// named exactly "route". Parentheses wrapping the literal are transparent.
// A shorthand binding cannot carry a string literal, so only pair nodes
// qualify.
func isRouteProperty(str *sitter.Node, source []byte) bool {
	value := str
	for parent := value.Parent(); parent != nil && parent.Type() == "parenthesized_expression"; parent = value.Parent() {
		value = parent
	}
	pair := value.Parent()
	if pair == nil || pair.Type() != "pair" {
		return false
	}
	if bound := pair.ChildByFieldName("value"); bound == nil || !bound.Equal(value) {
		return false
	}
	key := pair.ChildByFieldName("key")
	if key == nil {
		return false
	}
	switch key.Type() {
	case "property_identifier":
		return key.Content(source) == routePropertyName
	case "string":
		// { "route": "/x" } binds the same property
		return unquote(key.Content(source)) == routePropertyName
	}
	return false
}

// insidePathCall walks the ancestor chain, unbounded, looking for a call to
// $path: either a bare identifier callee or a member access whose accessed
// member is $path (namespaced or aliased imports). Non-matching calls along
// the way do not stop the walk, so wrapping expressions are fine.
func insidePathCall(str *sitter.Node, source []byte) bool {
	for cur := str.Parent(); cur != nil; cur = cur.Parent() {
		if cur.Type() != "call_expression" {
			continue
		}
		callee := cur.ChildByFieldName("function")
		if callee == nil {
			continue
		}
		switch callee.Type() {
		case "identifier":
			if callee.Content(source) == pathHelperName {
				return true
			}
		case "member_expression":
			if prop := callee.ChildByFieldName("property"); prop != nil && prop.Content(source) == pathHelperName {
				return true
			}
		}
	}
	return false
}

// unquote strips the delimiting quote characters from a string literal's
// source text.
func unquote(raw string) string {
	if len(raw) >= 2 {
		return raw[1 : len(raw)-1]
	}
	return raw
}

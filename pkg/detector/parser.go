// Package detector finds route-string literals under a cursor position in
// TypeScript/TSX source. A literal qualifies when it is the value of a
// property named "route" inside a call to the $path helper and starts
// with "/".
package detector

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
)

// Parser wraps a tree-sitter parser configured for TSX. The TSX grammar is a
// superset of TypeScript, so plain .ts sources parse with it as well.
//
// A Parser is not safe for concurrent use; create one per goroutine.
type Parser struct {
	parser *sitter.Parser
}

// NewParser creates a TSX parser.
func NewParser() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(tsx.GetLanguage())
	return &Parser{parser: p}
}

// Parse parses source and returns the root node of the syntax tree.
func (p *Parser) Parse(ctx context.Context, source []byte) (*sitter.Node, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse tsx: %w", err)
	}
	return tree.RootNode(), nil
}

// DetectAt parses source and reports the route literal at offset, or nil.
func (p *Parser) DetectAt(ctx context.Context, source []byte, offset int) (*RouteLiteral, error) {
	root, err := p.Parse(ctx, source)
	if err != nil {
		return nil, err
	}
	return Detect(root, source, offset), nil
}

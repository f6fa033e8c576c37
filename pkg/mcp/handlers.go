package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/routelens/routelens/pkg/config"
	"github.com/routelens/routelens/pkg/detector"
	"github.com/routelens/routelens/pkg/resolver"
	"github.com/routelens/routelens/pkg/scanner"
)

// resolveOutcome is the payload returned by resolve_route and reused by
// detect_route.
type resolveOutcome struct {
	Route    string `json:"route"`
	FilePath string `json:"filePath"`
	Exists   bool   `json:"exists"`
	ViaGroup bool   `json:"viaGroup,omitempty"`
}

func (s *Server) handleResolveRoute(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	route := stringArg(req, "route")
	if route == "" {
		return mcp.NewToolResultError("route is required"), nil
	}
	if !strings.HasPrefix(route, "/") {
		return mcp.NewToolResultError("route must start with /"), nil
	}

	cfg, err := config.Load(s.workdir)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(s.resolve(route, cfg.ResolverConfig()))
}

func (s *Server) handleDetectRoute(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	file := stringArg(req, "file")
	if file == "" {
		return mcp.NewToolResultError("file is required"), nil
	}
	offset, ok := intArg(req, "offset")
	if !ok {
		return mcp.NewToolResultError("offset is required"), nil
	}

	path := file
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.workdir, path)
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("read %s: %v", file, err)), nil
	}

	lit, err := detector.NewParser().DetectAt(ctx, source, offset)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if lit == nil {
		return jsonResult(map[string]any{"found": false})
	}

	cfg, err := config.Load(s.workdir)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	outcome := s.resolve(lit.Text, cfg.ResolverConfig())

	return jsonResult(map[string]any{
		"found":       true,
		"route":       lit.Text,
		"startOffset": lit.StartOffset,
		"endOffset":   lit.EndOffset,
		"filePath":    outcome.FilePath,
		"exists":      outcome.Exists,
	})
}

func (s *Server) handleListRoutes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := config.Load(s.workdir)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := scanner.New(cfg.AppPath(s.workdir), cfg.DefinitionFile).Scan()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	type entry struct {
		Route string `json:"route"`
		File  string `json:"file"`
	}
	entries := make([]entry, 0, len(result.Routes))
	for _, route := range result.Routes {
		entries = append(entries, entry{Route: route.Route, File: route.FilePath})
	}

	return jsonResult(map[string]any{
		"routes": entries,
		"total":  len(entries),
	})
}

// resolve runs direct resolution with the group-aware fallback.
func (s *Server) resolve(route string, cfg resolver.Config) resolveOutcome {
	r := resolver.New(nil)
	res := r.ResolveDirect(route, s.workdir, cfg)
	outcome := resolveOutcome{Route: route, FilePath: res.FilePath, Exists: res.Exists}
	if !res.Exists {
		if path, ok := r.ResolveWithGroups(route, s.workdir, cfg); ok {
			outcome.FilePath = path
			outcome.Exists = true
			outcome.ViaGroup = true
		}
	}
	return outcome
}

// stringArg reads a string argument from a tool request.
func stringArg(req mcp.CallToolRequest, key string) string {
	args := req.GetArguments()
	if args == nil {
		return ""
	}
	value, _ := args[key].(string)
	return value
}

// intArg reads a numeric argument; JSON numbers arrive as float64.
func intArg(req mcp.CallToolRequest, key string) (int, bool) {
	args := req.GetArguments()
	if args == nil {
		return 0, false
	}
	switch v := args[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}

// jsonResult marshals a payload into a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

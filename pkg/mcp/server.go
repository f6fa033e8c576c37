// Package mcp exposes route resolution as MCP tools so agents and
// MCP-capable editors can navigate from route strings to definition files.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/routelens/routelens/internal/version"
)

// Server wraps an MCP server operating on one project directory.
type Server struct {
	workdir   string
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server for the given project directory.
func NewServer(workdir string) *Server {
	s := &Server{
		workdir: workdir,
		mcpServer: server.NewMCPServer(
			"routelens",
			version.GetVersion(),
			server.WithToolCapabilities(false),
		),
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("resolve_route",
		mcp.WithDescription("Resolve a route string (e.g. /users/[id]) to the route definition file that declares its parameter schema. Route groups like (auth) are searched automatically."),
		mcp.WithString("route",
			mcp.Required(),
			mcp.Description("The route string, starting with /"),
		),
	), s.handleResolveRoute)

	s.mcpServer.AddTool(mcp.NewTool("detect_route",
		mcp.WithDescription("Report the route literal at a byte offset in a TypeScript/TSX file, if the offset sits on the route property of a $path call, and resolve it to its definition file."),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Source file path, relative to the project root or absolute"),
		),
		mcp.WithNumber("offset",
			mcp.Required(),
			mcp.Description("Byte offset of the cursor within the file"),
		),
	), s.handleDetectRoute)

	s.mcpServer.AddTool(mcp.NewTool("list_routes",
		mcp.WithDescription("List every route definition file in the project's app directory with its route string."),
	), s.handleListRoutes)
}

// Serve runs the server over stdio until the client disconnects.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcpServer)
}

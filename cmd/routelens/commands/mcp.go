package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/routelens/routelens/pkg/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol server",
	Long: `Start an MCP server over stdio so AI assistants can resolve and list routes.

Tools exposed:
  resolve_route  Resolve a route string to its definition file
  detect_route   Detect the route literal at a file offset
  list_routes    List route definition files under the app directory

Example MCP client configuration:
  {
    "mcpServers": {
      "routelens": {
        "command": "routelens",
        "args": ["mcp", "-C", "/path/to/project"]
      }
    }
  }`,
	Run: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) {
	root, _, err := loadProject()
	if err != nil {
		fail(err)
	}

	srv := mcp.NewServer(root)
	if err := srv.Serve(); err != nil {
		fail(fmt.Errorf("mcp server: %w", err))
	}
}

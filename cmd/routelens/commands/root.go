// Package commands provides the CLI commands for routelens.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/routelens/routelens/internal/version"
	"github.com/routelens/routelens/pkg/config"
)

var rootCmd = &cobra.Command{
	Use:   "routelens",
	Short: "routelens - navigate from route strings to route definition files",
	Long: `Routelens resolves Next.js-style route strings found in TypeScript source
to the on-disk route definition files that declare their parameter schemas,
searching through route groups like (auth) that organize files without
affecting the URL.

Quick Start:
  routelens resolve /users/[id]     Resolve a route to its definition file
  routelens detect page.tsx 120     Detect the route literal at an offset
  routelens routes                  List all route definition files
  routelens openapi                 Generate an OpenAPI skeleton
  routelens serve                   Serve resolution over HTTP
  routelens mcp                     Serve resolution over MCP (stdio)

Documentation: https://github.com/routelens/routelens`,
	Version: version.GetVersion(),
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for automation and LLM agents)")
	rootCmd.PersistentFlags().StringVarP(&projectDir, "project", "C", ".", "Project root directory")
}

// loadProject resolves the --project flag to an absolute path and loads the
// project configuration.
func loadProject() (string, *config.Config, error) {
	root, err := filepath.Abs(projectDir)
	if err != nil {
		return "", nil, fmt.Errorf("resolve project dir: %w", err)
	}
	cfg, err := config.Load(root)
	if err != nil {
		return "", nil, err
	}
	return root, cfg, nil
}

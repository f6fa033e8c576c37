package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/routelens/routelens/pkg/server"
)

var (
	servePort string
	serveHost string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve route resolution over HTTP",
	Long: `Start a local HTTP server exposing route resolution for editor and tooling
integrations.

Endpoints:
  GET  /healthz      Liveness check
  POST /v1/resolve   Resolve a route string
  POST /v1/detect    Detect the route literal at a file offset
  GET  /v1/routes    List route definition files

Examples:
  routelens serve
  routelens serve --port 7133`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "7132", "Port to listen on")
	serveCmd.Flags().StringVarP(&serveHost, "host", "H", "127.0.0.1", "Host to bind to")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	root, cfg, err := loadProject()
	if err != nil {
		fail(err)
	}

	addr := serveHost + ":" + servePort
	s := server.New(root, cfg.ResolverConfig())

	fmt.Printf("\n  %s serving %s\n", cyan("routelens"), root)
	fmt.Printf("  %s http://%s\n\n", green("➜"), addr)

	if err := s.Listen(addr); err != nil {
		fail(err)
	}
}

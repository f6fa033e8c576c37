package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/routelens/routelens/pkg/openapi"
)

var (
	openapiOutput  string
	openapiFormat  string
	openapiTitle   string
	openapiVersion string
	openapiServer  string
)

var openapiCmd = &cobra.Command{
	Use:   "openapi",
	Short: "Generate an OpenAPI skeleton from route definition files",
	Long: `Generate an OpenAPI specification whose paths are the routes discovered in
the app directory, with path parameters derived from dynamic segments.
Request and response schemas are left for the project to fill in.

Examples:
  routelens openapi
  routelens openapi --output api.yaml --format yaml
  routelens openapi --title "My App Routes" --version 2.0.0`,
	Run: runOpenAPI,
}

func init() {
	openapiCmd.Flags().StringVarP(&openapiOutput, "output", "o", "openapi.json", "Output file path")
	openapiCmd.Flags().StringVarP(&openapiFormat, "format", "f", "json", "Output format (json|yaml)")
	openapiCmd.Flags().StringVar(&openapiTitle, "title", "", "API title (defaults to \"Routes\")")
	openapiCmd.Flags().StringVar(&openapiVersion, "version", "1.0.0", "API version")
	openapiCmd.Flags().StringVar(&openapiServer, "server", "", "Server URL (e.g., http://localhost:3000)")
	rootCmd.AddCommand(openapiCmd)
}

func runOpenAPI(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen).SprintFunc()

	root, cfg, err := loadProject()
	if err != nil {
		fail(err)
	}

	g := openapi.NewGenerator(cfg.AppPath(root), cfg.DefinitionFile, openapi.Config{
		Title:     openapiTitle,
		Version:   openapiVersion,
		ServerURL: openapiServer,
	})
	if err := g.WriteToFile(openapiOutput, openapiFormat); err != nil {
		fail(err)
	}

	if jsonOutput {
		printJSON(map[string]string{"output": openapiOutput, "format": openapiFormat})
		return
	}
	fmt.Printf("  %s Wrote %s\n", green("✓"), openapiOutput)
}

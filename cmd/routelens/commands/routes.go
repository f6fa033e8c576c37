package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/routelens/routelens/pkg/scanner"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List all route definition files",
	Long: `List every route definition file in the project's app directory, with the
route string that reaches it.

Examples:
  routelens routes
  routelens routes --json`,
	Run: runRoutes,
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

func runRoutes(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	root, cfg, err := loadProject()
	if err != nil {
		fail(err)
	}

	result, err := scanner.New(cfg.AppPath(root), cfg.DefinitionFile).Scan()
	if err != nil {
		fail(err)
	}

	if jsonOutput {
		out := RoutesOutput{Routes: make([]RouteOutput, 0, len(result.Routes))}
		for _, route := range result.Routes {
			entry := RouteOutput{
				Route:   route.Route,
				Pattern: route.Pattern,
				File:    route.FilePath,
			}
			for _, p := range route.Params {
				entry.Params = append(entry.Params, p.Name)
			}
			out.Routes = append(out.Routes, entry)
		}
		out.TotalRoutes = len(out.Routes)
		printJSON(out)
		return
	}

	if len(result.Routes) == 0 {
		fmt.Printf("  %s No route definition files under %s\n", yellow("!"), cfg.AppPath(root))
		return
	}

	fmt.Printf("\n  %s routes in %s\n\n", cyan("routelens"), dim(cfg.AppPath(root)))
	for _, route := range result.Routes {
		fmt.Printf("  %-40s %s\n", route.Route, dim(route.RelativePath))
	}
	fmt.Printf("\n  %d route(s)\n", len(result.Routes))
}

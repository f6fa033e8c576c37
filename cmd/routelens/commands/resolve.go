package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/routelens/routelens/pkg/resolver"
)

var resolveNoGroups bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <route>",
	Short: "Resolve a route string to its definition file",
	Long: `Resolve a route string to the route definition file that declares its
parameter schema.

Resolution first maps route segments directly onto the app directory. When
the direct candidate does not exist, the search descends through route group
directories like (auth), which wrap files on disk without appearing in the
URL.

A route without a definition file is a normal outcome, not an error: the
command still prints the candidate path where the file would be created.

Examples:
  routelens resolve /users/[id]
  routelens resolve /login
  routelens resolve /%5Finternal --json`,
	Args: cobra.ExactArgs(1),
	Run:  runResolve,
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveNoGroups, "no-groups", false, "Skip the route-group fallback search")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	route := args[0]
	if !strings.HasPrefix(route, "/") {
		fail(fmt.Errorf("route must start with /: %q", route))
	}

	root, cfg, err := loadProject()
	if err != nil {
		fail(err)
	}

	r := resolver.New(nil)
	res := r.ResolveDirect(route, root, cfg.ResolverConfig())
	out := ResolveOutput{Route: route, FilePath: res.FilePath, Exists: res.Exists}

	if !res.Exists && !resolveNoGroups {
		if path, ok := r.ResolveWithGroups(route, root, cfg.ResolverConfig()); ok {
			out.FilePath = path
			out.Exists = true
			out.ViaGroup = true
		}
	}

	if jsonOutput {
		printJSON(out)
		return
	}

	if out.Exists {
		marker := green("✓")
		if out.ViaGroup {
			marker = green("✓") + dim(" (via route group)")
		}
		fmt.Printf("  %s %s\n", marker, out.FilePath)
	} else {
		fmt.Printf("  %s No definition file for %s\n", yellow("!"), route)
		fmt.Printf("    %s %s\n", dim("would be created at"), out.FilePath)
	}
}

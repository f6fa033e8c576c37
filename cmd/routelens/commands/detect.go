package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/routelens/routelens/pkg/detector"
	"github.com/routelens/routelens/pkg/resolver"
)

var detectCmd = &cobra.Command{
	Use:   "detect <file> <offset>",
	Short: "Detect the route literal at a byte offset in a source file",
	Long: `Detect whether a byte offset in a TypeScript/TSX file sits on the route
property of a $path call, and resolve the literal to its definition file.

Most offsets do not sit on a route literal; that is reported as found: false
and is not an error.

Examples:
  routelens detect src/components/nav.tsx 342
  routelens detect page.tsx 120 --json`,
	Args: cobra.ExactArgs(2),
	Run:  runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	offset, err := strconv.Atoi(args[1])
	if err != nil {
		fail(fmt.Errorf("offset must be an integer: %q", args[1]))
	}

	root, cfg, err := loadProject()
	if err != nil {
		fail(err)
	}

	path := args[0]
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	source, err := os.ReadFile(path)
	if err != nil {
		fail(err)
	}

	lit, err := detector.NewParser().DetectAt(cmd.Context(), source, offset)
	if err != nil {
		fail(err)
	}

	if lit == nil {
		if jsonOutput {
			printJSON(DetectOutput{Found: false})
		} else {
			fmt.Printf("  %s No route literal at offset %d\n", yellow("!"), offset)
		}
		return
	}

	r := resolver.New(nil)
	res := r.ResolveDirect(lit.Text, root, cfg.ResolverConfig())
	out := DetectOutput{
		Found:       true,
		Route:       lit.Text,
		StartOffset: lit.StartOffset,
		EndOffset:   lit.EndOffset,
		FilePath:    res.FilePath,
		Exists:      res.Exists,
	}
	if !res.Exists {
		if found, ok := r.ResolveWithGroups(lit.Text, root, cfg.ResolverConfig()); ok {
			out.FilePath = found
			out.Exists = true
		}
	}

	if jsonOutput {
		printJSON(out)
		return
	}

	fmt.Printf("  %s %s %s\n", green("✓"), out.Route, dim(fmt.Sprintf("[%d:%d]", out.StartOffset, out.EndOffset)))
	if out.Exists {
		fmt.Printf("    %s\n", out.FilePath)
	} else {
		fmt.Printf("    %s %s\n", dim("no definition; would be created at"), out.FilePath)
	}
}

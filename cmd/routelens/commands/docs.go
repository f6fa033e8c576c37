package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

const docsURL = "https://github.com/routelens/routelens"

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Open the documentation in your browser",
	Run:   runDocs,
}

func init() {
	rootCmd.AddCommand(docsCmd)
}

func runDocs(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()

	fmt.Printf("  Opening %s\n", cyan(docsURL))
	if err := browser.OpenURL(docsURL); err != nil {
		fail(fmt.Errorf("failed to open browser: %w", err))
	}
}

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/routelens/routelens/pkg/config"
	"github.com/routelens/routelens/pkg/resolver"
)

var (
	initAppDir string
	initBase   string
	initYes    bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a routelens.yaml in the project root",
	Long: `Create a routelens.yaml configuration file in the project root.

Prompts for the app directory and definition file name unless --yes is given,
in which case detected defaults are written without asking.

Examples:
  routelens init
  routelens init --yes
  routelens init --app-dir src/app --definition-file routeType`,
	Run: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initAppDir, "app-dir", "", "App directory relative to the project root")
	initCmd.Flags().StringVar(&initBase, "definition-file", "", "Definition file base name (without extension)")
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Accept detected defaults without prompting")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	root, err := filepath.Abs(projectDir)
	if err != nil {
		fail(err)
	}

	configFile := filepath.Join(root, config.FileName+".yaml")
	if _, err := os.Stat(configFile); err == nil {
		fail(fmt.Errorf("%s already exists", configFile))
	}

	appDir := initAppDir
	if appDir == "" {
		appDir = config.DetectAppDir(root)
	}
	base := initBase
	if base == "" {
		base = resolver.DefaultDefinitionBase
	}

	// Interactive confirmation unless suppressed or emitting JSON.
	if !initYes && !jsonOutput {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("App directory").
					Description("Directory containing your routes, relative to the project root").
					Value(&appDir),
				huh.NewInput().
					Title("Definition file name").
					Description("Base name of route definition files, without extension").
					Value(&base),
			),
		)
		if err := form.Run(); err != nil {
			fail(err)
		}
	}

	cfg := config.Config{
		AppDir:         appDir,
		DefinitionFile: base,
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		fail(fmt.Errorf("failed to encode config: %w", err))
	}

	if err := os.WriteFile(configFile, data, 0644); err != nil {
		fail(fmt.Errorf("failed to write config: %w", err))
	}

	if jsonOutput {
		printJSON(InitOutput{
			ConfigFile: configFile,
			AppDir:     appDir,
		})
		return
	}

	fmt.Printf("\n  %s Created %s\n", green("✓"), configFile)
	fmt.Printf("  %s\n\n", dim(fmt.Sprintf("appDir: %s, definitionFile: %s", appDir, base)))
}

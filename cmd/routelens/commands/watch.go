package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/routelens/routelens/pkg/scanner"
)

var watchVerbose bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the app directory and re-list routes on change",
	Long: `Watch the app directory for changes to route definition files and print
the updated route list whenever one is added, removed, or renamed.

Example:
  routelens watch
  routelens watch -C ./web --verbose`,
	Run: runWatch,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchVerbose, "verbose", "v", false, "Show individual file events")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	root, cfg, err := loadProject()
	if err != nil {
		fail(err)
	}

	appDir := cfg.AppPath(root)
	if _, err := os.Stat(appDir); os.IsNotExist(err) {
		fmt.Printf("  %s App directory not found: %s\n", red("Error:"), appDir)
		os.Exit(1)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fail(fmt.Errorf("failed to create file watcher: %w", err))
	}
	defer func() { _ = watcher.Close() }()

	// Watch the app directory recursively
	_ = filepath.Walk(appDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			name := info.Name()
			if strings.HasPrefix(name, ".") || name == "node_modules" || name == "vendor" {
				return filepath.SkipDir
			}
			_ = watcher.Add(path)
		}
		return nil
	})

	listRoutes(appDir, cfg.DefinitionFile)

	fmt.Printf("\n  %s Watching %s for changes...\n\n", green("✓"), cyan(appDir))

	var debounceTimer *time.Timer
	debounceDuration := 300 * time.Millisecond

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			// New directories join the watch set so routes created inside
			// them are picked up.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					name := info.Name()
					if !strings.HasPrefix(name, ".") && name != "node_modules" && name != "vendor" {
						_ = watcher.Add(event.Name)
					}
					continue
				}
			}

			base := filepath.Base(event.Name)
			if base != cfg.DefinitionFile+".ts" && base != cfg.DefinitionFile+".tsx" {
				continue
			}

			if watchVerbose {
				fmt.Printf("  [%s] %s %s %s\n", time.Now().Format("15:04:05"), cyan("ℹ"), event.Op, event.Name)
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}

			debounceTimer = time.AfterFunc(debounceDuration, func() {
				fmt.Printf("  [%s] %s Routes changed\n", time.Now().Format("15:04:05"), yellow("→"))
				listRoutes(appDir, cfg.DefinitionFile)
				fmt.Println()
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Printf("  %s Watcher error: %v\n", yellow("Warning:"), err)

		case <-signals:
			fmt.Println("\n  Shutting down...")
			return
		}
	}
}

func listRoutes(appDir, base string) {
	red := color.New(color.FgRed).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	result, err := scanner.New(appDir, base).Scan()
	if err != nil {
		fmt.Printf("  %s %v\n", red("Error:"), err)
		return
	}

	fmt.Printf("\n  %d route(s)\n", len(result.Routes))
	for _, route := range result.Routes {
		fmt.Printf("  %-40s %s\n", route.Route, dim(route.RelativePath))
	}
}

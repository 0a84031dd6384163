// Package cmd provides the CLI commands for colorvane.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/colorvane/colorvane/internal/config"
	"github.com/colorvane/colorvane/internal/runlog"
)

// global flags
var (
	verbose    bool
	outputJSON bool
	logPath    string
	configPath string

	cfg config.Config
)

// rootCmd is the root command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "colorvane",
	Short: "Curated color-name catalog and nearest-name lookup",
	Long: `colorvane maintains a curated, deduplicated catalog of named colors and
answers "what is this color called?" queries against it.

The catalog lives in a plain versioned data file. From it, colorvane also
regenerates a self-contained Go package (colornamer) that embeds the
table together with the nearest-name matcher.

Commands:
  update    Fetch the external color-name dataset, merge, and regenerate
  name      Find the nearest catalog name for one or more colors
  list      Print the catalog
  browse    Browse the catalog interactively
  seed      Create a starter catalog from the SVG 1.1 color names
  render    Re-render the Go artifact from the catalog file
  serve     Serve nearest-name lookups over HTTP
  config    Manage configuration

Examples:
  colorvane name '#dc143c'        # -> Crimson
  colorvane update --dry-run      # preview a catalog refresh
  colorvane serve --port 7461     # REST API`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := runlog.Init(logPath, verbose); err != nil {
			return fmt.Errorf("open log file: %w", err)
		}

		var err error
		if configPath != "" {
			cfg, err = config.LoadFile(configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	defer runlog.Log.Close()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output as JSON where supported")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "write debug log to file")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: user config dir)")

	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

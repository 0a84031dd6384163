package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/colorvane/colorvane/internal/catfile"
	"github.com/colorvane/colorvane/internal/gen"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Re-render the Go artifact from the catalog file",
	Long: `Re-render the generated Go package from the catalog file, without
fetching or merging anything.

The artifact is a self-contained package embedding the color table and
the nearest-name matcher.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "artifact path (overrides config)")
}

func runRender(cmd *cobra.Command, args []string) error {
	cat, err := catfile.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}

	out := renderOutput
	if out == "" {
		out = cfg.ArtifactPath
	}
	if err := gen.WriteFile(out, cat); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	fmt.Printf("Rendered %d entries to %s.\n", len(cat), out)
	return nil
}

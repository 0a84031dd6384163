package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/colorvane/colorvane/internal/catfile"
	"github.com/colorvane/colorvane/internal/cli"
	"github.com/colorvane/colorvane/internal/gen"
)

var (
	seedForce      bool
	seedNoArtifact bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a starter catalog from the SVG 1.1 color names",
	Long: `Create a starter catalog from the SVG 1.1 color names and render the
Go artifact from it.

Refuses to overwrite an existing catalog unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().BoolVarP(&seedForce, "force", "f", false, "overwrite an existing catalog")
	seedCmd.Flags().BoolVar(&seedNoArtifact, "no-artifact", false, "skip regenerating the Go artifact")
}

func runSeed(cmd *cobra.Command, args []string) error {
	if !seedForce {
		if _, err := os.Stat(cfg.CatalogPath); err == nil {
			return fmt.Errorf("catalog already exists at %s (use --force to replace)", cfg.CatalogPath)
		}
	}

	cat, report := cli.SeedCatalog(normalizer())
	fmt.Printf("Seeded %d entries (%d alias records skipped).\n", len(cat), len(report.Rejected))

	if err := catfile.Write(cfg.CatalogPath, cat); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	fmt.Printf("Catalog written to %s.\n", cfg.CatalogPath)

	if !seedNoArtifact {
		if err := gen.WriteFile(cfg.ArtifactPath, cat); err != nil {
			return fmt.Errorf("write artifact: %w", err)
		}
		fmt.Printf("Artifact written to %s.\n", cfg.ArtifactPath)
	}
	return nil
}

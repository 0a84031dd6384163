package cmd

import (
	"github.com/spf13/cobra"

	"github.com/colorvane/colorvane/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Browse the catalog in an interactive terminal UI.

Type to filter by name or hex, arrow keys to move, esc to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		return tui.Browse(cat)
	},
}

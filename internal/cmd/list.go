package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/colorvane/colorvane/internal/cli"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the catalog",
	Long: `Print all catalog entries in order.

Shows a color swatch per entry when stdout is a terminal. Use --json for
machine-readable output.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	if outputJSON {
		return json.NewEncoder(os.Stdout).Encode(cat)
	}

	styled := cli.StdoutIsTerminal()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tHEX\tRGB")
	for _, e := range cat {
		hex := e.Hex()
		if styled {
			hex = cli.Swatch(e)
		}
		fmt.Fprintf(w, "%s\t%s\t%d,%d,%d\n", e.Name, hex, e.R, e.G, e.B)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d entries.\n", len(cat))
	return nil
}

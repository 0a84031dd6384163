package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/colorvane/colorvane/internal/catalog"
	"github.com/colorvane/colorvane/internal/cli"
)

var nameCmd = &cobra.Command{
	Use:   "name <hex>...",
	Short: "Find the nearest catalog name for one or more colors",
	Long: `Find the nearest catalog name for each given color, by Euclidean
distance in RGB space.

Colors are hex strings with an optional leading '#'.

Examples:
  colorvane name '#dc143c'
  colorvane name fa0a0a 008080 '#ffd700'
  colorvane name --json '#dc143c'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runName,
}

// nameResult is one resolved query, for --json output.
type nameResult struct {
	Query string         `json:"query"`
	Name  string         `json:"name"`
	Match *catalog.Entry `json:"match,omitempty"`
}

func runName(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	results := make([]nameResult, 0, len(args))
	for _, arg := range args {
		r, g, b, err := catalog.ParseHex(arg)
		if err != nil {
			return err
		}
		res := nameResult{Query: arg, Name: "Unknown"}
		if entry, ok := cat.Nearest(r, g, b); ok {
			res.Name = entry.Name
			res.Match = &entry
		}
		results = append(results, res)
	}

	if outputJSON {
		return json.NewEncoder(os.Stdout).Encode(results)
	}

	styled := cli.StdoutIsTerminal()
	for _, res := range results {
		if res.Match != nil && styled {
			fmt.Printf("%s  %s\n", cli.Swatch(*res.Match), res.Name)
		} else {
			fmt.Printf("%s  %s\n", res.Query, res.Name)
		}
	}
	return nil
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/colorvane/colorvane/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Run: func(cmd *cobra.Command, args []string) {
		if outputJSON {
			_ = json.NewEncoder(os.Stdout).Encode(version.Current())
			return
		}
		fmt.Println(version.Current())
	},
}

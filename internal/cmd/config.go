package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/colorvane/colorvane/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage colorvane configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the active configuration to the config file",
	Long: `Write the active configuration (defaults plus any loaded overrides) to
the user config file, creating it if needed. Edit the file to change
paths, the dataset source, or server settings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Save(cfg); err != nil {
			return err
		}
		path, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Printf("Config written to %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}

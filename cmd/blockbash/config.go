package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-bash/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Save it as ~/.blockbash/config.yaml or ./configs/blockbash.yaml and edit
the keys you want to change.

Examples:
  blockbash config > ~/.blockbash/config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	},
}

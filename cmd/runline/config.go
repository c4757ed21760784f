package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/askarat/runline/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration YAML",
	Long: `Print the built-in game configuration as YAML.

Save it to ~/.runline/config.yaml (or anywhere, with --config) and edit
the values to tune physics, spawning, and difficulty. Partial files are
fine: unset keys keep their defaults.

Examples:
  runline config
  runline config > ~/.runline/config.yaml
  runline play --config ./my-runline.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	//nolint:errcheck // Writing to stdout
	os.Stdout.Write(config.DefaultYAML())
}

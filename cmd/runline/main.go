// runline is a terminal endless runner: one screen, one button, and an
// ever-faster stream of obstacles.
//
// Usage:
//
//	runline                  - Play (same as 'runline play')
//	runline play             - Play the game
//	runline serve            - Start SSH server for remote play
//	runline best             - Show the stored best score
//	runline config           - Print the default configuration YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.runline/best.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runline",
	Short: "Runline - a one-button endless runner for your terminal",
	Long: `Runline is a terminal endless runner. Jump the blocks, grab the orbs
for a mid-air jump, and survive as the world speeds up.

Available commands:
  play     - Play the game (default when no command is given)
  serve    - Start SSH server for remote play
  best     - Show or reset the stored best score
  config   - Print the default configuration YAML

Examples:
  runline
  runline play --config ./my-runline.yaml
  runline serve --ssh :2222
  runline best --reset`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runline/best.db", "Path to best score database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(configCmd)
}

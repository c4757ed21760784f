package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/askarat/runline/internal/storage"
)

var flagResetBest bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the stored best score",
	Long: `Display the best score recorded on this machine.

Examples:
  runline best
  runline best --reset`,
	Args: cobra.NoArgs,
	Run:  runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagResetBest, "reset", false, "Clear the stored best score")
}

func runBest(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening best score database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagResetBest {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing best score: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Best score cleared.")
		return
	}

	best, err := store.Best()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading best score: %v\n", err)
		os.Exit(1)
	}

	if best == 0 {
		fmt.Println("No best score recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runline' to set one!")
		return
	}

	fmt.Printf("Best: %d\n", best)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/askarat/runline/internal/audio"
	"github.com/askarat/runline/internal/core"
	"github.com/askarat/runline/internal/platform/tui"
	"github.com/askarat/runline/internal/runner"
	"github.com/askarat/runline/internal/storage"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a run.

Controls:
  Space/Up/W/Enter  - Jump (start or restart when not running)
  Mouse click       - Jump
  M                 - Toggle sound
  Ctrl+S            - Save a screenshot
  Q/Esc/Ctrl+C      - Quit

Examples:
  runline play
  runline play --mute
  runline play --seed 42
  runline play --config ./my-runline.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")

	// The bare root command doubles as 'play', so it takes the same flags.
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runner.SetConfigPath(flagConfig)
	game := runner.New()

	// Wire sound unless muted. A failed speaker init degrades to silence.
	var muter tui.Muter
	synth := audio.NewSynth()
	if !flagMute {
		if audioErr := synth.Start(); audioErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound unavailable: %v\n", audioErr)
		} else {
			game.SetCues(synth)
			muter = synth
		}
	}

	// Open best score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open best score database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, muter, cfg)

	// Release the speaker and store before potential exit
	synth.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

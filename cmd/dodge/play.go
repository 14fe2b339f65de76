package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Dodge.

Controls:
  Arrows       - Move (hjkl also work)
  Shift+Arrow  - Move fast (or hold F)
  S            - Move slow
  Mouse drag   - Steer like a joystick
  E            - Cloak: a few seconds of invulnerability
  Enter        - Resume / start the next level
  Esc/P        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 lives, 5 cloaks, slower obstacles
  normal - 3 lives, 3 cloaks
  hard   - 1 life, 1 cloak, faster obstacles

Examples:
  dodge play
  dodge play --difficulty easy
  dodge play --seed 42
  dodge play --config ./my-dodge.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closer, err := newLogger("dodge")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	game := newGame(cfg, store)

	width, height := terminalSize()
	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	opts := tui.Options{Logger: logger}
	if store != nil {
		opts.Store = store
	}
	runErr := tui.Run(game, rt, opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

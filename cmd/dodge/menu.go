package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/game"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the title menu",
	Long: `Open the title menu: pick a difficulty, play, and browse high scores
without leaving the terminal. This is the same screen SSH players see.`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closer, err := newLogger("dodge")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	cfg, err := loadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	session := tui.NewSessionModel(tui.SessionOptions{
		NewGame:      gameFactory(cfg, store),
		GameID:       game.GameID,
		GameTitle:    game.GameTitle,
		HighScoreKey: game.HighScoreKey,
		Preset:       config.ParsePreset(cfg.Difficulty.Preset),
		Store:        store,
		Logger:       logger,
	}, core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: flagSeed})

	p := tea.NewProgram(session, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
		os.Exit(1)
	}
}

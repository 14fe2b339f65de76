package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/game"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// newLogger writes to the --log file. Without one, logs are discarded,
// since the game owns the terminal. The returned closer is never nil.
func newLogger(prefix string) (*log.Logger, io.Closer, error) {
	if flagLogPath == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, f, nil
}

// loadConfig reads the game config and applies a difficulty preset name.
// An empty name keeps the loaded values.
func loadConfig(difficulty string) (config.DodgeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if difficulty == "" {
		return cfg, nil
	}
	preset := config.ParsePreset(difficulty)
	if preset == "" {
		return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", difficulty)
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// openStore opens the scores database. Failure is logged and yields nil;
// the game still works, keeping its high score in memory.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// newGame builds a game backed by store, which may be nil.
func newGame(cfg config.DodgeConfig, store *storage.Store) *game.Game {
	if store == nil {
		return game.New(cfg, nil)
	}
	return game.New(cfg, store)
}

// gameFactory builds games for menu-driven sessions, applying the chosen
// preset to a copy of base.
func gameFactory(base config.DodgeConfig, store *storage.Store) tui.GameFactory {
	return func(preset config.DifficultyPreset) tui.Game {
		cfg := base
		config.ApplyPreset(&cfg, preset)
		return newGame(cfg, store)
	}
}

// terminalSize returns the size of stdout, or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Total score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the simulation is halted (pause or level clear)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// HUD carries the heads-up display values a platform may draw around the
// playfield. It is read-only output, never simulation input.
type HUD struct {
	Level        int
	Life         int
	MaxLife      int
	Score        int
	LevelUpScore int
	TotalScore   int
	HighScore    int
	Survival     time.Duration
	Cloaks       int
	Effects      []string // Active timed effects, e.g. "snail 1.2s"
}

// Progress returns the level-local score as a fraction of the level-up threshold.
func (h HUD) Progress() float64 {
	if h.LevelUpScore <= 0 {
		return 0
	}
	return ClampF(float64(h.Score)/float64(h.LevelUpScore), 0, 1)
}

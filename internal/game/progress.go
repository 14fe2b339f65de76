package game

import (
	"fmt"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

// HighScoreKey names the persisted high-score scalar.
const HighScoreKey = "highScore"

// HighScoreStore persists named score scalars.
type HighScoreStore interface {
	HighScore(name string) (int, error)
	SetHighScore(name string, score int) error
}

// Progress tracks level, per-level score and the running total.
type Progress struct {
	cfg     *config.DodgeConfig
	level   int
	score   int
	total   int
	pending bool
	high    int
}

func newProgress(cfg *config.DodgeConfig, high int) *Progress {
	return &Progress{cfg: cfg, level: 1, high: high}
}

// Level returns the current level, starting at 1.
func (p *Progress) Level() int { return p.level }

// Score returns the score earned in the current level.
func (p *Progress) Score() int { return p.score }

// TotalScore returns the score earned across all levels.
func (p *Progress) TotalScore() int { return p.total }

// HighScore returns the stored high score as loaded or last recorded.
func (p *Progress) HighScore() int { return p.high }

// Pending reports whether the level-up threshold has been passed.
func (p *Progress) Pending() bool { return p.pending }

// ScoreWeight returns the current level's score multiplier.
func (p *Progress) ScoreWeight() int {
	return p.cfg.ScoreWeight(p.level)
}

// LevelUpScore returns the per-level score the player must exceed.
func (p *Progress) LevelUpScore() int {
	return p.cfg.Level(p.level).LevelUpScore
}

// Params returns the level-scaled parameters for the current level.
func (p *Progress) Params() config.LevelParams {
	return p.cfg.Level(p.level)
}

// Add credits n to both the level score and the total. Non-positive values
// are ignored so the total never decreases.
func (p *Progress) Add(n int) {
	if n <= 0 {
		return
	}
	p.score += n
	p.total += n
	if p.score > p.LevelUpScore() {
		p.pending = true
	}
}

// ConfirmLevelUp advances to the next level when one is pending.
func (p *Progress) ConfirmLevelUp() bool {
	if !p.pending {
		return false
	}
	p.level++
	p.score = 0
	p.pending = false
	return true
}

// RecordHighScore stores the total when it beats the high score. The store
// is re-read first because other games may have written to it since Reset.
// It reports whether a new high score was set.
func (p *Progress) RecordHighScore(store HighScoreStore) (bool, error) {
	if stored := loadHighScore(store); stored > p.high {
		p.high = stored
	}
	if p.total <= p.high {
		return false, nil
	}
	p.high = p.total
	if store == nil {
		return true, nil
	}
	if err := store.SetHighScore(HighScoreKey, p.total); err != nil {
		return true, fmt.Errorf("game: save high score: %w", err)
	}
	return true, nil
}

// loadHighScore reads the stored high score. Any failure counts as zero.
func loadHighScore(store HighScoreStore) int {
	if store == nil {
		return 0
	}
	v, err := store.HighScore(HighScoreKey)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

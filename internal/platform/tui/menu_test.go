package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

func press(m tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEscape}
)

func TestMenuDifficultyCycles(t *testing.T) {
	tests := []struct {
		name     string
		start    config.DifficultyPreset
		keys     []tea.Msg
		expected config.DifficultyPreset
	}{
		{"default normal", "", nil, config.DifficultyNormal},
		{"preselected hard", config.DifficultyHard, nil, config.DifficultyHard},
		{"right from normal", config.DifficultyNormal, []tea.Msg{keyDown, keyRight}, config.DifficultyHard},
		{"right wraps", config.DifficultyHard, []tea.Msg{keyDown, keyRight}, config.DifficultyEasy},
		{"left wraps", config.DifficultyEasy, []tea.Msg{keyDown, keyLeft}, config.DifficultyHard},
		{"enter cycles", config.DifficultyEasy, []tea.Msg{keyDown, keyEnter}, config.DifficultyNormal},
		{"right ignored off the row", config.DifficultyNormal, []tea.Msg{keyRight}, config.DifficultyNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(NewMenuModel(tt.start, 80, 24, nil), tt.keys...).(MenuModel)
			if m.Preset() != tt.expected {
				t.Errorf("Preset() = %s, expected %s", m.Preset(), tt.expected)
			}
			if m.Choice() != MenuChoiceNone {
				t.Errorf("Choice() = %d, expected none", m.Choice())
			}
		})
	}
}

func TestMenuChoices(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.Msg
		expected MenuChoice
	}{
		{"play", []tea.Msg{keyEnter}, MenuChoicePlay},
		{"scores", []tea.Msg{keyDown, keyDown, keyEnter}, MenuChoiceScores},
		{"scores via tab", []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}}, MenuChoiceScores},
		{"quit row", []tea.Msg{keyDown, keyDown, keyDown, keyEnter}, MenuChoiceQuit},
		{"cursor stops at bottom", []tea.Msg{keyDown, keyDown, keyDown, keyDown, keyEnter}, MenuChoiceQuit},
		{"q quits", []tea.Msg{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}}, MenuChoiceQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(NewMenuModel(config.DifficultyNormal, 80, 24, nil), tt.keys...).(MenuModel)
			if m.Choice() != tt.expected {
				t.Errorf("Choice() = %d, expected %d", m.Choice(), tt.expected)
			}
		})
	}
}

func TestMenuViewShowsDifficulty(t *testing.T) {
	m := NewMenuModel(config.DifficultyEasy, 80, 24, nil)
	if !strings.Contains(m.View(), "Difficulty: < easy >") {
		t.Errorf("menu view missing difficulty:\n%s", m.View())
	}
}

// fakeSource serves canned scoreboard data.
type fakeSource struct {
	scores []storage.ScoreEntry
	stats  *storage.GameStats
	high   int
	err    error
}

func (f fakeSource) TopScores(string, int) ([]storage.ScoreEntry, error) { return f.scores, f.err }
func (f fakeSource) GetGameStats(string) (*storage.GameStats, error)     { return f.stats, f.err }
func (f fakeSource) HighScore(string) (int, error)                       { return f.high, f.err }

func TestScoreboardRows(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)
	rows := scoreRows([]storage.ScoreEntry{
		{Score: 900, Level: 3, Survival: 61500 * time.Millisecond, CreatedAt: created},
		{Score: 120, Level: 1, Survival: 4 * time.Second, CreatedAt: created},
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows, expected 2", len(rows))
	}
	expected := []string{"#1", "900", "3", "61.50s", "Mar 14 09:26"}
	for i, cell := range expected {
		if rows[0][i] != cell {
			t.Errorf("rows[0][%d] = %q, expected %q", i, rows[0][i], cell)
		}
	}
	if rows[1][0] != "#2" {
		t.Errorf("second rank = %q, expected #2", rows[1][0])
	}
}

func TestScoreboardView(t *testing.T) {
	src := fakeSource{
		scores: []storage.ScoreEntry{{Score: 500, Level: 2}},
		stats:  &storage.GameStats{GamesCount: 4, AvgScore: 250, BestLevel: 2},
		high:   700,
	}
	m := NewScoreboardModel(src, "dodge", "Dodge", "highScore", 100, 30, nil)
	view := m.View()
	for _, want := range []string{"HIGH SCORES - Dodge", "High score 700", "Games 4"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = press(m, keyEsc).(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back without quitting")
	}
}

func TestScoreboardLoadError(t *testing.T) {
	m := NewScoreboardModel(fakeSource{err: errors.New("locked")}, "dodge", "Dodge", "highScore", 100, 30, nil)
	if !strings.Contains(m.View(), "Could not load scores") {
		t.Error("view should report the load error")
	}
}

func TestScoreboardNilSource(t *testing.T) {
	m := NewScoreboardModel(nil, "dodge", "Dodge", "highScore", 100, 30, nil)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("view should show the empty message without a store")
	}
}

func TestSessionFlow(t *testing.T) {
	var built []config.DifficultyPreset
	g := &fakeGame{}
	opts := SessionOptions{
		NewGame: func(p config.DifficultyPreset) Game {
			built = append(built, p)
			return g
		},
		GameID:       "fake",
		GameTitle:    "Fake",
		HighScoreKey: "highScore",
	}
	var m tea.Model = NewSessionModel(opts, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	// Pick hard and play.
	m = press(m, keyDown, keyRight, tea.KeyMsg{Type: tea.KeyUp}, keyEnter)
	s := m.(SessionModel)
	if s.screen != screenGame {
		t.Fatalf("screen = %d, expected game", s.screen)
	}
	if len(built) != 1 || built[0] != config.DifficultyHard {
		t.Fatalf("built = %v, expected [hard]", built)
	}
	if g.resets != 1 {
		t.Errorf("game resets = %d, expected 1", g.resets)
	}

	// q leaves the game for the menu, keeping the difficulty.
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	s = m.(SessionModel)
	if s.screen != screenMenu {
		t.Fatalf("screen = %d, expected menu", s.screen)
	}
	if s.menu.Preset() != config.DifficultyHard {
		t.Errorf("menu preset = %s, expected hard", s.menu.Preset())
	}
	if g.stops != 1 {
		t.Errorf("game stopped %d times, expected 1 when leaving for the menu", g.stops)
	}

	// Scoreboard and back.
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.(SessionModel).screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	m = press(m, keyEsc)
	if m.(SessionModel).screen != screenMenu {
		t.Fatal("esc should return to the menu")
	}
}

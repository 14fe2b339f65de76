package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

const minBarWidth = 10

// hudView draws the level progress bar and active effects below the field.
type hudView struct {
	bar     progress.Model
	label   lipgloss.Style
	effects lipgloss.Style
}

func newHUDView(r *lipgloss.Renderer) hudView {
	return hudView{
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
		),
		label:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		effects: r.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// View renders one line sized to width.
func (h hudView) View(hud core.HUD, width int) string {
	label := h.label.Render(fmt.Sprintf(" Lv %d ", hud.Level))
	counts := fmt.Sprintf(" %d/%d  best %d ", hud.Score, hud.LevelUpScore, hud.HighScore)

	effects := ""
	if len(hud.Effects) > 0 {
		effects = h.effects.Render(" " + strings.Join(hud.Effects, "  "))
	}

	bar := h.bar
	bar.Width = core.Max(width/3, minBarWidth)
	line := lipgloss.JoinHorizontal(lipgloss.Top, label, bar.ViewAs(hud.Progress()), counts, effects)
	if lipgloss.Width(line) > width && width > 0 {
		// Drop the effects before anything else.
		line = lipgloss.JoinHorizontal(lipgloss.Top, label, bar.ViewAs(hud.Progress()), counts)
	}
	return line
}

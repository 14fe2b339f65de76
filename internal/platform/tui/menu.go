package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

// MenuChoice is what the player picked on the title menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

// menuEntries in display order. The difficulty row is not a choice; left
// and right cycle it.
var menuEntries = []string{"Play", "Difficulty", "High Scores", "Quit"}

const difficultyRow = 1

var presets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

type menuKeyMap struct {
	Up, Down, Left, Right, Select, Scores, Quit key.Binding
}

func defaultMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Left:   key.NewBinding(key.WithKeys("left", "h", "a")),
		Right:  key.NewBinding(key.WithKeys("right", "l", "d")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Scores: key.NewBinding(key.WithKeys("tab")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

// MenuModel is the title screen: start a game, pick a difficulty, view scores.
type MenuModel struct {
	cursor int
	preset int
	choice MenuChoice
	keys   menuKeyMap
	r      *lipgloss.Renderer
	width  int
	height int
}

// NewMenuModel creates a menu with the given preset preselected.
func NewMenuModel(preset config.DifficultyPreset, width, height int, r *lipgloss.Renderer) MenuModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	idx := 1
	for i, p := range presets {
		if p == preset {
			idx = i
		}
	}
	return MenuModel{
		preset: idx,
		keys:   defaultMenuKeyMap(),
		r:      r,
		width:  width,
		height: height,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.choice = MenuChoiceQuit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Left):
		if m.cursor == difficultyRow {
			m.preset = (m.preset + len(presets) - 1) % len(presets)
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursor == difficultyRow {
			m.preset = (m.preset + 1) % len(presets)
		}
	case key.Matches(msg, m.keys.Scores):
		m.choice = MenuChoiceScores
	case key.Matches(msg, m.keys.Select):
		switch m.cursor {
		case 0:
			m.choice = MenuChoicePlay
		case difficultyRow:
			m.preset = (m.preset + 1) % len(presets)
		case 2:
			m.choice = MenuChoiceScores
		case 3:
			m.choice = MenuChoiceQuit
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	title := m.r.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	active := m.r.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

	b.WriteString("\n")
	b.WriteString(centerText(title.Render("D O D G E"), m.width))
	b.WriteString("\n\n")

	for i, entry := range menuEntries {
		label := entry
		if i == difficultyRow {
			label = fmt.Sprintf("Difficulty: < %s >", m.Preset())
		}
		line := "  " + label
		if i == m.cursor {
			line = active.Render("> " + label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked, or MenuChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Preset returns the selected difficulty.
func (m MenuModel) Preset() config.DifficultyPreset {
	return presets[m.preset]
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

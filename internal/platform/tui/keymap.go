package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last press.
// Terminals report key repeats but never key releases, so a held arrow is
// a stream of presses and a released one simply stops arriving. The window
// has to cover the OS delay before the first repeat (usually 250-600ms) or
// movement stalls after the first step; the cost is that a released key
// keeps acting for up to the same window.
const DefaultHoldWindow = 500 * time.Millisecond

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Fast       key.Binding
	Slow       key.Binding
	Cloak      key.Binding
	Confirm    key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Slow, k.Cloak, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Fast, k.Slow, k.Cloak},
		{k.Confirm, k.Pause, k.Restart},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "shift+up", "k"),
			key.WithHelp("↑↓←→", "move"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "shift+down", "j"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "shift+left", "h"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "shift+right", "l"),
			key.WithHelp("→", "right"),
		),
		Fast: key.NewBinding(
			key.WithKeys("shift+up", "shift+down", "shift+left", "shift+right", "f"),
			key.WithHelp("shift/f", "fast"),
		),
		Slow: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "slow"),
		),
		Cloak: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "cloak"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "resume/next level"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc", "p"),
			key.WithHelp("esc", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// heldActions are reported on every frame while their key keeps repeating.
var heldActions = []core.Action{
	core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
	core.ActionFast, core.ActionSlow,
}

// InputState turns discrete key presses into per-frame input.
// Movement and speed modifiers stay held for a short window after each
// press; instant actions fire on the next frame only.
type InputState struct {
	keys     KeyMap
	window   time.Duration
	held     map[core.Action]time.Time
	pending  map[core.Action]bool
	stick    core.Vec
	hasStick bool
}

// NewInputState creates an input state with the given bindings and hold window.
func NewInputState(keys KeyMap, window time.Duration) *InputState {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &InputState{
		keys:    keys,
		window:  window,
		held:    make(map[core.Action]time.Time),
		pending: make(map[core.Action]bool),
	}
}

// Press records a key press at now. It reports whether the key was bound
// to a game action.
func (s *InputState) Press(msg tea.KeyMsg, now time.Time) bool {
	bound := false
	hold := func(b key.Binding, a core.Action) {
		if key.Matches(msg, b) {
			s.held[a] = now
			bound = true
		}
	}
	hold(s.keys.Up, core.ActionUp)
	hold(s.keys.Down, core.ActionDown)
	hold(s.keys.Left, core.ActionLeft)
	hold(s.keys.Right, core.ActionRight)
	hold(s.keys.Fast, core.ActionFast)
	hold(s.keys.Slow, core.ActionSlow)

	once := func(b key.Binding, a core.Action) {
		if key.Matches(msg, b) {
			s.pending[a] = true
			bound = true
		}
	}
	once(s.keys.Cloak, core.ActionCloak)
	once(s.keys.Confirm, core.ActionConfirm)
	once(s.keys.Pause, core.ActionPause)
	once(s.keys.Restart, core.ActionRestart)
	return bound
}

// SetStick records an analog direction, as produced by a mouse drag.
func (s *InputState) SetStick(v core.Vec) {
	s.stick = v
	s.hasStick = true
}

// ReleaseStick clears the analog direction.
func (s *InputState) ReleaseStick() {
	s.stick = core.Vec{}
	s.hasStick = false
}

// Frame builds the input for one tick at now and consumes instant actions.
func (s *InputState) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for _, a := range heldActions {
		at, ok := s.held[a]
		if !ok {
			continue
		}
		if now.Sub(at) > s.window {
			delete(s.held, a)
			continue
		}
		frame.Set(a)
	}
	for a := range s.pending {
		frame.Set(a)
		delete(s.pending, a)
	}
	if s.hasStick {
		frame.SetStick(s.stick.X, s.stick.Y)
	}
	return frame
}

// Reset forgets every held key, pending action and stick direction.
func (s *InputState) Reset() {
	clear(s.held)
	clear(s.pending)
	s.ReleaseStick()
}

package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow - move up
	ActionDown           // Down arrow - move down
	ActionLeft           // Left arrow - move left
	ActionRight          // Right arrow - move right
	ActionFast           // Shift held - fast movement
	ActionSlow           // S held - slow movement
	ActionCloak          // E - manual invulnerability
	ActionConfirm        // Enter - resume from pause, start next level
	ActionPause          // Escape - pause
	ActionRestart        // R - restart after game over
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFast:
		return "Fast"
	case ActionSlow:
		return "Slow"
	case ActionCloak:
		return "Cloak"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were active during this frame plus an
// optional analog stick vector.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Stick is a joystick vector with components in [-1, 1].
	// Only meaningful when HasStick is set.
	Stick    Vec
	HasStick bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetStick records a joystick vector, clamping each component to [-1, 1].
func (f *InputFrame) SetStick(dx, dy float64) {
	f.Stick = Vec{X: ClampF(dx, -1, 1), Y: ClampF(dy, -1, 1)}
	f.HasStick = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Stick = Vec{}
	f.HasStick = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Stick = f.Stick
	clone.HasStick = f.HasStick
	return clone
}

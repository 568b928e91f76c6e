package core

// Action represents a semantic game action, abstracted from physical key
// presses. The world consumes actions, never raw keys.
type Action int

const (
	ActionNone       Action = iota
	ActionMoveLeft          // A, Left arrow - continuous negative-x impulse while held
	ActionMoveRight         // D, Right arrow - continuous positive-x impulse while held
	ActionJump              // Space, W, Up - jump on press (requires grounded)
	ActionPlaceTile         // E - place a solid tile in front of the player
	ActionRemoveTile        // F - remove the tile in front of the player
	ActionPause             // P, Escape - pause/unpause
	ActionRestart           // R - regenerate the world
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionJump:
		return "Jump"
	case ActionPlaceTile:
		return "PlaceTile"
	case ActionRemoveTile:
		return "RemoveTile"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot for one simulation tick. Pressed holds
// actions whose key went down this tick (edge-triggered); Held holds actions
// whose key is still down (level-triggered). A key press always appears in
// both sets for its first tick.
type InputFrame struct {
	Pressed map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Press marks an action as newly pressed (and therefore also held).
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Pressed[a] = true
	f.Held[a] = true
}

// Hold marks an action as held without a fresh press this tick.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// WasPressed returns true if the action's key went down this tick.
func (f InputFrame) WasPressed(a Action) bool {
	return f.Pressed != nil && f.Pressed[a]
}

// IsHeld returns true if the action's key is currently down.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held != nil && f.Held[a]
}

// Clear resets both action sets for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}

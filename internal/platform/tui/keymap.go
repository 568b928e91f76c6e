package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cubeworld/internal/core"
)

// KeyMap defines the in-game key bindings. Bindings double as the help bar
// content.
type KeyMap struct {
	MoveLeft  key.Binding
	MoveRight key.Binding
	Jump      key.Binding
	Place     key.Binding
	Remove    key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default in-game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		MoveLeft: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "move left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "move right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/w", "jump"),
		),
		Place: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "place tile"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove tile"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MoveLeft, k.MoveRight, k.Jump, k.Place, k.Remove, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.MoveLeft, k.MoveRight, k.Jump},
		{k.Place, k.Remove},
		{k.Pause, k.Restart, k.Quit},
	}
}

// ActionFor translates a key message to a simulation action, or ActionNone.
// Pause, restart and quit are handled by the model, not the simulation.
func (k KeyMap) ActionFor(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.MoveLeft):
		return core.ActionMoveLeft
	case key.Matches(msg, k.MoveRight):
		return core.ActionMoveRight
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Place):
		return core.ActionPlaceTile
	case key.Matches(msg, k.Remove):
		return core.ActionRemoveTile
	}
	return core.ActionNone
}

// isMovement reports whether an action is level-triggered: it stays active
// while its key is held rather than firing once per press.
func isMovement(a core.Action) bool {
	return a == core.ActionMoveLeft || a == core.ActionMoveRight
}

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cubeworld/internal/config"
	"github.com/vovakirdan/cubeworld/internal/core"
	"github.com/vovakirdan/cubeworld/internal/storage"
	"github.com/vovakirdan/cubeworld/internal/world"
)

// scratchWorldName labels sessions played on an unnamed world.
const scratchWorldName = "scratch"

// Model is the Bubble Tea model driving a cube world session.
type Model struct {
	world     *world.World
	screen    *core.Screen
	renderer  *Renderer
	store     *storage.Store
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	held      *heldTracker
	input     core.InputFrame
	worldName string
	paused    bool
	quitting  bool
}

// NewModel creates a session model for the given world.
func NewModel(w *world.World, store *storage.Store, cfg core.RuntimeConfig, camera config.CameraConfig, worldName string) Model {
	h := help.New()
	h.ShowAll = false
	if worldName == "" {
		worldName = scratchWorldName
	}

	return Model{
		world:     w,
		screen:    core.NewScreen(cfg.ScreenW, viewHeight(cfg.ScreenH)),
		renderer:  NewRenderer(NewCamera(camera)),
		store:     store,
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      h,
		held:      newHeldTracker(heldWindow),
		input:     core.NewInputFrame(),
		worldName: worldName,
	}
}

// viewHeight reserves the bottom terminal row for the help bar.
func viewHeight(screenH int) int {
	if screenH <= 3 {
		return screenH
	}
	return screenH - 1
}

// World returns the simulation driven by this model, for saving on exit.
func (m Model) World() *world.World {
	return m.world
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.recordSession()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		return m, nil
	case key.Matches(msg, m.keys.Restart):
		m.world.Reset(time.Now().UnixNano())
		m.paused = false
		return m, nil
	}

	action := m.keys.ActionFor(msg)
	if action == core.ActionNone {
		return m, nil
	}
	if isMovement(action) {
		// No key-up events in terminals: movement synthesizes a held state
		// refreshed by auto-repeat instead of pressing once.
		m.held.mark(action, time.Now())
	} else {
		m.input.Press(action)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, viewHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		m.held.apply(&m.input, time.Now())
		m.world.Tick(&m.input)
		m.input.Clear()
	}
	return m, tickCmd(m.config.TickRate)
}

// recordSession saves the session length, best effort.
func (m Model) recordSession() {
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, quitting regardless
	m.store.RecordSession(m.worldName, m.world.Ticks())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Render(m.world, m.screen)
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, "* PAUSED *")
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(w *world.World, store *storage.Store, cfg core.RuntimeConfig, camera config.CameraConfig, worldName string) error {
	model := NewModel(w, store, cfg, camera, worldName)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

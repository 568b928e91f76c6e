package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cubeworld/internal/storage"
)

// WorldsKeyMap defines key bindings for the saved-worlds browser.
type WorldsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// DefaultWorldsKeyMap returns the default browser bindings.
func DefaultWorldsKeyMap() WorldsKeyMap {
	return WorldsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete world"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the key bindings for the mini help view.
func (k WorldsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Delete, k.Quit}
}

// FullHelp returns the key bindings for the full help view.
func (k WorldsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Delete, k.Quit}}
}

var (
	worldsTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("86")).
				MarginBottom(1)

	worldsTableStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	worldsErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// WorldsModel is the Bubble Tea model for browsing saved worlds.
type WorldsModel struct {
	store    *storage.Store
	table    table.Model
	help     help.Model
	keys     WorldsKeyMap
	err      error
	width    int
	height   int
	quitting bool
}

// NewWorldsModel creates a browser over the given store.
func NewWorldsModel(store *storage.Store, width, height int) WorldsModel {
	m := WorldsModel{
		store:  store,
		help:   help.New(),
		keys:   DefaultWorldsKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadWorlds()
	return m
}

func (m *WorldsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 20},
		{Title: "Seed", Width: 12},
		{Title: "Frames", Width: 7},
		{Title: "Solid", Width: 7},
		{Title: "Updated", Width: 17},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadWorlds refreshes the table rows from the store.
func (m *WorldsModel) loadWorlds() {
	summaries, err := m.store.ListWorlds()
	if err != nil {
		m.err = err
		return
	}
	m.err = nil

	rows := make([]table.Row, 0, len(summaries))
	for _, sum := range summaries {
		updated := "-"
		if !sum.UpdatedAt.IsZero() {
			updated = sum.UpdatedAt.Format("2006-01-02 15:04")
		}
		rows = append(rows, table.Row{
			sum.Name,
			fmt.Sprintf("%d", sum.Seed),
			fmt.Sprintf("%d", sum.Frames),
			fmt.Sprintf("%d", sum.SolidTiles),
			updated,
		})
	}
	m.table.SetRows(rows)
}

// Init implements tea.Model.
func (m WorldsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m WorldsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Delete):
			row := m.table.SelectedRow()
			if row != nil {
				if err := m.store.DeleteWorld(row[0]); err != nil {
					m.err = err
				} else {
					m.loadWorlds()
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m WorldsModel) View() string {
	if m.quitting {
		return ""
	}

	view := worldsTitleStyle.Render("Saved Worlds") + "\n"
	if m.err != nil {
		view += worldsErrStyle.Render("error: "+m.err.Error()) + "\n"
	}
	if len(m.table.Rows()) == 0 {
		view += "No saved worlds yet. Play with --world <name> to create one.\n"
	} else {
		view += worldsTableStyle.Render(m.table.View()) + "\n"
	}
	view += "\n" + m.help.View(m.keys)
	return view
}

// RunWorlds starts the saved-worlds browser in the local terminal.
func RunWorlds(store *storage.Store) error {
	p := tea.NewProgram(NewWorldsModel(store, 80, 24), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

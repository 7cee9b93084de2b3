package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gemshift/internal/config"
	"github.com/vovakirdan/gemshift/internal/levels"
)

// MenuItem is a selectable board in the menu: either a random board of a
// preset size or a hand-authored level.
type MenuItem struct {
	Title  string
	Preset config.BoardPreset // Set for random boards
	Level  *levels.Level      // Set for levels
}

// MenuModel is the Bubble Tea model for the board picker.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	quitting bool
	selected *MenuItem // Set when user selects a board
}

// MenuItems lists one random board per preset followed by the levels.
func MenuItems(lvls []levels.Level) []MenuItem {
	items := make([]MenuItem, 0, len(config.Presets())+len(lvls))
	for _, preset := range config.Presets() {
		items = append(items, MenuItem{
			Title:  fmt.Sprintf("Random board (%s)", preset),
			Preset: preset,
		})
	}
	for i := range lvls {
		lvl := lvls[i]
		items = append(items, MenuItem{
			Title: fmt.Sprintf("Level: %s", lvl.Name),
			Level: &lvl,
		})
	}
	return items
}

// NewMenuModel creates a new menu model.
func NewMenuModel(items []MenuItem, width, height int) MenuModel {
	return MenuModel{
		items:  items,
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
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  G E M S H I F T  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a board", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Title, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

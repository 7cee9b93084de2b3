package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gemshift/internal/config"
	"github.com/vovakirdan/gemshift/internal/levels"
	"github.com/vovakirdan/gemshift/internal/storage"
)

// SessionConfig configures a menu-driven session.
type SessionConfig struct {
	Game    config.Config
	Levels  []levels.Level
	Store   *storage.Store
	Session string
	Seed    int64 // 0 = time-based; otherwise board n is seeded with Seed+n
	Logger  *log.Logger
	Width   int
	Height  int
}

// SessionModel manages the full session flow: menu -> board -> menu.
// It is the top-level model for SSH sessions and for local play without a level.
type SessionModel struct {
	config   SessionConfig
	menu     MenuModel
	game     *Model
	boards   int
	width    int
	height   int
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg SessionConfig) SessionModel {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return SessionModel{
		config: cfg,
		menu:   NewMenuModel(MenuItems(cfg.Levels), cfg.Width, cfg.Height),
		width:  cfg.Width,
		height: cfg.Height,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	game, err := m.newGame(*selected)
	if err != nil {
		m.config.Logger.Error("cannot start board", "board", selected.Title, "error", err)
		m.menu = NewMenuModel(MenuItems(m.config.Levels), m.width, m.height)
		return m, nil
	}

	m.boards++
	m.game = &game
	return m, m.game.Init()
}

// newGame builds the play model for a menu selection.
func (m SessionModel) newGame(item MenuItem) (Model, error) {
	cfg := m.config.Game
	if err := config.ApplyPreset(&cfg, item.Preset); err != nil {
		return Model{}, err
	}

	seed := m.config.Seed
	if seed != 0 {
		seed += int64(m.boards)
	}

	game, err := NewModel(Options{
		Config:  cfg,
		Level:   item.Level,
		Store:   m.config.Store,
		Session: m.config.Session,
		Seed:    seed,
		Logger:  m.config.Logger,
		Menu:    true,
	})
	if err != nil {
		return Model{}, err
	}

	game.width, game.height = m.width, m.height
	game.help.Width = m.width
	return game, nil
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.menu = NewMenuModel(MenuItems(m.config.Levels), m.width, m.height)
		return m, m.menu.Init()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.game != nil {
		return m.game.View()
	}

	return m.menu.View()
}

// InGame reports whether a board is being played.
func (m SessionModel) InGame() bool {
	return m.game != nil
}

// RunSession starts a local menu-driven session.
func RunSession(cfg SessionConfig) error {
	p := tea.NewProgram(
		NewSessionModel(cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

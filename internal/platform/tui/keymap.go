package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is a play action derived from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionShiftRowLeft
	ActionShiftRowRight
	ActionShiftColUp
	ActionShiftColDown
	ActionCommit
	ActionCancel
	ActionHint
	ActionReset
	ActionHelp
	ActionQuit
)

// KeyMap holds the key bindings of the play screen.
// It implements help.KeyMap so the bindings double as the help line.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	ShiftRowLeft  key.Binding
	ShiftRowRight key.Binding
	ShiftColUp    key.Binding
	ShiftColDown  key.Binding
	Commit        key.Binding
	Cancel        key.Binding
	Hint          key.Binding
	Reset         key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "cursor up")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "cursor down")),
		Left:          key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "cursor left")),
		Right:         key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "cursor right")),
		ShiftRowLeft:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "row left")),
		ShiftRowRight: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "row right")),
		ShiftColUp:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "column up")),
		ShiftColDown:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "column down")),
		Commit:        key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "commit")),
		Cancel:        key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "cancel")),
		Hint:          key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "hint")),
		Reset:         key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new board")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ShiftRowLeft, k.ShiftRowRight, k.ShiftColUp, k.ShiftColDown, k.Commit, k.Hint, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.ShiftRowLeft, k.ShiftRowRight, k.ShiftColUp, k.ShiftColDown},
		{k.Commit, k.Cancel, k.Hint, k.Reset},
		{k.Help, k.Quit},
	}
}

// bindings pairs every binding with its action, in match priority order.
func (k KeyMap) bindings() []struct {
	binding key.Binding
	action  Action
} {
	return []struct {
		binding key.Binding
		action  Action
	}{
		{k.Quit, ActionQuit},
		{k.Up, ActionUp},
		{k.Down, ActionDown},
		{k.Left, ActionLeft},
		{k.Right, ActionRight},
		{k.ShiftRowLeft, ActionShiftRowLeft},
		{k.ShiftRowRight, ActionShiftRowRight},
		{k.ShiftColUp, ActionShiftColUp},
		{k.ShiftColDown, ActionShiftColDown},
		{k.Commit, ActionCommit},
		{k.Cancel, ActionCancel},
		{k.Hint, ActionHint},
		{k.Reset, ActionReset},
		{k.Help, ActionHelp},
	}
}

// MapKey translates a key message to a play action.
// Disabled bindings never match.
func (k KeyMap) MapKey(msg tea.KeyMsg) Action {
	for _, b := range k.bindings() {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}

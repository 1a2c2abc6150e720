package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmheroes/mmheroes-go/internal/game"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select, k.Quit}}
}

// MapKey translates a key message to a game input. Returns the input and
// whether the key was a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (game.Input, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return game.EOF, true
	case key.Matches(msg, k.Up):
		return game.KeyUp, false
	case key.Matches(msg, k.Down):
		return game.KeyDown, false
	case key.Matches(msg, k.Select):
		return game.Enter, false
	default:
		return game.Other, false
	}
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravflip/internal/input"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Flip    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flip, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Flip, k.Restart, k.Quit}}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flip: key.NewBinding(
			key.WithKeys(" ", "up", "down", "w", "s"),
			key.WithHelp("click/space", "flip gravity"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "restart"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// setOver switches bindings between the running and game over screens.
func (k *KeyMap) setOver(over bool) {
	k.Flip.SetEnabled(!over)
	k.Restart.SetEnabled(over)
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) input.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return input.ActionQuit
	case key.Matches(msg, k.Flip):
		return input.ActionFlip
	case key.Matches(msg, k.Restart):
		return input.ActionRestart
	}
	return input.ActionNone
}

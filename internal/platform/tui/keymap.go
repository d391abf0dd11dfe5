package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap binds terminal keys to game events and host actions.
// It centralizes key bindings and makes them testable.
type KeyMap struct {
	Confirm    key.Binding
	Flap       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding // Leaves immediately, whatever the game mode
	Screenshot key.Binding
	Copy       key.Binding // Copies the frame to the local clipboard
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Flap, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Confirm, k.Flap},
		{k.Screenshot, k.Copy, k.Quit, k.ForceQuit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("p", "P", "enter"),
			key.WithHelp("p", "play"),
		),
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "flap"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy frame"),
		),
	}
}

// Event translates a key message to the game event for this frame.
// Keys without a game meaning become EventOther, which every mode ignores.
func (k KeyMap) Event(msg tea.KeyMsg) core.Event {
	switch {
	case key.Matches(msg, k.Confirm):
		return core.EventConfirm
	case key.Matches(msg, k.Flap):
		return core.EventFlap
	case key.Matches(msg, k.Quit):
		return core.EventQuit
	}
	return core.EventOther
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jellyblocker/internal/core"
)

// KeyMap defines the game and program key bindings.
// It is the only place that knows key names; everything past it speaks
// core.Command.
type KeyMap struct {
	// game actions
	Left        key.Binding
	Right       key.Binding
	RotateLeft  key.Binding
	RotateRight key.Binding
	FastDrop    key.Binding
	HardDrop    key.Binding

	// program actions
	Start      key.Binding
	Controls   key.Binding
	Leave      key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "move right"),
		),
		RotateLeft: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "rotate left"),
		),
		RotateRight: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "rotate right"),
		),
		FastDrop: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "fast drop"),
		),
		HardDrop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "hard drop"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start game"),
		),
		Controls: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "view controls"),
		),
		Leave: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp returns the program commands shown on the idle screen.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Controls, k.Leave, k.Quit}
}

// FullHelp returns every binding, game actions first.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.GameHelp(),
		k.ShortHelp(),
	}
}

// GameHelp returns the game action bindings.
func (k KeyMap) GameHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.RotateLeft, k.RotateRight, k.FastDrop, k.HardDrop}
}

// Command translates a key press to a session command.
// Controls and Quit are handled by the program and map to CommandNone.
func (k KeyMap) Command(msg tea.KeyMsg) core.Command {
	switch {
	case key.Matches(msg, k.Left):
		return core.CommandMoveLeft
	case key.Matches(msg, k.Right):
		return core.CommandMoveRight
	case key.Matches(msg, k.RotateLeft):
		return core.CommandRotateLeft
	case key.Matches(msg, k.RotateRight):
		return core.CommandRotateRight
	case key.Matches(msg, k.FastDrop):
		return core.CommandFastDropOn
	case key.Matches(msg, k.HardDrop):
		return core.CommandHardDrop
	case key.Matches(msg, k.Start):
		return core.CommandStart
	case key.Matches(msg, k.Leave):
		return core.CommandLeave
	}
	return core.CommandNone
}

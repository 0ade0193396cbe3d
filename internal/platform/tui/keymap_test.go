package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jellyblocker/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapCommands(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Command
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.CommandMoveLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.CommandMoveRight},
		{"z", runes("z"), core.CommandRotateLeft},
		{"x", runes("x"), core.CommandRotateRight},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.CommandFastDropOn},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.CommandHardDrop},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.CommandStart},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.CommandLeave},
		{"controls", runes("1"), core.CommandNone},
		{"quit", runes("q"), core.CommandNone},
		{"unbound", runes("w"), core.CommandNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Command(tc.msg); got != tc.want {
				t.Errorf("Command(%q) = %v, want %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestKeyMapHelpGroups(t *testing.T) {
	keys := DefaultKeyMap()

	if got := len(keys.GameHelp()); got != 6 {
		t.Errorf("GameHelp has %d bindings, want 6", got)
	}
	if got := len(keys.ShortHelp()); got != 4 {
		t.Errorf("ShortHelp has %d bindings, want 4", got)
	}
	full := keys.FullHelp()
	if len(full) != 2 || len(full[0]) != 6 {
		t.Errorf("FullHelp should list game actions then program commands")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runes("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionPrevPreset},
		{runes("l"), MenuActionNextPreset},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionQuit},
		{runes("?"), MenuActionNone},
	}

	for _, tc := range tests {
		if got := MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tc.msg.String(), got, tc.want)
		}
	}
}

package core

import "testing"

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd      Command
		expected string
	}{
		{CommandNone, "None"},
		{CommandMoveLeft, "MoveLeft"},
		{CommandRotateRight, "RotateRight"},
		{CommandFastDropOff, "FastDropOff"},
		{CommandLeave, "Leave"},
		{Command(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.cmd.String(); got != tc.expected {
			t.Errorf("Command(%d).String() = %q, expected %q", tc.cmd, got, tc.expected)
		}
	}
}

func TestCommandIsMovement(t *testing.T) {
	movement := []Command{CommandMoveLeft, CommandMoveRight, CommandRotateLeft, CommandRotateRight, CommandHardDrop}
	for _, c := range movement {
		if !c.IsMovement() {
			t.Errorf("%s should be a movement command", c)
		}
	}

	other := []Command{CommandNone, CommandFastDropOn, CommandFastDropOff, CommandStart, CommandLeave}
	for _, c := range other {
		if c.IsMovement() {
			t.Errorf("%s should not be a movement command", c)
		}
	}
}

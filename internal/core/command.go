package core

// Command is a player intent, abstracted from physical key presses.
// Hosts translate their own input into commands and hand them to a session.
type Command int

const (
	CommandNone        Command = iota
	CommandMoveLeft            // Left arrow
	CommandMoveRight           // Right arrow
	CommandRotateLeft          // Z
	CommandRotateRight         // X
	CommandFastDropOn          // Down pressed
	CommandFastDropOff         // Down released
	CommandHardDrop            // Space
	CommandStart               // Enter - begin a new game
	CommandLeave               // Esc - abandon the current game
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandMoveLeft:
		return "MoveLeft"
	case CommandMoveRight:
		return "MoveRight"
	case CommandRotateLeft:
		return "RotateLeft"
	case CommandRotateRight:
		return "RotateRight"
	case CommandFastDropOn:
		return "FastDropOn"
	case CommandFastDropOff:
		return "FastDropOff"
	case CommandHardDrop:
		return "HardDrop"
	case CommandStart:
		return "Start"
	case CommandLeave:
		return "Leave"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether c acts on the falling group.
func (c Command) IsMovement() bool {
	switch c {
	case CommandMoveLeft, CommandMoveRight, CommandRotateLeft, CommandRotateRight, CommandHardDrop:
		return true
	default:
		return false
	}
}

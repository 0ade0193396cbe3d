// Package board implements the JellyBlocker grid simulation: the cell model,
// falling-group movement and rotation, gravity settling and pop detection.
// It is UI-agnostic and deterministic.
package board

// Color identifies what occupies a grid cell.
type Color uint8

const (
	Empty Color = iota
	Garbage
	Red
	Green
	Blue
	Purple
	Yellow
)

// playable lists every color a falling group may be made of.
var playable = []Color{Red, Green, Blue, Purple, Yellow}

// PlayableColors returns a copy of the colors that can appear in falling groups.
func PlayableColors() []Color {
	out := make([]Color, len(playable))
	copy(out, playable)
	return out
}

// String returns the lowercase name of the color.
func (c Color) String() string {
	switch c {
	case Empty:
		return "empty"
	case Garbage:
		return "garbage"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Purple:
		return "purple"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// IsPlayable reports whether the color can be part of a falling group.
func (c Color) IsPlayable() bool {
	return c >= Red && c <= Yellow
}

// ParseColor converts a color name or its single-letter code to a Color.
// Letters: '.' empty, '#' garbage, R G B P Y.
func ParseColor(s string) (Color, bool) {
	switch s {
	case ".", "empty":
		return Empty, true
	case "#", "garbage":
		return Garbage, true
	case "R", "r", "red":
		return Red, true
	case "G", "g", "green":
		return Green, true
	case "B", "b", "blue":
		return Blue, true
	case "P", "p", "purple":
		return Purple, true
	case "Y", "y", "yellow":
		return Yellow, true
	}
	return Empty, false
}

// Cell is a single occupied grid position.
// Row and Col always match the slot the grid stores the cell in.
type Cell struct {
	Color   Color
	Falling bool
	Row     int
	Col     int
}

// Coord is a (row, col) position on the grid.
type Coord struct {
	Row int
	Col int
}

package board

import "fmt"

// DefaultWidth and DefaultHeight give the classic 6x13 board.
// Row 0 is the off-screen spawn buffer.
const (
	DefaultWidth  = 6
	DefaultHeight = 13
)

// spawnRows is how many rows a group fills before wrapping to the next column.
const spawnRows = 2

// Grid is the board: a fixed-size array of cells plus the current falling group.
// A nil slot is empty. The slot array is the single source of truth for position;
// the falling group is an ordered index into a subset of the same cells.
type Grid struct {
	width  int
	height int
	cells  [][]*Cell
	group  Group
}

// New creates an empty grid with the given dimensions.
func New(width, height int) *Grid {
	cells := make([][]*Cell, height)
	for row := range cells {
		cells[row] = make([]*Cell, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows, including the hidden spawn row.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// At returns the color at (row, col). Out-of-bounds positions read as Empty.
func (g *Grid) At(row, col int) Color {
	if !g.InBounds(row, col) || g.cells[row][col] == nil {
		return Empty
	}
	return g.cells[row][col].Color
}

// IsFalling reports whether (row, col) holds a cell of the falling group.
func (g *Grid) IsFalling(row, col int) bool {
	if !g.InBounds(row, col) || g.cells[row][col] == nil {
		return false
	}
	return g.cells[row][col].Falling
}

// isEmpty reports whether (row, col) is on the grid and unoccupied.
func (g *Grid) isEmpty(row, col int) bool {
	return g.InBounds(row, col) && g.cells[row][col] == nil
}

// Place puts a static cell of the given color at (row, col).
// Returns false if the slot is off the grid, occupied, or color is Empty.
func (g *Grid) Place(row, col int, color Color) bool {
	if color == Empty || !g.isEmpty(row, col) {
		return false
	}
	g.cells[row][col] = &Cell{Color: color, Row: row, Col: col}
	return true
}

// move relocates c to (row, col), keeping slot and coordinates in sync.
// The destination must already be vacant.
func (g *Grid) move(c *Cell, row, col int) {
	g.cells[c.Row][c.Col] = nil
	g.cells[row][col] = c
	c.Row = row
	c.Col = col
}

// SpawnCoords returns where a group of n cells is placed: row 0 of the
// centered column, filling downward before moving one column right.
func (g *Grid) SpawnCoords(n int) []Coord {
	coords := make([]Coord, 0, n)
	row, col := 0, (g.width-1)/2
	for range n {
		coords = append(coords, Coord{Row: row, Col: col})
		row++
		if row >= spawnRows {
			row = 0
			col++
		}
	}
	return coords
}

// Spawn places group at the spawn location and makes it the current falling group.
// Every target is checked before anything is written, so a failed spawn
// leaves the grid untouched.
func (g *Grid) Spawn(group Group) bool {
	if len(group) == 0 || g.group != nil {
		return false
	}

	coords := g.SpawnCoords(len(group))
	for _, c := range coords {
		if !g.isEmpty(c.Row, c.Col) {
			return false
		}
	}

	for i, cell := range group {
		cell.Falling = true
		cell.Row = coords[i].Row
		cell.Col = coords[i].Col
		g.cells[cell.Row][cell.Col] = cell
	}
	g.group = group
	return true
}

// HasGroup reports whether a falling group is on the grid.
func (g *Grid) HasGroup() bool {
	return len(g.group) > 0
}

// Falling returns the positions of the falling group in group order.
func (g *Grid) Falling() []Coord {
	coords := make([]Coord, len(g.group))
	for i, c := range g.group {
		coords[i] = Coord{Row: c.Row, Col: c.Col}
	}
	return coords
}

// Lock turns the falling group into static cells.
func (g *Grid) Lock() {
	for _, c := range g.group {
		c.Falling = false
	}
	g.group = nil
}

// Colors returns a row-major copy of every cell color.
func (g *Grid) Colors() [][]Color {
	out := make([][]Color, g.height)
	for row := range out {
		out[row] = make([]Color, g.width)
		for col := range out[row] {
			out[row][col] = g.At(row, col)
		}
	}
	return out
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c != nil {
				n++
			}
		}
	}
	return n
}

// CheckInvariants verifies that every cell's coordinates match its slot,
// that exactly the falling group's cells are marked falling, and that the
// group is ordered left-to-right, then top-to-bottom.
func (g *Grid) CheckInvariants() error {
	member := make(map[*Cell]bool, len(g.group))
	for i, c := range g.group {
		member[c] = true
		if !g.InBounds(c.Row, c.Col) || g.cells[c.Row][c.Col] != c {
			return fmt.Errorf("falling cell %d at (%d,%d) is not in its slot", i, c.Row, c.Col)
		}
		if i > 0 {
			prev := g.group[i-1]
			if prev.Col > c.Col || (prev.Col == c.Col && prev.Row >= c.Row) {
				return fmt.Errorf("falling group out of order at index %d", i)
			}
		}
	}

	for row := range g.cells {
		for col, c := range g.cells[row] {
			if c == nil {
				continue
			}
			if c.Row != row || c.Col != col {
				return fmt.Errorf("cell in slot (%d,%d) claims (%d,%d)", row, col, c.Row, c.Col)
			}
			if c.Color == Empty {
				return fmt.Errorf("occupied slot (%d,%d) has empty color", row, col)
			}
			if c.Falling != member[c] {
				return fmt.Errorf("cell (%d,%d) falling=%v but group member=%v", row, col, c.Falling, member[c])
			}
		}
	}
	return nil
}

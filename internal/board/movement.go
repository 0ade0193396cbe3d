package board

// canOccupy reports whether a falling cell may move into (row, col):
// the slot is on the grid and either empty or held by the falling group.
func (g *Grid) canOccupy(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	c := g.cells[row][col]
	return c == nil || c.Falling
}

// translate shifts the whole group by (dRow, dCol), or not at all.
//
// Cells are moved in place, so the scan runs against the direction of travel's
// leading edge: toward increasing row/column the group is walked in reverse
// (rightmost-bottom first), otherwise forward. That way each cell moves into a
// slot its sibling has already vacated.
func (g *Grid) translate(dRow, dCol int) bool {
	if len(g.group) == 0 {
		return false
	}

	for _, c := range g.group {
		if !g.canOccupy(c.Row+dRow, c.Col+dCol) {
			return false
		}
	}

	if dRow > 0 || dCol > 0 {
		for i := len(g.group) - 1; i >= 0; i-- {
			c := g.group[i]
			g.move(c, c.Row+dRow, c.Col+dCol)
		}
	} else {
		for _, c := range g.group {
			g.move(c, c.Row+dRow, c.Col+dCol)
		}
	}
	return true
}

// MoveLeft shifts the falling group one column left if there is room.
func (g *Grid) MoveLeft() bool {
	return g.translate(0, -1)
}

// MoveRight shifts the falling group one column right if there is room.
func (g *Grid) MoveRight() bool {
	return g.translate(0, 1)
}

// MoveDown shifts the falling group one row down.
// Returns false when the group has landed.
func (g *Grid) MoveDown() bool {
	return g.translate(1, 0)
}

// HardDrop moves the group down until it is blocked and returns the rows dropped.
func (g *Grid) HardDrop() int {
	rows := 0
	for g.MoveDown() {
		rows++
	}
	return rows
}

// RotateLeft spins a pair counterclockwise.
//
// Vertical pair: the top cell moves diagonally to the left of the bottom one.
// Horizontal pair: the right cell moves up and the left cell moves right,
// leaving the former right cell on top.
func (g *Grid) RotateLeft() bool {
	if len(g.group) != MaxGroupSize {
		return false
	}
	a, b := g.group[0], g.group[1]

	switch {
	case a.Col == b.Col:
		if !g.isEmpty(a.Row, a.Col-1) || !g.isEmpty(a.Row+1, a.Col-1) {
			return false
		}
		g.move(a, a.Row+1, a.Col-1)

	case a.Row == b.Row:
		// The slot above the left cell is the one the pair sweeps through;
		// the slot above the right cell is where b lands.
		if !g.isEmpty(a.Row-1, a.Col) || !g.isEmpty(b.Row-1, b.Col) {
			return false
		}
		g.move(b, b.Row-1, b.Col)
		g.move(a, a.Row, a.Col+1)
		g.group[0], g.group[1] = b, a

	default:
		return false
	}
	return true
}

// RotateRight spins a pair clockwise, mirroring RotateLeft.
//
// Vertical pair: the top cell moves diagonally to the right of the bottom one.
// Horizontal pair: the left cell moves up and the right cell moves left
// underneath it.
func (g *Grid) RotateRight() bool {
	if len(g.group) != MaxGroupSize {
		return false
	}
	a, b := g.group[0], g.group[1]

	switch {
	case a.Col == b.Col:
		if !g.isEmpty(a.Row, a.Col+1) || !g.isEmpty(a.Row+1, a.Col+1) {
			return false
		}
		g.move(a, a.Row+1, a.Col+1)
		g.group[0], g.group[1] = b, a

	case a.Row == b.Row:
		if !g.isEmpty(a.Row-1, a.Col) {
			return false
		}
		g.move(a, a.Row-1, a.Col)
		g.move(b, b.Row, b.Col-1)

	default:
		return false
	}
	return true
}

package board

// ApplyGravity moves every unsupported static cell down by exactly one row.
//
// Rows are scanned from just above the floor upward, so a floating column
// drops as a unit while no cell travels more than one row per call.
// Falling cells are left alone. Returns whether anything moved; callers
// repeat until it returns false to settle the board.
func (g *Grid) ApplyGravity() bool {
	moved := false
	for row := g.height - 2; row >= 0; row-- {
		for col := 0; col < g.width; col++ {
			c := g.cells[row][col]
			if c == nil || c.Falling || g.cells[row+1][col] != nil {
				continue
			}
			g.move(c, row+1, col)
			moved = true
		}
	}
	return moved
}

// Settle applies gravity until nothing moves and returns the number of steps taken.
func (g *Grid) Settle() int {
	steps := 0
	for g.ApplyGravity() {
		steps++
	}
	return steps
}

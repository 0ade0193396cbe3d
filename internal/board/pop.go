package board

import "github.com/kamstrup/intmap"

// DefaultPopThreshold is the minimum connected count that pops.
const DefaultPopThreshold = 4

// neighbors are the 4-directional offsets: up, down, left, right.
var neighbors = [4]Coord{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}

// poppable reports whether c can take part in a connected component.
func poppable(c *Cell) bool {
	return c != nil && c.Color != Garbage && !c.Falling
}

// key maps a coordinate to its row-major slot index.
func (g *Grid) key(row, col int) int {
	return row*g.width + col
}

// Components returns every same-color connected component of at least
// minConnected cells, in row-major discovery order. Each cell belongs to at
// most one component. The grid is not modified.
func (g *Grid) Components(minConnected int) [][]Coord {
	// slot index -> component id
	visited := intmap.New[int, int](g.width * g.height)
	var out [][]Coord
	id := 0

	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			start := g.cells[row][col]
			if !poppable(start) || visited.Has(g.key(row, col)) {
				continue
			}

			visited.Put(g.key(row, col), id)
			queue := []Coord{{Row: row, Col: col}}
			var comp []Coord

			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				comp = append(comp, cur)

				for _, d := range neighbors {
					r, c := cur.Row+d.Row, cur.Col+d.Col
					if !g.InBounds(r, c) {
						continue
					}
					next := g.cells[r][c]
					if !poppable(next) || next.Color != start.Color || visited.Has(g.key(r, c)) {
						continue
					}
					visited.Put(g.key(r, c), id)
					queue = append(queue, Coord{Row: r, Col: c})
				}
			}

			if len(comp) >= minConnected {
				out = append(out, comp)
			}
			id++
		}
	}
	return out
}

// Pop clears every component of at least minConnected cells and returns the
// number of cells cleared. Garbage never pops and never connects.
func (g *Grid) Pop(minConnected int) int {
	popped := 0
	for _, comp := range g.Components(minConnected) {
		for _, c := range comp {
			g.cells[c.Row][c.Col] = nil
		}
		popped += len(comp)
	}
	return popped
}

package board

import "math/rand"

// MaxGroupSize is the largest falling group with defined rotation rules.
const MaxGroupSize = 2

// Group is an ordered falling group: left-to-right, then top-to-bottom.
type Group []*Cell

// NewGroup creates a detached group with one falling cell per color.
func NewGroup(colors ...Color) Group {
	group := make(Group, len(colors))
	for i, c := range colors {
		group[i] = &Cell{Color: c, Falling: true, Row: -1, Col: -1}
	}
	return group
}

// Colors returns the colors of the group in order.
func (gr Group) Colors() []Color {
	out := make([]Color, len(gr))
	for i, c := range gr {
		out[i] = c.Color
	}
	return out
}

// Generator produces random falling groups from a per-session palette.
type Generator struct {
	rng     *rand.Rand
	palette []Color
	sizes   []int
}

// NewGenerator draws a palette of numColors distinct playable colors from rng
// and returns a generator sampling group sizes from sizes.
// The caller validates numColors and sizes.
func NewGenerator(rng *rand.Rand, numColors int, sizes []int) *Generator {
	perm := rng.Perm(len(playable))
	palette := make([]Color, numColors)
	for i := range palette {
		palette[i] = playable[perm[i]]
	}

	s := make([]int, len(sizes))
	copy(s, sizes)

	return &Generator{
		rng:     rng,
		palette: palette,
		sizes:   s,
	}
}

// Palette returns the colors this session draws from.
func (g *Generator) Palette() []Color {
	out := make([]Color, len(g.palette))
	copy(out, g.palette)
	return out
}

// Next returns a fresh random group.
func (g *Generator) Next() Group {
	size := g.sizes[g.rng.Intn(len(g.sizes))]
	colors := make([]Color, size)
	for i := range colors {
		colors[i] = g.palette[g.rng.Intn(len(g.palette))]
	}
	return NewGroup(colors...)
}

package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/jellyblocker/internal/board"
)

// gridFrom builds a grid from row strings using ParseColor letters.
func gridFrom(t *testing.T, rows ...string) *board.Grid {
	t.Helper()
	g := board.New(len(rows[0]), len(rows))
	for r, line := range rows {
		for c, ch := range line {
			if ch == '.' {
				continue
			}
			color, ok := board.ParseColor(string(ch))
			require.True(t, ok, "bad color %q", ch)
			require.True(t, g.Place(r, c, color))
		}
	}
	return g
}

// emptyGrid returns a default-size board with nothing on it.
func emptyGrid() *board.Grid {
	return board.New(board.DefaultWidth, board.DefaultHeight)
}

func TestSpawnPlacesPairAtCenter(t *testing.T) {
	g := emptyGrid()

	ok := g.Spawn(board.NewGroup(board.Red, board.Blue))
	require.True(t, ok)

	assert.Equal(t, []board.Coord{{Row: 0, Col: 2}, {Row: 1, Col: 2}}, g.Falling())
	assert.Equal(t, board.Red, g.At(0, 2))
	assert.Equal(t, board.Blue, g.At(1, 2))
	assert.True(t, g.IsFalling(0, 2))
	assert.True(t, g.IsFalling(1, 2))
	assert.NoError(t, g.CheckInvariants())
}

func TestSpawnSingleCell(t *testing.T) {
	g := emptyGrid()

	require.True(t, g.Spawn(board.NewGroup(board.Green)))
	assert.Equal(t, []board.Coord{{Row: 0, Col: 2}}, g.Falling())
	assert.NoError(t, g.CheckInvariants())
}

func TestSpawnCoordsWrapToNextColumn(t *testing.T) {
	g := emptyGrid()

	coords := g.SpawnCoords(4)
	expected := []board.Coord{
		{Row: 0, Col: 2},
		{Row: 1, Col: 2},
		{Row: 0, Col: 3},
		{Row: 1, Col: 3},
	}
	assert.Equal(t, expected, coords)
}

func TestSpawnFailsWithoutMutation(t *testing.T) {
	tests := []struct {
		name     string
		occupied board.Coord
	}{
		{"top cell occupied", board.Coord{Row: 0, Col: 2}},
		{"bottom cell occupied", board.Coord{Row: 1, Col: 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := emptyGrid()
			require.True(t, g.Place(tc.occupied.Row, tc.occupied.Col, board.Garbage))
			before := g.Colors()

			group := board.NewGroup(board.Red, board.Red)
			assert.False(t, g.Spawn(group))

			assert.Equal(t, before, g.Colors())
			assert.False(t, g.HasGroup())
			assert.Equal(t, 1, g.Count())
			for _, c := range group {
				assert.Equal(t, -1, c.Row, "failed spawn must not touch cell coordinates")
			}
		})
	}
}

func TestSpawnRejectedWhileGroupActive(t *testing.T) {
	g := emptyGrid()
	require.True(t, g.Spawn(board.NewGroup(board.Red, board.Red)))
	require.True(t, g.MoveDown())
	require.True(t, g.MoveDown())

	assert.False(t, g.Spawn(board.NewGroup(board.Blue, board.Blue)))
	assert.NoError(t, g.CheckInvariants())
}

func TestLockMakesGroupStatic(t *testing.T) {
	g := emptyGrid()
	require.True(t, g.Spawn(board.NewGroup(board.Yellow, board.Purple)))
	g.HardDrop()

	g.Lock()

	assert.False(t, g.HasGroup())
	assert.False(t, g.IsFalling(11, 2))
	assert.False(t, g.IsFalling(12, 2))
	assert.Equal(t, board.Yellow, g.At(11, 2))
	assert.Equal(t, board.Purple, g.At(12, 2))
	assert.NoError(t, g.CheckInvariants())
}

func TestPlace(t *testing.T) {
	g := board.New(3, 3)

	assert.True(t, g.Place(2, 0, board.Red))
	assert.False(t, g.Place(2, 0, board.Blue), "occupied slot")
	assert.False(t, g.Place(3, 0, board.Blue), "out of bounds")
	assert.False(t, g.Place(1, 1, board.Empty), "empty is not placeable")
	assert.Equal(t, 1, g.Count())
}

func TestAtOutOfBoundsIsEmpty(t *testing.T) {
	g := board.New(2, 2)
	assert.Equal(t, board.Empty, g.At(-1, 0))
	assert.Equal(t, board.Empty, g.At(0, 5))
	assert.False(t, g.IsFalling(9, 9))
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in    string
		color board.Color
		ok    bool
	}{
		{".", board.Empty, true},
		{"#", board.Garbage, true},
		{"R", board.Red, true},
		{"green", board.Green, true},
		{"b", board.Blue, true},
		{"P", board.Purple, true},
		{"yellow", board.Yellow, true},
		{"x", board.Empty, false},
	}

	for _, tc := range tests {
		color, ok := board.ParseColor(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.color, color, tc.in)
	}
}

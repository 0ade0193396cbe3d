package board_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/jellyblocker/internal/board"
)

// spawnPair spawns a red-over-blue pair on an empty default grid.
func spawnPair(t *testing.T) *board.Grid {
	t.Helper()
	g := emptyGrid()
	require.True(t, g.Spawn(board.NewGroup(board.Red, board.Blue)))
	return g
}

func TestMoveLeftStopsAtWall(t *testing.T) {
	g := spawnPair(t)

	assert.True(t, g.MoveLeft())
	assert.True(t, g.MoveLeft())
	assert.False(t, g.MoveLeft(), "group at column 0 must reject move left")
	assert.Equal(t, []board.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 0}}, g.Falling())
	assert.NoError(t, g.CheckInvariants())
}

func TestMoveRightStopsAtWall(t *testing.T) {
	g := spawnPair(t)

	for range 3 {
		require.True(t, g.MoveRight())
	}
	assert.False(t, g.MoveRight(), "group at the last column must reject move right")
	assert.Equal(t, []board.Coord{{Row: 0, Col: 5}, {Row: 1, Col: 5}}, g.Falling())
	assert.NoError(t, g.CheckInvariants())
}

func TestMoveDownStopsAtFloor(t *testing.T) {
	g := spawnPair(t)

	for range 11 {
		require.True(t, g.MoveDown())
	}
	assert.False(t, g.MoveDown(), "group on the bottom row must report false")
	assert.Equal(t, []board.Coord{{Row: 11, Col: 2}, {Row: 12, Col: 2}}, g.Falling())
	assert.NoError(t, g.CheckInvariants())
}

func TestMoveBlockedByStaticCell(t *testing.T) {
	g := spawnPair(t)
	require.True(t, g.Place(2, 2, board.Garbage))
	require.True(t, g.Place(1, 1, board.Green))

	assert.False(t, g.MoveDown())
	assert.False(t, g.MoveLeft(), "one blocked cell rejects the whole move")
	assert.True(t, g.MoveRight())
	assert.NoError(t, g.CheckInvariants())
}

func TestMovementWithoutGroup(t *testing.T) {
	g := emptyGrid()

	assert.False(t, g.MoveLeft())
	assert.False(t, g.MoveRight())
	assert.False(t, g.MoveDown())
	assert.False(t, g.RotateLeft())
	assert.False(t, g.RotateRight())
	assert.Equal(t, 0, g.HardDrop())
}

func TestHardDrop(t *testing.T) {
	g := spawnPair(t)

	assert.Equal(t, 11, g.HardDrop())
	assert.Equal(t, []board.Coord{{Row: 11, Col: 2}, {Row: 12, Col: 2}}, g.Falling())
}

func TestRotateLeftVerticalPair(t *testing.T) {
	g := spawnPair(t)

	require.True(t, g.RotateLeft())

	// former top cell now sits left of the former bottom cell
	assert.Equal(t, []board.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}}, g.Falling())
	assert.Equal(t, board.Red, g.At(1, 1))
	assert.Equal(t, board.Blue, g.At(1, 2))
	assert.Equal(t, board.Empty, g.At(0, 2))
	assert.NoError(t, g.CheckInvariants())
}

func TestRotateRightVerticalPair(t *testing.T) {
	g := spawnPair(t)

	require.True(t, g.RotateRight())

	assert.Equal(t, []board.Coord{{Row: 1, Col: 2}, {Row: 1, Col: 3}}, g.Falling())
	assert.Equal(t, board.Blue, g.At(1, 2))
	assert.Equal(t, board.Red, g.At(1, 3))
	assert.NoError(t, g.CheckInvariants())
}

func TestRotateHorizontalPair(t *testing.T) {
	g := spawnPair(t)
	require.True(t, g.MoveDown())
	require.True(t, g.RotateLeft()) // red (2,1), blue (2,2)

	require.True(t, g.RotateLeft())

	// right cell went up, left cell slid under it
	assert.Equal(t, []board.Coord{{Row: 1, Col: 2}, {Row: 2, Col: 2}}, g.Falling())
	assert.Equal(t, board.Blue, g.At(1, 2))
	assert.Equal(t, board.Red, g.At(2, 2))
	assert.NoError(t, g.CheckInvariants())
}

func TestFourRotationsRestorePair(t *testing.T) {
	tests := []struct {
		name   string
		rotate func(*board.Grid) bool
	}{
		{"left", (*board.Grid).RotateLeft},
		{"right", (*board.Grid).RotateRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := spawnPair(t)
			require.True(t, g.MoveDown())
			start := g.Colors()
			startFalling := g.Falling()

			for i := range 4 {
				require.True(t, tc.rotate(g), "rotation %d", i)
				require.NoError(t, g.CheckInvariants())
			}

			assert.Equal(t, start, g.Colors())
			assert.Equal(t, startFalling, g.Falling())
		})
	}
}

func TestRotationBlocked(t *testing.T) {
	t.Run("vertical at left wall", func(t *testing.T) {
		g := spawnPair(t)
		g.MoveLeft()
		g.MoveLeft()
		assert.False(t, g.RotateLeft())
	})

	t.Run("vertical at right wall", func(t *testing.T) {
		g := spawnPair(t)
		for range 3 {
			g.MoveRight()
		}
		assert.False(t, g.RotateRight())
	})

	t.Run("diagonal destination occupied", func(t *testing.T) {
		g := spawnPair(t)
		require.True(t, g.Place(1, 1, board.Garbage))
		assert.False(t, g.RotateLeft())
	})

	t.Run("side of top cell occupied", func(t *testing.T) {
		g := spawnPair(t)
		require.True(t, g.Place(0, 3, board.Garbage))
		assert.False(t, g.RotateRight())
	})

	t.Run("horizontal with slot above left cell occupied", func(t *testing.T) {
		g := spawnPair(t)
		require.True(t, g.RotateLeft()) // now horizontal on row 1
		require.True(t, g.MoveDown())
		require.True(t, g.Place(1, 1, board.Garbage))
		assert.False(t, g.RotateLeft(), "slot above the left cell is occupied")
		assert.False(t, g.RotateRight(), "slot above the left cell is occupied")
	})

	t.Run("horizontal landing slot occupied", func(t *testing.T) {
		g := spawnPair(t)
		require.True(t, g.RotateLeft())
		require.True(t, g.MoveDown())
		require.True(t, g.Place(1, 2, board.Garbage))
		assert.False(t, g.RotateLeft())
		assert.True(t, g.RotateRight(), "clockwise only needs the slot above the left cell")
		assert.NoError(t, g.CheckInvariants())
	})
}

func TestSingleCellDoesNotRotate(t *testing.T) {
	g := emptyGrid()
	require.True(t, g.Spawn(board.NewGroup(board.Red)))

	assert.False(t, g.RotateLeft())
	assert.False(t, g.RotateRight())
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := gridFrom(t,
		"......",
		"......",
		"......",
		"......",
		"......",
		"......",
		"......",
		"......",
		"#.....",
		"#...G.",
		"#..RGB",
		"##.RGB",
		"##YRPB",
	)
	require.True(t, g.Spawn(board.NewGroup(board.Purple, board.Yellow)))

	ops := []func() bool{g.MoveLeft, g.MoveRight, g.MoveDown, g.RotateLeft, g.RotateRight}
	for i := range 500 {
		ops[rng.Intn(len(ops))]()
		require.NoError(t, g.CheckInvariants(), "after op %d", i)
	}
	assert.Len(t, g.Falling(), 2)
}

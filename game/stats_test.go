package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCountsSpawns(t *testing.T) {
	g := newTestGame(ShapeO, ShapeI, ShapeT, ShapeO)

	// Only the piece in play counts; the queued next piece does not yet.
	assert.Equal(t, 1, g.Stats().Spawns(ShapeO))
	assert.Equal(t, 0, g.Stats().Spawns(ShapeI))

	g.HardDrop()
	assert.Equal(t, 1, g.Stats().Spawns(ShapeI))

	g.HardDrop()
	assert.Equal(t, 1, g.Stats().Spawns(ShapeT))
}

func TestStatsClearHistogram(t *testing.T) {
	g := newTestGame(ShapeO, ShapeI)

	for x := 0; x < Columns; x++ {
		if x != 4 && x != 5 {
			g.grid[Rows-1][x] = Cell(ShapeI + 1)
		}
	}
	g.HardDrop()

	require.Equal(t, 1, g.Lines())
	assert.Equal(t, 1, g.Stats().Clears(1))
	assert.Equal(t, 0, g.Stats().Clears(2))
}

func TestStatsResetWithGame(t *testing.T) {
	g := newTestGame(ShapeO, ShapeI, ShapeT)
	g.HardDrop()
	require.NotZero(t, g.Stats().Spawns(ShapeO))

	g.Reset()

	assert.Equal(t, 0, g.Stats().Spawns(ShapeI))
	assert.Equal(t, 0, g.Stats().Clears(1))
	// The piece dealt by Reset is back on the board and counted.
	assert.Equal(t, 1, g.Stats().Spawns(ShapeO))
}

func TestStatsZeroValue(t *testing.T) {
	var s Stats
	assert.Equal(t, 0, s.Spawns(ShapeI))
	assert.Equal(t, 0, s.Clears(4))
}

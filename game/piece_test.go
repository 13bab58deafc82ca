package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateCWOrderFour(t *testing.T) {
	for index, shape := range shapes {
		t.Run(ShapeName(index), func(t *testing.T) {
			rotated := shape
			for i := 0; i < 4; i++ {
				rotated = RotateCW(rotated)
			}
			assert.Equal(t, shape, rotated)
		})
	}
}

func TestRotateCWDimensions(t *testing.T) {
	i := shapes[ShapeI]
	require.Len(t, i, 1)
	require.Len(t, i[0], 4)

	vertical := RotateCW(i)
	assert.Len(t, vertical, 4)
	assert.Len(t, vertical[0], 1)
}

func TestRotateCWMatrix(t *testing.T) {
	// J turned clockwise:
	//   X..      XX
	//   XXX  ->  X.
	//            X.
	got := RotateCW(shapes[ShapeJ])
	want := Shape{
		{true, true},
		{true, false},
		{true, false},
	}
	assert.Equal(t, want, got)
}

func TestRotateCWIsPure(t *testing.T) {
	original := shapes[ShapeS]
	snapshot := make(Shape, len(original))
	for i, row := range original {
		snapshot[i] = append([]bool(nil), row...)
	}

	_ = RotateCW(original)
	assert.Equal(t, snapshot, original)
}

func TestSpawnPosition(t *testing.T) {
	tests := []struct {
		index int
		x     int
	}{
		{ShapeI, 3},
		{ShapeJ, 4},
		{ShapeL, 4},
		{ShapeO, 4},
		{ShapeS, 4},
		{ShapeT, 4},
		{ShapeZ, 4},
	}

	for _, tt := range tests {
		t.Run(ShapeName(tt.index), func(t *testing.T) {
			p := NewPiece(tt.index)
			assert.Equal(t, tt.x, p.X)
			assert.Equal(t, 0, p.Y)
			assert.Equal(t, tt.index, p.Index)
			assert.Equal(t, colors[tt.index], p.Color)
		})
	}
}

func TestCellIdentity(t *testing.T) {
	assert.True(t, CellEmpty.Empty())

	for index := 0; index < ShapeCount; index++ {
		t.Run(fmt.Sprintf("shape=%d", index), func(t *testing.T) {
			c := Cell(index + 1)
			assert.False(t, c.Empty())
			assert.Equal(t, colors[index], c.Color())
		})
	}
}

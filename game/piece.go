// Package game implements the falling-block engine: the playfield, the
// active piece and every gameplay rule. It is a synchronous state machine
// with no I/O; drivers feed it discrete commands and read state back for
// rendering.
package game

import "image/color"

// Playfield dimensions in cells.
const (
	Columns = 10
	Rows    = 20
)

// ShapeCount is the number of canonical tetrominoes.
const ShapeCount = 7

// Canonical shape identities, in shape-table order.
const (
	ShapeI = iota
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// Shape is a rectangular occupancy matrix, rows by columns. Shapes use tight
// bounding boxes, so most are not square and rotation swaps the dimensions.
type Shape [][]bool

var shapes = [ShapeCount]Shape{
	{ // I
		{true, true, true, true},
	},
	{ // J
		{true, false, false},
		{true, true, true},
	},
	{ // L
		{false, false, true},
		{true, true, true},
	},
	{ // O
		{true, true},
		{true, true},
	},
	{ // S
		{false, true, true},
		{true, true, false},
	},
	{ // T
		{false, true, false},
		{true, true, true},
	},
	{ // Z
		{true, true, false},
		{false, true, true},
	},
}

var colors = [ShapeCount]color.RGBA{
	{0, 255, 255, 255},   // I
	{0, 0, 255, 255},     // J
	{255, 165, 0, 255},   // L
	{255, 255, 0, 255},   // O
	{0, 255, 0, 255},     // S
	{128, 0, 128, 255},   // T
	{255, 0, 0, 255},     // Z
}

var shapeNames = [ShapeCount]string{"I", "J", "L", "O", "S", "T", "Z"}

// ShapeName returns the letter name of a shape identity.
func ShapeName(index int) string { return shapeNames[index] }

// Cell marks one playfield position. The zero value is empty; occupied cells
// carry the identity of the piece that locked there.
type Cell int8

// CellEmpty is the zero, unoccupied cell.
const CellEmpty Cell = 0

// Empty reports whether the cell holds no locked block.
func (c Cell) Empty() bool { return c == CellEmpty }

// Color returns the canonical color of the piece that filled the cell.
// Only valid for occupied cells.
func (c Cell) Color() color.RGBA { return colors[int(c)-1] }

// RotateCW returns s rotated 90° clockwise: the transpose of the
// row-reversed matrix. Pure; applying it four times yields the input.
func RotateCW(s Shape) Shape {
	rows, cols := len(s), len(s[0])
	out := make(Shape, cols)
	for r := range out {
		out[r] = make([]bool, rows)
		for c := range out[r] {
			out[r][c] = s[rows-1-c][r]
		}
	}
	return out
}

// Piece is the falling tetromino: its identity, current rotation and the
// grid position of its bounding box's top-left corner.
type Piece struct {
	Index int
	Shape Shape
	Color color.RGBA
	X, Y  int
}

// NewPiece spawns the given shape centered at the top of the playfield.
func NewPiece(index int) Piece {
	s := shapes[index]
	return Piece{
		Index: index,
		Shape: s,
		Color: colors[index],
		X:     Columns/2 - len(s[0])/2,
		Y:     0,
	}
}

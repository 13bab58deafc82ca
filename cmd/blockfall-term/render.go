package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/game"
)

// Each grid cell is two terminal columns wide so the playfield looks square.
const cellWidth = 2

func cellStyle(c game.Cell) tcell.Style {
	clr := c.Color()
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(clr.R), int32(clr.G), int32(clr.B)))
}

func pieceStyle(p game.Piece) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(p.Color.R), int32(p.Color.G), int32(p.Color.B)))
}

func drawBlock(screen tcell.Screen, x, y int, style tcell.Style) {
	for i := 0; i < cellWidth; i++ {
		screen.SetContent(1+x*cellWidth+i, 1+y, ' ', nil, style)
	}
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func draw(screen tcell.Screen, g *game.Game, paused bool) {
	screen.Clear()

	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle := tcell.StyleDefault

	// Playfield border.
	fieldW := game.Columns * cellWidth
	for x := 0; x <= fieldW+1; x++ {
		screen.SetContent(x, 0, tcell.RuneHLine, nil, borderStyle)
		screen.SetContent(x, game.Rows+1, tcell.RuneHLine, nil, borderStyle)
	}
	for y := 1; y <= game.Rows; y++ {
		screen.SetContent(0, y, tcell.RuneVLine, nil, borderStyle)
		screen.SetContent(fieldW+1, y, tcell.RuneVLine, nil, borderStyle)
	}

	// Locked cells.
	for y := 0; y < game.Rows; y++ {
		for x := 0; x < game.Columns; x++ {
			if c := g.CellAt(x, y); !c.Empty() {
				drawBlock(screen, x, y, cellStyle(c))
			}
		}
	}

	// Falling piece.
	p := g.Current()
	for dy, row := range p.Shape {
		for dx, filled := range row {
			if filled && p.Y+dy >= 0 {
				drawBlock(screen, p.X+dx, p.Y+dy, pieceStyle(p))
			}
		}
	}

	// Side panel.
	panelX := fieldW + 4
	drawText(screen, panelX, 1, fmt.Sprintf("Score: %d", g.Score()), textStyle)
	drawText(screen, panelX, 2, fmt.Sprintf("Lines: %d", g.Lines()), textStyle)
	drawText(screen, panelX, 3, fmt.Sprintf("Level: %d", g.Level()), textStyle)

	drawText(screen, panelX, 5, "Next:", textStyle)
	next := g.Next()
	for dy, row := range next.Shape {
		for dx, filled := range row {
			if filled {
				for i := 0; i < cellWidth; i++ {
					screen.SetContent(panelX+dx*cellWidth+i, 6+dy, ' ', nil, pieceStyle(next))
				}
			}
		}
	}

	drawText(screen, panelX, 10, "arrows move/rotate", textStyle)
	drawText(screen, panelX, 11, "space drop  p pause", textStyle)
	drawText(screen, panelX, 12, "r restart   q quit", textStyle)

	center := 1 + fieldW/2
	if paused {
		drawText(screen, center-3, game.Rows/2, "PAUSED", textStyle.Bold(true))
	}
	if g.Over() {
		drawText(screen, center-5, game.Rows/2, "GAME  OVER", textStyle.Bold(true))
	}

	screen.Show()
}

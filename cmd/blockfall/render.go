package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/game"
)

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	gridLineColor   = color.RGBA{40, 40, 40, 255}
	cellBorderColor = color.RGBA{255, 255, 255, 255}
	ghostColor      = color.NRGBA{255, 255, 255, 70}
)

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	a.drawLockedCells(screen)
	a.drawGhost(screen)
	a.drawPiece(screen)
	a.drawGridLines(screen)
	a.drawSidePanel(screen)
	a.drawBanners(screen)

	a.overlay.Draw(screen)
}

func (a *App) drawCell(screen *ebiten.Image, x, y int, clr color.Color, border bool) {
	cs := float32(a.cellSize)
	px, py := float32(x)*cs, float32(y)*cs
	vector.DrawFilledRect(screen, px, py, cs, cs, clr, false)
	if border {
		vector.StrokeRect(screen, px, py, cs, cs, 1, cellBorderColor, false)
	}
}

func (a *App) drawLockedCells(screen *ebiten.Image) {
	for y := 0; y < game.Rows; y++ {
		for x := 0; x < game.Columns; x++ {
			if c := a.game.CellAt(x, y); !c.Empty() {
				a.drawCell(screen, x, y, c.Color(), true)
			}
		}
	}
}

func (a *App) drawPiece(screen *ebiten.Image) {
	p := a.game.Current()
	for dy, row := range p.Shape {
		for dx, filled := range row {
			if filled && p.Y+dy >= 0 {
				a.drawCell(screen, p.X+dx, p.Y+dy, p.Color, true)
			}
		}
	}
}

func (a *App) drawGhost(screen *ebiten.Image) {
	p := a.game.Current()
	ghostY := a.game.DropY()
	if ghostY == p.Y {
		return
	}
	for dy, row := range p.Shape {
		for dx, filled := range row {
			if filled && ghostY+dy >= 0 {
				a.drawCell(screen, p.X+dx, ghostY+dy, ghostColor, false)
			}
		}
	}
}

func (a *App) drawGridLines(screen *ebiten.Image) {
	cs := float32(a.cellSize)
	fieldW := float32(game.Columns) * cs
	fieldH := float32(game.Rows) * cs

	for x := 0; x <= game.Columns; x++ {
		px := float32(x) * cs
		vector.StrokeLine(screen, px, 0, px, fieldH, 1, gridLineColor, false)
	}
	for y := 0; y <= game.Rows; y++ {
		py := float32(y) * cs
		vector.StrokeLine(screen, 0, py, fieldW, py, 1, gridLineColor, false)
	}
}

func (a *App) drawSidePanel(screen *ebiten.Image) {
	panelX := game.Columns*a.cellSize + 10

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE\n%d", a.game.Score()), panelX, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES\n%d", a.game.Lines()), panelX, 50)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL\n%d", a.game.Level()), panelX, 90)

	// Next piece preview.
	ebitenutil.DebugPrintAt(screen, "NEXT", panelX, 140)
	next := a.game.Next()
	previewCell := a.cellSize / 2
	cs := float32(previewCell)
	for dy, row := range next.Shape {
		for dx, filled := range row {
			if !filled {
				continue
			}
			px := float32(panelX + dx*previewCell)
			py := float32(160 + dy*previewCell)
			vector.DrawFilledRect(screen, px, py, cs, cs, next.Color, false)
			vector.StrokeRect(screen, px, py, cs, cs, 1, cellBorderColor, false)
		}
	}

	// Piece statistics, NES style.
	stats := a.game.Stats()
	statY := 220
	ebitenutil.DebugPrintAt(screen, "PIECES", panelX, statY)
	for index := 0; index < game.ShapeCount; index++ {
		line := fmt.Sprintf("%s x%d", game.ShapeName(index), stats.Spawns(index))
		ebitenutil.DebugPrintAt(screen, line, panelX, statY+20+index*16)
	}
}

func (a *App) drawBanners(screen *ebiten.Image) {
	centerX := game.Columns * a.cellSize / 2
	centerY := game.Rows * a.cellSize / 2

	if a.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", centerX-24, centerY)
	}
	if a.game.Over() {
		ebitenutil.DebugPrintAt(screen, "GAME OVER - R to restart", centerX-72, centerY)
	}
}

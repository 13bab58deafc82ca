package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/game"
)

const (
	sidePanelWidth = 180
	frameStep      = time.Second / 60
	perfHistory    = 120
)

// App is the driver loop: it polls input, advances gravity on a timer and
// renders once per frame. Pause lives here, not in the engine; while paused
// both gameplay keys and the gravity tick are suppressed.
type App struct {
	game     *game.Game
	overlay  *debugui.Overlay
	cellSize int

	width, height int
	paused        bool
	fallAcc       time.Duration
}

func newApp(g *game.Game, cellSize int, debug bool) *App {
	width := game.Columns*cellSize + sidePanelWidth
	height := game.Rows * cellSize

	overlay := debugui.NewOverlay("blockfall", width, height)
	overlay.Attach(debugui.GamePanel(g))
	overlay.Attach(debugui.StatsPanel(g))
	overlay.Attach(debugui.PerfPanel(perfHistory))
	overlay.SetVisible(debug)

	return &App{
		game:     g,
		overlay:  overlay,
		cellSize: cellSize,
		width:    width,
		height:   height,
	}
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.overlay.Toggle()
	}
	a.overlay.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.paused = !a.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.game.Reset()
		a.fallAcc = 0
		a.paused = false
	}

	if a.paused || a.game.Over() || a.overlay.WantCaptureKeyboard() {
		return nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		a.game.MoveLeft()
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		a.game.MoveRight()
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		a.game.Rotate()
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		a.game.SoftDrop()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		a.game.HardDrop()
	}

	// Gravity. The interval is re-read every frame, so a level-up re-arms
	// the timer on its own.
	a.fallAcc += frameStep
	if a.fallAcc >= a.game.FallInterval() {
		a.fallAcc = 0
		a.game.SoftDrop()
	}

	return nil
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.overlay.Layout(outsideWidth, outsideHeight)
	return a.width, a.height
}

package debugui

import (
	"fmt"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/game"
)

// GamePanel shows the engine state: counters, the falling piece and a
// character map of the grid occupancy.
func GamePanel(g *game.Game) Panel {
	return func() {
		imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
		imgui.SetNextWindowSizeV(imgui.NewVec2(240, 440), imgui.CondOnce)

		if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}

		imgui.Text(fmt.Sprintf("Score: %d", g.Score()))
		imgui.Text(fmt.Sprintf("Lines: %d", g.Lines()))
		imgui.Text(fmt.Sprintf("Level: %d", g.Level()))
		imgui.Text(fmt.Sprintf("Fall Interval: %s", g.FallInterval()))
		if g.Over() {
			imgui.Text("State: GAME OVER")
		} else {
			imgui.Text("State: running")
		}

		imgui.Separator()
		cur := g.Current()
		imgui.Text(fmt.Sprintf("Piece: %s at (%d,%d)", game.ShapeName(cur.Index), cur.X, cur.Y))
		imgui.Text(fmt.Sprintf("Next:  %s", game.ShapeName(g.Next().Index)))
		imgui.Text(fmt.Sprintf("Drop row: %d", g.DropY()))

		imgui.Separator()
		if imgui.TreeNodeStr("Grid") {
			var sb strings.Builder
			for y := 0; y < game.Rows; y++ {
				sb.Reset()
				for x := 0; x < game.Columns; x++ {
					if g.CellAt(x, y).Empty() {
						sb.WriteByte('.')
					} else {
						sb.WriteByte('#')
					}
				}
				imgui.Text(sb.String())
			}
			imgui.TreePop()
		}

		imgui.End()
	}
}

// StatsPanel shows the per-session spawn counts and the clear histogram.
func StatsPanel(g *game.Game) Panel {
	return func() {
		imgui.SetNextWindowPosV(imgui.NewVec2(10, 460), imgui.CondOnce, imgui.NewVec2(0, 0))
		imgui.SetNextWindowSizeV(imgui.NewVec2(240, 220), imgui.CondOnce)

		if !imgui.BeginV("Stats", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}

		stats := g.Stats()

		imgui.Text("Pieces")
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SpawnTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Shape")
			imgui.TableSetupColumn("Spawned")
			imgui.TableHeadersRow()

			for index := 0; index < game.ShapeCount; index++ {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(game.ShapeName(index))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", stats.Spawns(index)))
			}

			imgui.EndTable()
		}

		imgui.Separator()
		imgui.Text("Clears")
		for n := 1; n <= 4; n++ {
			imgui.BulletText(fmt.Sprintf("%dx: %d", n, stats.Clears(n)))
		}

		imgui.End()
	}
}

// PerfPanel plots frame times over a sliding window of frames.
func PerfPanel(historyFrames int) Panel {
	frameHistory := make([]float32, historyFrames)
	frameIndex := 0
	lastFrame := time.Now()

	return func() {
		now := time.Now()
		frameHistory[frameIndex] = float32(now.Sub(lastFrame).Seconds()) * 1000.0
		frameIndex = (frameIndex + 1) % historyFrames
		lastFrame = now

		imgui.SetNextWindowPosV(imgui.NewVec2(260, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
		imgui.SetNextWindowSizeV(imgui.NewVec2(260, 130), imgui.CondOnce)

		if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}

		var avg float32
		for _, ft := range frameHistory {
			avg += ft
		}
		avg /= float32(historyFrames)

		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
		imgui.PlotLinesFloatPtr("##frametime", &frameHistory[0], int32(len(frameHistory)))

		imgui.End()
	}
}

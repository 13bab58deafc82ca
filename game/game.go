package game

import "time"

// Source yields uniform random ints in [0, n). *rand.Rand from math/rand/v2
// satisfies it; tests inject a scripted sequence instead.
type Source interface {
	IntN(n int) int
}

// Gravity speed per level. Each level shaves fallStep off the interval,
// down to minFallInterval.
const (
	baseFallInterval = 500 * time.Millisecond
	minFallInterval  = 50 * time.Millisecond
	fallStep         = 40 * time.Millisecond
	linesPerLevel    = 10
)

// Game owns the playfield and all gameplay rules. Every operation runs to
// completion before the next one; there is no concurrency inside the engine.
// Once Over reports true the board no longer mutates.
type Game struct {
	grid    [Rows][Columns]Cell
	current Piece
	next    Piece
	score   int
	lines   int
	level   int
	fall    time.Duration
	over    bool
	rng     Source
	stats   Stats
}

// New creates a game with the first two pieces drawn from src.
func New(src Source) *Game {
	g := &Game{rng: src}
	g.Reset()
	return g
}

// Reset restores the initial state in place: empty grid, fresh pieces,
// level 1, zeroed counters.
func (g *Game) Reset() {
	g.grid = [Rows][Columns]Cell{}
	g.score = 0
	g.lines = 0
	g.level = 1
	g.fall = baseFallInterval
	g.over = false
	g.stats.reset()
	g.current = NewPiece(g.rng.IntN(ShapeCount))
	g.next = NewPiece(g.rng.IntN(ShapeCount))
	g.stats.pieceSpawned(g.current.Index)
}

// inside reports whether (x, y) is a playfield coordinate.
func inside(x, y int) bool {
	return x >= 0 && x < Columns && y >= 0 && y < Rows
}

// collides reports whether shape s at origin (ox, oy) would overlap a locked
// cell or leave the field. Cells above the visible top only collide against
// the side and bottom bounds, so a freshly spawned piece may overhang row 0.
func (g *Game) collides(s Shape, ox, oy int) bool {
	for dy, row := range s {
		for dx, filled := range row {
			if !filled {
				continue
			}
			x, y := ox+dx, oy+dy
			if x < 0 || x >= Columns || y >= Rows {
				return true
			}
			if y >= 0 && !g.grid[y][x].Empty() {
				return true
			}
		}
	}
	return false
}

// MoveLeft shifts the piece one column left. Blocked moves are silent no-ops.
func (g *Game) MoveLeft() { g.move(-1) }

// MoveRight shifts the piece one column right. Blocked moves are silent no-ops.
func (g *Game) MoveRight() { g.move(1) }

func (g *Game) move(dx int) {
	if g.over {
		return
	}
	if !g.collides(g.current.Shape, g.current.X+dx, g.current.Y) {
		g.current.X += dx
	}
}

// Rotate turns the piece clockwise. A rotation that would overlap anything
// is discarded whole; there is no wall kick.
func (g *Game) Rotate() {
	if g.over {
		return
	}
	rotated := RotateCW(g.current.Shape)
	if !g.collides(rotated, g.current.X, g.current.Y) {
		g.current.Shape = rotated
	}
}

// SoftDrop advances the piece one row, reporting false when the piece could
// not move and was locked instead. The gravity tick and the manual down key
// both go through here and land identically.
func (g *Game) SoftDrop() bool {
	if g.over {
		return false
	}
	if !g.collides(g.current.Shape, g.current.X, g.current.Y+1) {
		g.current.Y++
		return true
	}
	g.lockPiece()
	return false
}

// HardDrop sends the piece straight to its landing row and locks it once.
func (g *Game) HardDrop() {
	if g.over {
		return
	}
	g.current.Y = g.DropY()
	g.lockPiece()
}

// DropY returns the row the current piece would land on if dropped now.
// Renderers use it for the ghost piece.
func (g *Game) DropY() int {
	y := g.current.Y
	for !g.collides(g.current.Shape, g.current.X, y+1) {
		y++
	}
	return y
}

// lockPiece writes the piece into the grid, clears lines, then brings in the
// next piece. Clearing runs before the spawn check: a clear can free the
// spawn area and keep the game alive. Cells above the visible top are
// dropped, not written.
func (g *Game) lockPiece() {
	for dy, row := range g.current.Shape {
		for dx, filled := range row {
			if !filled {
				continue
			}
			x, y := g.current.X+dx, g.current.Y+dy
			if inside(x, y) {
				g.grid[y][x] = Cell(g.current.Index + 1)
			}
		}
	}
	g.clearLines()
	g.current = g.next
	g.next = NewPiece(g.rng.IntN(ShapeCount))
	g.stats.pieceSpawned(g.current.Index)
	if g.collides(g.current.Shape, g.current.X, g.current.Y) {
		g.over = true
	}
}

// clearLines drops every full row, settles the rows above and refills the
// top, keeping the grid at constant height. Scoring is cleared²×100, so
// multi-line clears pay disproportionately.
func (g *Game) clearLines() {
	cleared := 0
	dst := Rows - 1
	for src := Rows - 1; src >= 0; src-- {
		if fullRow(g.grid[src]) {
			cleared++
			continue
		}
		g.grid[dst] = g.grid[src]
		dst--
	}
	for ; dst >= 0; dst-- {
		g.grid[dst] = [Columns]Cell{}
	}
	if cleared == 0 {
		return
	}
	g.lines += cleared
	g.score += cleared * cleared * 100
	g.level = max(1, 1+g.lines/linesPerLevel)
	g.fall = max(minFallInterval, baseFallInterval-time.Duration(g.level-1)*fallStep)
	g.stats.linesCleared(cleared)
}

func fullRow(row [Columns]Cell) bool {
	for _, c := range row {
		if c.Empty() {
			return false
		}
	}
	return true
}

// CellAt returns the locked cell at (x, y).
func (g *Game) CellAt(x, y int) Cell { return g.grid[y][x] }

// Current returns the falling piece.
func (g *Game) Current() Piece { return g.current }

// Next returns the piece that spawns after the current one locks.
func (g *Game) Next() Piece { return g.next }

// Score returns the cumulative score.
func (g *Game) Score() int { return g.score }

// Lines returns the cumulative number of cleared rows.
func (g *Game) Lines() int { return g.lines }

// Level returns the current level, derived from cleared lines.
func (g *Game) Level() int { return g.level }

// FallInterval returns the current gravity interval. Drivers re-read it
// after every lock so level-ups re-arm their timers.
func (g *Game) FallInterval() time.Duration { return g.fall }

// Over reports whether a freshly spawned piece collided immediately.
func (g *Game) Over() bool { return g.over }

// Stats returns the per-session gameplay counters.
func (g *Game) Stats() *Stats { return &g.stats }

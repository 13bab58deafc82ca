// Command blockfall-term is the terminal frontend: same engine, same keys,
// rendered with tcell instead of a window.
package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"github.com/plus3/blockfall/game"
)

func main() {
	_ = godotenv.Load()

	seed := flag.Uint64("seed", envUint64("BLOCKFALL_SEED", rand.Uint64()), "seed for the piece sequence")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()

	g := game.New(rand.New(rand.NewPCG(*seed, *seed)))
	run(screen, g)
}

func run(screen tcell.Screen, g *game.Game) {
	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			events <- ev
		}
	}()

	interval := g.FallInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	paused := false

	for {
		draw(screen, g, paused)

		select {
		case <-ticker.C:
			if !paused && !g.Over() {
				g.SoftDrop()
			}
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
					return
				}
				switch ev.Rune() {
				case 'p':
					paused = !paused
				case 'r':
					g.Reset()
					paused = false
				}
				if paused || g.Over() {
					continue
				}
				switch ev.Key() {
				case tcell.KeyLeft:
					g.MoveLeft()
				case tcell.KeyRight:
					g.MoveRight()
				case tcell.KeyUp:
					g.Rotate()
				case tcell.KeyDown:
					g.SoftDrop()
				}
				if ev.Rune() == ' ' {
					g.HardDrop()
				}
			}
		}

		// Re-arm the gravity timer after a level-up changed the interval.
		if cur := g.FallInterval(); cur != interval {
			interval = cur
			ticker.Reset(interval)
		}
	}
}

func envUint64(key string, fallback uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
		log.Printf("ignoring %s=%q: not a number", key, v)
	}
	return fallback
}

// Command blockfall-soak plays random games headless and reports engine
// throughput. It doubles as a smoke test for the lock/clear hot path.
package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/plus3/blockfall/game"
)

func main() {
	games := flag.Int("games", 100, "number of games to play")
	seed := flag.Uint64("seed", 1, "seed for the piece sequence and the player")
	flag.Parse()

	log.Printf("Playing %d random games (seed=%d)...", *games, *seed)

	rng := rand.New(rand.NewPCG(*seed, *seed))
	report := &Report{Games: *games, Seed: *seed}

	start := time.Now()
	for i := 0; i < *games; i++ {
		playOne(rng, report)
	}
	report.TotalTime = time.Since(start)
	report.DropTime.Finalize()

	log.Println("Soak finished.")

	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
}

// playOne runs a single game with a random player until the spawn area
// jams. Random play always terminates: the stack only grows.
func playOne(rng *rand.Rand, report *Report) {
	g := game.New(rng)
	for !g.Over() {
		switch rng.IntN(6) {
		case 0:
			g.MoveLeft()
		case 1:
			g.MoveRight()
		case 2:
			g.Rotate()
		default:
			dropStart := time.Now()
			g.HardDrop()
			report.DropTime.Samples = append(report.DropTime.Samples, time.Since(dropStart))
			report.Pieces++
		}
	}

	report.Lines += g.Lines()
	report.Score += g.Score()
	if lvl := g.Level(); lvl > report.MaxLevel {
		report.MaxLevel = lvl
	}
}

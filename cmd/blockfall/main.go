package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/plus3/blockfall/game"
)

func main() {
	// .env is optional; flags override env, env overrides defaults.
	_ = godotenv.Load()

	seed := flag.Uint64("seed", envUint64("BLOCKFALL_SEED", rand.Uint64()), "seed for the piece sequence")
	cellSize := flag.Int("cell-size", envInt("BLOCKFALL_CELL_SIZE", 30), "cell size in pixels")
	debug := flag.Bool("debug", envBool("BLOCKFALL_DEBUG", false), "show the debug overlay at start (F1 toggles)")
	flag.Parse()

	rng := rand.New(rand.NewPCG(*seed, *seed))
	g := game.New(rng)

	log.Printf("starting blockfall (seed=%d)", *seed)

	app := newApp(g, *cellSize, *debug)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
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

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("ignoring %s=%q: not a number", key, v)
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("ignoring %s=%q: not a bool", key, v)
	}
	return fallback
}

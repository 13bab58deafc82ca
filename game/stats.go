package game

import "github.com/kamstrup/intmap"

// Stats tracks per-session gameplay counters: how often each tetromino
// entered play and how many clears of each size happened. Counters reset
// with the game.
type Stats struct {
	spawns *intmap.Map[int, int]
	clears *intmap.Map[int, int]
}

func (s *Stats) init() {
	if s.spawns == nil {
		s.spawns = intmap.New[int, int](ShapeCount)
		s.clears = intmap.New[int, int](4)
	}
}

func (s *Stats) reset() {
	s.init()
	s.spawns.Clear()
	s.clears.Clear()
}

func (s *Stats) pieceSpawned(index int) {
	s.init()
	n, _ := s.spawns.Get(index)
	s.spawns.Put(index, n+1)
}

func (s *Stats) linesCleared(count int) {
	s.init()
	n, _ := s.clears.Get(count)
	s.clears.Put(count, n+1)
}

// Spawns returns how many times the given shape identity entered play.
func (s *Stats) Spawns(index int) int {
	if s.spawns == nil {
		return 0
	}
	n, _ := s.spawns.Get(index)
	return n
}

// Clears returns how many times exactly count lines were cleared at once.
func (s *Stats) Clears(count int) int {
	if s.clears == nil {
		return 0
	}
	n, _ := s.clears.Get(count)
	return n
}

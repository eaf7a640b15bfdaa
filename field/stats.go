package field

import "github.com/kamstrup/intmap"

// SpawnStats tallies engine lifecycle events. Register it with WithHooks(stats.Hooks()).
type SpawnStats struct {
	spawns      *intmap.Map[int, int]
	Spawned     int
	Locked      int
	RowsCleared int
	GamesOver   int
}

func NewSpawnStats() *SpawnStats {
	return &SpawnStats{
		spawns: intmap.New[int, int](8),
	}
}

// Hooks returns callbacks that feed the counters.
func (s *SpawnStats) Hooks() Hooks {
	return Hooks{
		OnSpawn: func(shape int) {
			n, _ := s.spawns.Get(shape)
			s.spawns.Put(shape, n+1)
			s.Spawned++
		},
		OnLock: func() {
			s.Locked++
		},
		OnRowsCleared: func(rows int) {
			s.RowsCleared += rows
		},
		OnGameOver: func() {
			s.GamesOver++
		},
	}
}

// Count returns how many times the catalog entry at index shape was spawned.
func (s *SpawnStats) Count(shape int) int {
	n, _ := s.spawns.Get(shape)
	return n
}

// Distinct returns the number of catalog entries spawned at least once.
func (s *SpawnStats) Distinct() int {
	return s.spawns.Len()
}

// Counts returns per-shape spawn counts for catalog indices [0, n).
func (s *SpawnStats) Counts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = s.Count(i)
	}
	return out
}

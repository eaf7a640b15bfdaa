package field

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var dotCatalog = Catalog{MustParseShape("dot", "#")}

// engineWithGrid builds an engine around a hand-drawn grid without spawning.
func engineWithGrid(t *testing.T, rows ...string) *Engine {
	t.Helper()

	g, err := ParseGrid(rows...)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Width = g.Width()
	cfg.Height = g.Height()
	cfg.Catalog = dotCatalog
	require.NoError(t, cfg.Validate())

	return &Engine{
		cfg:    cfg,
		grid:   g,
		rng:    rand.New(rand.NewPCG(1, 2)),
		picker: UniformPicker{},
		logger: zap.NewNop(),
	}
}

func TestCanMove(t *testing.T) {
	t.Run("filled cell below blocks the fall", func(t *testing.T) {
		e := engineWithGrid(t,
			"....",
			".@..",
			".#..",
			"....",
		)

		assert.False(t, e.canMove(0, -1))
		assert.True(t, e.canMove(-1, 0))
		assert.True(t, e.canMove(1, 0))
	})

	t.Run("walls and floor", func(t *testing.T) {
		e := engineWithGrid(t,
			"....",
			"....",
			"....",
			"@@..",
		)

		assert.False(t, e.canMove(-1, 0))
		assert.False(t, e.canMove(0, -1))
		assert.True(t, e.canMove(1, 0))

		e = engineWithGrid(t,
			"...@",
			"...@",
			"....",
			"....",
		)
		assert.False(t, e.canMove(1, 0))
		assert.True(t, e.canMove(0, -1))
	})

	t.Run("own cells do not block", func(t *testing.T) {
		e := engineWithGrid(t,
			"....",
			"@@@.",
			"....",
			"....",
		)

		assert.True(t, e.canMove(1, 0))
		e.translate(1, 0)
		assert.Equal(t, []string{
			"....",
			".@@@",
			"....",
			"....",
		}, e.grid.Lines())
	})

	t.Run("is a pure query", func(t *testing.T) {
		e := engineWithGrid(t,
			"....",
			".@..",
			".#..",
			"....",
		)
		before := e.Snapshot()
		e.canMove(0, -1)
		e.canMove(5, 5)
		assert.True(t, before.Equal(e.grid))
	})
}

func TestClearRows(t *testing.T) {
	t.Run("single row shifts everything above down", func(t *testing.T) {
		e := engineWithGrid(t,
			"....",
			".#..",
			"#...",
			"####",
		)

		assert.Equal(t, 1, e.clearRows())
		assert.Equal(t, []string{
			"....",
			"....",
			".#..",
			"#...",
		}, e.grid.Lines())
	})

	t.Run("vacated top row is emptied", func(t *testing.T) {
		e := engineWithGrid(t,
			"#...",
			"....",
			"....",
			"####",
		)

		assert.Equal(t, 1, e.clearRows())
		assert.Equal(t, []string{
			"....",
			"#...",
			"....",
			"....",
		}, e.grid.Lines())
	})

	t.Run("non-adjacent rows clear in one pass", func(t *testing.T) {
		e := engineWithGrid(t,
			".#..",
			"####",
			"#...",
			"####",
			"..#.",
		)

		assert.Equal(t, 2, e.clearRows())
		assert.Equal(t, []string{
			"....",
			"....",
			".#..",
			"#...",
			"..#.",
		}, e.grid.Lines())
	})

	t.Run("adjacent rows are rechecked at the same index", func(t *testing.T) {
		e := engineWithGrid(t,
			"#...",
			"####",
			"####",
			".#..",
		)

		assert.Equal(t, 2, e.clearRows())
		assert.Equal(t, []string{
			"....",
			"....",
			"#...",
			".#..",
		}, e.grid.Lines())
	})

	t.Run("whole field", func(t *testing.T) {
		e := engineWithGrid(t,
			"####",
			"####",
		)
		assert.Equal(t, 2, e.clearRows())
		assert.Equal(t, 0, e.grid.Count(Filled))
	})

	t.Run("incomplete rows are kept", func(t *testing.T) {
		e := engineWithGrid(t,
			"###.",
			"#.##",
		)
		before := e.Snapshot()
		assert.Equal(t, 0, e.clearRows())
		assert.True(t, before.Equal(e.grid))
	})
}

func TestRotation(t *testing.T) {
	withActive := func(active ...Point) *Engine {
		e := engineWithGrid(t, blankRows(10, 20)...)
		for _, p := range active {
			e.grid.set(p.X, p.Y, Active)
		}
		return e
	}

	t.Run("pivot rounds toward min", func(t *testing.T) {
		b := bounds{min: Point{X: 3, Y: 10}, max: Point{X: 6, Y: 13}}
		assert.Equal(t, Point{X: 4, Y: 11}, b.pivot())
	})

	t.Run("square box returns after four turns", func(t *testing.T) {
		e := withActive(Point{4, 4}, Point{5, 4}, Point{4, 5})
		start := e.Snapshot()

		require.True(t, e.rotate())
		assert.False(t, start.Equal(e.grid))
		assert.ElementsMatch(t, []Point{{4, 4}, {4, 5}, {5, 5}}, e.ActiveCells())

		require.True(t, e.rotate())
		require.True(t, e.rotate())
		require.True(t, e.rotate())
		assert.True(t, start.Equal(e.grid))
	})

	t.Run("three wide box returns after four turns", func(t *testing.T) {
		e := withActive(Point{3, 18}, Point{4, 18}, Point{5, 18}, Point{4, 19})
		start := e.Snapshot()

		for i := 0; i < 4; i++ {
			require.True(t, e.rotate(), "turn %d", i)
			assert.Len(t, e.ActiveCells(), 4)
		}
		assert.True(t, start.Equal(e.grid))
	})

	t.Run("bar realigns after two turns", func(t *testing.T) {
		e := withActive(Point{5, 10}, Point{5, 11}, Point{5, 12}, Point{5, 13})
		start := e.Snapshot()

		require.True(t, e.rotate())
		assert.Equal(t, []Point{{4, 11}, {5, 11}, {6, 11}, {7, 11}}, e.ActiveCells())

		require.True(t, e.rotate())
		assert.True(t, start.Equal(e.grid))
	})

	t.Run("turn is clockwise", func(t *testing.T) {
		// The top of the vertical bar ends up on the right.
		e := withActive(Point{5, 10}, Point{5, 11}, Point{5, 12}, Point{5, 13})
		cells, ok := e.rotation()
		require.True(t, ok)
		assert.Equal(t, Point{7, 11}, cells[3])
		assert.Equal(t, Point{4, 11}, cells[0])
	})

	t.Run("wall rejects the whole turn", func(t *testing.T) {
		e := withActive(Point{0, 0}, Point{0, 1}, Point{0, 2}, Point{0, 3})
		before := e.Snapshot()

		assert.False(t, e.rotate())
		assert.True(t, before.Equal(e.grid))
	})

	t.Run("ceiling rejects the whole turn", func(t *testing.T) {
		e := withActive(Point{3, 19}, Point{4, 19}, Point{5, 19}, Point{6, 19})
		before := e.Snapshot()

		assert.False(t, e.rotate())
		assert.True(t, before.Equal(e.grid))
	})

	t.Run("stack rejects the whole turn", func(t *testing.T) {
		e := withActive(Point{5, 10}, Point{5, 11}, Point{5, 12}, Point{5, 13})
		e.grid.set(7, 11, Filled)
		before := e.Snapshot()

		assert.False(t, e.Apply(Rotate))
		assert.True(t, before.Equal(e.grid))
	})

	t.Run("no active piece", func(t *testing.T) {
		e := withActive()
		assert.False(t, e.rotate())
	})
}

func TestGravity(t *testing.T) {
	t.Run("accumulator must exceed the delay", func(t *testing.T) {
		e := engineWithGrid(t,
			"..@.",
			"....",
			"....",
			"....",
		)

		assert.Equal(t, TickResult{}, e.Tick(DefaultMoveDelay))
		assert.Equal(t, Active, e.CellAt(2, 3))

		assert.Equal(t, TickResult{Stepped: true, Moved: true}, e.Tick(time.Nanosecond))
		assert.Equal(t, Active, e.CellAt(2, 2))
		assert.Equal(t, time.Duration(0), e.accumulator)
	})

	t.Run("blocked piece stays put until gravity locks it", func(t *testing.T) {
		e := engineWithGrid(t,
			"....",
			"....",
			".@..",
			".#..",
		)
		before := e.Snapshot()

		assert.False(t, e.canMove(0, -1))
		assert.False(t, e.Apply(SoftDrop))
		assert.False(t, e.Apply(HardDrop))
		assert.True(t, before.Equal(e.grid))

		res := e.Tick(DefaultMoveDelay + time.Millisecond)
		assert.True(t, res.Locked)
		assert.False(t, res.GameOver)
		assert.Equal(t, Filled, e.CellAt(1, 1))
		assert.Equal(t, Active, e.CellAt(2, 3))
	})

	t.Run("lock clears completed rows and spawns", func(t *testing.T) {
		e := engineWithGrid(t,
			"....",
			"....",
			"..@.",
			"##.#",
		)

		step := DefaultMoveDelay + time.Millisecond
		assert.True(t, e.Tick(step).Moved)

		res := e.Tick(step)
		assert.Equal(t, TickResult{Stepped: true, Locked: true, RowsCleared: 1}, res)
		assert.Equal(t, []string{
			"..@.",
			"....",
			"....",
			"....",
		}, e.grid.Lines())
	})
}

func TestSpawnFailure(t *testing.T) {
	blockedField := []string{
		"..#.",
		"....",
		".@..",
		".#..",
	}

	t.Run("game over freezes the grid", func(t *testing.T) {
		e := engineWithGrid(t, blockedField...)
		overs := 0
		e.hooks = append(e.hooks, Hooks{OnGameOver: func() { overs++ }})

		res := e.Tick(time.Second)
		assert.True(t, res.GameOver)
		assert.True(t, e.GameOver())
		assert.Equal(t, 1, overs)
		assert.Equal(t, []string{
			"..#.",
			"....",
			".#..",
			".#..",
		}, e.grid.Lines())

		frozen := e.Snapshot()
		for i := 0; i < 10; i++ {
			assert.Equal(t, TickResult{}, e.Tick(time.Second))
			for _, cmd := range Commands {
				assert.False(t, e.Apply(cmd))
			}
		}
		assert.True(t, frozen.Equal(e.grid))
		assert.Equal(t, 1, overs)
	})

	t.Run("overlap can be marked", func(t *testing.T) {
		e := engineWithGrid(t, blockedField...)
		e.cfg.MarkSpawnOverlap = true

		assert.True(t, e.Tick(time.Second).GameOver)
		assert.Equal(t, Active, e.CellAt(2, 3))
	})

	t.Run("reset starts over", func(t *testing.T) {
		e := engineWithGrid(t, blockedField...)
		e.Tick(time.Second)
		require.True(t, e.GameOver())

		e.Reset()
		assert.False(t, e.GameOver())
		assert.Equal(t, 0, e.grid.Count(Filled))
		assert.Equal(t, []Point{{2, 3}}, e.ActiveCells())
	})
}

type turnSource uint64

func (s turnSource) Uint64() uint64 { return uint64(s) }

func TestSpawnRotationBlockedByStack(t *testing.T) {
	e := engineWithGrid(t, blankRows(10, 20)...)
	e.grid.set(6, 17, Filled)
	e.cfg.Catalog = DefaultCatalog()[1:2]
	e.rng = rand.New(turnSource(3))

	require.True(t, e.spawn())
	assert.Equal(t, []Point{{4, 16}, {4, 17}, {4, 18}, {4, 19}}, e.ActiveCells())

	e.grid.replace(Active, Empty)
	e.grid.set(6, 17, Empty)
	require.True(t, e.spawn())
	assert.Equal(t, []Point{{3, 17}, {4, 17}, {5, 17}, {6, 17}}, e.ActiveCells(), "one turn lays the bar flat")
}

func blankRows(width, height int) []string {
	rows := make([]string, height)
	for i := range rows {
		b := make([]byte, width)
		for x := range b {
			b[x] = '.'
		}
		rows[i] = string(b)
	}
	return rows
}

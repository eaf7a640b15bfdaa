// Package field implements the rule engine of a falling-block puzzle: a fixed grid, one active
// piece pulled down by an accumulated gravity timer, player commands checked against collisions,
// locking, row clearing and spawning.
//
// The engine is not safe for concurrent use. A host calls Tick once per frame with the elapsed
// time, Apply once per input event, and reads Snapshot or CellAt afterwards to redraw.
package field

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// Engine owns the grid and the active piece. The piece has no separate record: it is the set of
// Active cells, and its bounding box is recomputed from the grid whenever it is needed.
type Engine struct {
	cfg         Config
	grid        Grid
	gameOver    bool
	accumulator time.Duration

	rng    *rand.Rand
	picker Picker
	logger *zap.Logger
	hooks  []Hooks
}

// TickResult describes what a call to Tick did.
type TickResult struct {
	// Stepped is true when the accumulator crossed the move delay and a gravity step ran.
	Stepped bool
	// Moved is true when the gravity step translated the piece down one row.
	Moved bool
	// Locked is true when the piece could not fall and was settled instead.
	Locked bool
	// RowsCleared counts the rows removed after the lock.
	RowsCleared int
	// GameOver is true when the spawn following the lock failed.
	GameOver bool
}

// New validates cfg, allocates the grid and spawns the first piece. Configuration problems are
// reported before anything is allocated.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:    cfg,
		picker: UniformPicker{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	}

	e.grid = NewGrid(cfg.Width, cfg.Height)
	e.Reset()
	return e, nil
}

// Reset empties the grid, clears the game-over flag and the gravity accumulator, and spawns a
// fresh piece. The random source and picker keep their state.
func (e *Engine) Reset() {
	e.grid.fill(Empty)
	e.gameOver = false
	e.accumulator = 0

	if !e.spawn() {
		e.endGame()
	}
}

// Tick advances the gravity accumulator. Once it exceeds the move delay it is zeroed and one
// gravity step runs: the piece falls a row, or it is locked, completed rows are cleared and the
// next piece is spawned. Tick does nothing after game over.
func (e *Engine) Tick(elapsed time.Duration) TickResult {
	if e.gameOver {
		return TickResult{}
	}

	e.accumulator += elapsed
	if e.accumulator <= e.cfg.MoveDelay {
		return TickResult{}
	}
	e.accumulator = 0

	return e.gravityStep()
}

func (e *Engine) gravityStep() TickResult {
	if e.tryMove(0, -1) {
		return TickResult{Stepped: true, Moved: true}
	}

	e.lock()
	result := TickResult{Stepped: true, Locked: true}
	result.RowsCleared = e.clearRows()

	if !e.spawn() {
		e.endGame()
		result.GameOver = true
	}
	return result
}

// Apply resolves one player command against the current grid. It returns true when the grid
// changed; a blocked move is not an error and simply returns false. Commands are ignored after
// game over.
func (e *Engine) Apply(cmd Command) bool {
	if e.gameOver {
		return false
	}

	switch cmd {
	case ShiftLeft:
		return e.tryMove(-1, 0)
	case ShiftRight:
		return e.tryMove(1, 0)
	case SoftDrop:
		return e.tryMove(0, -1)
	case HardDrop:
		moved := false
		for e.tryMove(0, -1) {
			moved = true
		}
		return moved
	case Rotate:
		return e.rotate()
	default:
		return false
	}
}

func (e *Engine) endGame() {
	e.gameOver = true
	e.logger.Debug("game over", zap.Int("filled", e.grid.Count(Filled)))
	e.notifyGameOver()
}

// GameOver reports whether a spawn has collided with the stack.
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// CellAt returns the cell at (x, y); positions outside the field read as Empty.
func (e *Engine) CellAt(x, y int) Cell {
	return e.grid.At(x, y)
}

// Snapshot returns a copy of the grid that the caller may keep.
func (e *Engine) Snapshot() Grid {
	return e.grid.Clone()
}

func (e *Engine) Width() int {
	return e.grid.width
}

func (e *Engine) Height() int {
	return e.grid.height
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

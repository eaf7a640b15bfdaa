package field

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultWidth     = 10
	DefaultHeight    = 20
	DefaultMoveDelay = 500 * time.Millisecond
)

// Config holds the engine's construction parameters.
type Config struct {
	Width     int
	Height    int
	MoveDelay time.Duration
	Catalog   Catalog

	// Seed feeds the engine's PCG source unless WithRand overrides it.
	Seed uint64

	// MarkSpawnOverlap keeps the template cells of a failed spawn on the grid as Active so the
	// collision that ended the game is visible. When false a failed spawn leaves the grid as is.
	MarkSpawnOverlap bool
}

// DefaultConfig returns a 10x20 field with a half-second move delay and the default catalog.
func DefaultConfig() Config {
	return Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		MoveDelay: DefaultMoveDelay,
		Catalog:   DefaultCatalog(),
	}
}

// Validate reports the first configuration error, if any.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", c.Width, c.Height, ErrFieldSize)
	}
	if c.MoveDelay <= 0 {
		return fmt.Errorf("%s: %w", c.MoveDelay, ErrMoveDelay)
	}
	return c.Catalog.validate(c.Width, c.Height)
}

// Option customizes an Engine at construction.
type Option func(*Engine)

// WithRand injects the random source used for piece selection and initial rotations.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithPicker replaces the uniform catalog selection policy.
func WithPicker(p Picker) Option {
	return func(e *Engine) {
		e.picker = p
	}
}

// WithLogger attaches a logger; the engine logs at debug level only.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithHooks registers lifecycle callbacks. It may be passed more than once; every registered set
// is invoked in registration order.
func WithHooks(h Hooks) Option {
	return func(e *Engine) {
		e.hooks = append(e.hooks, h)
	}
}

// Package runner drives a field.Engine from a host loop. The engine itself is single-threaded;
// a Runner confines it to whichever goroutine calls Once or Run and lets other goroutines queue
// player commands and resets in between.
package runner

import (
	"context"
	"sync"
	"time"

	"github.com/plus3/blockfall/field"
	"go.uber.org/zap"
)

// Frame is what listeners receive after every step.
type Frame struct {
	Step     int64
	Delta    time.Duration
	Result   field.TickResult
	Applied  int
	Rejected int
	Reset    bool
	Grid     field.Grid
	GameOver bool
}

// Stats provides statistics about runner execution.
type Stats struct {
	Steps            int64
	CommandsApplied  int64
	CommandsRejected int64
	Resets           int64
	MinDuration      time.Duration
	MaxDuration      time.Duration
	AvgDuration      time.Duration
	LastDuration     time.Duration
	TotalDuration    time.Duration
}

type statsInternal struct {
	steps         int64
	applied       int64
	rejected      int64
	resets        int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

// Runner owns an engine and the queue of intents waiting to be applied to it.
type Runner struct {
	engine *field.Engine
	logger *zap.Logger

	mu      sync.Mutex
	pending []field.Command
	reset   bool
	stats   statsInternal

	listeners []func(Frame)
}

// Option customizes a Runner.
type Option func(*Runner)

func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// New wraps engine. The engine must not be used directly by other goroutines afterwards.
func New(engine *field.Engine, opts ...Option) *Runner {
	r := &Runner{
		engine: engine,
		logger: zap.NewNop(),
		stats: statsInternal{
			minDuration: time.Duration(1<<63 - 1),
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Engine exposes the wrapped engine for reads on the goroutine that calls Once.
func (r *Runner) Engine() *field.Engine {
	return r.engine
}

// Queue records a command to apply at the start of the next step. Safe for concurrent use.
func (r *Runner) Queue(cmd field.Command) {
	r.mu.Lock()
	r.pending = append(r.pending, cmd)
	r.mu.Unlock()
}

// Reset schedules an engine reset for the next step; commands queued before it are dropped.
// Safe for concurrent use.
func (r *Runner) Reset() {
	r.mu.Lock()
	r.reset = true
	r.pending = r.pending[:0]
	r.mu.Unlock()
}

// OnFrame registers a listener that runs after every step, on the stepping goroutine. It is not
// safe for concurrent use: register listeners before the first call to Once or Run.
func (r *Runner) OnFrame(fn func(Frame)) {
	r.listeners = append(r.listeners, fn)
}

func (r *Runner) drain() ([]field.Command, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cmds := make([]field.Command, len(r.pending))
	copy(cmds, r.pending)
	r.pending = r.pending[:0]

	reset := r.reset
	r.reset = false
	return cmds, reset
}

// Once applies queued input in arrival order, advances the engine by dt and notifies listeners.
func (r *Runner) Once(dt time.Duration) Frame {
	start := time.Now()
	cmds, reset := r.drain()

	frame := Frame{Delta: dt, Reset: reset}
	if reset {
		r.engine.Reset()
		r.logger.Info("engine reset")
	}

	for _, cmd := range cmds {
		if r.engine.Apply(cmd) {
			frame.Applied++
		} else {
			frame.Rejected++
		}
	}

	frame.Result = r.engine.Tick(dt)
	if frame.Result.GameOver {
		r.logger.Info("game over")
	}
	duration := time.Since(start)

	r.mu.Lock()
	stats := &r.stats
	stats.steps++
	stats.applied += int64(frame.Applied)
	stats.rejected += int64(frame.Rejected)
	if reset {
		stats.resets++
	}
	stats.lastDuration = duration
	stats.totalDuration += duration
	if duration < stats.minDuration {
		stats.minDuration = duration
	}
	if duration > stats.maxDuration {
		stats.maxDuration = duration
	}
	frame.Step = stats.steps
	r.mu.Unlock()

	frame.GameOver = r.engine.GameOver()
	frame.Grid = r.engine.Snapshot()
	for _, fn := range r.listeners {
		fn(frame)
	}

	return frame
}

// Run steps the engine at the given interval until the context is cancelled.
func (r *Runner) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now
			r.Once(dt)
		}
	}
}

// Stats returns statistics about step execution. Safe for concurrent use.
func (r *Runner) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.stats
	out := Stats{
		Steps:            s.steps,
		CommandsApplied:  s.applied,
		CommandsRejected: s.rejected,
		Resets:           s.resets,
		MaxDuration:      s.maxDuration,
		LastDuration:     s.lastDuration,
		TotalDuration:    s.totalDuration,
	}
	if s.steps > 0 {
		out.MinDuration = s.minDuration
		out.AvgDuration = s.totalDuration / time.Duration(s.steps)
	}
	return out
}

package field

import (
	"math/rand/v2"

	"go.uber.org/zap"
)

// Picker chooses the catalog index of the next piece. Implementations must return a value in
// [0, n).
type Picker interface {
	Pick(rng *rand.Rand, n int) int
}

// UniformPicker draws every shape with equal probability, independently each time.
type UniformPicker struct{}

func (UniformPicker) Pick(rng *rand.Rand, n int) int {
	return rng.IntN(n)
}

// BagPicker deals each catalog index once, in shuffled order, before refilling the bag.
type BagPicker struct {
	bag []int
}

func (b *BagPicker) Pick(rng *rand.Rand, n int) int {
	if len(b.bag) == 0 {
		b.bag = rng.Perm(n)
	}
	next := b.bag[0]
	b.bag = b.bag[1:]
	if next >= n {
		return rng.IntN(n)
	}
	return next
}

const maxSpawnRotations = 4

// spawn places the next template centered horizontally and flush with the top of the field. It
// reports false when any template cell lands on the stack; that is the only game-over trigger.
// A successful spawn is turned a random 0..3 times, skipping turns that do not fit.
func (e *Engine) spawn() bool {
	index := e.picker.Pick(e.rng, len(e.cfg.Catalog))
	shape := e.cfg.Catalog[index]

	n := shape.Size()
	px := e.grid.width/2 - n/2
	py := e.grid.height - n

	blocked := false
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if shape.Occupied(x, y) && e.grid.At(px+x, py+y) == Filled {
				blocked = true
			}
		}
	}

	if blocked && !e.cfg.MarkSpawnOverlap {
		e.logger.Debug("spawn blocked", zap.String("shape", shape.Name()))
		return false
	}

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if shape.Occupied(x, y) {
				e.grid.set(px+x, py+y, Active)
			}
		}
	}

	if blocked {
		e.logger.Debug("spawn blocked", zap.String("shape", shape.Name()), zap.Bool("marked", true))
		return false
	}

	turns := e.rng.IntN(maxSpawnRotations)
	for i := 0; i < turns; i++ {
		if cells, ok := e.rotation(); ok {
			e.commitRotation(cells)
		}
	}

	e.logger.Debug("piece spawned",
		zap.String("shape", shape.Name()),
		zap.Int("index", index),
		zap.Int("turns", turns),
	)
	e.notifySpawn(index)
	return true
}

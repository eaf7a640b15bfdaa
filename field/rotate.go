package field

// bounds is the axis-aligned box enclosing the active cells, inclusive on both ends.
type bounds struct {
	min, max Point
}

func (b bounds) width() int {
	return b.max.X - b.min.X + 1
}

func (b bounds) height() int {
	return b.max.Y - b.min.Y + 1
}

// pivot is the integer midpoint of the box, rounded toward min.
func (b bounds) pivot() Point {
	return Point{
		X: (b.min.X + b.max.X) / 2,
		Y: (b.min.Y + b.max.Y) / 2,
	}
}

func (e *Engine) activeBounds() (bounds, bool) {
	g := e.grid
	b := bounds{
		min: Point{X: g.width, Y: g.height},
		max: Point{X: -1, Y: -1},
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.At(x, y) != Active {
				continue
			}
			b.min.X = min(b.min.X, x)
			b.min.Y = min(b.min.Y, y)
			b.max.X = max(b.max.X, x)
			b.max.Y = max(b.max.Y, y)
		}
	}
	return b, b.max.X >= 0
}

// rotation computes the clockwise quarter turn of the active piece about its pivot.
//
// The box contents are copied into a local matrix (r = row from the bottom, c = column from the
// left). Cell (r, c) of a w×h box lands at column r, row w-1-c of the turned h×w box, and the
// turned box is placed so the pivot stays at its midpoint. Square boxes therefore rotate in place
// and a bar returns to its starting cells after two turns.
//
// The candidate is returned only if every cell is inside the field and off the stack; there is
// no kick search.
func (e *Engine) rotation() ([]Point, bool) {
	b, ok := e.activeBounds()
	if !ok {
		return nil, false
	}

	w, h := b.width(), b.height()
	local := make([]bool, w*h)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			local[r*w+c] = e.grid.At(b.min.X+c, b.min.Y+r) == Active
		}
	}

	pivot := b.pivot()
	origin := Point{
		X: pivot.X - (h-1)/2,
		Y: pivot.Y - (w-1)/2,
	}

	candidate := make([]Point, 0, 4)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if !local[r*w+c] {
				continue
			}
			p := Point{X: origin.X + r, Y: origin.Y + w - 1 - c}
			if !e.grid.InBounds(p.X, p.Y) || e.grid.At(p.X, p.Y) == Filled {
				return nil, false
			}
			candidate = append(candidate, p)
		}
	}

	return candidate, true
}

func (e *Engine) commitRotation(cells []Point) {
	e.grid.replace(Active, Empty)
	for _, p := range cells {
		e.grid.set(p.X, p.Y, Active)
	}
}

func (e *Engine) rotate() bool {
	cells, ok := e.rotation()
	if !ok {
		e.logger.Debug("rotation blocked")
		return false
	}
	e.commitRotation(cells)
	return true
}

package field

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// ActiveCells returns the positions of the falling piece, bottom row first.
func (e *Engine) ActiveCells() []Point {
	return e.grid.positions(Active)
}

func (g Grid) positions(cell Cell) []Point {
	var out []Point
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.At(x, y) == cell {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

// canMove reports whether every active cell can be translated by (dx, dy) without leaving the
// field or entering a Filled cell. Active destinations are fine: they belong to the same piece.
func (e *Engine) canMove(dx, dy int) bool {
	g := e.grid
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.At(x, y) != Active {
				continue
			}
			nx, ny := x+dx, y+dy
			if !g.InBounds(nx, ny) || g.At(nx, ny) == Filled {
				return false
			}
		}
	}
	return true
}

func (e *Engine) translate(dx, dy int) {
	cells := e.grid.positions(Active)
	for _, p := range cells {
		e.grid.set(p.X, p.Y, Empty)
	}
	for _, p := range cells {
		e.grid.set(p.X+dx, p.Y+dy, Active)
	}
}

func (e *Engine) tryMove(dx, dy int) bool {
	if !e.hasActive() || !e.canMove(dx, dy) {
		return false
	}
	e.translate(dx, dy)
	return true
}

func (e *Engine) hasActive() bool {
	for _, c := range e.grid.cells {
		if c == Active {
			return true
		}
	}
	return false
}

package field

import "go.uber.org/zap"

// lock settles the active piece.
func (e *Engine) lock() {
	n := e.grid.Count(Active)
	e.grid.replace(Active, Filled)
	e.logger.Debug("piece locked", zap.Int("cells", n))
	e.notifyLock()
}

// clearRows removes every complete row, scanning bottom to top. After a removal the same index is
// examined again because the row above has moved into it.
func (e *Engine) clearRows() int {
	cleared := 0
	for y := 0; y < e.grid.height; {
		if !e.grid.rowComplete(y) {
			y++
			continue
		}
		e.grid.removeRow(y)
		cleared++
	}

	if cleared > 0 {
		e.logger.Debug("rows cleared", zap.Int("rows", cleared))
		e.notifyRowsCleared(cleared)
	}
	return cleared
}

func (g Grid) rowComplete(y int) bool {
	for x := 0; x < g.width; x++ {
		if g.At(x, y) != Filled {
			return false
		}
	}
	return true
}

// removeRow shifts every row above y down by one and empties the vacated top row.
func (g Grid) removeRow(y int) {
	w := g.width
	copy(g.cells[y*w:(g.height-1)*w], g.cells[(y+1)*w:])
	top := g.cells[(g.height-1)*w:]
	for i := range top {
		top[i] = Empty
	}
}

package field

import (
	"fmt"
	"strings"
)

// Grid is a fixed-size matrix of cells. Row 0 is the bottom of the field.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid allocates an all-Empty grid.
func NewGrid(width, height int) Grid {
	return Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// ParseGrid builds a grid from text rows, top row first. '.' is Empty, '#' is Filled and '@' is
// Active. All rows must have the same length.
func ParseGrid(rows ...string) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, fmt.Errorf("parse grid: %w", ErrFieldSize)
	}

	width := len(rows[0])
	g := NewGrid(width, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return Grid{}, fmt.Errorf("parse grid: row %d has %d columns, want %d", i, len(row), width)
		}
		y := len(rows) - 1 - i
		for x := 0; x < width; x++ {
			cell, ok := cellFromGlyph(row[x])
			if !ok {
				return Grid{}, fmt.Errorf("parse grid: row %d column %d: unexpected %q", i, x, row[x])
			}
			g.set(x, y, cell)
		}
	}

	return g, nil
}

func (g Grid) Width() int {
	return g.width
}

func (g Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at (x, y). Positions outside the grid read as Empty.
func (g Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[y*g.width+x]
}

func (g Grid) set(x, y int, cell Cell) {
	g.cells[y*g.width+x] = cell
}

// Row returns a copy of row y. Rows outside the field read as all Empty, like At.
func (g Grid) Row(y int) []Cell {
	row := make([]Cell, g.width)
	if y < 0 || y >= g.height {
		return row
	}
	copy(row, g.cells[y*g.width:(y+1)*g.width])
	return row
}

// Count returns how many cells hold the given state.
func (g Grid) Count(cell Cell) int {
	n := 0
	for _, c := range g.cells {
		if c == cell {
			n++
		}
	}
	return n
}

// Clone returns a deep copy that shares no storage with g.
func (g Grid) Clone() Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return Grid{width: g.width, height: g.height, cells: cells}
}

// Equal reports whether both grids have the same size and contents.
func (g Grid) Equal(other Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Lines returns the text form of the grid, top row first.
func (g Grid) Lines() []string {
	lines := make([]string, g.height)
	buf := make([]byte, g.width)
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			buf[x] = g.At(x, y).glyph()
		}
		lines[g.height-1-y] = string(buf)
	}
	return lines
}

func (g Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

func (g Grid) fill(cell Cell) {
	for i := range g.cells {
		g.cells[i] = cell
	}
}

// replace rewrites every occurrence of from with to.
func (g Grid) replace(from, to Cell) {
	for i, c := range g.cells {
		if c == from {
			g.cells[i] = to
		}
	}
}

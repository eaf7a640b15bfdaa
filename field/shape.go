package field

import (
	"fmt"
)

// Shape is a square piece template. Occupied cells are addressed with y growing upward, matching
// the grid.
type Shape struct {
	name string
	size int
	bits []bool
}

// ParseShape builds a shape from square text rows, top row first; '#' marks an occupied cell and
// '.' an empty one.
func ParseShape(name string, rows ...string) (Shape, error) {
	size := len(rows)
	if size == 0 {
		return Shape{}, fmt.Errorf("shape %q: %w", name, ErrShapeEmpty)
	}

	s := Shape{name: name, size: size, bits: make([]bool, size*size)}
	occupied := 0
	for i, row := range rows {
		if len(row) != size {
			return Shape{}, fmt.Errorf("shape %q: row %d has %d columns for %d rows: %w", name, i, len(row), size, ErrShapeNotSquare)
		}
		y := size - 1 - i
		for x := 0; x < size; x++ {
			switch row[x] {
			case '#':
				s.bits[y*size+x] = true
				occupied++
			case '.', ' ':
			default:
				return Shape{}, fmt.Errorf("shape %q: row %d column %d: unexpected %q", name, i, x, row[x])
			}
		}
	}

	if occupied == 0 {
		return Shape{}, fmt.Errorf("shape %q: %w", name, ErrShapeEmpty)
	}

	return s, nil
}

// MustParseShape is ParseShape for static tables; it panics on malformed input.
func MustParseShape(name string, rows ...string) Shape {
	s, err := ParseShape(name, rows...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Shape) Name() string {
	return s.name
}

// Size is the side length of the template's bounding square.
func (s Shape) Size() int {
	return s.size
}

// Occupied reports whether template cell (x, y) is part of the piece.
func (s Shape) Occupied(x, y int) bool {
	if x < 0 || y < 0 || x >= s.size || y >= s.size {
		return false
	}
	return s.bits[y*s.size+x]
}

// Cells returns the number of occupied template cells.
func (s Shape) Cells() int {
	n := 0
	for _, b := range s.bits {
		if b {
			n++
		}
	}
	return n
}

// Rows returns the text form of the template, top row first.
func (s Shape) Rows() []string {
	rows := make([]string, s.size)
	buf := make([]byte, s.size)
	for y := s.size - 1; y >= 0; y-- {
		for x := 0; x < s.size; x++ {
			buf[x] = '.'
			if s.Occupied(x, y) {
				buf[x] = '#'
			}
		}
		rows[s.size-1-y] = string(buf)
	}
	return rows
}

// Catalog is the immutable list of templates the engine spawns from.
type Catalog []Shape

// validate checks that every template fits a width × height field.
func (c Catalog) validate(width, height int) error {
	if len(c) == 0 {
		return ErrEmptyCatalog
	}
	for i, s := range c {
		if s.size == 0 || s.Cells() == 0 {
			return fmt.Errorf("catalog entry %d (%q): %w", i, s.name, ErrShapeEmpty)
		}
		if s.size > width || s.size > height {
			return fmt.Errorf("catalog entry %d (%q) is %dx%d on a %dx%d field: %w", i, s.name, s.size, s.size, width, height, ErrShapeTooLarge)
		}
	}
	return nil
}

// DefaultCatalog returns the five classic 4x4 templates. Each spawns flush with the top of the
// field.
func DefaultCatalog() Catalog {
	return Catalog{
		MustParseShape("L",
			".##.",
			".#..",
			".#..",
			"....",
		),
		MustParseShape("I",
			".#..",
			".#..",
			".#..",
			".#..",
		),
		MustParseShape("O",
			".##.",
			".##.",
			"....",
			"....",
		),
		MustParseShape("N",
			"..#.",
			".##.",
			".#..",
			"....",
		),
		MustParseShape("T",
			"###.",
			".#..",
			"....",
			"....",
		),
	}
}

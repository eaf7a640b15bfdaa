package field

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Empty is an unoccupied position.
	Empty Cell = iota
	// Filled is a permanently locked block of the settled stack.
	Filled
	// Active belongs to the currently falling piece.
	Active
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Filled:
		return "filled"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// glyph is the one-character text form used by Grid.String and ParseGrid.
func (c Cell) glyph() byte {
	switch c {
	case Filled:
		return '#'
	case Active:
		return '@'
	default:
		return '.'
	}
}

func cellFromGlyph(b byte) (Cell, bool) {
	switch b {
	case '.', ' ':
		return Empty, true
	case '#':
		return Filled, true
	case '@':
		return Active, true
	default:
		return Empty, false
	}
}

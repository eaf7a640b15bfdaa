package field_test

import (
	"testing"

	"github.com/plus3/blockfall/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrid(t *testing.T) {
	g, err := field.ParseGrid(
		"..@",
		"#..",
	)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, field.Filled, g.At(0, 0))
	assert.Equal(t, field.Active, g.At(2, 1))
	assert.Equal(t, field.Empty, g.At(-1, 0))
	assert.Equal(t, field.Empty, g.At(0, 2))
	assert.Equal(t, "..@\n#..", g.String())

	_, err = field.ParseGrid("...", "..")
	assert.Error(t, err)

	_, err = field.ParseGrid("..x")
	assert.Error(t, err)

	_, err = field.ParseGrid()
	assert.ErrorIs(t, err, field.ErrFieldSize)
}

func TestGridClone(t *testing.T) {
	g, err := field.ParseGrid("#.", "..")
	require.NoError(t, err)

	c := g.Clone()
	assert.True(t, g.Equal(c))

	other, err := field.ParseGrid("..", "..")
	require.NoError(t, err)
	assert.False(t, g.Equal(other))
	assert.False(t, g.Equal(field.NewGrid(3, 2)))
}

func TestGridRow(t *testing.T) {
	g, err := field.ParseGrid("@.", "#.")
	require.NoError(t, err)

	assert.Equal(t, []field.Cell{field.Filled, field.Empty}, g.Row(0))
	assert.Equal(t, []field.Cell{field.Active, field.Empty}, g.Row(1))
	assert.Equal(t, []field.Cell{field.Empty, field.Empty}, g.Row(2))
	assert.Equal(t, []field.Cell{field.Empty, field.Empty}, g.Row(-1))
}

func TestParseShape(t *testing.T) {
	s, err := field.ParseShape("S",
		".##",
		"##.",
		"...",
	)
	require.NoError(t, err)

	assert.Equal(t, "S", s.Name())
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, 4, s.Cells())
	assert.True(t, s.Occupied(0, 1))
	assert.True(t, s.Occupied(2, 2))
	assert.False(t, s.Occupied(0, 0))
	assert.False(t, s.Occupied(3, 3))
	assert.Equal(t, []string{".##", "##.", "..."}, s.Rows())

	_, err = field.ParseShape("wide", "###", "###")
	assert.ErrorIs(t, err, field.ErrShapeNotSquare)

	_, err = field.ParseShape("blank", "..", "..")
	assert.ErrorIs(t, err, field.ErrShapeEmpty)

	_, err = field.ParseShape("none")
	assert.ErrorIs(t, err, field.ErrShapeEmpty)

	assert.Panics(t, func() { field.MustParseShape("bad", "#x", "##") })
}

func TestDefaultCatalog(t *testing.T) {
	catalog := field.DefaultCatalog()
	require.Len(t, catalog, 5)

	for _, s := range catalog {
		assert.Equal(t, 4, s.Size(), s.Name())
		assert.Equal(t, 4, s.Cells(), s.Name())
	}
}

func TestParseCommand(t *testing.T) {
	for _, cmd := range field.Commands {
		parsed, err := field.ParseCommand(cmd.String())
		require.NoError(t, err)
		assert.Equal(t, cmd, parsed)
	}

	aliases := map[string]field.Command{
		"left":  field.ShiftLeft,
		"RIGHT": field.ShiftRight,
		"down":  field.SoftDrop,
		" drop": field.HardDrop,
		"up":    field.Rotate,
	}
	for in, want := range aliases {
		got, err := field.ParseCommand(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := field.ParseCommand("hold")
	assert.Error(t, err)
	assert.Equal(t, "Command(9)", field.Command(9).String())
}

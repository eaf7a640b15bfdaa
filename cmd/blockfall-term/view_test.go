package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyAction(t *testing.T) {
	tests := []struct {
		ev  *tcell.EventKey
		act action
		cmd field.Command
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), actionCommand, field.ShiftLeft},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), actionCommand, field.Rotate},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), actionCommand, field.HardDrop},
		{tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), actionCommand, field.SoftDrop},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), actionReset, 0},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), actionQuit, 0},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), actionNone, 0},
	}
	for _, tt := range tests {
		act, cmd := keyAction(tt.ev)
		assert.Equal(t, tt.act, act, tt.ev.Name())
		if act == actionCommand {
			assert.Equal(t, tt.cmd, cmd, tt.ev.Name())
		}
	}
}

func TestViewDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 10)

	grid, err := field.ParseGrid(
		"..",
		"@.",
		"#.",
	)
	require.NoError(t, err)

	v := &View{Screen: screen}
	v.Draw(runner.Frame{Step: 1, Grid: grid, GameOver: true})

	at := func(x, y int) rune {
		r, _, _, _ := screen.GetContent(x, y)
		return r
	}

	// Bottom grid row is drawn on the last field line.
	assert.Equal(t, '█', at(1, 2))
	assert.Equal(t, '█', at(2, 2))
	assert.Equal(t, ' ', at(3, 2))
	assert.Equal(t, '█', at(1, 1))
	assert.Equal(t, ' ', at(1, 0))
	assert.Equal(t, '│', at(0, 0))
	assert.Equal(t, '─', at(0, 3))

	assert.Equal(t, 'G', at(8, 2), "game over banner")
}

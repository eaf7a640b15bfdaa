package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/runner"
)

type action int

const (
	actionNone action = iota
	actionCommand
	actionReset
	actionQuit
)

// keyAction maps a key press to what the host should do with it.
func keyAction(ev *tcell.EventKey) (action, field.Command) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit, 0
	case tcell.KeyLeft:
		return actionCommand, field.ShiftLeft
	case tcell.KeyRight:
		return actionCommand, field.ShiftRight
	case tcell.KeyDown:
		return actionCommand, field.SoftDrop
	case tcell.KeyUp:
		return actionCommand, field.Rotate
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return actionQuit, 0
		case 'r':
			return actionReset, 0
		case ' ':
			return actionCommand, field.HardDrop
		case 'h':
			return actionCommand, field.ShiftLeft
		case 'l':
			return actionCommand, field.ShiftRight
		case 'j':
			return actionCommand, field.SoftDrop
		case 'k', 'x':
			return actionCommand, field.Rotate
		}
	}
	return actionNone, 0
}

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	filledStyle = tcell.StyleDefault.Foreground(tcell.ColorLightSkyBlue)
	activeStyle = tcell.StyleDefault.Foreground(tcell.ColorLightPink)
	textStyle   = tcell.StyleDefault
)

// View draws frames onto a terminal screen. Each cell takes two columns so the field keeps its
// proportions.
type View struct {
	Screen tcell.Screen
	Stats  *field.SpawnStats
}

func (v *View) Draw(frame runner.Frame) {
	// Skip frames that changed nothing visible.
	if frame.Step > 1 && !frame.Reset && frame.Applied == 0 && !frame.Result.Stepped {
		return
	}

	s := v.Screen
	s.Clear()

	grid := frame.Grid
	w, h := grid.Width(), grid.Height()
	for row := 0; row < h; row++ {
		y := h - 1 - row
		s.SetContent(0, row, '│', nil, borderStyle)
		s.SetContent(2*w+1, row, '│', nil, borderStyle)
		for x := 0; x < w; x++ {
			r, style := ' ', textStyle
			switch grid.At(x, y) {
			case field.Filled:
				r, style = '█', filledStyle
			case field.Active:
				r, style = '█', activeStyle
			}
			s.SetContent(1+2*x, row, r, nil, style)
			s.SetContent(2+2*x, row, r, nil, style)
		}
	}
	for x := 0; x <= 2*w+1; x++ {
		s.SetContent(x, h, '─', nil, borderStyle)
	}

	lines := []string{
		fmt.Sprintf("step %d", frame.Step),
	}
	if v.Stats != nil {
		lines = append(lines,
			fmt.Sprintf("pieces %d", v.Stats.Spawned),
			fmt.Sprintf("rows   %d", v.Stats.RowsCleared))
	}
	if frame.GameOver {
		lines = append(lines, "", "GAME OVER", "r to restart")
	}
	for i, line := range lines {
		putString(s, 2*w+4, i, line)
	}

	s.Show()
}

func putString(s tcell.Screen, x, y int, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, textStyle)
	}
}

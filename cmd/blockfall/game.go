package main

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/runner"
)

// Held keys repeat after repeatDelay ticks, then every repeatInterval ticks.
const (
	repeatDelay    = 12
	repeatInterval = 4
)

type binding struct {
	key     ebiten.Key
	command field.Command
	repeats bool
}

var bindings = []binding{
	{ebiten.KeyLeft, field.ShiftLeft, true},
	{ebiten.KeyRight, field.ShiftRight, true},
	{ebiten.KeyDown, field.SoftDrop, true},
	{ebiten.KeyUp, field.Rotate, false},
	{ebiten.KeyX, field.Rotate, false},
	{ebiten.KeySpace, field.HardDrop, false},
}

var cellColors = map[field.Cell]color.RGBA{
	field.Empty:  {30, 30, 36, 255},
	field.Filled: {179, 229, 252, 255},
	field.Active: {255, 179, 186, 255},
}

var gridColor = color.RGBA{50, 50, 58, 255}

type Game struct {
	Runner  *runner.Runner
	Stats   *field.SpawnStats
	Overlay *debugui.Overlay
	History *debugui.FrameHistory

	frame      runner.Frame
	lastUpdate time.Time
}

// sinceLastUpdate returns the wall time since the previous call, or zero on the first.
func (g *Game) sinceLastUpdate(now time.Time) time.Duration {
	var d time.Duration
	if !g.lastUpdate.IsZero() {
		d = now.Sub(g.lastUpdate)
	}
	g.lastUpdate = now
	return d
}

// fires reports whether a key held for d ticks should emit its command this tick.
func fires(d int, repeats bool) bool {
	if d == 1 {
		return true
	}
	return repeats && d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := time.Second / time.Duration(ebiten.TPS())

	if g.Overlay == nil || !g.Overlay.Input().WantCaptureKeyboard {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.Runner.Reset()
		}
		for _, b := range bindings {
			if fires(inpututil.KeyPressDuration(b.key), b.repeats) {
				g.Runner.Queue(b.command)
			}
		}
	}

	g.frame = g.Runner.Once(dt)

	if g.Overlay != nil {
		if frameTime := g.sinceLastUpdate(time.Now()); frameTime > 0 {
			g.History.Add(frameTime)
		}
		g.Overlay.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.frame.Grid
	h := grid.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < grid.Width(); x++ {
			sx := float32(x * CellSize)
			sy := float32((h - 1 - y) * CellSize)
			vector.DrawFilledRect(screen, sx, sy, CellSize, CellSize, cellColors[grid.At(x, y)], false)
			vector.StrokeRect(screen, sx, sy, CellSize, CellSize, 1, gridColor, false)
		}
	}

	if g.frame.GameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press R", 8, 8)
	}

	if g.Overlay != nil {
		g.Overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Overlay != nil {
		g.Overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

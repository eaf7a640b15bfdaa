// Command blockfall plays the game in an ebiten window. With -debug it adds ImGui windows that
// inspect the field and the runner.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/internal/host"
	"github.com/plus3/blockfall/runner"
	"go.uber.org/zap"
)

const (
	CellSize     = 28
	PanelWidth   = 360
	frameHistory = 120
)

func main() {
	flags := host.RegisterFlags(flag.CommandLine)
	debug := flag.Bool("debug", false, "Show the ImGui inspection windows.")
	flag.Parse()

	logger, err := flags.Logger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "blockfall: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	settings, err := flags.Settings()
	if err != nil {
		logger.Fatal("load settings", zap.Error(err))
	}

	stats := field.NewSpawnStats()
	engine, err := settings.NewEngine(
		field.WithLogger(logger.Named("field")),
		field.WithHooks(stats.Hooks()),
		field.WithHooks(field.Hooks{
			OnRowsCleared: func(rows int) {
				logger.Info("rows cleared", zap.Int("rows", rows), zap.Int("total", stats.RowsCleared))
			},
		}),
	)
	if err != nil {
		logger.Fatal("create engine", zap.Error(err))
	}

	game := &Game{
		Runner: runner.New(engine, runner.WithLogger(logger.Named("runner"))),
		Stats:  stats,
	}

	width, height := engine.Width()*CellSize, engine.Height()*CellSize
	if *debug {
		game.Overlay = debugui.NewOverlay("Blockfall (debug)", width+PanelWidth, height)
		history := debugui.NewFrameHistory(frameHistory)
		game.History = history
		game.Overlay.Add(debugui.Item{Render: (&debugui.PerformanceStats{Runner: game.Runner, History: history, X: float32(width)}).Render})
		game.Overlay.Add(debugui.Item{Render: (&debugui.FieldInspector{Engine: engine, Stats: stats, X: float32(width)}).Render})
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("Blockfall")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting",
		zap.Int("width", engine.Width()),
		zap.Int("height", engine.Height()),
		zap.Uint64("seed", settings.Field.Seed),
		zap.Bool("debug", *debug))

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("run game", zap.Error(err))
	}
}

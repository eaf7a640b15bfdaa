// Command blockfall-term plays the game in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/internal/host"
	"github.com/plus3/blockfall/runner"
	"go.uber.org/zap"
)

func main() {
	flags := host.RegisterFlags(flag.CommandLine)
	interval := flag.Duration("interval", 16*time.Millisecond, "How often the engine is stepped.")
	logPath := flag.String("log", "", "Write logs to this file; the terminal is in use so logs are dropped by default.")
	flag.Parse()

	logger := zap.NewNop()
	if *logPath != "" {
		cfg := zap.NewDevelopmentConfig()
		if flags.JSONLog {
			cfg = zap.NewProductionConfig()
		}
		cfg.OutputPaths = []string{*logPath}
		l, err := cfg.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "blockfall-term: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync()

	settings, err := flags.Settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "blockfall-term: %v\n", err)
		os.Exit(1)
	}

	stats := field.NewSpawnStats()
	engine, err := settings.NewEngine(
		field.WithLogger(logger.Named("field")),
		field.WithHooks(stats.Hooks()),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "blockfall-term: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "blockfall-term: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "blockfall-term: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	run := runner.New(engine, runner.WithLogger(logger.Named("runner")))
	view := &View{Screen: screen, Stats: stats}
	run.OnFrame(view.Draw)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go run.Run(ctx, *interval)

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			act, cmd := keyAction(ev)
			switch act {
			case actionQuit:
				logger.Info("quit", zap.Int64("steps", run.Stats().Steps))
				return
			case actionReset:
				run.Reset()
			case actionCommand:
				run.Queue(cmd)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

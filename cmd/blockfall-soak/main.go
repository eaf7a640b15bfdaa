// Command blockfall-soak plays random games headlessly and reports throughput and piece statistics.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/internal/host"
	"github.com/plus3/blockfall/runner"
	"go.uber.org/zap"
)

func main() {
	flags := host.RegisterFlags(flag.CommandLine)
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	games := flag.Int("games", 0, "Stop after this many finished games (0 means run for -duration).")
	step := flag.Duration("step", 100*time.Millisecond, "Simulated time passed to every step.")
	commandRate := flag.Float64("command-rate", 0.5, "Probability of queueing a random command before a step.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	logger, err := flags.Logger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "blockfall-soak: %v\n", err)
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
	)
	if err != nil {
		logger.Fatal("create engine", zap.Error(err))
	}
	run := runner.New(engine, runner.WithLogger(logger.Named("runner")))

	report := &Report{
		Duration:       *duration,
		GameLimit:      *games,
		Step:           *step,
		CommandRate:    *commandRate,
		Seed:           settings.Field.Seed,
		Width:          settings.Field.Width,
		Height:         settings.Field.Height,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("starting soak",
		zap.Duration("duration", *duration),
		zap.Int("games", *games),
		zap.Uint64("seed", settings.Field.Seed))

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	// Command choice gets its own stream so the piece sequence depends on the seed alone.
	input := rand.New(rand.NewPCG(settings.Field.Seed, 1))

	startTime := time.Now()
	finished := 0
Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		if input.Float64() < *commandRate {
			run.Queue(field.Commands[input.IntN(len(field.Commands))])
		}
		frame := run.Once(*step)
		if frame.GameOver {
			finished++
			report.Games = append(report.Games, GameSummary{Step: frame.Step, Filled: frame.Grid.Count(field.Filled)})
			if *games > 0 && finished >= *games {
				break Loop
			}
			run.Reset()
		}
	}

	report.TotalTime = time.Since(startTime)
	report.Runner = run.Stats()
	report.Spawned = stats.Spawned
	report.Locked = stats.Locked
	report.RowsCleared = stats.RowsCleared
	for i, shape := range settings.Field.Catalog {
		report.Shapes = append(report.Shapes, ShapeCount{Name: shape.Name(), Count: stats.Count(i)})
	}
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("soak finished",
		zap.Int64("steps", report.Runner.Steps),
		zap.Int("games", finished),
		zap.Duration("elapsed", report.TotalTime))

	fmt.Println("\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")
}

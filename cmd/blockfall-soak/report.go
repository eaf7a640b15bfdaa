package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/runner"
)

type Report struct {
	// Configuration
	Duration    time.Duration
	GameLimit   int
	Step        time.Duration
	CommandRate float64
	Seed        uint64
	Width       int
	Height      int

	// Results
	TotalTime      time.Duration
	Runner         runner.Stats
	Spawned        int
	Locked         int
	RowsCleared    int
	Shapes         []ShapeCount
	Games          []GameSummary
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type ShapeCount struct {
	Name  string
	Count int
}

// GameSummary records the step a game ended on and how many settled cells it left behind.
type GameSummary struct {
	Step   int64
	Filled int
}

// AvgGameSteps is the mean length of a finished game in steps.
func (r *Report) AvgGameSteps() int64 {
	if len(r.Games) == 0 {
		return 0
	}
	var prev, total int64
	for _, g := range r.Games {
		total += g.Step - prev
		prev = g.Step
	}
	return total / int64(len(r.Games))
}

// Share is the fraction of spawns that produced shape, as a percentage.
func (r *Report) Share(c ShapeCount) float64 {
	if r.Spawned == 0 {
		return 0
	}
	return 100 * float64(c.Count) / float64(r.Spawned)
}

const reportTemplate = `
# Blockfall Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Game Limit:** {{if .GameLimit}}{{.GameLimit}}{{else}}none{{end}}
- **Simulated Step:** {{.Step}}
- **Command Rate:** {{printf "%.2f" .CommandRate}}
- **Seed:** {{.Seed}}
- **Field:** {{.Width}}x{{.Height}}

## Play
- **Games Finished:** {{len .Games}}
- **Avg Game Length:** {{.AvgGameSteps}} steps
- **Pieces Spawned:** {{.Spawned}}
- **Pieces Locked:** {{.Locked}}
- **Rows Cleared:** {{.RowsCleared}}
{{range .Shapes}}  - {{.Name}}: {{.Count}} ({{printf "%.1f" ($.Share .)}}%)
{{end}}
## Performance
- **Total Steps:** {{.Runner.Steps}}
- **Total Time:** {{.TotalTime}}
- **Commands:** {{.Runner.CommandsApplied}} applied, {{.Runner.CommandsRejected}} rejected
- **Step Time:**
  - **Avg:** {{.Runner.AvgDuration}}
  - **Min:** {{.Runner.MinDuration}}
  - **Max:** {{.Runner.MaxDuration}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}

package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/runner"
)

// FrameHistory is a ring of recent frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	index   int
	filled  int
}

func NewFrameHistory(frames int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, frames)}
}

func (h *FrameHistory) Add(dt time.Duration) {
	h.samples[h.index] = float32(dt.Seconds() * 1000)
	h.index = (h.index + 1) % len(h.samples)
	if h.filled < len(h.samples) {
		h.filled++
	}
}

// Average is the mean of the recorded samples, ignoring slots not yet written.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var total float32
	for _, ms := range h.samples[:h.filled] {
		total += ms
	}
	return total / float32(h.filled)
}

// PerformanceStats renders runner timing and the frame time graph.
type PerformanceStats struct {
	Runner  *runner.Runner
	History *FrameHistory
	// X is the initial left edge of the window in screen pixels.
	X float32
}

func (ps *PerformanceStats) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(ps.X+10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.Runner.Stats()
	imgui.Text(fmt.Sprintf("Steps: %d", stats.Steps))
	imgui.Text(fmt.Sprintf("Commands: %d applied, %d rejected", stats.CommandsApplied, stats.CommandsRejected))
	imgui.Text(fmt.Sprintf("Resets: %d", stats.Resets))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Step Time: %s avg, %s max", stats.AvgDuration, stats.MaxDuration))

	avg := ps.History.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.History.samples[0], int32(len(ps.History.samples)))

	imgui.End()
}

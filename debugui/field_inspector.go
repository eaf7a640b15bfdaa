package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/field"
)

// FieldInspector shows the engine's state and spawn tallies. It reads the engine, so it must be
// rendered on the goroutine that steps it.
type FieldInspector struct {
	Engine *field.Engine
	Stats  *field.SpawnStats
	X      float32
}

func (fi *FieldInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(fi.X+10, 220), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Field", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	cfg := fi.Engine.Config()
	grid := fi.Engine.Snapshot()

	imgui.Text(fmt.Sprintf("Size: %dx%d", cfg.Width, cfg.Height))
	imgui.Text(fmt.Sprintf("Move Delay: %s", cfg.MoveDelay))
	imgui.Text(fmt.Sprintf("Seed: %d", cfg.Seed))
	imgui.Text(fmt.Sprintf("Game Over: %t", fi.Engine.GameOver()))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Filled: %d  Active: %d", grid.Count(field.Filled), grid.Count(field.Active)))
	for _, p := range fi.Engine.ActiveCells() {
		imgui.BulletText(fmt.Sprintf("(%d, %d)", p.X, p.Y))
	}

	if fi.Stats != nil && imgui.TreeNodeStr("Spawns") {
		imgui.Text(fmt.Sprintf("Spawned: %d  Locked: %d  Rows: %d  Games Over: %d",
			fi.Stats.Spawned, fi.Stats.Locked, fi.Stats.RowsCleared, fi.Stats.GamesOver))

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SpawnTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Shape")
			imgui.TableSetupColumn("Count")
			imgui.TableHeadersRow()

			for i, shape := range cfg.Catalog {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(shape.Name())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", fi.Stats.Count(i)))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

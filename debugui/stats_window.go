package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/lightstrike/arena"
	"github.com/plus3/lightstrike/sim"
)

// StatsWindow shows arena counts, column occupancy and frame timing.
type StatsWindow struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewStatsWindow(historyFrames int) *StatsWindow {
	return &StatsWindow{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// record stores one frame time in milliseconds and returns the average.
func (sw *StatsWindow) record(deltaTime float32) float32 {
	sw.frameHistory[sw.frameIndex] = deltaTime * 1000.0
	sw.frameIndex = (sw.frameIndex + 1) % sw.historyFrames

	var avg float32
	for _, ft := range sw.frameHistory {
		avg += ft
	}
	return avg / float32(sw.historyFrames)
}

func (sw *StatsWindow) Render(a *arena.Arena, scheduler *sim.Scheduler, deltaTime float32) {
	if !imgui.BeginV("Arena Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avgFrameTime := sw.record(deltaTime)
	stats := a.CollectStats()

	imgui.Text(fmt.Sprintf("Slots: %d (%d occupied, %d free)", stats.Slots, stats.Occupied, stats.Free))
	imgui.Text(fmt.Sprintf("Generation: %d", stats.Generation))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &sw.frameHistory[0], int32(len(sw.frameHistory)))

	if imgui.TreeNodeStr("Columns") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ColumnStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Attribute")
			imgui.TableSetupColumn("Present")
			imgui.TableSetupColumn("Cells")
			imgui.TableHeadersRow()

			for _, col := range stats.Columns {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(col.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", col.Present))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", col.Len))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if scheduler != nil && imgui.TreeNodeStr("Systems") {
		schedStats := scheduler.Stats()
		imgui.Text(fmt.Sprintf("Steps: %d, flush errors: %d", schedStats.Steps, schedStats.FlushErrors))
		for _, sys := range schedStats.Systems {
			imgui.BulletText(fmt.Sprintf("%s: avg %s, max %s", sys.Name, sys.Avg().Round(time.Microsecond), sys.Max.Round(time.Microsecond)))
		}
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures the time between consecutive frames.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}

// Package debugui provides Dear ImGui windows for inspecting an arena while
// the simulation runs.
package debugui

import (
	"github.com/plus3/lightstrike/arena"
	"github.com/plus3/lightstrike/sim"
)

// Inspector groups the debug windows.
type Inspector struct {
	Slots *SlotBrowser
	Stats *StatsWindow
}

// NewInspector creates the slot browser and the stats window.
func NewInspector() *Inspector {
	return &Inspector{
		Slots: NewSlotBrowser(100),
		Stats: NewStatsWindow(120),
	}
}

// Render draws every window. It must run between the ImGui backend's
// BeginFrame and EndFrame, on the goroutine that owns the arena.
func (in *Inspector) Render(a *arena.Arena, scheduler *sim.Scheduler, deltaTime float32) {
	in.Slots.Render(a)
	in.Stats.Render(a, scheduler, deltaTime)
}

// Package sim drives the arena once per simulation step: registered systems
// read and write records, and structural changes they queue are applied when
// the step ends.
package sim

import "github.com/plus3/lightstrike/arena"

// System is one behavior run every step.
type System interface {
	Execute(frame *Frame)
}

// Frame is what a system sees during one step.
type Frame struct {
	DeltaTime float64
	Arena     *arena.Arena
	Commands  *arena.Commands
}

package main

import (
	"math/rand"

	"github.com/plus3/lightstrike/arena"
	"github.com/plus3/lightstrike/geom"
	"github.com/plus3/lightstrike/sim"
)

// ChurnSystem frees a random share of live records each frame and queues the
// same number of fresh ones, so slots are constantly recycled.
type ChurnSystem struct {
	Rate float64
	Rand *rand.Rand

	Freed     int64
	Allocated int64
}

func (s *ChurnSystem) Execute(frame *sim.Frame) {
	if s.Rate <= 0 {
		return
	}

	var n int
	for h := range frame.Arena.All() {
		if s.Rand.Float64() < s.Rate {
			frame.Commands.Free(h)
			n++
		}
	}

	for i := 0; i < n; i++ {
		frame.Commands.Allocate(RandomValues(s.Rand))
	}
	s.Freed += int64(n)
	s.Allocated += int64(n)
}

// RandomValues builds a record carrying a random subset of attributes.
func RandomValues(rng *rand.Rand) arena.Values {
	var v arena.Values
	if rng.Intn(2) == 0 {
		v.Position = arena.Some(geom.Vec(rng.Float32()*2-1, rng.Float32()*2-1))
	}
	if rng.Intn(2) == 0 {
		v.Rotation = arena.Some(rng.Float32() * 6.2831855)
	}
	if rng.Intn(3) == 0 {
		v.Velocity = arena.Some(geom.Vec(rng.Float32()-0.5, rng.Float32()-0.5))
	}
	if rng.Intn(4) == 0 {
		v.Light = arena.Some(arena.LightParams{R: rng.Float32(), G: rng.Float32(), B: rng.Float32(), Strength: rng.Float32()})
	}
	if rng.Intn(4) == 0 {
		v.Polygon = arena.Some(geom.Polygon{geom.Vec(0, 0), geom.Vec(0.1, 0), geom.Vec(0, 0.1)})
	}
	return v
}

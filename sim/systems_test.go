package sim_test

import (
	"testing"

	"github.com/plus3/lightstrike/arena"
	"github.com/plus3/lightstrike/geom"
	"github.com/plus3/lightstrike/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovementSystem(t *testing.T) {
	a := arena.New(0)
	moving := a.Allocate(arena.Values{
		Position: arena.Some(geom.Vec(0, 0)),
		Velocity: arena.Some(geom.Vec(1, 2)),
	})
	still := a.Allocate(arena.Values{Position: arena.Some(geom.Vec(5, 5))})
	drifting := a.Allocate(arena.Values{Velocity: arena.Some(geom.Vec(1, 1))})

	scheduler := sim.NewScheduler(a, quietLogger())
	scheduler.Register(sim.MovementSystem{})
	require.NoError(t, scheduler.Once(0.5))

	pos, err := a.Position(moving)
	require.NoError(t, err)
	assert.Equal(t, arena.Some(geom.Vec(0.5, 1)), pos)

	pos, err = a.Position(still)
	require.NoError(t, err)
	assert.Equal(t, arena.Some(geom.Vec(5, 5)), pos)

	pos, err = a.Position(drifting)
	require.NoError(t, err)
	assert.False(t, pos.IsSome())
}

func TestBoundsSystem(t *testing.T) {
	a := arena.New(0)
	inside := a.Allocate(arena.Values{
		Position: arena.Some(geom.Vec(0.5, 0)),
		Velocity: arena.Some(geom.Vec(1, 0)),
	})
	outside := a.Allocate(arena.Values{
		Position: arena.Some(geom.Vec(0, -1.5)),
		Velocity: arena.Some(geom.Vec(0, -1)),
	})
	static := a.Allocate(arena.Values{Position: arena.Some(geom.Vec(3, 3))})

	scheduler := sim.NewScheduler(a, quietLogger())
	scheduler.Register(&sim.BoundsSystem{Limit: 1})
	require.NoError(t, scheduler.Once(0.1))

	assert.True(t, a.Validate(inside))
	assert.False(t, a.Validate(outside))
	assert.True(t, a.Validate(static))
}

func TestEmitterReusesFreedSlots(t *testing.T) {
	a := arena.New(0)
	emitter := &sim.EmitterSystem{Interval: 0.1, Speed: 10, Sweep: 1}

	scheduler := sim.NewScheduler(a, quietLogger())
	scheduler.Register(emitter)
	scheduler.Register(sim.MovementSystem{})
	scheduler.Register(&sim.BoundsSystem{Limit: 1})

	for i := 0; i < 50; i++ {
		require.NoError(t, scheduler.Once(0.1))
		require.NoError(t, a.Verify())
	}

	assert.Equal(t, 50, emitter.Emitted())
	// Projectiles leave the field within two steps, so slots are recycled
	// rather than the table growing with every emission.
	assert.Less(t, a.Len(), 5)
	assert.Greater(t, a.Generation(), uint64(0))
}

func TestEmitterDisabled(t *testing.T) {
	a := arena.New(0)
	scheduler := sim.NewScheduler(a, quietLogger())
	scheduler.Register(&sim.EmitterSystem{})

	require.NoError(t, scheduler.Once(1))
	assert.Equal(t, 0, a.Count())
}

func TestPopulate(t *testing.T) {
	a := arena.New(0)
	handles := sim.Populate(a)

	require.Len(t, handles, 3)
	assert.Equal(t, 3, a.Count())

	light, err := a.Light(handles[2])
	require.NoError(t, err)
	assert.True(t, light.IsSome())

	poly, err := a.Polygon(handles[0])
	require.NoError(t, err)
	p, ok := poly.Get()
	require.True(t, ok)
	assert.Len(t, p, 3)
}

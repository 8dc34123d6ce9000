package arena_test

import (
	"testing"

	"github.com/plus3/lightstrike/arena"
	"github.com/plus3/lightstrike/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotCopiesLiveRecords(t *testing.T) {
	a := arena.New(0)

	ship := a.Allocate(arena.Values{
		Position: arena.Some(geom.Vec(0.5, 0.5)),
		Rotation: arena.Some(float32(1)),
		Polygon:  arena.Some(triangle()),
	})
	gone := a.Allocate(at(9, 9))
	lamp := a.Allocate(arena.Values{
		Position: arena.Some(geom.Vec(0, 0)),
		Light:    arena.Some(arena.LightParams{R: 1, G: 1, B: 1, Strength: 1}),
	})
	require.NoError(t, a.Free(gone))

	snap := a.Snapshot()

	require.Equal(t, 2, snap.Len())
	assert.Equal(t, []arena.Handle{ship, lamp}, snap.Handles)
	assert.Equal(t, arena.Some(float32(1)), snap.Rotations[0])
	assert.False(t, snap.Rotations[1].IsSome())
	assert.False(t, snap.Lights[0].IsSome())
	assert.True(t, snap.Lights[1].IsSome())
	assert.False(t, snap.Polygons[1].IsSome())
}

func TestSnapshotIsDetached(t *testing.T) {
	a := arena.New(0)
	h := a.Allocate(arena.Values{
		Position: arena.Some(geom.Vec(1, 1)),
		Polygon:  arena.Some(triangle()),
	})

	snap := a.Snapshot()

	cell, err := a.PolygonMut(h)
	require.NoError(t, err)
	(*cell.Ptr())[0] = geom.Vec(5, 5)

	pos, err := a.PositionMut(h)
	require.NoError(t, err)
	pos.Set(geom.Vec(2, 2))

	poly, ok := snap.Polygons[0].Get()
	require.True(t, ok)
	assert.Equal(t, triangle(), poly)
	assert.Equal(t, arena.Some(geom.Vec(1, 1)), snap.Positions[0])
}

func TestSnapshotEmpty(t *testing.T) {
	snap := arena.New(0).Snapshot()
	assert.Equal(t, 0, snap.Len())
}

package render_test

import (
	"context"
	"math"
	"testing"

	"github.com/plus3/lightstrike/arena"
	"github.com/plus3/lightstrike/geom"
	"github.com/plus3/lightstrike/render"
	"github.com/plus3/lightstrike/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDemoScene(t *testing.T) {
	a := arena.New(0)
	sim.Populate(a)

	p, err := render.Build(context.Background(), a.Snapshot())
	require.NoError(t, err)

	assert.Equal(t, []int32{3, 3}, p.PolygonLengths)
	assert.Len(t, p.PolygonVertices, 6)
	assert.Equal(t, [2]float32{-0.2, 0.2}, p.PolygonVertices[0])
	assert.Equal(t, [][2]float32{{0, 0}}, p.LightPositions)
	assert.Equal(t, [][4]float32{{1, 1, 1, 1}}, p.Lights)
}

func TestBuildSkipsAbsentValues(t *testing.T) {
	a := arena.New(0)
	a.Allocate(arena.Values{})
	a.Allocate(arena.Values{Light: arena.Some(arena.LightParams{Strength: 1})})
	a.Allocate(arena.Values{Position: arena.Some(geom.Vec(1, 1))})

	p, err := render.Build(context.Background(), a.Snapshot())
	require.NoError(t, err)

	assert.Empty(t, p.PolygonLengths)
	assert.Empty(t, p.PolygonVertices)
	assert.Empty(t, p.Lights)
	assert.Empty(t, p.LightPositions)
}

func TestBuildTransformsPolygons(t *testing.T) {
	a := arena.New(0)
	spoke := geom.Polygon{geom.Vec(1, 0)}
	a.Allocate(arena.Values{
		Position: arena.Some(geom.Vec(0.5, 0.5)),
		Polygon:  arena.Some(spoke),
	})
	a.Allocate(arena.Values{
		Rotation: arena.Some(float32(math.Pi)),
		Polygon:  arena.Some(spoke),
	})

	p, err := render.Build(context.Background(), a.Snapshot())
	require.NoError(t, err)
	require.Len(t, p.PolygonVertices, 2)

	assert.Equal(t, [2]float32{1.5, 0.5}, p.PolygonVertices[0])
	assert.InDelta(t, -1.0, p.PolygonVertices[1][0], 1e-6)
	assert.InDelta(t, 0.0, p.PolygonVertices[1][1], 1e-6)
}

func TestBuildCancelled(t *testing.T) {
	a := arena.New(0)
	sim.Populate(a)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := render.Build(ctx, a.Snapshot())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPayloadPolygons(t *testing.T) {
	p := &render.Payload{
		PolygonVertices: [][2]float32{{0, 0}, {1, 0}, {0, 1}, {2, 2}, {3, 3}},
		PolygonLengths:  []int32{3, 2},
	}

	var got [][][2]float32
	for poly := range p.Polygons() {
		got = append(got, poly)
	}

	require.Len(t, got, 2)
	assert.Len(t, got[0], 3)
	assert.Equal(t, [][2]float32{{2, 2}, {3, 3}}, got[1])
}

func TestToScreen(t *testing.T) {
	x, y := render.ToScreen([2]float32{-1, 1}, 800, 600)
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(0), y)

	x, y = render.ToScreen([2]float32{0, 0}, 800, 600)
	assert.Equal(t, float32(400), x)
	assert.Equal(t, float32(300), y)
}

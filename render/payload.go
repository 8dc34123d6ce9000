// Package render turns arena snapshots into draw payloads for the
// presentation backends in its subpackages.
package render

import (
	"context"
	"iter"

	"github.com/plus3/lightstrike/arena"
	"golang.org/x/sync/errgroup"
)

// Payload is what a backend draws for one frame. Polygon vertices are
// flattened; PolygonLengths[i] says how many of them belong to polygon i.
// LightPositions[i] pairs with Lights[i].
type Payload struct {
	PolygonVertices [][2]float32
	PolygonLengths  []int32
	LightPositions  [][2]float32
	Lights          [][4]float32
}

// Build assembles a payload from snap. Polygons and lights are gathered
// concurrently; records missing the values a half needs are skipped.
func Build(ctx context.Context, snap *arena.Snapshot) (*Payload, error) {
	p := &Payload{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return buildPolygons(ctx, snap, p)
	})
	g.Go(func() error {
		return buildLights(ctx, snap, p)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return p, nil
}

// buildPolygons places each polygon at its record's position and rotation
// when those are present.
func buildPolygons(ctx context.Context, snap *arena.Snapshot, p *Payload) error {
	for i, polygon := range snap.Polygons {
		if err := ctx.Err(); err != nil {
			return err
		}
		shape, ok := polygon.Get()
		if !ok {
			continue
		}
		pos, hasPos := snap.Positions[i].Get()
		rot, hasRot := snap.Rotations[i].Get()
		if hasPos || hasRot {
			shape = shape.Transform(pos, rot)
		}

		p.PolygonLengths = append(p.PolygonLengths, int32(len(shape)))
		for _, v := range shape {
			p.PolygonVertices = append(p.PolygonVertices, v.Array())
		}
	}
	return nil
}

func buildLights(ctx context.Context, snap *arena.Snapshot, p *Payload) error {
	for i, light := range snap.Lights {
		if err := ctx.Err(); err != nil {
			return err
		}
		l, ok := light.Get()
		if !ok {
			continue
		}
		pos, ok := snap.Positions[i].Get()
		if !ok {
			continue
		}
		p.LightPositions = append(p.LightPositions, pos.Array())
		p.Lights = append(p.Lights, l.Array())
	}
	return nil
}

// Polygons iterates the payload polygons as vertex slices.
func (p *Payload) Polygons() iter.Seq[[][2]float32] {
	return func(yield func([][2]float32) bool) {
		start := 0
		for _, n := range p.PolygonLengths {
			end := start + int(n)
			if !yield(p.PolygonVertices[start:end]) {
				return
			}
			start = end
		}
	}
}

// ToScreen maps a normalized device coordinate onto a width×height surface
// with the origin at the top-left corner.
func ToScreen(v [2]float32, width, height int) (float32, float32) {
	x := (v[0] + 1) / 2 * float32(width)
	y := (1 - v[1]) / 2 * float32(height)
	return x, y
}

package sim

import (
	"github.com/plus3/lightstrike/arena"
	"github.com/plus3/lightstrike/geom"
)

// Populate fills a with the demo scene: two static triangles and a light
// between them.
func Populate(a *arena.Arena) []arena.Handle {
	return []arena.Handle{
		a.Allocate(arena.Values{
			Polygon: arena.Some(geom.Polygon{geom.Vec(-0.2, 0.2), geom.Vec(0, 0.5), geom.Vec(0.2, 0.2)}),
		}),
		a.Allocate(arena.Values{
			Polygon: arena.Some(geom.Polygon{geom.Vec(-0.2, -0.2), geom.Vec(0, -0.5), geom.Vec(0.2, -0.2)}),
		}),
		a.Allocate(arena.Values{
			Position: arena.Some(geom.Vec(0, 0)),
			Light:    arena.Some(arena.LightParams{R: 1, G: 1, B: 1, Strength: 1}),
		}),
	}
}

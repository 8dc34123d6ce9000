package arena_test

import (
	"github.com/plus3/lightstrike/arena"
	"github.com/plus3/lightstrike/geom"
)

func at(x, y float32) arena.Values {
	return arena.Values{Position: arena.Some(geom.Vec(x, y))}
}

func triangle() geom.Polygon {
	return geom.Polygon{geom.Vec(-0.2, 0.2), geom.Vec(0, 0.5), geom.Vec(0.2, 0.2)}
}

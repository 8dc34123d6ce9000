// Package geom holds the small 2D math types shared by the arena columns,
// the simulation systems and the renderers.
package geom

import "math"

// Vector2 is a 2D vector in normalized device coordinates.
type Vector2 struct {
	X, Y float32
}

// Vec creates a Vector2.
func Vec(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }
func (v Vector2) Mul(o Vector2) Vector2 { return Vector2{v.X * o.X, v.Y * o.Y} }
func (v Vector2) Div(o Vector2) Vector2 { return Vector2{v.X / o.X, v.Y / o.Y} }

// Scale multiplies both components by s.
func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Len returns the euclidean length.
func (v Vector2) Len() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Rotate rotates v counter-clockwise by theta radians around the origin.
func (v Vector2) Rotate(theta float32) Vector2 {
	sin, cos := math.Sincos(float64(theta))
	s, c := float32(sin), float32(cos)
	return Vector2{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}

// Array returns the vector as a vertex attribute.
func (v Vector2) Array() [2]float32 {
	return [2]float32{v.X, v.Y}
}

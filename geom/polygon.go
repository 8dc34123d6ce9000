package geom

// Polygon is a closed outline given by its vertices in order.
type Polygon []Vector2

// Clone returns a copy that shares no backing array with p.
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Transform rotates every vertex by rotation and then translates it by offset.
// The result is a new polygon; p is left untouched.
func (p Polygon) Transform(offset Vector2, rotation float32) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		if rotation != 0 {
			v = v.Rotate(rotation)
		}
		out[i] = v.Add(offset)
	}
	return out
}

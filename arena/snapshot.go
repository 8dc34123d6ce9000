package arena

import "github.com/plus3/lightstrike/geom"

// Snapshot is a copy of the render-facing columns of every live record,
// taken between simulation steps. Row i of every slice belongs to Handles[i].
// A snapshot shares no storage with the arena and may be handed to another
// goroutine.
type Snapshot struct {
	Handles   []Handle
	Positions []Optional[geom.Vector2]
	Rotations []Optional[float32]
	Lights    []Optional[LightParams]
	Polygons  []Optional[geom.Polygon]
}

// Snapshot copies the position, rotation, light and polygon columns of every
// live record.
func (a *Arena) Snapshot() *Snapshot {
	n := a.live
	s := &Snapshot{
		Handles:   make([]Handle, 0, n),
		Positions: make([]Optional[geom.Vector2], n),
		Rotations: make([]Optional[float32], n),
		Lights:    make([]Optional[LightParams], n),
		Polygons:  make([]Optional[geom.Polygon], n),
	}

	for h := range a.All() {
		s.Handles = append(s.Handles, h)
	}

	gather(&a.cols.position, s.Handles, s.Positions)
	gather(&a.cols.rotation, s.Handles, s.Rotations)
	gather(&a.cols.light, s.Handles, s.Lights)
	gather(&a.cols.polygon, s.Handles, s.Polygons)

	return s
}

// gather copies the present cells of c into dst, where dst[i] belongs to
// handles[i]. Both the presence bitmap and handles run in slot order, so one
// forward pass pairs them up and rows without a value stay None. Sparse
// attributes cost only as many visits as they have values.
func gather[T any](c *Column[T], handles []Handle, dst []Optional[T]) {
	row := 0
	c.each(func(index uint32, v *T) bool {
		for row < len(handles) && handles[row].index < index {
			row++
		}
		if row == len(handles) {
			return false
		}
		if handles[row].index == index {
			dst[row] = Some(cloneValue(*v))
		}
		return true
	})
}

// Len returns the number of records in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.Handles)
}

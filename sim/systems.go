package sim

import (
	"github.com/plus3/lightstrike/arena"
	"github.com/plus3/lightstrike/geom"
)

// MovementSystem moves every record that has both a position and a velocity.
type MovementSystem struct{}

func (MovementSystem) Execute(frame *Frame) {
	a := frame.Arena
	dt := float32(frame.DeltaTime)

	for h := range a.All() {
		vel, err := a.Velocity(h)
		if err != nil {
			continue
		}
		v, ok := vel.Get()
		if !ok {
			continue
		}
		cell, err := a.PositionMut(h)
		if err != nil {
			continue
		}
		if p := cell.Ptr(); p != nil {
			*p = p.Add(v.Scale(dt))
		}
	}
}

// BoundsSystem frees moving records whose position has left the square
// [-Limit, Limit] on either axis.
type BoundsSystem struct {
	Limit float32
}

func (s *BoundsSystem) Execute(frame *Frame) {
	a := frame.Arena

	for h := range a.All() {
		vel, _ := a.Velocity(h)
		if !vel.IsSome() {
			continue
		}
		pos, _ := a.Position(h)
		p, ok := pos.Get()
		if !ok {
			continue
		}
		if p.X < -s.Limit || p.X > s.Limit || p.Y < -s.Limit || p.Y > s.Limit {
			frame.Commands.Free(h)
		}
	}
}

// EmitterSystem spawns a projectile every Interval seconds from Origin,
// sweeping its aim by Sweep radians per second.
type EmitterSystem struct {
	Interval float64
	Speed    float32
	Sweep    float32
	Origin   geom.Vector2

	elapsed float64
	angle   float32
	emitted int
}

var projectileShape = geom.Polygon{
	geom.Vec(-0.01, -0.01),
	geom.Vec(0.02, 0),
	geom.Vec(-0.01, 0.01),
}

func (s *EmitterSystem) Execute(frame *Frame) {
	if s.Interval <= 0 {
		return
	}

	s.elapsed += frame.DeltaTime
	for s.elapsed >= s.Interval {
		s.elapsed -= s.Interval

		dir := geom.Vec(1, 0).Rotate(s.angle)
		frame.Commands.Allocate(arena.Values{
			Position: arena.Some(s.Origin),
			Rotation: arena.Some(s.angle),
			Velocity: arena.Some(dir.Scale(s.Speed)),
			Polygon:  arena.Some(projectileShape),
			Light:    arena.Some(arena.LightParams{R: 1, G: 0.6, B: 0.2, Strength: 0.15}),
		})
		s.emitted++
		s.angle += s.Sweep * float32(s.Interval)
	}
}

// Emitted returns how many projectiles the emitter has queued.
func (s *EmitterSystem) Emitted() int {
	return s.emitted
}

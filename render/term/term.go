// Package term draws render payloads on a terminal through tcell.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/lightstrike/render"
)

const (
	outlineRune = '#'
	lightRune   = '*'
)

// Surface is the part of tcell.Screen the renderer writes to.
type Surface interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var outlineStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)

// Draw plots p onto s. It does not clear or show the screen.
func Draw(s Surface, p *render.Payload) {
	w, h := s.Size()

	for poly := range p.Polygons() {
		for i := range poly {
			x0, y0 := render.ToScreen(poly[i], w, h)
			x1, y1 := render.ToScreen(poly[(i+1)%len(poly)], w, h)
			if cx0, cy0, cx1, cy1, ok := clip(x0, y0, x1, y1, w, h); ok {
				line(s, cx0, cy0, cx1, cy1, w, h)
			}
		}
	}

	for i, pos := range p.LightPositions {
		x, y := render.ToScreen(pos, w, h)
		if !finite(x) || !finite(y) || x < 0 || y < 0 || x >= float32(w) || y >= float32(h) {
			continue
		}
		light := p.Lights[i]
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(
			int32(clamp(light[0])*255),
			int32(clamp(light[1])*255),
			int32(clamp(light[2])*255),
		)).Bold(true)
		put(s, int(x), int(y), w, h, lightRune, style)
	}
}

// clip trims a segment to the surface with the Liang-Barsky test, so the
// rasterizer only walks visible cells. Segments that miss the surface or
// have a non-finite endpoint are rejected. The math runs in float64 so far
// endpoints do not swallow the on-screen part.
func clip(fx0, fy0, fx1, fy1 float32, w, h int) (int, int, int, int, bool) {
	if !finite(fx0) || !finite(fy0) || !finite(fx1) || !finite(fy1) {
		return 0, 0, 0, 0, false
	}

	x0, y0 := float64(fx0), float64(fy0)
	dx, dy := float64(fx1)-x0, float64(fy1)-y0

	// Cells span [0, w) and [0, h); stay clear of the far edge so truncation
	// lands inside.
	maxX, maxY := float64(w)-0.001, float64(h)-0.001
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, x0},
		{dx, maxX - x0},
		{-dy, y0},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, r)
		}
	}

	return int(max(0, x0+t0*dx)), int(max(0, y0+t0*dy)),
		int(max(0, x0+t1*dx)), int(max(0, y0+t1*dy)), true
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// line rasterizes a segment with Bresenham's algorithm.
func line(s Surface, x0, y0, x1, y1, w, h int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		put(s, x0, y0, w, h, outlineRune, outlineStyle)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func put(s Surface, x, y, w, h int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.SetContent(x, y, r, nil, style)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v float32) float32 {
	return max(0, min(1, v))
}

// Package ebitenrender draws render payloads with the Ebiten game engine.
package ebitenrender

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/lightstrike/render"
)

var (
	Background = color.RGBA{R: 8, G: 8, B: 16, A: 255}
	Outline    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

const (
	outlineWidth = 2
	glowSteps    = 6
)

// ring is one band of a light's glow.
type ring struct {
	radius float32
	color  color.NRGBA
}

// glow splits a light into concentric rings, outermost first, whose alpha
// rises toward the center. scale converts strength into pixels.
func glow(light [4]float32, scale float32) []ring {
	radius := light[3] * scale
	if radius <= 0 {
		return nil
	}

	rings := make([]ring, 0, glowSteps)
	for i := glowSteps; i > 0; i-- {
		t := float32(i) / glowSteps
		rings = append(rings, ring{
			radius: radius * t,
			color: color.NRGBA{
				R: channel(light[0]),
				G: channel(light[1]),
				B: channel(light[2]),
				A: uint8(255 * (1 - t) / 2),
			},
		})
	}
	return rings
}

func channel(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v * 255)
	}
}

// Draw renders p onto screen: lights as soft glows, polygons as closed outlines.
func Draw(screen *ebiten.Image, p *render.Payload) {
	screen.Fill(Background)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	scale := float32(min(w, h)) / 4

	for i, pos := range p.LightPositions {
		x, y := render.ToScreen(pos, w, h)
		for _, r := range glow(p.Lights[i], scale) {
			vector.DrawFilledCircle(screen, x, y, r.radius, r.color, true)
		}
	}

	for poly := range p.Polygons() {
		for i := range poly {
			x0, y0 := render.ToScreen(poly[i], w, h)
			x1, y1 := render.ToScreen(poly[(i+1)%len(poly)], w, h)
			vector.StrokeLine(screen, x0, y0, x1, y1, outlineWidth, Outline, true)
		}
	}
}

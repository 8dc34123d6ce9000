package arena

// LightParams describes a point light: its color and strength.
type LightParams struct {
	R, G, B  float32
	Strength float32
}

// Array packs the light the way the renderer uploads it.
func (l LightParams) Array() [4]float32 {
	return [4]float32{l.R, l.G, l.B, l.Strength}
}

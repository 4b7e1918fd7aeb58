package entity

import (
	"image/color"
	"math"
	"math/rand"
)

// Color is a straight-alpha RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

var (
	Black = Color{R: 0, G: 0, B: 0, A: 1}
	White = Color{R: 1, G: 1, B: 1, A: 1}
)

// RandomColor returns an opaque color with uniformly random channels.
func RandomColor(rng *rand.Rand) Color {
	return Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64(), A: 1}
}

// NRGBA converts c to an 8-bit color for drawing.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

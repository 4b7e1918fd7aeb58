// Package entity defines the circles that populate the arena and the
// color cycle that animates them.
package entity

import (
	"math"
	"math/rand"

	"chosenoffset.com/arena/internal/core/geom"
)

// DefaultRadius is the radius of circles created with NewCircle.
const DefaultRadius = 50.0

// Circle is the drawable unit of the arena.
//
// Phase runs from 0 towards 1. Renderers blend from Base to New by Phase, and
// each time Phase wraps the two colors trade places so the blend reverses.
type Circle struct {
	Position geom.Vec2
	Radius   float64
	Phase    float64
	Base     Color
	New      Color
}

// SpawnBounds limits where and how large randomized circles are created.
type SpawnBounds struct {
	Extent    float64 // Positions fall in [-Extent, Extent) on both axes
	MinRadius float64
	MaxRadius float64
}

// DefaultSpawnBounds returns the bounds food is spawned with.
func DefaultSpawnBounds() SpawnBounds {
	return SpawnBounds{Extent: 300, MinRadius: 10, MaxRadius: 100}
}

// NewCircle creates a circle at the origin that fades from black to white.
func NewCircle(radius float64) Circle {
	return Circle{
		Radius: radius,
		Base:   Black,
		New:    White,
	}
}

// NewRandomCircle creates a circle with random position, radius, phase and colors.
func NewRandomCircle(rng *rand.Rand, b SpawnBounds) Circle {
	return Circle{
		Position: geom.Vec2{
			X: uniform(rng, -b.Extent, b.Extent),
			Y: uniform(rng, -b.Extent, b.Extent),
		},
		Radius: uniform(rng, b.MinRadius, b.MaxRadius),
		Phase:  rng.Float64(),
		Base:   RandomColor(rng),
		New:    RandomColor(rng),
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Advance moves the color cycle forward by dt.
//
// When Phase reaches 1 it keeps only its fractional part and the colors swap
// once, however many whole cycles dt covered.
func (c *Circle) Advance(dt float64) {
	c.Phase += dt
	if c.Phase >= 1 {
		c.Phase = math.Mod(c.Phase, 1)
		c.Base, c.New = c.New, c.Base
	}
}

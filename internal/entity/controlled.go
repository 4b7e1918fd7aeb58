package entity

import (
	"math/rand"

	"chosenoffset.com/arena/internal/movement"
)

// Controlled pairs a circle with the state that drives it.
type Controlled[S any] struct {
	Circle Circle
	State  S
}

// Player is the circle steered by the movement keys.
type Player = Controlled[movement.Directions]

// FoodState is empty: food has no control input.
type FoodState struct{}

// Food is a passive, color-cycling circle.
type Food = Controlled[FoodState]

// NewPlayer creates the player at the origin with no keys held.
func NewPlayer(radius float64) *Player {
	return &Player{Circle: NewCircle(radius)}
}

// NewFood creates a randomized food circle.
func NewFood(rng *rand.Rand, b SpawnBounds) Food {
	return Food{Circle: NewRandomCircle(rng, b)}
}

// Move integrates the player's position for dt seconds at speed.
func Move(p *Player, speed, dt float64) {
	p.Circle.Position = movement.Step(p.Circle.Position, p.State, speed, dt)
}

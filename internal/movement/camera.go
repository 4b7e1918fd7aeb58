package movement

import "chosenoffset.com/arena/internal/core/geom"

// Camera is a free-moving viewpoint. It is not attached to the player and
// has its own held-key state.
type Camera struct {
	Position   geom.Vec2
	Directions Directions
	Speed      float64
}

// NewCamera creates a camera at the origin.
func NewCamera(speed float64) *Camera {
	return &Camera{Speed: speed}
}

// Update moves the camera for dt seconds.
func (c *Camera) Update(dt float64) {
	c.Position = Step(c.Position, c.Directions, c.Speed, dt)
}

package game

import (
	"chosenoffset.com/arena/internal/core/geom"
	"chosenoffset.com/arena/internal/entity"
)

// Snapshot is a copy of everything a renderer needs for one frame.
// It shares no memory with the running game.
type Snapshot struct {
	Player  entity.Circle
	Food    []entity.Circle
	Camera  geom.Vec2
	Elapsed float64 // Seconds since the session started
	Frame   uint64
}

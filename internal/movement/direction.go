// Package movement turns held direction keys into velocities and advances
// positions by them.
package movement

// Direction identifies one of the four movement keys.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// String returns a lowercase name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return ""
	}
}

// AllDirections lists the four directions in flag order.
var AllDirections = [4]Direction{DirUp, DirRight, DirDown, DirLeft}

// Directions holds which movement keys are currently held.
// Opposite keys may be held at the same time; Resolve decides what that means.
type Directions struct {
	Up, Right, Down, Left bool
}

// Set records whether dir is held. Setting a flag to its current value is a no-op.
func (d *Directions) Set(dir Direction, held bool) {
	switch dir {
	case DirUp:
		d.Up = held
	case DirRight:
		d.Right = held
	case DirDown:
		d.Down = held
	case DirLeft:
		d.Left = held
	}
}

// Held reports whether dir is held.
func (d Directions) Held(dir Direction) bool {
	switch dir {
	case DirUp:
		return d.Up
	case DirRight:
		return d.Right
	case DirDown:
		return d.Down
	case DirLeft:
		return d.Left
	default:
		return false
	}
}

// Clear releases every key.
func (d *Directions) Clear() {
	*d = Directions{}
}

package movement

import (
	"math"

	"chosenoffset.com/arena/internal/core/geom"
)

// Rule maps one pattern of held keys to a heading in degrees.
// 0° is +X and angles grow counter-clockwise.
type Rule struct {
	Name    string
	Match   func(d Directions) bool
	Heading float64
}

// rules is evaluated top to bottom and the first match wins.
// Diagonals come before single axes so that, for example, up+right+down
// falls through to "right" instead of being treated as a diagonal.
var rules = [...]Rule{
	{"up-right", func(d Directions) bool { return d.Up && d.Right && !d.Down && !d.Left }, 45},
	{"up-left", func(d Directions) bool { return d.Up && !d.Right && !d.Down && d.Left }, 135},
	{"down-left", func(d Directions) bool { return !d.Up && !d.Right && d.Down && d.Left }, 225},
	{"down-right", func(d Directions) bool { return !d.Up && d.Right && d.Down && !d.Left }, 315},
	{"right", func(d Directions) bool { return d.Right && !d.Left }, 0},
	{"up", func(d Directions) bool { return d.Up && !d.Down }, 90},
	{"left", func(d Directions) bool { return !d.Right && d.Left }, 180},
	{"down", func(d Directions) bool { return !d.Up && d.Down }, 270},
}

// Rules returns a copy of the ordered heading table.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules[:])
	return out
}

// Heading returns the heading selected by the held keys. ok is false when the
// keys cancel out or none are held.
func Heading(d Directions) (deg float64, ok bool) {
	for _, r := range rules {
		if r.Match(d) {
			return r.Heading, true
		}
	}
	return 0, false
}

// Resolve returns a velocity of magnitude speed along the heading selected by
// d, or the zero vector.
func Resolve(d Directions, speed float64) geom.Vec2 {
	deg, ok := Heading(d)
	if !ok {
		return geom.Vec2{}
	}
	return headingVector(deg).Scale(speed)
}

// headingVector returns the unit vector for deg. Axis-aligned headings are exact.
func headingVector(deg float64) geom.Vec2 {
	switch deg {
	case 0:
		return geom.Vec2{X: 1}
	case 90:
		return geom.Vec2{Y: 1}
	case 180:
		return geom.Vec2{X: -1}
	case 270:
		return geom.Vec2{Y: -1}
	}
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return geom.Vec2{X: cos, Y: sin}
}

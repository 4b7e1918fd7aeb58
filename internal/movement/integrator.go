package movement

import "chosenoffset.com/arena/internal/core/geom"

// Integrate advances p by v over dt seconds.
// dt is used as given: a negative or NaN dt moves the point backwards or
// poisons it. The game clock is what keeps dt sane.
func Integrate(p, v geom.Vec2, dt float64) geom.Vec2 {
	return p.Add(v.Scale(dt))
}

// Step resolves the velocity for d and integrates p by it.
func Step(p geom.Vec2, d Directions, speed, dt float64) geom.Vec2 {
	return Integrate(p, Resolve(d, speed), dt)
}

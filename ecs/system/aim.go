package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/arcade/ecs/component"
)

// Aim returns the velocity of a shot fired from (fromX, fromY) at the point
// (toX, toY) with the given speed. The target position is taken as it is at
// the instant of firing; there is no lead. A zero-length direction falls
// back to a horizontal shot along forward.
func Aim(fromX, fromY, toX, toY, speed, forward float64) (float64, float64) {
	dir := cp.Vector{X: toX, Y: toY}.Sub(cp.Vector{X: fromX, Y: fromY})
	if dir.LengthSq() == 0 {
		return ForwardVelocity(speed, forward)
	}
	v := dir.Normalize().Mult(speed)
	return v.X, v.Y
}

// ForwardVelocity is a straight horizontal shot along forward (+1 or -1).
func ForwardVelocity(speed, forward float64) (float64, float64) {
	if forward == 0 {
		forward = 1
	}
	v := cp.Vector{X: forward, Y: 0}.Mult(speed)
	return v.X, v.Y
}

// muzzle is the point shots leave an actor: the middle of its forward edge.
func muzzle(a *component.Actor) (float64, float64) {
	_, cy := a.Center()
	if a.Faction.Forward() > 0 {
		return a.X + a.Width, cy
	}
	return a.X, cy
}

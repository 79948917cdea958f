package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Integrate advances position by one unscaled tick of velocity
func Integrate(pos, vel r2.Vec) r2.Vec {
	return r2.Add(pos, vel)
}

// ReflectBounds negates each velocity axis whose position lies outside [0, max]
// No clamping: a body may overshoot by up to one tick before turning back
func ReflectBounds(pos, vel r2.Vec, width, height int) r2.Vec {
	if pos.X < 0 || pos.X > float64(width) {
		vel.X = -vel.X
	}
	if pos.Y < 0 || pos.Y > float64(height) {
		vel.Y = -vel.Y
	}
	return vel
}

// RadialPush returns the impulse pushing a body at pos away from source
// Magnitude falls off linearly from strength at the source to 0 at radius
// Returns false when the body is outside the radius or coincident with the source
func RadialPush(pos, source r2.Vec, radius, strength float64) (r2.Vec, bool) {
	d := r2.Sub(source, pos)
	dist := r2.Norm(d)
	if dist <= 0 || dist >= radius {
		return r2.Vec{}, false
	}
	force := (radius - dist) / radius * strength
	return r2.Scale(-force/dist, d), true
}

// Decay scales velocity by factor
func Decay(vel r2.Vec, factor float64) r2.Vec {
	return r2.Scale(factor, vel)
}

// FromPolar builds a vector of the given magnitude at angle radians
func FromPolar(magnitude, angle float64) r2.Vec {
	return r2.Vec{X: math.Cos(angle) * magnitude, Y: math.Sin(angle) * magnitude}
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

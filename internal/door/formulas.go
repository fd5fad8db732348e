package door

import "math"

// MaxDoorAngle is the closing limit for both doors.
const MaxDoorAngle = math.Pi / 2

// DoorMomentOfInertia returns the inertia of a uniform door leaf of
// the given mass and width rotating about its hinge: m*w^2/3.
// Inputs are not validated; negative values produce garbage out.
func DoorMomentOfInertia(mass, width float64) float64 {
	return mass * width * width / 3.0
}

// TotalMomentOfInertia adds a point mass at the given radius to a
// rigid door inertia.
func TotalMomentOfInertia(doorI, slidingMass, radius float64) float64 {
	return doorI + slidingMass*radius*radius
}

// AngularVelocityFromMomentum derives omega from a conserved angular
// momentum. At I=0 this is ±Inf or NaN, not an error; default
// parameter ranges keep I strictly positive.
func AngularVelocityFromMomentum(l, i float64) float64 {
	return l / i
}

// InterpolateRadius maps slide progress in [0,1] onto a radius between
// r1 and r2 with an ease-in-ease-out curve: slow start, fast middle,
// slow end. The output is clamped so float overshoot at the endpoints
// cannot leave [r1, r2].
func InterpolateRadius(r1, r2, progress float64) float64 {
	p := clamp01(progress)
	var eased float64
	if p < 0.5 {
		eased = 2 * p * p
	} else {
		q := -2*p + 2
		eased = 1 - q*q/2
	}
	return r1 + (r2-r1)*clamp01(eased)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package door

import "math"

// Initialize builds the t=0 snapshot from params. Both angular momenta
// are computed here, once; Advance never recomputes them, which is how
// conservation is enforced.
func Initialize(p Params) State {
	doorI := DoorMomentOfInertia(p.DoorMass, p.DoorWidth)
	inertiaA := TotalMomentOfInertia(doorI, p.SlidingMass, p.InitialRadius)

	return State{
		Time:    0,
		Running: false,
		Phase:   PhaseIdle,
		DoorA: DoorA{
			Angle:           0,
			AngularVelocity: p.InitialAngularVelocity,
			MomentOfInertia: inertiaA,
			AngularMomentum: inertiaA * p.InitialAngularVelocity,
			MassRadius:      p.InitialRadius,
		},
		DoorB: DoorB{
			Angle:           0,
			AngularVelocity: p.InitialAngularVelocity,
			MomentOfInertia: doorI,
			AngularMomentum: doorI * p.InitialAngularVelocity,
		},
	}
}

// Advance produces the next snapshot from the current one. It is a
// pure function of its arguments: the input state is never mutated,
// and no call path returns an error.
//
// A paused or idle state passes through unchanged. Once both doors sit
// at the closing limit the state finalizes (running=false, phase2,
// both velocities forced to zero) before time would advance; the tick
// that first reaches phase2 still reports running=true, so the stop is
// observable one tick late. That lag is part of the contract.
func Advance(s State, p Params, dt float64) State {
	if !s.Running {
		return s
	}

	if s.DoorA.Angle >= MaxDoorAngle && s.DoorB.Angle >= MaxDoorAngle {
		s.Running = false
		s.Phase = Phase2
		s.DoorA.AngularVelocity = 0
		s.DoorB.AngularVelocity = 0
		return s
	}

	next := s
	next.Time = s.Time + dt

	// The slide is driven by elapsed time alone, not door angle.
	progress := math.Min(1, next.Time/p.SlideDuration)
	next.DoorA.MassRadius = InterpolateRadius(p.InitialRadius, p.FinalRadius, progress)

	doorI := DoorMomentOfInertia(p.DoorMass, p.DoorWidth)
	next.DoorA.MomentOfInertia = TotalMomentOfInertia(doorI, p.SlidingMass, next.DoorA.MassRadius)

	if s.DoorA.Angle >= MaxDoorAngle {
		next.DoorA.AngularVelocity = 0
		next.DoorA.Angle = MaxDoorAngle
	} else {
		next.DoorA.AngularVelocity = AngularVelocityFromMomentum(s.DoorA.AngularMomentum, next.DoorA.MomentOfInertia)
		next.DoorA.Angle = math.Min(MaxDoorAngle, s.DoorA.Angle+next.DoorA.AngularVelocity*dt)
	}

	if s.DoorB.Angle >= MaxDoorAngle {
		next.DoorB.AngularVelocity = 0
		next.DoorB.Angle = MaxDoorAngle
	} else {
		next.DoorB.AngularVelocity = s.DoorB.AngularVelocity
		next.DoorB.Angle = math.Min(MaxDoorAngle, s.DoorB.Angle+next.DoorB.AngularVelocity*dt)
	}

	if next.DoorA.Angle >= MaxDoorAngle && next.DoorB.Angle >= MaxDoorAngle {
		next.Phase = Phase2
	} else {
		next.Phase = Phase1
	}

	return next
}

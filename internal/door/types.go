package door

// Phase is the coarse simulation stage. It only ever moves forward:
// idle -> phase1 (doors closing) -> phase2 (both doors at the limit).
type Phase string

const (
	PhaseIdle Phase = "idle"
	Phase1    Phase = "phase1"
	Phase2    Phase = "phase2"
)

// Params holds the run parameters. A run never edits these in place;
// the host replaces them wholesale and re-initializes.
type Params struct {
	DoorMass               float64 `json:"door_mass"`                // kg
	DoorWidth              float64 `json:"door_width"`               // m
	SlidingMass            float64 `json:"sliding_mass"`             // kg
	InitialRadius          float64 `json:"initial_radius"`           // m
	FinalRadius            float64 `json:"final_radius"`             // m
	SlideDuration          float64 `json:"slide_duration"`           // s
	InitialAngularVelocity float64 `json:"initial_angular_velocity"` // rad/s
}

// DefaultParams returns the reference parameter set.
func DefaultParams() Params {
	return Params{
		DoorMass:               30.0,
		DoorWidth:              1.0,
		SlidingMass:            8.0,
		InitialRadius:          0.1,
		FinalRadius:            0.9,
		SlideDuration:          1.2,
		InitialAngularVelocity: 2.0,
	}
}

// DoorA is the door with the sliding mass.
type DoorA struct {
	Angle           float64 `json:"angle"`             // rad, clamped to [0, MaxDoorAngle]
	AngularVelocity float64 `json:"angular_velocity"`  // rad/s, derived from AngularMomentum
	MomentOfInertia float64 `json:"moment_of_inertia"` // kg*m^2, recomputed as the mass slides
	AngularMomentum float64 `json:"angular_momentum"`  // kg*m^2/s, fixed at initialization
	MassRadius      float64 `json:"mass_radius"`       // m, current radial position of the mass
}

// DoorB is the rigid door.
type DoorB struct {
	Angle           float64 `json:"angle"`
	AngularVelocity float64 `json:"angular_velocity"`
	MomentOfInertia float64 `json:"moment_of_inertia"`
	AngularMomentum float64 `json:"angular_momentum"`
}

// State is one snapshot of the whole simulation. Snapshots are value
// types: Advance builds a fresh one each tick and never writes through
// to its input, so concurrent readers of an old snapshot are safe.
type State struct {
	Time    float64 `json:"time"`
	Running bool    `json:"running"`
	Phase   Phase   `json:"phase"`
	DoorA   DoorA   `json:"door_a"`
	DoorB   DoorB   `json:"door_b"`
}

// Package history records door snapshots at a fixed simulated-time
// cadence for charting. The recorder keeps a bounded trailing window;
// retention is a host concern, the core has no opinion on it.
package history

import "github.com/akl-leul/momentumsimu/internal/door"

const (
	// SampleInterval is the simulated-time spacing between points.
	SampleInterval = 0.05
	// MaxPoints bounds the trailing window.
	MaxPoints = 201
)

// DataPoint captures both doors at one instant, for plotting only.
type DataPoint struct {
	Time      float64 `json:"time"`
	OmegaA    float64 `json:"omega_a"`
	InertiaA  float64 `json:"inertia_a"`
	MomentumA float64 `json:"momentum_a"`
	OmegaB    float64 `json:"omega_b"`
	InertiaB  float64 `json:"inertia_b"`
	MomentumB float64 `json:"momentum_b"`
}

// Recorder samples snapshots on a simulated-time clock, not wall
// clock. A recorder is single-owner state, matching the cooperative
// host loop; it is not safe for concurrent use.
type Recorder struct {
	interval   float64
	maxPoints  int
	nextSample float64
	points     []DataPoint
}

// NewRecorder returns a recorder with the reference cadence and cap.
func NewRecorder() *Recorder {
	return NewRecorderWith(SampleInterval, MaxPoints)
}

func NewRecorderWith(interval float64, maxPoints int) *Recorder {
	return &Recorder{
		interval:  interval,
		maxPoints: maxPoints,
		points:    make([]DataPoint, 0, maxPoints),
	}
}

// Observe records the snapshot if a sample is due. Multiple ticks
// inside one interval collapse to a single point; a tick that jumps
// past several intervals still records just one.
func (r *Recorder) Observe(s door.State) {
	if s.Time < r.nextSample {
		return
	}
	r.points = append(r.points, DataPoint{
		Time:      s.Time,
		OmegaA:    s.DoorA.AngularVelocity,
		InertiaA:  s.DoorA.MomentOfInertia,
		MomentumA: s.DoorA.AngularMomentum,
		OmegaB:    s.DoorB.AngularVelocity,
		InertiaB:  s.DoorB.MomentOfInertia,
		MomentumB: s.DoorB.AngularMomentum,
	})
	if len(r.points) > r.maxPoints {
		r.points = r.points[1:]
	}
	for r.nextSample <= s.Time {
		r.nextSample += r.interval
	}
}

// Points returns the recorded window, oldest first. The returned slice
// is shared; callers must not write to it.
func (r *Recorder) Points() []DataPoint {
	return r.points
}

// Series extracts one field across the window for plotting.
func (r *Recorder) Series(field func(DataPoint) float64) []float64 {
	out := make([]float64, len(r.points))
	for i, pt := range r.points {
		out[i] = field(pt)
	}
	return out
}

// Reset drops all points and rewinds the sample clock.
func (r *Recorder) Reset() {
	r.points = r.points[:0]
	r.nextSample = 0
}

// Package metrics reduces door snapshots to per-run summary values.
package metrics

import (
	"math"

	"github.com/akl-leul/momentumsimu/internal/door"
	"github.com/akl-leul/momentumsimu/internal/sim"
)

// MomentumDrift tracks the worst relative deviation of door A's
// angular momentum from its value on the first observed snapshot.
// Conservation is enforced by construction, so anything above zero
// points at a state-machine regression.
type MomentumDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{}
}

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(s door.State) {
	l := s.DoorA.AngularMomentum
	if m.samples == 0 {
		m.initial = l
	}
	m.samples++

	if m.initial != 0 {
		drift := math.Abs(l-m.initial) / math.Abs(m.initial)
		m.maxDrift = math.Max(m.maxDrift, drift)
	}
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.samples = 0
}

// SettleTime reports the simulated time at which both doors first sit
// at the closing limit, or -1 if that never happened.
type SettleTime struct {
	settled float64
	found   bool
}

func NewSettleTime() *SettleTime {
	return &SettleTime{settled: -1}
}

func (m *SettleTime) Name() string { return "settle_time" }

func (m *SettleTime) Observe(s door.State) {
	if m.found {
		return
	}
	if s.DoorA.Angle >= door.MaxDoorAngle && s.DoorB.Angle >= door.MaxDoorAngle {
		m.settled = s.Time
		m.found = true
	}
}

func (m *SettleTime) Value() float64 {
	if !m.found {
		return -1
	}
	return m.settled
}

func (m *SettleTime) Reset() {
	m.settled = -1
	m.found = false
}

// ClosingLag reports how much longer the slowed door took to reach the
// limit than the rigid one. Door B always arrives first when the
// sliding mass moves outward.
type ClosingLag struct {
	closedA, closedB float64
	foundA, foundB   bool
}

func NewClosingLag() *ClosingLag {
	return &ClosingLag{}
}

func (m *ClosingLag) Name() string { return "closing_lag" }

func (m *ClosingLag) Observe(s door.State) {
	if !m.foundA && s.DoorA.Angle >= door.MaxDoorAngle {
		m.closedA = s.Time
		m.foundA = true
	}
	if !m.foundB && s.DoorB.Angle >= door.MaxDoorAngle {
		m.closedB = s.Time
		m.foundB = true
	}
}

func (m *ClosingLag) Value() float64 {
	if !m.foundA || !m.foundB {
		return -1
	}
	return m.closedA - m.closedB
}

func (m *ClosingLag) Reset() {
	m.closedA, m.closedB = 0, 0
	m.foundA, m.foundB = false, false
}

// Defaults returns the standard metric set for a run.
func Defaults() []sim.Metric {
	return []sim.Metric{
		NewMomentumDrift(),
		NewSettleTime(),
		NewClosingLag(),
	}
}

package sim

import (
	"github.com/akl-leul/momentumsimu/internal/door"
	"github.com/akl-leul/momentumsimu/internal/history"
)

// Metric observes snapshots during a run and reduces them to a single
// value reported in the result.
type Metric interface {
	Name() string
	Observe(s door.State)
	Value() float64
	Reset()
}

// Observer receives every snapshot a run produces.
type Observer interface {
	OnStep(s door.State)
}

// Config controls a batch run.
type Config struct {
	Dt       float64
	Duration float64
}

func DefaultConfig() Config {
	return Config{Dt: 0.016, Duration: 10.0}
}

// Result is the output of a batch run: every per-tick snapshot, the
// chart-cadence samples, and the reduced metrics.
type Result struct {
	States  []door.State
	Points  []history.DataPoint
	Metrics map[string]float64
}

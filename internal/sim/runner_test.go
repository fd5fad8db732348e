package sim

import (
	"context"
	"math"
	"testing"

	"github.com/akl-leul/momentumsimu/internal/door"
)

func TestRunnerRunToCompletion(t *testing.T) {
	r := NewRunner(door.DefaultParams())

	result, err := r.Run(context.Background(), Config{Dt: 0.1, Duration: 30.0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	final := result.States[len(result.States)-1]
	if final.Running {
		t.Error("expected run to finish with running=false")
	}
	if final.Phase != door.Phase2 {
		t.Errorf("expected phase2, got %s", final.Phase)
	}
	if final.DoorA.AngularVelocity != 0 || final.DoorB.AngularVelocity != 0 {
		t.Error("expected both velocities forced to zero at completion")
	}
	if math.Abs(final.DoorA.Angle-math.Pi/2) > 1e-9 {
		t.Errorf("door A should rest at pi/2, got %v", final.DoorA.Angle)
	}
}

func TestRunnerRunInvalidConfig(t *testing.T) {
	r := NewRunner(door.DefaultParams())

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero dt", Config{Dt: 0, Duration: 1.0}},
		{"negative dt", Config{Dt: -0.1, Duration: 1.0}},
		{"zero duration", Config{Dt: 0.1, Duration: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.Run(context.Background(), tt.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestRunnerRunCanceled(t *testing.T) {
	r := NewRunner(door.DefaultParams())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Run(ctx, DefaultConfig()); err == nil {
		t.Error("expected context error from canceled run")
	}
}

func TestRunnerPausePreservesState(t *testing.T) {
	r := NewRunner(door.DefaultParams())
	r.Start()
	for i := 0; i < 10; i++ {
		r.Step(0.016)
	}

	r.Pause()
	before := r.State()
	after := r.Step(0.016)

	if after != before {
		t.Error("stepping a paused runner must not change the snapshot")
	}
	if before.Time == 0 {
		t.Error("pause should preserve elapsed time, not reset it")
	}
}

func TestRunnerSetParamsResets(t *testing.T) {
	r := NewRunner(door.DefaultParams())
	r.Start()
	for i := 0; i < 50; i++ {
		r.Step(0.016)
	}

	p := door.DefaultParams()
	p.SlidingMass = 4.0
	r.SetParams(p)

	s := r.State()
	if s.Time != 0 || s.Running || s.Phase != door.PhaseIdle {
		t.Error("parameter change must perform a full reset")
	}
	if s.DoorA.AngularMomentum == door.Initialize(door.DefaultParams()).DoorA.AngularMomentum {
		t.Error("new params should re-derive angular momentum")
	}
	if len(r.Points()) != 0 {
		t.Error("reset should drop recorded history")
	}
}

func TestRunnerRecordsHistory(t *testing.T) {
	r := NewRunner(door.DefaultParams())

	result, err := r.Run(context.Background(), Config{Dt: 0.016, Duration: 2.0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Points) == 0 {
		t.Fatal("expected sampled data points")
	}
	for _, pt := range result.Points {
		if pt.MomentumA != result.States[0].DoorA.AngularMomentum {
			t.Fatalf("angular momentum drifted in recorded history: %v", pt.MomentumA)
		}
	}
}

type countingMetric struct{ n int }

func (c *countingMetric) Name() string         { return "count" }
func (c *countingMetric) Observe(s door.State) { c.n++ }
func (c *countingMetric) Value() float64       { return float64(c.n) }
func (c *countingMetric) Reset()               { c.n = 0 }

func TestRunnerMetrics(t *testing.T) {
	r := NewRunner(door.DefaultParams())
	m := &countingMetric{}
	r.AddMetric(m)

	result, err := r.Run(context.Background(), Config{Dt: 0.1, Duration: 5.0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if _, ok := result.Metrics["count"]; !ok {
		t.Error("metric missing from result")
	}
	if m.n == 0 {
		t.Error("metric never observed a snapshot")
	}
}

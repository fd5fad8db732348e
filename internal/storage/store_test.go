package storage

import (
	"context"
	"testing"

	"github.com/akl-leul/momentumsimu/internal/door"
	"github.com/akl-leul/momentumsimu/internal/metrics"
	"github.com/akl-leul/momentumsimu/internal/sim"
)

func runDefault(t *testing.T) (door.Params, sim.Config, *sim.Result) {
	t.Helper()

	p := door.DefaultParams()
	cfg := sim.Config{Dt: 0.1, Duration: 10.0}

	r := sim.NewRunner(p)
	for _, m := range metrics.Defaults() {
		r.AddMetric(m)
	}

	result, err := r.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return p, cfg, result
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	p, cfg, result := runDefault(t)

	runID, err := st.Save(p, cfg, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Params.SlidingMass != p.SlidingMass {
		t.Errorf("params did not round trip: %v", meta.Params)
	}
	if _, ok := meta.Metrics["settle_time"]; !ok {
		t.Error("metrics missing from metadata")
	}

	states, err := st.LoadStates(runID)
	if err != nil {
		t.Fatalf("load states failed: %v", err)
	}
	if len(states) != len(result.States) {
		t.Fatalf("expected %d states, got %d", len(result.States), len(states))
	}

	final := states[len(states)-1]
	if final.Phase != door.Phase2 {
		t.Errorf("expected final phase2, got %s", final.Phase)
	}
	if final.DoorA.AngularMomentum == 0 {
		t.Error("angular momentum lost in round trip")
	}
}

func TestListEmptyDir(t *testing.T) {
	st := New(t.TempDir() + "/never-created")

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	p, cfg, result := runDefault(t)
	if _, err := st.Save(p, cfg, result); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
}

func TestLoadMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("doors_0"); err == nil {
		t.Error("expected error for missing run")
	}
}

// Package sim hosts the door state machine: it owns the current
// snapshot, drives ticks, and exposes the start/pause/reset/parameter
// surface the core itself stays out of.
package sim

import (
	"context"
	"fmt"

	"github.com/akl-leul/momentumsimu/internal/door"
	"github.com/akl-leul/momentumsimu/internal/history"
)

// Runner drives door.Advance tick by tick. It is single-owner,
// cooperative state: one goroutine steps it, any number may read the
// snapshots it hands out.
type Runner struct {
	params    door.Params
	state     door.State
	recorder  *history.Recorder
	metrics   []Metric
	observers []Observer
}

func NewRunner(p door.Params) *Runner {
	return &Runner{
		params:   p,
		state:    door.Initialize(p),
		recorder: history.NewRecorder(),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// State returns the current snapshot. It is a value; callers can hold
// it across ticks without seeing later mutations.
func (r *Runner) State() door.State { return r.state }

func (r *Runner) Params() door.Params { return r.params }

// Points returns the recorded chart window.
func (r *Runner) Points() []history.DataPoint { return r.recorder.Points() }

func (r *Runner) Recorder() *history.Recorder { return r.recorder }

// Start begins (or resumes) the run.
func (r *Runner) Start() {
	r.state.Running = true
	r.state.Phase = door.Phase1
}

// Pause halts ticking without touching any other field.
func (r *Runner) Pause() {
	r.state.Running = false
}

// Reset rebuilds the initial state from the current params and drops
// recorded history and metrics.
func (r *Runner) Reset() {
	r.state = door.Initialize(r.params)
	r.recorder.Reset()
	for _, m := range r.metrics {
		m.Reset()
	}
}

// SetParams replaces the parameter set wholesale and resets. There is
// no partial re-derivation of an in-flight state.
func (r *Runner) SetParams(p door.Params) {
	r.params = p
	r.Reset()
}

// Step advances one tick and feeds the recorder, metrics, and
// observers with the new snapshot.
func (r *Runner) Step(dt float64) door.State {
	r.state = door.Advance(r.state, r.params, dt)
	r.recorder.Observe(r.state)
	for _, m := range r.metrics {
		m.Observe(r.state)
	}
	for _, o := range r.observers {
		o.OnStep(r.state)
	}
	return r.state
}

// Run executes a complete batch run: reset, start, fixed-dt ticks
// until the door state finalizes or the duration elapses. The context
// is checked every tick so a run can be abandoned mid-flight.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	r.Reset()
	r.Start()

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		States:  make([]door.State, 0, steps+1),
		Metrics: make(map[string]float64),
	}
	result.States = append(result.States, r.state)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		s := r.Step(cfg.Dt)
		result.States = append(result.States, s)

		if !s.Running {
			break
		}
	}

	result.Points = r.recorder.Points()
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}

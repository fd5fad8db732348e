// Package storage persists completed runs under a data directory, one
// subdirectory per run with JSON metadata and a CSV state trace.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/akl-leul/momentumsimu/internal/door"
	"github.com/akl-leul/momentumsimu/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Params    door.Params        `json:"params"`
	Metrics   map[string]float64 `json:"metrics"`
}

var csvHeader = []string{
	"time", "phase",
	"angle_a", "omega_a", "inertia_a", "momentum_a", "mass_radius",
	"angle_b", "omega_b", "inertia_b", "momentum_b",
}

func (s *Store) Save(params door.Params, cfg sim.Config, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("doors_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Dt:        cfg.Dt,
		Duration:  cfg.Duration,
		Params:    params,
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}

	for _, st := range result.States {
		row := []string{
			ftoa(st.Time),
			string(st.Phase),
			ftoa(st.DoorA.Angle), ftoa(st.DoorA.AngularVelocity),
			ftoa(st.DoorA.MomentOfInertia), ftoa(st.DoorA.AngularMomentum),
			ftoa(st.DoorA.MassRadius),
			ftoa(st.DoorB.Angle), ftoa(st.DoorB.AngularVelocity),
			ftoa(st.DoorB.MomentOfInertia), ftoa(st.DoorB.AngularMomentum),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadStates reads back the CSV trace as full snapshots.
func (s *Store) LoadStates(runID string) ([]door.State, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "states.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []door.State{}, nil
	}

	states := make([]door.State, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != len(csvHeader) {
			continue
		}

		vals := make([]float64, len(rec))
		ok := true
		for i, field := range rec {
			if i == 1 {
				continue // phase column
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}

		states = append(states, door.State{
			Time:  vals[0],
			Phase: door.Phase(rec[1]),
			DoorA: door.DoorA{
				Angle:           vals[2],
				AngularVelocity: vals[3],
				MomentOfInertia: vals[4],
				AngularMomentum: vals[5],
				MassRadius:      vals[6],
			},
			DoorB: door.DoorB{
				Angle:           vals[7],
				AngularVelocity: vals[8],
				MomentOfInertia: vals[9],
				AngularMomentum: vals[10],
			},
		})
	}

	return states, nil
}

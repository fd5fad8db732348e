// Package store exports completed runs as self-contained JSON
// documents for downstream plotting tools.
package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/akl-leul/momentumsimu/internal/door"
	"github.com/akl-leul/momentumsimu/internal/history"
	"github.com/akl-leul/momentumsimu/internal/sim"
)

type ExportData struct {
	ID      string              `json:"id"`
	Dt      float64             `json:"dt"`
	Params  door.Params         `json:"params"`
	Steps   int                 `json:"steps"`
	States  []door.State        `json:"states"`
	Points  []history.DataPoint `json:"points"`
	Metrics map[string]float64  `json:"metrics"`
}

func ExportJSON(path, id string, params door.Params, dt float64, result *sim.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return exportJSON(file, id, params, dt, result)
}

func ExportJSONStdout(id string, params door.Params, dt float64, result *sim.Result) error {
	return exportJSON(os.Stdout, id, params, dt, result)
}

func exportJSON(w io.Writer, id string, params door.Params, dt float64, result *sim.Result) error {
	data := ExportData{
		ID:      id,
		Dt:      dt,
		Params:  params,
		Steps:   len(result.States),
		States:  result.States,
		Points:  result.Points,
		Metrics: result.Metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// Package results defines the structured, versioned output format for
// simulation runs: a self-describing JSON document with run metadata,
// the scenario that produced it, downsampled time series, and the derived
// treatment metrics.
package results

import (
	"time"

	"github.com/bioproc/go-asm1/reactor"
	"github.com/bioproc/go-asm1/simulation"
	"github.com/bioproc/go-asm1/solver"
)

const SchemaVersion = "1.0.0"

// Document contains complete simulation output.
type Document struct {
	Version    string     `json:"version"`
	Metadata   Metadata   `json:"metadata"`
	Scenario   Scenario   `json:"scenario"`
	Data       Data       `json:"results"`
	Assessment Assessment `json:"assessment"`
}

// Metadata contains run execution information.
type Metadata struct {
	RunID       string        `json:"runId"`
	Timestamp   time.Time     `json:"timestamp"`
	Solver      solver.Method `json:"solver"`
	Status      string        `json:"status"` // success, failed
	Message     string        `json:"message,omitempty"`
	ComputeTime float64       `json:"computeTime"` // seconds
	TotalSteps  int           `json:"totalSteps"`
}

// Scenario records the inputs that produced the run.
type Scenario struct {
	Reactor  reactor.Config     `json:"reactor"`
	Config   simulation.Config  `json:"config"`
	Influent map[string]float64 `json:"influent"`
}

// Data contains the trajectory in downsampled columnar form.
type Data struct {
	Points     int                  `json:"points"`
	FinalTime  float64              `json:"finalTime"`
	FinalState map[string]float64   `json:"finalState"`
	Time       []float64            `json:"time"`
	Variables  map[string][]float64 `json:"variables"`
	Oxygen     []float64            `json:"oxygenUptake"`
}

// Assessment carries the derived treatment metrics.
type Assessment struct {
	Effluent    simulation.EffluentQuality  `json:"effluent"`
	Oxygen      simulation.OxygenDemand     `json:"oxygenDemand"`
	Sludge      simulation.SludgeProduction `json:"sludgeProduction"`
	SteadyState simulation.SteadyStateInfo  `json:"steadyState"`
	Performance simulation.Performance      `json:"performance"`
}

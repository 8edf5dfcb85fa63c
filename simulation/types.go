// Package simulation wires the ASM1 kinetics, the CSTR mass balance, and
// the ODE solver into complete reactor runs, then derives the engineering
// quantities a designer actually reads: effluent quality, oxygen demand,
// sludge production, steady-state status, and removal performance.
package simulation

import (
	"github.com/bioproc/go-asm1/asm"
	"github.com/bioproc/go-asm1/reactor"
	"github.com/bioproc/go-asm1/solver"
)

// Config holds the caller-facing simulation parameters. Times are in days.
type Config struct {
	StartTime      float64       `json:"startTime" yaml:"startTime"`
	EndTime        float64       `json:"endTime" yaml:"endTime"`
	TimeStep       float64       `json:"timeStep" yaml:"timeStep"`
	OutputInterval float64       `json:"outputInterval" yaml:"outputInterval"`
	Solver         solver.Method `json:"solver" yaml:"solver"`
	Tolerance      float64       `json:"tolerance,omitempty" yaml:"tolerance,omitempty"`

	InitialState asm.StateVariables `json:"initialState" yaml:"initialState"`

	// Optional parameter overrides, merged onto the ASM1 defaults before
	// temperature correction. Nil fields keep the default.
	Kinetics *asm.KineticOverrides        `json:"kinetics,omitempty" yaml:"kinetics,omitempty"`
	Stoich   *asm.StoichiometricOverrides `json:"stoichiometry,omitempty" yaml:"stoichiometry,omitempty"`
	Thetas   *asm.ThetaOverrides          `json:"thetas,omitempty" yaml:"thetas,omitempty"`
}

// OxygenUptake is the volumetric oxygen uptake rate split by organism
// group, g O2/(m3·d).
type OxygenUptake struct {
	Heterotrophic float64 `json:"heterotrophic"`
	Autotrophic   float64 `json:"autotrophic"`
	Total         float64 `json:"total"`
}

// NitrogenBalance splits the nitrogen inventory at a time point into
// oxidized (nitrate/nitrite) and reduced (ammonia plus organic) pools.
type NitrogenBalance struct {
	Oxidized float64 `json:"oxidized"`
	Reduced  float64 `json:"reduced"`
	Total    float64 `json:"total"`
}

// TimePoint is one retained sample of the simulation.
type TimePoint struct {
	Time         float64            `json:"time"`
	State        asm.StateVariables `json:"state"`
	ProcessRates []asm.ProcessRate  `json:"processRates"`
	OxygenUptake OxygenUptake       `json:"oxygenUptake"`
	Nitrogen     NitrogenBalance    `json:"nitrogen"`
}

// EffluentQuality holds the settled-effluent concentrations in g/m3.
type EffluentQuality struct {
	COD  float64 `json:"cod"`
	BOD5 float64 `json:"bod5"`
	TSS  float64 `json:"tss"`
	NH4  float64 `json:"nh4"`
	NO3  float64 `json:"no3"`
	TN   float64 `json:"tn"`
}

// OxygenDemand is the plant-wide oxygen requirement in kg O2/d.
type OxygenDemand struct {
	Heterotrophic float64 `json:"heterotrophic"`
	Autotrophic   float64 `json:"autotrophic"`
	Total         float64 `json:"total"`
}

// SludgeProduction summarizes solids wastage at the final state.
type SludgeProduction struct {
	TotalVSS    float64 `json:"totalVSS"`    // kg VSS/d
	WastageFlow float64 `json:"wastageFlow"` // m3/d
	MLVSS       float64 `json:"mlvss"`       // g VSS/m3 in the reactor
}

// SteadyStateInfo reports convergence of the trailing time series.
type SteadyStateInfo struct {
	Reached   bool    `json:"reached"`
	Time      float64 `json:"time,omitempty"`
	Window    int     `json:"window"`
	Tolerance float64 `json:"tolerance"`
}

// Performance holds removal percentages relative to the influent.
type Performance struct {
	BODRemoval float64 `json:"bodRemoval"`
	CODRemoval float64 `json:"codRemoval"`
	TSSRemoval float64 `json:"tssRemoval"`
	NH4Removal float64 `json:"nh4Removal"`
	TNRemoval  float64 `json:"tnRemoval"`
}

// Diagnostics captures how the numerical run went.
type Diagnostics struct {
	Solver      solver.Method `json:"solver"`
	TotalSteps  int           `json:"totalSteps"`
	ComputeTime float64       `json:"computeTime"` // seconds
	Success     bool          `json:"success"`
	Message     string        `json:"message,omitempty"`
}

// Result is the aggregate outcome of one simulation run. It owns deep
// copies of everything it contains; the engine retains no references to
// caller-supplied inputs.
type Result struct {
	Config      Config             `json:"config"`
	Reactor     reactor.Config     `json:"reactor"`
	Influent    asm.StateVariables `json:"influent"`
	TimeSeries  []TimePoint        `json:"timeSeries"`
	FinalState  asm.StateVariables `json:"finalState"`
	Effluent    EffluentQuality    `json:"effluent"`
	Oxygen      OxygenDemand       `json:"oxygenDemand"`
	Sludge      SludgeProduction   `json:"sludgeProduction"`
	SteadyState SteadyStateInfo    `json:"steadyState"`
	Performance Performance        `json:"performance"`
	Diagnostics Diagnostics        `json:"diagnostics"`
}

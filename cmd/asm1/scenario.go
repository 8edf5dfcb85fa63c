package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bioproc/go-asm1/asm"
	"github.com/bioproc/go-asm1/reactor"
	"github.com/bioproc/go-asm1/simulation"
	"github.com/bioproc/go-asm1/solver"
)

// Scenario is the YAML input format binding influent, reactor, and
// simulation settings into one file.
type Scenario struct {
	Name     string            `yaml:"name"`
	Influent InfluentSpec      `yaml:"influent"`
	Reactor  reactor.Config    `yaml:"reactor"`
	Config   simulation.Config `yaml:"simulation"`
}

// InfluentSpec accepts either conventional measurements to be
// fractionated, or an explicit 13-component state.
type InfluentSpec struct {
	COD        float64            `yaml:"cod"`
	TKN        float64            `yaml:"tkn"`
	NH4        float64            `yaml:"nh4"`
	Alkalinity float64            `yaml:"alkalinity"`
	Fractions  *reactor.Fractions `yaml:"fractions,omitempty"`

	// State overrides the conventional measurements when present.
	State *asm.StateVariables `yaml:"state,omitempty"`
}

// LoadScenario reads and resolves a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) validate() error {
	if sc.Reactor.TotalHRT <= 0 {
		return fmt.Errorf("scenario: reactor totalHRT must be positive")
	}
	if sc.Reactor.TotalVolume <= 0 {
		return fmt.Errorf("scenario: reactor totalVolume must be positive")
	}
	if sc.Config.Solver == "" {
		sc.Config.Solver = solver.RK4
	}
	if sc.Config.TimeStep == 0 {
		sc.Config.TimeStep = 0.01
	}
	if sc.Influent.State == nil && sc.Influent.COD <= 0 {
		return fmt.Errorf("scenario: influent needs either a state block or COD measurements")
	}
	return nil
}

// InfluentState resolves the influent spec into a state vector.
func (sc *Scenario) InfluentState() asm.StateVariables {
	if sc.Influent.State != nil {
		return *sc.Influent.State
	}
	fractions := reactor.DefaultFractions()
	if sc.Influent.Fractions != nil {
		fractions = *sc.Influent.Fractions
	}
	return reactor.Fractionate(sc.Influent.COD, sc.Influent.TKN,
		sc.Influent.NH4, sc.Influent.Alkalinity, fractions)
}

package simulation

import (
	"fmt"
	"time"

	"github.com/bioproc/go-asm1/asm"
	"github.com/bioproc/go-asm1/reactor"
	"github.com/bioproc/go-asm1/solver"
)

// Run executes a dynamic simulation of a single fully mixed reactor.
//
// Parameter overrides are merged onto the ASM1 defaults and temperature-
// corrected once with the reactor temperature. The CSTR derivative is
// bound to the influent, the hydraulic retention time, and the oxygen
// setpoint of the first aerobic zone, then integrated with the configured
// method. Post-processing converts the trajectory into time points and
// the derived engineering metrics.
//
// A solver failure (step ceiling) does not return an error: the result
// carries Diagnostics.Success=false and the partial trajectory, so the
// caller can inspect, adjust, and re-run.
func Run(cfg Config, rc reactor.Config, influent asm.StateVariables) (*Result, error) {
	if cfg.EndTime <= cfg.StartTime {
		return nil, fmt.Errorf("end time %g must be after start time %g", cfg.EndTime, cfg.StartTime)
	}
	if cfg.TimeStep <= 0 {
		return nil, fmt.Errorf("time step must be positive, got %g", cfg.TimeStep)
	}
	if rc.TotalHRT <= 0 {
		return nil, fmt.Errorf("reactor HRT must be positive, got %g", rc.TotalHRT)
	}

	kin := asm.CorrectForTemperature(
		asm.MergeKinetics(cfg.Kinetics),
		asm.MergeThetas(cfg.Thetas),
		rc.Temperature,
	)
	stoich := asm.MergeStoichiometry(cfg.Stoich)
	targetDO := rc.TargetDO()

	cstr := reactor.CSTR{
		Influent: influent,
		HRT:      rc.TotalHRT,
		Kinetics: kin,
		Stoich:   stoich,
		TargetDO: targetDO,
	}

	integ, err := solver.New(cfg.Solver, solver.Options{Tolerance: cfg.Tolerance})
	if err != nil {
		return nil, err
	}

	started := time.Now()
	sol := integ.Solve(cstr.Derivative, cfg.InitialState.ToArray(),
		cfg.StartTime, cfg.EndTime, cfg.TimeStep, cfg.OutputInterval)
	elapsed := time.Since(started).Seconds()

	series := make([]TimePoint, 0, len(sol.T))
	for i, t := range sol.T {
		state := asm.StateFromArray(sol.Y[i])
		if targetDO > 0 {
			state.SO = targetDO
		}
		rates := asm.ProcessRates(state, kin)
		series = append(series, TimePoint{
			Time:         t,
			State:        state,
			ProcessRates: rates,
			OxygenUptake: oxygenUptake(rates, stoich),
			Nitrogen:     nitrogenBalance(state),
		})
	}

	final := series[len(series)-1]
	inQuality := influentQuality(influent)
	outQuality := effluentQuality(final.State)

	return &Result{
		Config:      cfg,
		Reactor:     rc,
		Influent:    influent,
		TimeSeries:  series,
		FinalState:  final.State,
		Effluent:    outQuality,
		Oxygen:      oxygenDemand(final.OxygenUptake, rc.TotalVolume),
		Sludge:      sludgeProduction(final.State, rc),
		SteadyState: detectSteadyState(series),
		Performance: performance(inQuality, outQuality),
		Diagnostics: Diagnostics{
			Solver:      cfg.Solver,
			TotalSteps:  sol.TotalSteps,
			ComputeTime: elapsed,
			Success:     sol.Success,
			Message:     sol.Message,
		},
	}, nil
}

// Biomass seed used by the quick steady-state start vector, g COD/m3.
const (
	seedXBH = 100.0
	seedXBA = 20.0
)

// SteadyStateEstimate carries the outcome of QuickSteadyState.
type SteadyStateEstimate struct {
	State      asm.StateVariables
	Converged  bool
	Iterations int
	MaxChange  float64
}

// QuickSteadyState produces an approximate steady state by fixed-step
// forward relaxation of the CSTR mass balance, starting from the influent
// with the oxygen setpoint applied and a seeded biomass population.
//
// It is a cheap screening tool: a 0.1 d explicit step, at most maxIters
// iterations (default 1000), convergence when the largest relative change
// drops below 1e-6. Its accuracy is not interchangeable with Run.
func QuickSteadyState(cfg Config, rc reactor.Config, influent asm.StateVariables, maxIters int) SteadyStateEstimate {
	kin := asm.CorrectForTemperature(
		asm.MergeKinetics(cfg.Kinetics),
		asm.MergeThetas(cfg.Thetas),
		rc.Temperature,
	)
	targetDO := rc.TargetDO()

	cstr := reactor.CSTR{
		Influent: influent,
		HRT:      rc.TotalHRT,
		Kinetics: kin,
		Stoich:   asm.MergeStoichiometry(cfg.Stoich),
		TargetDO: targetDO,
	}

	start := influent
	start.SO = targetDO
	start.XBH = seedXBH
	start.XBA = seedXBA

	res := solver.Relax(cstr.Derivative, start.ToArray(), 0.1, maxIters, 1e-6)
	state := asm.StateFromArray(res.Y)
	if targetDO > 0 {
		state.SO = targetDO
	}
	return SteadyStateEstimate{
		State:      state,
		Converged:  res.Converged,
		Iterations: res.Iterations,
		MaxChange:  res.MaxChange,
	}
}

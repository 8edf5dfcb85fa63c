// Package solver implements explicit Runge-Kutta integration for systems
// of ordinary differential equations. Four methods are available: Euler,
// Heun (RK2), classical RK4, and the adaptive Runge-Kutta-Fehlberg 4(5)
// pair. The method is selected once at construction and fixed for the
// lifetime of the integrator.
package solver

import (
	"fmt"
	"math"
)

// Func computes the derivative dy/dt given time t and state y.
// Implementations must not retain or mutate y.
type Func func(t float64, y []float64) []float64

// Method selects the integration scheme.
type Method string

const (
	Euler Method = "euler"
	RK2   Method = "rk2"
	RK4   Method = "rk4"
	RKF45 Method = "rkf45"
)

// timeEps is the tolerance used for all time comparisons: reaching the end
// of the horizon, output sampling, and duplicate-sample suppression.
const timeEps = 1e-10

// maxTotalSteps is the hard ceiling on integration steps per Solve call.
// Exceeding it indicates a runaway or pathologically stiff problem; the
// solver returns a failure result rather than spinning forever.
const maxTotalSteps = 10_000_000

// Options configures an Integrator.
type Options struct {
	// Tolerance is the relative error tolerance for the adaptive RKF45
	// method. Ignored by the fixed-step methods. Default 1e-6.
	Tolerance float64
	// MaxIterations bounds the accept/reject retries within a single
	// adaptive step. Default 1000. On exhaustion the best available
	// estimate is accepted rather than failing the run.
	MaxIterations int
}

// DefaultOptions returns the solver defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:     1e-6,
		MaxIterations: 1000,
	}
}

// stepper advances the state by at most dtMax and reports the step
// actually taken. Fixed-step methods always take dtMax; the adaptive
// method may take less and carries its step size across calls.
type stepper interface {
	step(f Func, t float64, y []float64, dtMax float64) (ynext []float64, dtUsed float64)
}

// Integrator integrates a derivative function with the method chosen at
// construction. The method never changes mid-integration.
type Integrator struct {
	method Method
	st     stepper
}

// New constructs an Integrator for the given method. Unknown method tags
// return an error.
func New(method Method, opts Options) (*Integrator, error) {
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultOptions().Tolerance
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultOptions().MaxIterations
	}
	var st stepper
	switch method {
	case Euler:
		st = eulerTableau()
	case RK2:
		st = heunTableau()
	case RK4:
		st = rk4Tableau()
	case RKF45:
		st = newRKF45(opts.Tolerance, opts.MaxIterations)
	default:
		return nil, fmt.Errorf("unknown solver method %q", method)
	}
	return &Integrator{method: method, st: st}, nil
}

// Method returns the method tag the integrator was constructed with.
func (in *Integrator) Method() Method { return in.method }

// Result is the outcome of a Solve call.
type Result struct {
	T          []float64   // sample times
	Y          [][]float64 // state at each sample time
	TotalSteps int         // accepted integration steps
	Success    bool
	Message    string // diagnostic, set when Success is false
}

// FinalState returns the last stored state, or nil for an empty result.
func (r *Result) FinalState() []float64 {
	if len(r.Y) == 0 {
		return nil
	}
	return r.Y[len(r.Y)-1]
}

// Solve integrates y' = f(t, y) from t0 to tEnd. dt is the fixed step for
// the non-adaptive methods and the initial step for RKF45, whose step size
// then evolves under error control, bounded only by the remaining horizon.
// outputInterval > 0 thins the stored samples
// to that spacing; outputInterval <= 0 stores every step. The initial
// state is cloned and never mutated.
//
// The final time is never overstepped, and the state at tEnd is always
// the last stored sample. If the hard step ceiling is exceeded the result
// carries Success=false and the trajectory up to the abort point.
func (in *Integrator) Solve(f Func, y0 []float64, t0, tEnd, dt, outputInterval float64) *Result {
	y := append([]float64(nil), y0...)
	t := t0

	adaptive, isAdaptive := in.st.(*rkf45)
	if isAdaptive {
		adaptive.h = dt
	}

	res := &Result{
		T:       []float64{t0},
		Y:       [][]float64{append([]float64(nil), y0...)},
		Success: true,
	}

	nextOutput := t0 + outputInterval

	for t < tEnd-timeEps {
		if res.TotalSteps >= maxTotalSteps {
			res.Success = false
			res.Message = fmt.Sprintf(
				"step ceiling of %d exceeded at t=%g; reduce the horizon or relax the tolerance",
				maxTotalSteps, t)
			return res
		}

		dtMax := dt
		if isAdaptive {
			dtMax = tEnd - t
		} else if t+dtMax > tEnd {
			dtMax = tEnd - t
		}

		ynext, used := in.st.step(f, t, y, dtMax)
		t += used
		y = ynext
		res.TotalSteps++

		if outputInterval > 0 {
			if t >= nextOutput-timeEps {
				res.T = append(res.T, t)
				res.Y = append(res.Y, append([]float64(nil), y...))
				for nextOutput <= t+timeEps {
					nextOutput += outputInterval
				}
			}
		} else {
			res.T = append(res.T, t)
			res.Y = append(res.Y, append([]float64(nil), y...))
		}
	}

	// Make sure the endpoint itself is in the output.
	if last := res.T[len(res.T)-1]; math.Abs(last-tEnd) > timeEps {
		res.T = append(res.T, t)
		res.Y = append(res.Y, append([]float64(nil), y...))
	}

	return res
}

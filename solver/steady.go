package solver

import "math"

// RelaxResult reports the outcome of a fixed-step relaxation.
type RelaxResult struct {
	Y          []float64 // state at termination
	Converged  bool
	Iterations int
	MaxChange  float64 // last max relative change per component
}

// Relax drives y' = f(t, y) toward a stationary point by explicit forward
// steps of fixed size dt, stopping when the largest relative change across
// all components in one step drops below tol, or after maxIters steps.
//
// Convergence within maxIters is not guaranteed for arbitrary parameter
// sets; the caller must check Converged.
func Relax(f Func, y0 []float64, dt float64, maxIters int, tol float64) RelaxResult {
	if maxIters <= 0 {
		maxIters = 1000
	}
	y := append([]float64(nil), y0...)
	n := len(y)

	res := RelaxResult{MaxChange: math.Inf(1)}
	for iter := 0; iter < maxIters; iter++ {
		du := f(float64(iter)*dt, y)

		maxChange := 0.0
		for i := 0; i < n; i++ {
			next := y[i] + dt*du[i]
			denom := math.Abs(y[i])
			if denom < errFloor {
				denom = errFloor
			}
			if rel := math.Abs(next-y[i]) / denom; rel > maxChange {
				maxChange = rel
			}
			y[i] = next
		}

		res.Iterations = iter + 1
		res.MaxChange = maxChange
		if maxChange < tol {
			res.Converged = true
			break
		}
	}
	res.Y = y
	return res
}

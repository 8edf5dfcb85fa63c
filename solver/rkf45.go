package solver

import "math"

// Runge-Kutta-Fehlberg 4(5) tableau. The six stages yield an embedded
// pair: fourth-order weights b4 for the accepted comparison solution and
// fifth-order weights b5 for the propagated one.
//
// Reference: E. Fehlberg, "Low-order classical Runge-Kutta formulas with
// stepsize control", NASA Technical Report R-315 (1969).
var (
	rkfC = []float64{0, 1.0 / 4.0, 3.0 / 8.0, 12.0 / 13.0, 1, 1.0 / 2.0}

	rkfA = [][]float64{
		{},
		{1.0 / 4.0},
		{3.0 / 32.0, 9.0 / 32.0},
		{1932.0 / 2197.0, -7200.0 / 2197.0, 7296.0 / 2197.0},
		{439.0 / 216.0, -8, 3680.0 / 513.0, -845.0 / 4104.0},
		{-8.0 / 27.0, 2, -3544.0 / 2565.0, 1859.0 / 4104.0, -11.0 / 40.0},
	}

	rkfB4 = []float64{25.0 / 216.0, 0, 1408.0 / 2565.0, 2197.0 / 4104.0, -1.0 / 5.0, 0}
	rkfB5 = []float64{16.0 / 135.0, 0, 6656.0 / 12825.0, 28561.0 / 56430.0, -9.0 / 50.0, 2.0 / 55.0}
)

// errFloor keeps the relative-error denominator away from zero for
// components near the origin.
const errFloor = 1e-10

// rkf45 is the adaptive stepper. Its step size h survives across step
// calls, so an integration resumes where step control last settled.
type rkf45 struct {
	tol     float64
	maxIter int
	h       float64 // current step size; 0 until the first step
}

func newRKF45(tol float64, maxIter int) *rkf45 {
	return &rkf45{tol: tol, maxIter: maxIter}
}

// step advances by at most dtMax, shrinking on error-test failures and
// retrying up to maxIter times. When the retry budget is exhausted the
// best available estimate is returned instead of failing: the caller gets
// a degraded step, not a dead run. The grown step for the next call is
// capped at 5x per acceptance.
func (rk *rkf45) step(f Func, t float64, y []float64, dtMax float64) ([]float64, float64) {
	n := len(y)
	if rk.h <= 0 {
		rk.h = dtMax
	}
	h := rk.h
	if h > dtMax {
		h = dtMax
	}

	var y5 []float64
	for iter := 0; iter < rk.maxIter; iter++ {
		k := make([][]float64, 6)
		k[0] = f(t, y)
		for s := 1; s < 6; s++ {
			ys := append([]float64(nil), y...)
			for j := 0; j < s; j++ {
				if rkfA[s][j] != 0 {
					scale := h * rkfA[s][j]
					for i := 0; i < n; i++ {
						ys[i] += scale * k[j][i]
					}
				}
			}
			k[s] = f(t+rkfC[s]*h, ys)
		}

		y4 := append([]float64(nil), y...)
		y5 = append([]float64(nil), y...)
		for j := 0; j < 6; j++ {
			if rkfB4[j] != 0 {
				scale := h * rkfB4[j]
				for i := 0; i < n; i++ {
					y4[i] += scale * k[j][i]
				}
			}
			if rkfB5[j] != 0 {
				scale := h * rkfB5[j]
				for i := 0; i < n; i++ {
					y5[i] += scale * k[j][i]
				}
			}
		}

		// Relative error of the embedded pair, worst component.
		errEst := 0.0
		for i := 0; i < n; i++ {
			denom := math.Max(math.Abs(y[i]), math.Max(math.Abs(y4[i]), errFloor))
			if e := math.Abs(y5[i]-y4[i]) / denom; e > errEst {
				errEst = e
			}
		}

		if errEst <= rk.tol {
			// Accept the fifth-order solution and grow the step.
			grow := 5.0
			if errEst > 0 {
				grow = math.Min(5.0, 0.9*math.Pow(rk.tol/errEst, 0.2))
			}
			rk.h = h * grow
			return y5, h
		}

		// Reject: shrink and retry.
		shrink := math.Max(0.1, 0.9*math.Pow(rk.tol/errEst, 0.25))
		h *= shrink
	}

	// Retry budget exhausted; accept the last estimate at the last h.
	rk.h = h
	return y5, h
}

package simulation

import "math"

// Steady-state detection parameters used by Run: the trailing span of
// retained samples examined, the window that must converge, and the
// relative-change tolerance.
const (
	steadySpan      = 30
	steadyWindow    = 10
	steadyTolerance = 1e-4
)

// relFloor keeps relative changes finite for components at zero.
const relFloor = 1e-10

// IsSteadyState reports whether the last window samples of the history
// have converged: every consecutive pair differs by less than tol in
// relative terms, component-wise. A constant history of at least window
// samples is steady at any positive tolerance. Histories shorter than
// window are never steady.
func IsSteadyState(history [][]float64, window int, tol float64) bool {
	if window < 2 || len(history) < window {
		return false
	}
	start := len(history) - window
	for i := start; i < len(history)-1; i++ {
		if maxRelChange(history[i], history[i+1]) >= tol {
			return false
		}
	}
	return true
}

// maxRelChange returns the largest component-wise relative change between
// two state vectors.
func maxRelChange(a, b []float64) float64 {
	maxRel := 0.0
	for i := range a {
		denom := math.Abs(a[i])
		if denom < relFloor {
			denom = relFloor
		}
		if rel := math.Abs(b[i]-a[i]) / denom; rel > maxRel {
			maxRel = rel
		}
	}
	return maxRel
}

// detectSteadyState slides the convergence window over the trailing span
// of the time series and reports the earliest time a window converged.
func detectSteadyState(series []TimePoint) SteadyStateInfo {
	info := SteadyStateInfo{
		Window:    steadyWindow,
		Tolerance: steadyTolerance,
	}

	n := len(series)
	if n < steadyWindow {
		return info
	}
	first := n - steadySpan
	if first < 0 {
		first = 0
	}

	history := make([][]float64, 0, n-first)
	for _, tp := range series[first:] {
		history = append(history, tp.State.ToArray())
	}

	for end := steadyWindow; end <= len(history); end++ {
		if IsSteadyState(history[:end], steadyWindow, steadyTolerance) {
			info.Reached = true
			info.Time = series[first+end-1].Time
			return info
		}
	}
	return info
}

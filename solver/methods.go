package solver

// This file contains the fixed-step Runge-Kutta methods. The adaptive
// RKF45 pair is in rkf45.go.

// tableau is an explicit Runge-Kutta Butcher tableau. Fixed-step methods
// are fully described by their nodes c, coupling matrix a, and solution
// weights b; the shared step routine below evaluates any of them.
type tableau struct {
	name string
	c    []float64
	a    [][]float64
	b    []float64
}

// step advances one fixed step of size dtMax.
func (tb tableau) step(f Func, t float64, y []float64, dtMax float64) ([]float64, float64) {
	n := len(y)
	stages := len(tb.c)
	k := make([][]float64, stages)
	k[0] = f(t, y)

	for s := 1; s < stages; s++ {
		ys := append([]float64(nil), y...)
		for j := 0; j < s; j++ {
			aj := 0.0
			if len(tb.a) > s && len(tb.a[s]) > j {
				aj = tb.a[s][j]
			}
			if aj != 0 {
				scale := dtMax * aj
				for i := 0; i < n; i++ {
					ys[i] += scale * k[j][i]
				}
			}
		}
		k[s] = f(t+tb.c[s]*dtMax, ys)
	}

	ynext := append([]float64(nil), y...)
	for j := 0; j < stages; j++ {
		if tb.b[j] != 0 {
			scale := dtMax * tb.b[j]
			for i := 0; i < n; i++ {
				ynext[i] += scale * k[j][i]
			}
		}
	}
	return ynext, dtMax
}

// eulerTableau returns the forward Euler method. First order; the
// simplest possible scheme, useful as an accuracy baseline and for
// debugging the higher-order methods.
func eulerTableau() tableau {
	return tableau{
		name: "Euler",
		c:    []float64{0},
		a:    [][]float64{{}},
		b:    []float64{1},
	}
}

// heunTableau returns Heun's method (improved Euler). Second order,
// predictor-corrector form: a full Euler step followed by trapezoidal
// averaging of the endpoint slopes.
func heunTableau() tableau {
	return tableau{
		name: "Heun",
		c:    []float64{0, 1},
		a: [][]float64{
			{},
			{1},
		},
		b: []float64{0.5, 0.5},
	}
}

// rk4Tableau returns the classical fourth-order Runge-Kutta method.
func rk4Tableau() tableau {
	return tableau{
		name: "RK4",
		c:    []float64{0, 0.5, 0.5, 1},
		a: [][]float64{
			{},
			{0.5},
			{0, 0.5},
			{0, 0, 1},
		},
		b: []float64{
			1.0 / 6.0,
			1.0 / 3.0,
			1.0 / 3.0,
			1.0 / 6.0,
		},
	}
}

package reactor

import "github.com/bioproc/go-asm1/asm"

// CSTR is the mass balance of a fully mixed continuous-flow reactor:
//
//	dC_i/dt = (Cin_i - C_i)/HRT + reaction_i
//
// It bundles the influent, hydraulics, corrected kinetics, stoichiometry,
// and oxygen setpoint into one value implementing solver.Func.
type CSTR struct {
	Influent asm.StateVariables
	HRT      float64 // hydraulic retention time, d
	Kinetics asm.KineticParameters
	Stoich   asm.StoichiometricParameters

	// TargetDO > 0 clamps dissolved oxygen: the SO derivative is forced to
	// zero on every evaluation and SO is treated as a boundary condition
	// held at the setpoint. There is no gas-transfer (KLa) term.
	TargetDO float64
}

// Derivative evaluates the CSTR mass balance at the given state vector.
// It satisfies the solver.Func contract. The time argument is unused; the
// mass balance is autonomous.
func (r CSTR) Derivative(_ float64, y []float64) []float64 {
	state := asm.StateFromArray(y)
	if r.TargetDO > 0 {
		state.SO = r.TargetDO
	}

	du := asm.BatchDerivative(state, r.Kinetics, r.Stoich)
	in := r.Influent.ToArray()
	cur := state.ToArray()
	for i := 0; i < asm.NumComponents; i++ {
		du[i] += (in[i] - cur[i]) / r.HRT
	}

	if r.TargetDO > 0 {
		du[asm.IdxSO] = 0
	}
	return du
}

package asm

// BatchDerivative computes the batch-reactor derivative vector
//
//	dC_i/dt = sum_j nu[j][i] * rho_j
//
// the contraction of the Petersen matrix with the process-rate vector.
// It captures the kinetics of a closed vessel; hydraulic terms are added
// by the reactor package.
func BatchDerivative(s StateVariables, k KineticParameters, p StoichiometricParameters) []float64 {
	rho := RateVector(s, k)
	du := make([]float64, NumComponents)
	for j := 0; j < NumProcesses; j++ {
		if rho[j] == 0 {
			continue
		}
		for i := 0; i < NumComponents; i++ {
			if nu := Coefficient(j, i, p); nu != 0 {
				du[i] += nu * rho[j]
			}
		}
	}
	return du
}

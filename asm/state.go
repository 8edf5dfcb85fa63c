// Package asm implements the Activated Sludge Model No. 1 (ASM1) kinetic
// and stoichiometric core: the 13-component state vector, the eight
// biological process rates, and the Petersen matrix that couples them.
//
// Reference: M. Henze, C.P.L. Grady, W. Gujer, G.v.R. Marais, T. Matsuo,
// "Activated Sludge Model No. 1", IAWPRC Scientific and Technical Report
// No. 1, London (1987).
package asm

// NumComponents is the number of ASM1 state variables.
const NumComponents = 13

// Component indices into the state vector. The order is the conventional
// ASM1 column order and is shared by the Petersen matrix, the derivative
// contraction, and every array form of the state.
const (
	IdxSI   = iota // Soluble inert organic matter
	IdxSS          // Readily biodegradable substrate
	IdxXI          // Particulate inert organic matter
	IdxXS          // Slowly biodegradable substrate
	IdxXBH         // Active heterotrophic biomass
	IdxXBA         // Active autotrophic biomass
	IdxXP          // Particulate decay products
	IdxSO          // Dissolved oxygen
	IdxSNO         // Nitrate and nitrite nitrogen
	IdxSNH         // Ammonia nitrogen
	IdxSND         // Soluble biodegradable organic nitrogen
	IdxXND         // Particulate biodegradable organic nitrogen
	IdxSALK        // Alkalinity
)

// ComponentLabels lists the short names of the 13 components in index order.
var ComponentLabels = []string{
	"SI", "SS", "XI", "XS", "XBH", "XBA", "XP",
	"SO", "SNO", "SNH", "SND", "XND", "SALK",
}

// StateVariables holds the 13 ASM1 concentrations. COD fractions are in
// g COD/m3, nitrogen species in g N/m3, oxygen in g O2/m3, and alkalinity
// in mol HCO3/m3.
type StateVariables struct {
	SI   float64 `yaml:"SI"`   // Soluble inert organic matter
	SS   float64 `yaml:"SS"`   // Readily biodegradable substrate
	XI   float64 `yaml:"XI"`   // Particulate inert organic matter
	XS   float64 `yaml:"XS"`   // Slowly biodegradable substrate
	XBH  float64 `yaml:"XBH"`  // Active heterotrophic biomass
	XBA  float64 `yaml:"XBA"`  // Active autotrophic biomass
	XP   float64 `yaml:"XP"`   // Particulate decay products
	SO   float64 `yaml:"SO"`   // Dissolved oxygen
	SNO  float64 `yaml:"SNO"`  // Nitrate + nitrite nitrogen
	SNH  float64 `yaml:"SNH"`  // Ammonia nitrogen
	SND  float64 `yaml:"SND"`  // Soluble organic nitrogen
	XND  float64 `yaml:"XND"`  // Particulate organic nitrogen
	SALK float64 `yaml:"SALK"` // Alkalinity
}

// ToArray returns the state as a dense vector in component-index order.
func (s StateVariables) ToArray() []float64 {
	return []float64{
		s.SI, s.SS, s.XI, s.XS, s.XBH, s.XBA, s.XP,
		s.SO, s.SNO, s.SNH, s.SND, s.XND, s.SALK,
	}
}

// StateFromArray converts a dense vector back to a StateVariables value.
// Negative entries are clamped to zero: concentrations are physically
// non-negative, and small negative excursions from an integrator must not
// feed back into the kinetics. Missing trailing entries read as zero.
func StateFromArray(v []float64) StateVariables {
	at := func(i int) float64 {
		if i >= len(v) {
			return 0
		}
		if v[i] < 0 {
			return 0
		}
		return v[i]
	}
	return StateVariables{
		SI:   at(IdxSI),
		SS:   at(IdxSS),
		XI:   at(IdxXI),
		XS:   at(IdxXS),
		XBH:  at(IdxXBH),
		XBA:  at(IdxXBA),
		XP:   at(IdxXP),
		SO:   at(IdxSO),
		SNO:  at(IdxSNO),
		SNH:  at(IdxSNH),
		SND:  at(IdxSND),
		XND:  at(IdxXND),
		SALK: at(IdxSALK),
	}
}

// TotalCOD returns the sum of all COD fractions, soluble and particulate.
func (s StateVariables) TotalCOD() float64 {
	return s.SI + s.SS + s.XI + s.XS + s.XBH + s.XBA + s.XP
}

// ParticulateCOD returns the sum of the particulate COD fractions.
func (s StateVariables) ParticulateCOD() float64 {
	return s.XI + s.XS + s.XBH + s.XBA + s.XP
}

// SolubleCOD returns the sum of the soluble COD fractions.
func (s StateVariables) SolubleCOD() float64 {
	return s.SI + s.SS
}

package reactor

import "github.com/bioproc/go-asm1/asm"

// Fractions splits conventional wastewater measurements into ASM1
// components. The four COD fractions need not sum to 1; the residual is
// assigned to active biomass, split 90 % heterotroph / 10 % autotroph.
// FSND and FXND set the relative split of organic nitrogen between the
// soluble and particulate pools.
type Fractions struct {
	FSI  float64 `json:"fSI" yaml:"fSI"`   // soluble inert fraction of COD
	FSS  float64 `json:"fSS" yaml:"fSS"`   // readily biodegradable fraction of COD
	FXI  float64 `json:"fXI" yaml:"fXI"`   // particulate inert fraction of COD
	FXS  float64 `json:"fXS" yaml:"fXS"`   // slowly biodegradable fraction of COD
	FSND float64 `json:"fSND" yaml:"fSND"` // soluble organic N weight
	FXND float64 `json:"fXND" yaml:"fXND"` // particulate organic N weight
}

// DefaultFractions returns a typical municipal raw-wastewater split.
// The COD fractions sum to 0.98; the remaining 2 % seeds active biomass.
func DefaultFractions() Fractions {
	return Fractions{
		FSI:  0.05,
		FSS:  0.20,
		FXI:  0.13,
		FXS:  0.60,
		FSND: 0.40,
		FXND: 0.60,
	}
}

// Fractionate maps conventional influent quality measurements into the
// 13-component ASM1 state vector.
//
// COD and nitrogen are in g/m3; alkalinity is mg/L as CaCO3 and converts
// to mol HCO3/m3 at 0.01 mol per mg/L. Dissolved oxygen and nitrate are
// zero: raw wastewater is assumed anaerobic and unnitrified.
func Fractionate(cod, tkn, nh4, alkalinity float64, f Fractions) asm.StateVariables {
	biomassFrac := 1 - f.FSI - f.FSS - f.FXI - f.FXS
	if biomassFrac < 0 {
		biomassFrac = 0
	}
	biomassCOD := cod * biomassFrac

	orgN := tkn - nh4
	if orgN < 0 {
		orgN = 0
	}
	sndWeight := 0.5
	if w := f.FSND + f.FXND; w > 0 {
		sndWeight = f.FSND / w
	}

	return asm.StateVariables{
		SI:   cod * f.FSI,
		SS:   cod * f.FSS,
		XI:   cod * f.FXI,
		XS:   cod * f.FXS,
		XBH:  biomassCOD * 0.9,
		XBA:  biomassCOD * 0.1,
		XP:   0,
		SO:   0,
		SNO:  0,
		SNH:  nh4,
		SND:  orgN * sndWeight,
		XND:  orgN * (1 - sndWeight),
		SALK: alkalinity * 0.01,
	}
}

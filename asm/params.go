package asm

import "math"

// KineticParameters holds the ASM1 rate and half-saturation constants.
// All rate constants are first-order per day; half-saturation constants
// carry the units of the substrate they gate.
type KineticParameters struct {
	MuH  float64 // Maximum specific growth rate, heterotrophs (1/d)
	KS   float64 // Half-saturation, readily biodegradable substrate (g COD/m3)
	KOH  float64 // Half-saturation, oxygen for heterotrophs (g O2/m3)
	KNO  float64 // Half-saturation, nitrate for denitrifiers (g N/m3)
	BH   float64 // Decay rate, heterotrophs (1/d)
	EtaG float64 // Anoxic growth correction factor (-)
	EtaH float64 // Anoxic hydrolysis correction factor (-)
	Kh   float64 // Maximum specific hydrolysis rate (g COD/(g COD·d))
	KX   float64 // Half-saturation for hydrolysis (g COD/g COD)
	MuA  float64 // Maximum specific growth rate, autotrophs (1/d)
	KNH  float64 // Half-saturation, ammonia for autotrophs (g N/m3)
	KOA  float64 // Half-saturation, oxygen for autotrophs (g O2/m3)
	BA   float64 // Decay rate, autotrophs (1/d)
	Ka   float64 // Ammonification rate (m3/(g COD·d))
}

// StoichiometricParameters holds the five ASM1 yield and fraction
// constants. They determine the Petersen matrix entirely.
type StoichiometricParameters struct {
	YH  float64 // Heterotrophic yield (g cell COD / g COD oxidized)
	YA  float64 // Autotrophic yield (g cell COD / g N oxidized)
	FP  float64 // Fraction of biomass yielding inert products (-)
	IXB float64 // Nitrogen content of biomass (g N / g COD)
	IXP float64 // Nitrogen content of decay products (g N / g COD)
}

// TemperatureCoefficients holds the Arrhenius theta values for the
// temperature-sensitive rate constants.
type TemperatureCoefficients struct {
	MuH float64
	BH  float64
	MuA float64
	BA  float64
	Kh  float64
	Ka  float64
}

// DefaultKinetics returns the ASM1 typical kinetic parameter values at
// 20 degrees C (Henze et al. 1987, neutral pH).
func DefaultKinetics() KineticParameters {
	return KineticParameters{
		MuH:  6.0,
		KS:   20.0,
		KOH:  0.20,
		KNO:  0.50,
		BH:   0.62,
		EtaG: 0.8,
		EtaH: 0.4,
		Kh:   3.0,
		KX:   0.03,
		MuA:  0.80,
		KNH:  1.0,
		KOA:  0.4,
		BA:   0.15,
		Ka:   0.08,
	}
}

// DefaultStoichiometry returns the ASM1 typical stoichiometric values.
func DefaultStoichiometry() StoichiometricParameters {
	return StoichiometricParameters{
		YH:  0.67,
		YA:  0.24,
		FP:  0.08,
		IXB: 0.086,
		IXP: 0.06,
	}
}

// DefaultThetas returns the Arrhenius coefficients commonly used with the
// ASM1 rate constants.
func DefaultThetas() TemperatureCoefficients {
	return TemperatureCoefficients{
		MuH: 1.072,
		BH:  1.029,
		MuA: 1.103,
		BA:  1.029,
		Kh:  1.116,
		Ka:  1.072,
	}
}

// CorrectForTemperature applies the Arrhenius relation
//
//	k(T) = k(20) * theta^(T-20)
//
// to the temperature-sensitive constants and returns the corrected set.
// Half-saturation constants and correction factors are left unchanged.
// At T=20 the result equals the input exactly.
func CorrectForTemperature(k KineticParameters, theta TemperatureCoefficients, tempC float64) KineticParameters {
	if tempC == 20 {
		return k
	}
	dt := tempC - 20
	out := k
	out.MuH = k.MuH * math.Pow(theta.MuH, dt)
	out.BH = k.BH * math.Pow(theta.BH, dt)
	out.MuA = k.MuA * math.Pow(theta.MuA, dt)
	out.BA = k.BA * math.Pow(theta.BA, dt)
	out.Kh = k.Kh * math.Pow(theta.Kh, dt)
	out.Ka = k.Ka * math.Pow(theta.Ka, dt)
	return out
}

// KineticOverrides carries optional caller-supplied kinetic values.
// Nil fields keep the default.
type KineticOverrides struct {
	MuH  *float64 `yaml:"muH,omitempty" json:"muH,omitempty"`
	KS   *float64 `yaml:"KS,omitempty" json:"KS,omitempty"`
	KOH  *float64 `yaml:"KOH,omitempty" json:"KOH,omitempty"`
	KNO  *float64 `yaml:"KNO,omitempty" json:"KNO,omitempty"`
	BH   *float64 `yaml:"bH,omitempty" json:"bH,omitempty"`
	EtaG *float64 `yaml:"etaG,omitempty" json:"etaG,omitempty"`
	EtaH *float64 `yaml:"etaH,omitempty" json:"etaH,omitempty"`
	Kh   *float64 `yaml:"kh,omitempty" json:"kh,omitempty"`
	KX   *float64 `yaml:"KX,omitempty" json:"KX,omitempty"`
	MuA  *float64 `yaml:"muA,omitempty" json:"muA,omitempty"`
	KNH  *float64 `yaml:"KNH,omitempty" json:"KNH,omitempty"`
	KOA  *float64 `yaml:"KOA,omitempty" json:"KOA,omitempty"`
	BA   *float64 `yaml:"bA,omitempty" json:"bA,omitempty"`
	Ka   *float64 `yaml:"ka,omitempty" json:"ka,omitempty"`
}

// StoichiometricOverrides carries optional caller-supplied stoichiometric
// values. Nil fields keep the default.
type StoichiometricOverrides struct {
	YH  *float64 `yaml:"YH,omitempty" json:"YH,omitempty"`
	YA  *float64 `yaml:"YA,omitempty" json:"YA,omitempty"`
	FP  *float64 `yaml:"fP,omitempty" json:"fP,omitempty"`
	IXB *float64 `yaml:"iXB,omitempty" json:"iXB,omitempty"`
	IXP *float64 `yaml:"iXP,omitempty" json:"iXP,omitempty"`
}

// ThetaOverrides carries optional caller-supplied Arrhenius coefficients.
type ThetaOverrides struct {
	MuH *float64 `yaml:"muH,omitempty" json:"muH,omitempty"`
	BH  *float64 `yaml:"bH,omitempty" json:"bH,omitempty"`
	MuA *float64 `yaml:"muA,omitempty" json:"muA,omitempty"`
	BA  *float64 `yaml:"bA,omitempty" json:"bA,omitempty"`
	Kh  *float64 `yaml:"kh,omitempty" json:"kh,omitempty"`
	Ka  *float64 `yaml:"ka,omitempty" json:"ka,omitempty"`
}

func pick(base float64, over *float64) float64 {
	if over != nil {
		return *over
	}
	return base
}

// MergeKinetics overlays non-nil override fields onto the defaults.
func MergeKinetics(over *KineticOverrides) KineticParameters {
	k := DefaultKinetics()
	if over == nil {
		return k
	}
	k.MuH = pick(k.MuH, over.MuH)
	k.KS = pick(k.KS, over.KS)
	k.KOH = pick(k.KOH, over.KOH)
	k.KNO = pick(k.KNO, over.KNO)
	k.BH = pick(k.BH, over.BH)
	k.EtaG = pick(k.EtaG, over.EtaG)
	k.EtaH = pick(k.EtaH, over.EtaH)
	k.Kh = pick(k.Kh, over.Kh)
	k.KX = pick(k.KX, over.KX)
	k.MuA = pick(k.MuA, over.MuA)
	k.KNH = pick(k.KNH, over.KNH)
	k.KOA = pick(k.KOA, over.KOA)
	k.BA = pick(k.BA, over.BA)
	k.Ka = pick(k.Ka, over.Ka)
	return k
}

// MergeStoichiometry overlays non-nil override fields onto the defaults.
func MergeStoichiometry(over *StoichiometricOverrides) StoichiometricParameters {
	p := DefaultStoichiometry()
	if over == nil {
		return p
	}
	p.YH = pick(p.YH, over.YH)
	p.YA = pick(p.YA, over.YA)
	p.FP = pick(p.FP, over.FP)
	p.IXB = pick(p.IXB, over.IXB)
	p.IXP = pick(p.IXP, over.IXP)
	return p
}

// MergeThetas overlays non-nil override fields onto the defaults.
func MergeThetas(over *ThetaOverrides) TemperatureCoefficients {
	th := DefaultThetas()
	if over == nil {
		return th
	}
	th.MuH = pick(th.MuH, over.MuH)
	th.BH = pick(th.BH, over.BH)
	th.MuA = pick(th.MuA, over.MuA)
	th.BA = pick(th.BA, over.BA)
	th.Kh = pick(th.Kh, over.Kh)
	th.Ka = pick(th.Ka, over.Ka)
	return th
}

package asm

import "fmt"

// NumProcesses is the number of ASM1 biological processes.
const NumProcesses = 8

// Process indices in Petersen-matrix row order.
const (
	ProcAerobicGrowthH = iota // Aerobic growth of heterotrophs
	ProcAnoxicGrowthH         // Anoxic growth of heterotrophs
	ProcAerobicGrowthA        // Aerobic growth of autotrophs
	ProcDecayH                // Decay of heterotrophs
	ProcDecayA                // Decay of autotrophs
	ProcAmmonification        // Ammonification of soluble organic N
	ProcHydrolysisX           // Hydrolysis of entrapped organics
	ProcHydrolysisXND         // Hydrolysis of entrapped organic N
)

// ProcessNames lists the process names in row order.
var ProcessNames = []string{
	"aerobic growth of heterotrophs",
	"anoxic growth of heterotrophs",
	"aerobic growth of autotrophs",
	"decay of heterotrophs",
	"decay of autotrophs",
	"ammonification",
	"hydrolysis of entrapped organics",
	"hydrolysis of entrapped organic nitrogen",
}

// ProcessRate is one evaluated ASM1 process: its name, the numeric rate in
// g COD/(m3·d) (g N for the nitrogen processes), and the rate expression
// it was computed from.
type ProcessRate struct {
	Name    string  `json:"name"`
	Rate    float64 `json:"rate"`
	Formula string  `json:"formula"`
}

// Monod returns the saturation switching function S/(K+S).
// Returns 0 when S <= 0 (no substrate, no rate) or K <= 0 (degenerate
// half-saturation), so downstream products never divide by zero.
func Monod(s, k float64) float64 {
	if s <= 0 || k <= 0 {
		return 0
	}
	return s / (k + s)
}

// Inhibition returns the inhibition switching function K/(K+S).
// Negative S reads as zero, so the function saturates at 1 in the absence
// of the inhibitor. Returns 0 when K <= 0.
func Inhibition(s, k float64) float64 {
	if k <= 0 {
		return 0
	}
	if s < 0 {
		s = 0
	}
	return k / (k + s)
}

// ProcessRates evaluates the eight ASM1 process rates at the given state.
// The returned slice is freshly allocated on every call; rates are never
// cached because every solver stage sees a different state.
func ProcessRates(s StateVariables, k KineticParameters) []ProcessRate {
	rates := make([]ProcessRate, NumProcesses)

	// 1. Aerobic growth of heterotrophs.
	rho1 := k.MuH * Monod(s.SS, k.KS) * Monod(s.SO, k.KOH) * s.XBH
	rates[ProcAerobicGrowthH] = ProcessRate{
		Name:    ProcessNames[ProcAerobicGrowthH],
		Rate:    rho1,
		Formula: "muH·(SS/(KS+SS))·(SO/(KOH+SO))·XBH",
	}

	// 2. Anoxic growth of heterotrophs (denitrification).
	rho2 := k.MuH * Monod(s.SS, k.KS) * Inhibition(s.SO, k.KOH) *
		Monod(s.SNO, k.KNO) * k.EtaG * s.XBH
	rates[ProcAnoxicGrowthH] = ProcessRate{
		Name:    ProcessNames[ProcAnoxicGrowthH],
		Rate:    rho2,
		Formula: "muH·(SS/(KS+SS))·(KOH/(KOH+SO))·(SNO/(KNO+SNO))·etaG·XBH",
	}

	// 3. Aerobic growth of autotrophs (nitrification).
	rho3 := k.MuA * Monod(s.SNH, k.KNH) * Monod(s.SO, k.KOA) * s.XBA
	rates[ProcAerobicGrowthA] = ProcessRate{
		Name:    ProcessNames[ProcAerobicGrowthA],
		Rate:    rho3,
		Formula: "muA·(SNH/(KNH+SNH))·(SO/(KOA+SO))·XBA",
	}

	// 4. Decay of heterotrophs.
	rates[ProcDecayH] = ProcessRate{
		Name:    ProcessNames[ProcDecayH],
		Rate:    k.BH * s.XBH,
		Formula: "bH·XBH",
	}

	// 5. Decay of autotrophs.
	rates[ProcDecayA] = ProcessRate{
		Name:    ProcessNames[ProcDecayA],
		Rate:    k.BA * s.XBA,
		Formula: "bA·XBA",
	}

	// 6. Ammonification of soluble organic nitrogen.
	rates[ProcAmmonification] = ProcessRate{
		Name:    ProcessNames[ProcAmmonification],
		Rate:    k.Ka * s.SND * s.XBH,
		Formula: "ka·SND·XBH",
	}

	// 7. Hydrolysis of entrapped organics. The substrate-to-biomass ratio
	// guards against XBH=0; surface-limited Monod on the ratio itself.
	ratio := 0.0
	if s.XBH > 0 {
		ratio = s.XS / s.XBH
	}
	rho7 := k.Kh * Monod(ratio, k.KX) *
		(Monod(s.SO, k.KOH) + Inhibition(s.SO, k.KOH)*Monod(s.SNO, k.KNO)*k.EtaH) *
		s.XBH
	rates[ProcHydrolysisX] = ProcessRate{
		Name:    ProcessNames[ProcHydrolysisX],
		Rate:    rho7,
		Formula: "kh·((XS/XBH)/(KX+XS/XBH))·[SO/(KOH+SO) + etaH·(KOH/(KOH+SO))·(SNO/(KNO+SNO))]·XBH",
	}

	// 8. Hydrolysis of entrapped organic nitrogen: proportional to process 7
	// by the XND/XS ratio, guarded against XS=0.
	frac := 0.0
	if s.XS > 0 {
		frac = s.XND / s.XS
	}
	rates[ProcHydrolysisXND] = ProcessRate{
		Name:    ProcessNames[ProcHydrolysisXND],
		Rate:    rho7 * frac,
		Formula: "rho7·(XND/XS)",
	}

	return rates
}

// RateVector evaluates the process rates and returns just the numeric
// values in row order.
func RateVector(s StateVariables, k KineticParameters) []float64 {
	rates := ProcessRates(s, k)
	out := make([]float64, NumProcesses)
	for i, r := range rates {
		out[i] = r.Rate
	}
	return out
}

// String implements fmt.Stringer for diagnostics output.
func (p ProcessRate) String() string {
	return fmt.Sprintf("%s: %.6g (%s)", p.Name, p.Rate, p.Formula)
}

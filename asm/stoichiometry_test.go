package asm

import (
	"math"
	"testing"
)

func TestBuildMatrixMatchesCoefficient(t *testing.T) {
	p := DefaultStoichiometry()
	m := BuildMatrix(p)
	if len(m) != NumProcesses {
		t.Fatalf("expected %d rows, got %d", NumProcesses, len(m))
	}
	for i := 0; i < NumProcesses; i++ {
		if len(m[i]) != NumComponents {
			t.Fatalf("row %d has %d columns, want %d", i, len(m[i]), NumComponents)
		}
		for j := 0; j < NumComponents; j++ {
			if m[i][j] != Coefficient(i, j, p) {
				t.Errorf("cell [%d][%d] = %g, want Coefficient = %g",
					i, j, m[i][j], Coefficient(i, j, p))
			}
		}
	}
}

func TestPublishedCoefficients(t *testing.T) {
	p := DefaultStoichiometry()
	tol := 1e-12

	checks := []struct {
		name      string
		process   int
		component int
		want      float64
	}{
		{"aerobic growth SS", ProcAerobicGrowthH, IdxSS, -1 / p.YH},
		{"aerobic growth biomass", ProcAerobicGrowthH, IdxXBH, 1},
		{"aerobic growth oxygen", ProcAerobicGrowthH, IdxSO, -(1 - p.YH) / p.YH},
		{"aerobic growth ammonia", ProcAerobicGrowthH, IdxSNH, -p.IXB},
		{"aerobic growth alkalinity", ProcAerobicGrowthH, IdxSALK, -p.IXB / 14},
		{"anoxic growth nitrate", ProcAnoxicGrowthH, IdxSNO, -(1 - p.YH) / (2.86 * p.YH)},
		{"anoxic growth alkalinity", ProcAnoxicGrowthH, IdxSALK, (1-p.YH)/(14*2.86*p.YH) - p.IXB/14},
		{"nitrification nitrate", ProcAerobicGrowthA, IdxSNO, 1 / p.YA},
		{"nitrification oxygen", ProcAerobicGrowthA, IdxSO, -(4.57 - p.YA) / p.YA},
		{"nitrification ammonia", ProcAerobicGrowthA, IdxSNH, -p.IXB - 1/p.YA},
		{"nitrification alkalinity", ProcAerobicGrowthA, IdxSALK, -p.IXB/14 - 1/(7*p.YA)},
		{"decay to XS", ProcDecayH, IdxXS, 1 - p.FP},
		{"decay to XP", ProcDecayH, IdxXP, p.FP},
		{"decay organic N", ProcDecayH, IdxXND, p.IXB - p.FP*p.IXP},
		{"ammonification SNH", ProcAmmonification, IdxSNH, 1},
		{"ammonification SND", ProcAmmonification, IdxSND, -1},
		{"ammonification alkalinity", ProcAmmonification, IdxSALK, 1.0 / 14},
		{"hydrolysis SS", ProcHydrolysisX, IdxSS, 1},
		{"hydrolysis XS", ProcHydrolysisX, IdxXS, -1},
		{"N hydrolysis SND", ProcHydrolysisXND, IdxSND, 1},
		{"N hydrolysis XND", ProcHydrolysisXND, IdxXND, -1},
	}

	for _, c := range checks {
		got := Coefficient(c.process, c.component, p)
		if math.Abs(got-c.want) > tol {
			t.Errorf("%s: got %g, want %g", c.name, got, c.want)
		}
	}
}

func TestUnlistedCellsAreZero(t *testing.T) {
	p := DefaultStoichiometry()
	if got := Coefficient(ProcAerobicGrowthH, IdxSI, p); got != 0 {
		t.Errorf("aerobic growth SI = %g, want 0", got)
	}
	if got := Coefficient(ProcHydrolysisX, IdxSO, p); got != 0 {
		t.Errorf("hydrolysis SO = %g, want 0", got)
	}
	if got := Coefficient(99, 0, p); got != 0 {
		t.Errorf("out-of-range process = %g, want 0", got)
	}
}

// The COD balance of aerobic heterotrophic growth: substrate consumed
// equals biomass formed plus oxygen transferred.
func TestAerobicGrowthCODBalance(t *testing.T) {
	p := DefaultStoichiometry()
	substrate := Coefficient(ProcAerobicGrowthH, IdxSS, p)
	biomass := Coefficient(ProcAerobicGrowthH, IdxXBH, p)
	oxygen := Coefficient(ProcAerobicGrowthH, IdxSO, p)
	if math.Abs(substrate+biomass+oxygen) > 1e-12 {
		t.Errorf("COD imbalance: SS %g + XBH %g + SO %g = %g",
			substrate, biomass, oxygen, substrate+biomass+oxygen)
	}
}

// Decay conserves COD: the biomass lost reappears as XS and XP.
func TestDecayCODBalance(t *testing.T) {
	p := DefaultStoichiometry()
	for _, proc := range []int{ProcDecayH, ProcDecayA} {
		sum := 0.0
		for _, idx := range []int{IdxXS, IdxXBH, IdxXBA, IdxXP} {
			sum += Coefficient(proc, idx, p)
		}
		if math.Abs(sum) > 1e-12 {
			t.Errorf("process %d COD imbalance %g", proc+1, sum)
		}
	}
}

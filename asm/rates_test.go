package asm

import (
	"math"
	"testing"
)

func TestMonod(t *testing.T) {
	if got := Monod(20, 20); got != 0.5 {
		t.Errorf("Monod(20,20) = %f, want 0.5", got)
	}
	if got := Monod(0, 20); got != 0 {
		t.Errorf("Monod(0,20) = %f, want 0", got)
	}
	if got := Monod(-5, 20); got != 0 {
		t.Errorf("Monod(-5,20) = %f, want 0", got)
	}
	if got := Monod(10, 0); got != 0 {
		t.Errorf("Monod(10,0) = %f, want 0", got)
	}
	if got := Monod(1e6, 20); got < 0.99 {
		t.Errorf("Monod saturates toward 1, got %f", got)
	}
}

func TestInhibition(t *testing.T) {
	if got := Inhibition(0, 0.2); got != 1 {
		t.Errorf("Inhibition(0,0.2) = %f, want 1", got)
	}
	if got := Inhibition(-3, 0.2); got != 1 {
		t.Errorf("Inhibition(-3,0.2) = %f, want 1 (negative S reads as 0)", got)
	}
	if got := Inhibition(0.2, 0.2); got != 0.5 {
		t.Errorf("Inhibition(0.2,0.2) = %f, want 0.5", got)
	}
	if got := Inhibition(5, 0); got != 0 {
		t.Errorf("Inhibition(5,0) = %f, want 0", got)
	}
}

func typicalState() StateVariables {
	return StateVariables{
		SI: 30, SS: 100, XI: 50, XS: 250, XBH: 1500, XBA: 80, XP: 100,
		SO: 2, SNO: 5, SNH: 20, SND: 5, XND: 10, SALK: 5,
	}
}

func TestZeroBiomassZeroesBiologicalRates(t *testing.T) {
	s := typicalState()
	s.XBH = 0
	s.XBA = 0
	rates := ProcessRates(s, DefaultKinetics())
	for i := ProcAerobicGrowthH; i <= ProcDecayA; i++ {
		if rates[i].Rate != 0 {
			t.Errorf("process %d (%s) = %g, want 0 with no biomass", i+1, rates[i].Name, rates[i].Rate)
		}
	}
}

func TestZeroSubstrateZeroesHeterotrophGrowth(t *testing.T) {
	s := typicalState()
	s.SS = 0
	rates := ProcessRates(s, DefaultKinetics())
	if rates[ProcAerobicGrowthH].Rate != 0 {
		t.Errorf("aerobic growth = %g, want 0 with SS=0", rates[ProcAerobicGrowthH].Rate)
	}
	if rates[ProcAnoxicGrowthH].Rate != 0 {
		t.Errorf("anoxic growth = %g, want 0 with SS=0", rates[ProcAnoxicGrowthH].Rate)
	}
}

func TestAnoxicSwitch(t *testing.T) {
	s := typicalState()
	s.SO = 0
	s.SNO = 5
	rates := ProcessRates(s, DefaultKinetics())
	if rates[ProcAerobicGrowthH].Rate != 0 {
		t.Errorf("aerobic growth = %g, want 0 without oxygen", rates[ProcAerobicGrowthH].Rate)
	}
	if rates[ProcAnoxicGrowthH].Rate <= 0 {
		t.Errorf("anoxic growth = %g, want > 0 with nitrate present", rates[ProcAnoxicGrowthH].Rate)
	}
}

func TestZeroAmmoniaZeroesNitrification(t *testing.T) {
	s := typicalState()
	s.SNH = 0
	rates := ProcessRates(s, DefaultKinetics())
	if rates[ProcAerobicGrowthA].Rate != 0 {
		t.Errorf("nitrification = %g, want 0 with SNH=0", rates[ProcAerobicGrowthA].Rate)
	}
}

func TestHydrolysisGuards(t *testing.T) {
	k := DefaultKinetics()

	// No heterotrophs: hydrolysis ratio is defined to be 0.
	s := typicalState()
	s.XBH = 0
	rates := ProcessRates(s, k)
	if rates[ProcHydrolysisX].Rate != 0 {
		t.Errorf("hydrolysis = %g, want 0 with XBH=0", rates[ProcHydrolysisX].Rate)
	}

	// No slowly biodegradable substrate: organic-N hydrolysis ratio is 0.
	s = typicalState()
	s.XS = 0
	rates = ProcessRates(s, k)
	if rates[ProcHydrolysisXND].Rate != 0 {
		t.Errorf("organic-N hydrolysis = %g, want 0 with XS=0", rates[ProcHydrolysisXND].Rate)
	}
}

func TestOrganicNHydrolysisProportionality(t *testing.T) {
	s := typicalState()
	rates := ProcessRates(s, DefaultKinetics())
	want := rates[ProcHydrolysisX].Rate * s.XND / s.XS
	got := rates[ProcHydrolysisXND].Rate
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("organic-N hydrolysis = %g, want rho7*XND/XS = %g", got, want)
	}
}

func TestDecayRates(t *testing.T) {
	s := typicalState()
	k := DefaultKinetics()
	rates := ProcessRates(s, k)
	if got, want := rates[ProcDecayH].Rate, k.BH*s.XBH; math.Abs(got-want) > 1e-12 {
		t.Errorf("heterotroph decay = %g, want %g", got, want)
	}
	if got, want := rates[ProcDecayA].Rate, k.BA*s.XBA; math.Abs(got-want) > 1e-12 {
		t.Errorf("autotroph decay = %g, want %g", got, want)
	}
}

func TestRatesNeverNaN(t *testing.T) {
	states := []StateVariables{
		{},
		typicalState(),
		{XBH: 1000},
		{XS: 500, XND: 20},
		{SS: 100, SO: 8, XBH: 2000, XBA: 150, SNH: 40, SNO: 20, SND: 8, XND: 15},
	}
	k := DefaultKinetics()
	for _, s := range states {
		for _, r := range ProcessRates(s, k) {
			if math.IsNaN(r.Rate) || math.IsInf(r.Rate, 0) {
				t.Errorf("process %q produced %g for state %+v", r.Name, r.Rate, s)
			}
		}
	}
}

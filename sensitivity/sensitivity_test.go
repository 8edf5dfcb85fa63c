package sensitivity

import (
	"math"
	"testing"

	"github.com/bioproc/go-asm1/asm"
	"github.com/bioproc/go-asm1/reactor"
	"github.com/bioproc/go-asm1/simulation"
	"github.com/bioproc/go-asm1/solver"
)

// shortScenario keeps sweeps cheap: a 2 d horizon at a coarse step.
func shortScenario() (simulation.Config, reactor.Config, asm.StateVariables) {
	influent := asm.StateVariables{
		SI: 30, SS: 100, XI: 50, XS: 250, XBH: 10, SNH: 30, SND: 5, XND: 10, SALK: 5,
	}
	cfg := simulation.Config{
		EndTime:        2,
		TimeStep:       0.01,
		OutputInterval: 0.5,
		Solver:         solver.RK4,
		InitialState:   influent,
	}
	rc := reactor.Config{
		Zones:       []reactor.Zone{{Name: "aeration", Volume: 500, AerationMode: reactor.Aerobic, TargetDO: 2}},
		TotalVolume: 500,
		TotalHRT:    0.5,
		SRT:         15,
		Temperature: 20,
	}
	return cfg, rc, influent
}

func newTestAnalyzer(scorer Scorer) *Analyzer {
	cfg, rc, influent := shortScenario()
	return NewAnalyzer(cfg, rc, influent, scorer)
}

func effluentSS(res *simulation.Result) float64 {
	return res.FinalState.SS
}

func TestAnalyzePerturbations(t *testing.T) {
	a := newTestAnalyzer(effluentSS)
	res := a.AnalyzePerturbations(0.5)

	if math.IsNaN(res.Baseline) {
		t.Fatal("baseline run failed")
	}
	if len(res.Scores) != len(ParameterNames) {
		t.Fatalf("scored %d parameters, want %d", len(res.Scores), len(ParameterNames))
	}
	if len(res.Ranking) != len(ParameterNames) {
		t.Fatalf("ranked %d parameters, want %d", len(res.Ranking), len(ParameterNames))
	}
	for i := 1; i < len(res.Ranking); i++ {
		if math.Abs(res.Ranking[i].Impact) > math.Abs(res.Ranking[i-1].Impact) {
			t.Errorf("ranking not sorted by absolute impact at %d", i)
		}
	}
	// Halving the maximum heterotrophic growth rate must leave more
	// substrate behind than the baseline.
	if res.Impact["muH"] <= 0 {
		t.Errorf("muH halved gives impact %g on residual SS, want > 0", res.Impact["muH"])
	}
	// An anoxic-only parameter has no effect in a fully aerobic reactor.
	if math.Abs(res.Impact["etaG"]) > 1e-9 {
		t.Errorf("etaG impact = %g in an aerobic reactor, want 0", res.Impact["etaG"])
	}
}

func TestSweep(t *testing.T) {
	// The sweep target is the nitrifier growth rate, so the scenario needs
	// a nitrifier population to act on.
	cfg, rc, influent := shortScenario()
	influent.XBA = 20
	cfg.InitialState = influent
	a := NewAnalyzer(cfg, rc, influent, NH4RemovalScorer())
	res := a.Sweep("muA", []float64{0.2, 0.8, 1.6})

	if len(res.Scores) != 3 {
		t.Fatalf("scored %d values, want 3", len(res.Scores))
	}
	for i, s := range res.Scores {
		if math.IsNaN(s) {
			t.Errorf("value %g failed to simulate", res.Values[i])
		}
	}
	if res.Best.Score < res.Worst.Score {
		t.Errorf("best score %g below worst score %g", res.Best.Score, res.Worst.Score)
	}
	// Faster nitrifier growth removes more ammonia.
	if res.Best.Value != 1.6 {
		t.Errorf("best muA = %g, want 1.6", res.Best.Value)
	}
}

func TestSweepRange(t *testing.T) {
	a := newTestAnalyzer(effluentSS)
	res := a.SweepRange("KS", 10, 40, 4)

	want := []float64{10, 20, 30, 40}
	if len(res.Values) != len(want) {
		t.Fatalf("swept %d values, want %d", len(res.Values), len(want))
	}
	for i, v := range res.Values {
		if math.Abs(v-want[i]) > 1e-9 {
			t.Errorf("value %d = %g, want %g", i, v, want[i])
		}
	}
}

func TestGradient(t *testing.T) {
	a := newTestAnalyzer(effluentSS)
	// Residual substrate falls as the growth rate rises.
	if g := a.Gradient("muH", 0.5); g >= 0 {
		t.Errorf("d(residual SS)/d(muH) = %g, want negative", g)
	}
}

func TestAllGradients(t *testing.T) {
	a := newTestAnalyzer(effluentSS)
	grads := a.AllGradients(0)
	if len(grads) != len(ParameterNames) {
		t.Fatalf("got %d gradients, want %d", len(grads), len(ParameterNames))
	}
	for name, g := range grads {
		if math.IsNaN(g) {
			t.Errorf("gradient for %s is NaN", name)
		}
	}
}

func TestEffluentScorer(t *testing.T) {
	cfg, rc, influent := shortScenario()
	res, err := simulation.Run(cfg, rc, influent)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	scorer := EffluentScorer(func(e simulation.EffluentQuality) float64 { return e.NH4 })
	if got := scorer(res); got != res.Effluent.NH4 {
		t.Errorf("scorer = %g, want %g", got, res.Effluent.NH4)
	}
}

func TestAnalyzerPreservesCallerOverrides(t *testing.T) {
	cfg, rc, influent := shortScenario()
	slow := 3.0
	cfg.Kinetics = &asm.KineticOverrides{MuH: &slow}
	a := NewAnalyzer(cfg, rc, influent, effluentSS)

	a.AnalyzePerturbations(0.5)
	if cfg.Kinetics.MuH == nil || *cfg.Kinetics.MuH != 3.0 {
		t.Error("caller override mutated by the analysis")
	}
	if cfg.Kinetics.KS != nil {
		t.Error("caller override gained fields during the analysis")
	}
}

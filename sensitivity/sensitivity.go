// Package sensitivity explores how simulated treatment outcomes respond to
// the ASM1 kinetic parameters: one-at-a-time perturbation ranking, range
// sweeps, and central-difference gradients. Runs are pure and independent,
// so the parallel variants fan out across goroutines with no shared
// mutable state.
package sensitivity

import (
	"math"
	"sort"
	"sync"

	"github.com/bioproc/go-asm1/asm"
	"github.com/bioproc/go-asm1/reactor"
	"github.com/bioproc/go-asm1/simulation"
)

// Scorer evaluates a run and returns a scalar score.
type Scorer func(res *simulation.Result) float64

// EffluentScorer scores by a single effluent measure.
func EffluentScorer(f func(e simulation.EffluentQuality) float64) Scorer {
	return func(res *simulation.Result) float64 {
		return f(res.Effluent)
	}
}

// NH4RemovalScorer scores by ammonia removal percentage.
func NH4RemovalScorer() Scorer {
	return func(res *simulation.Result) float64 {
		return res.Performance.NH4Removal
	}
}

// Parameter names accepted by the analyzer.
var ParameterNames = []string{
	"muH", "KS", "KOH", "KNO", "bH", "etaG", "etaH",
	"kh", "KX", "muA", "KNH", "KOA", "bA", "ka",
}

// setParameter writes a named kinetic parameter into an override set.
func setParameter(over *asm.KineticOverrides, name string, value float64) {
	v := value
	switch name {
	case "muH":
		over.MuH = &v
	case "KS":
		over.KS = &v
	case "KOH":
		over.KOH = &v
	case "KNO":
		over.KNO = &v
	case "bH":
		over.BH = &v
	case "etaG":
		over.EtaG = &v
	case "etaH":
		over.EtaH = &v
	case "kh":
		over.Kh = &v
	case "KX":
		over.KX = &v
	case "muA":
		over.MuA = &v
	case "KNH":
		over.KNH = &v
	case "KOA":
		over.KOA = &v
	case "bA":
		over.BA = &v
	case "ka":
		over.Ka = &v
	}
}

// baseValue reads a named parameter from a merged kinetic set.
func baseValue(k asm.KineticParameters, name string) float64 {
	switch name {
	case "muH":
		return k.MuH
	case "KS":
		return k.KS
	case "KOH":
		return k.KOH
	case "KNO":
		return k.KNO
	case "bH":
		return k.BH
	case "etaG":
		return k.EtaG
	case "etaH":
		return k.EtaH
	case "kh":
		return k.Kh
	case "KX":
		return k.KX
	case "muA":
		return k.MuA
	case "KNH":
		return k.KNH
	case "KOA":
		return k.KOA
	case "bA":
		return k.BA
	case "ka":
		return k.Ka
	}
	return 0
}

// Result holds the outcome of a perturbation analysis.
type Result struct {
	Baseline float64            // score with unmodified parameters
	Scores   map[string]float64 // score with each parameter perturbed
	Impact   map[string]float64 // score - baseline
	Ranking  []RankedParam      // parameters by absolute impact
}

// RankedParam pairs a parameter with its impact.
type RankedParam struct {
	Name   string
	Impact float64
}

// Analyzer runs sensitivity studies against one scenario.
type Analyzer struct {
	cfg      simulation.Config
	rc       reactor.Config
	influent asm.StateVariables
	scorer   Scorer
}

// NewAnalyzer creates an analyzer for the given scenario and scorer.
func NewAnalyzer(cfg simulation.Config, rc reactor.Config, influent asm.StateVariables, scorer Scorer) *Analyzer {
	return &Analyzer{cfg: cfg, rc: rc, influent: influent, scorer: scorer}
}

// simulate runs the scenario with one parameter overridden and scores it.
// A solver failure scores as NaN so it never ranks as a best value.
func (a *Analyzer) simulate(name string, value float64, perturb bool) float64 {
	cfg := a.cfg
	over := asm.KineticOverrides{}
	if cfg.Kinetics != nil {
		over = *cfg.Kinetics
	}
	if perturb {
		setParameter(&over, name, value)
	}
	cfg.Kinetics = &over

	res, err := simulation.Run(cfg, a.rc, a.influent)
	if err != nil || !res.Diagnostics.Success {
		return math.NaN()
	}
	return a.scorer(res)
}

// AnalyzePerturbations perturbs each kinetic parameter by the given
// relative factor (e.g. 0.5 halves it, 2 doubles it) and ranks the impact
// on the score. Parameters run in parallel.
func (a *Analyzer) AnalyzePerturbations(factor float64) *Result {
	result := &Result{
		Scores: make(map[string]float64),
		Impact: make(map[string]float64),
	}
	result.Baseline = a.simulate("", 0, false)

	base := asm.MergeKinetics(a.cfg.Kinetics)

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, name := range ParameterNames {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			score := a.simulate(name, baseValue(base, name)*factor, true)
			mu.Lock()
			result.Scores[name] = score
			result.Impact[name] = score - result.Baseline
			mu.Unlock()
		}(name)
	}
	wg.Wait()

	result.Ranking = rankByImpact(result.Impact)
	return result
}

func rankByImpact(impact map[string]float64) []RankedParam {
	ranking := make([]RankedParam, 0, len(impact))
	for name, imp := range impact {
		ranking = append(ranking, RankedParam{Name: name, Impact: imp})
	}
	sort.Slice(ranking, func(i, j int) bool {
		return math.Abs(ranking[i].Impact) > math.Abs(ranking[j].Impact)
	})
	return ranking
}

// SweepResult holds results from a single-parameter sweep.
type SweepResult struct {
	Parameter string
	Values    []float64
	Scores    []float64
	Best      struct {
		Value float64
		Score float64
	}
	Worst struct {
		Value float64
		Score float64
	}
}

// Sweep evaluates the score at each value of one parameter. Values run in
// parallel; NaN scores (failed runs) are recorded but never selected as
// best or worst.
func (a *Analyzer) Sweep(name string, values []float64) *SweepResult {
	result := &SweepResult{
		Parameter: name,
		Values:    values,
		Scores:    make([]float64, len(values)),
	}

	var wg sync.WaitGroup
	for i, val := range values {
		wg.Add(1)
		go func(i int, val float64) {
			defer wg.Done()
			result.Scores[i] = a.simulate(name, val, true)
		}(i, val)
	}
	wg.Wait()

	bestScore := math.Inf(-1)
	worstScore := math.Inf(1)
	for i, score := range result.Scores {
		if math.IsNaN(score) {
			continue
		}
		if score > bestScore {
			bestScore = score
			result.Best.Value = values[i]
			result.Best.Score = score
		}
		if score < worstScore {
			worstScore = score
			result.Worst.Value = values[i]
			result.Worst.Score = score
		}
	}
	return result
}

// SweepRange evaluates evenly spaced values across [min, max].
func (a *Analyzer) SweepRange(name string, min, max float64, steps int) *SweepResult {
	values := make([]float64, steps)
	for i := 0; i < steps; i++ {
		values[i] = min + (max-min)*float64(i)/float64(steps-1)
	}
	return a.Sweep(name, values)
}

// Gradient estimates d(score)/d(parameter) by central difference.
func (a *Analyzer) Gradient(name string, h float64) float64 {
	base := baseValue(asm.MergeKinetics(a.cfg.Kinetics), name)
	if h == 0 {
		h = 0.01 * base
		if h == 0 {
			h = 0.01
		}
	}

	lo := base - h
	if lo < 0 {
		lo = 0
	}
	scorePlus := a.simulate(name, base+h, true)
	scoreMinus := a.simulate(name, lo, true)
	return (scorePlus - scoreMinus) / (2 * h)
}

// AllGradients computes gradients for every kinetic parameter in parallel.
func (a *Analyzer) AllGradients(h float64) map[string]float64 {
	gradients := make(map[string]float64, len(ParameterNames))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, name := range ParameterNames {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			grad := a.Gradient(name, h)
			mu.Lock()
			gradients[name] = grad
			mu.Unlock()
		}(name)
	}
	wg.Wait()
	return gradients
}

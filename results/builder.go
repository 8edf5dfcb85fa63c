package results

import (
	"time"

	"github.com/google/uuid"

	"github.com/bioproc/go-asm1/asm"
	"github.com/bioproc/go-asm1/simulation"
)

// FromSimulation converts a simulation result into the versioned document
// form, downsampling the time series to at most maxPoints samples.
// maxPoints <= 0 keeps every sample.
func FromSimulation(res *simulation.Result, maxPoints int) *Document {
	status := "success"
	if !res.Diagnostics.Success {
		status = "failed"
	}

	doc := &Document{
		Version: SchemaVersion,
		Metadata: Metadata{
			RunID:       uuid.New().String(),
			Timestamp:   time.Now(),
			Solver:      res.Diagnostics.Solver,
			Status:      status,
			Message:     res.Diagnostics.Message,
			ComputeTime: res.Diagnostics.ComputeTime,
			TotalSteps:  res.Diagnostics.TotalSteps,
		},
		Scenario: Scenario{
			Reactor:  res.Reactor,
			Config:   res.Config,
			Influent: stateMap(res.Influent),
		},
		Assessment: Assessment{
			Effluent:    res.Effluent,
			Oxygen:      res.Oxygen,
			Sludge:      res.Sludge,
			SteadyState: res.SteadyState,
			Performance: res.Performance,
		},
	}

	series := downsample(res.TimeSeries, maxPoints)
	doc.Data = Data{
		Points:     len(series),
		FinalState: stateMap(res.FinalState),
		Variables:  make(map[string][]float64, asm.NumComponents),
	}
	if n := len(series); n > 0 {
		doc.Data.FinalTime = series[n-1].Time
	}
	for _, label := range asm.ComponentLabels {
		doc.Data.Variables[label] = make([]float64, 0, len(series))
	}
	for _, tp := range series {
		doc.Data.Time = append(doc.Data.Time, tp.Time)
		doc.Data.Oxygen = append(doc.Data.Oxygen, tp.OxygenUptake.Total)
		arr := tp.State.ToArray()
		for i, label := range asm.ComponentLabels {
			doc.Data.Variables[label] = append(doc.Data.Variables[label], arr[i])
		}
	}
	return doc
}

// downsample keeps at most maxPoints samples, always retaining the first
// and last.
func downsample(series []simulation.TimePoint, maxPoints int) []simulation.TimePoint {
	if maxPoints <= 0 || len(series) <= maxPoints {
		return series
	}
	out := make([]simulation.TimePoint, 0, maxPoints)
	step := float64(len(series)-1) / float64(maxPoints-1)
	for i := 0; i < maxPoints; i++ {
		out = append(out, series[int(float64(i)*step+0.5)])
	}
	out[maxPoints-1] = series[len(series)-1]
	return out
}

func stateMap(s asm.StateVariables) map[string]float64 {
	arr := s.ToArray()
	m := make(map[string]float64, len(arr))
	for i, label := range asm.ComponentLabels {
		m[label] = arr[i]
	}
	return m
}

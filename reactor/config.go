// Package reactor couples the ASM1 batch kinetics to a continuous-flow
// reactor: hydraulic exchange with the influent, dissolved-oxygen control,
// and the fractionation of conventional wastewater measurements into the
// 13-component state vector.
package reactor

// AerationMode describes how a reactor zone is aerated.
type AerationMode string

const (
	Aerobic   AerationMode = "aerobic"
	Anoxic    AerationMode = "anoxic"
	Anaerobic AerationMode = "anaerobic"
)

// Zone is one compartment of the biological reactor.
type Zone struct {
	Name         string       `json:"name" yaml:"name"`
	Volume       float64      `json:"volume" yaml:"volume"`             // m3
	AerationMode AerationMode `json:"aerationMode" yaml:"aerationMode"` // aerobic | anoxic | anaerobic
	TargetDO     float64      `json:"targetDO" yaml:"targetDO"`         // g O2/m3, aerobic zones only
}

// Recirculation holds the internal and wastage flow ratios relative to the
// influent flow.
type Recirculation struct {
	External float64 `json:"external" yaml:"external"` // return activated sludge ratio
	Wastage  float64 `json:"wastage" yaml:"wastage"`   // waste activated sludge ratio
}

// Config describes the reactor being simulated. It is supplied once per
// simulation run and read-only to the engine.
type Config struct {
	Zones         []Zone        `json:"zones" yaml:"zones"`
	TotalVolume   float64       `json:"totalVolume" yaml:"totalVolume"` // m3
	TotalHRT      float64       `json:"totalHRT" yaml:"totalHRT"`       // d
	SRT           float64       `json:"srt" yaml:"srt"`                 // d
	Temperature   float64       `json:"temperature" yaml:"temperature"` // deg C
	Recirculation Recirculation `json:"recirculation" yaml:"recirculation"`
}

// DefaultTargetDO is the dissolved oxygen setpoint assumed when no aerobic
// zone specifies one.
const DefaultTargetDO = 2.0

// TargetDO returns the oxygen setpoint of the first aerobic zone, or
// DefaultTargetDO when no zone is flagged aerobic or the flagged zone has
// no setpoint.
func (c Config) TargetDO() float64 {
	for _, z := range c.Zones {
		if z.AerationMode == Aerobic {
			if z.TargetDO > 0 {
				return z.TargetDO
			}
			return DefaultTargetDO
		}
	}
	return DefaultTargetDO
}

package pricing

import "math"

// Supported percentage-change domain. The lower bound keeps prices well
// away from zero; the upper bound keeps scenarios plausible.
const (
	MinChangePct = -90.0
	MaxChangePct = 500.0
)

// SimulationResult projects one price scenario against the baseline.
// All deltas are scenario minus baseline; percent deltas are relative to
// the baseline value.
type SimulationResult struct {
	PercentageChange float64

	NewPrice         float64
	VolumeMultiplier float64
	ProjectedVolume  float64
	ProjectedRevenue float64

	BaselineRevenue float64
	RevenueDelta    float64
	RevenueDeltaPct float64
	VolumeDelta     float64
	VolumeDeltaPct  float64
}

// Simulate projects volume and revenue for a percentage price change using
// the constant-elasticity demand response:
//
//	volume_multiplier = (1 + pct/100) ^ coefficient
//
// Pure function of its inputs; simulate(model, 0) returns the baseline.
func Simulate(m *ElasticityModel, percentageChange float64) (SimulationResult, error) {
	if percentageChange < MinChangePct || percentageChange > MaxChangePct {
		return SimulationResult{}, &OutOfRangeError{
			Value: percentageChange,
			Low:   MinChangePct,
			High:  MaxChangePct,
		}
	}

	ratio := 1 + percentageChange/100
	multiplier := math.Pow(ratio, m.Coefficient)

	volume := m.BaselineVolume * multiplier
	if volume < 0 {
		// Demand cannot go negative. Unreachable under the power law with
		// ratio > 0, kept as the contract for any future response form.
		volume = 0
	}

	newPrice := m.BaselinePrice * ratio
	revenue := newPrice * volume
	baseRevenue := m.BaselinePrice * m.BaselineVolume

	res := SimulationResult{
		PercentageChange: percentageChange,
		NewPrice:         newPrice,
		VolumeMultiplier: multiplier,
		ProjectedVolume:  volume,
		ProjectedRevenue: revenue,
		BaselineRevenue:  baseRevenue,
		RevenueDelta:     revenue - baseRevenue,
		VolumeDelta:      volume - m.BaselineVolume,
	}
	if baseRevenue != 0 {
		res.RevenueDeltaPct = res.RevenueDelta / baseRevenue * 100
	}
	if m.BaselineVolume != 0 {
		res.VolumeDeltaPct = res.VolumeDelta / m.BaselineVolume * 100
	}
	return res, nil
}

// Package report turns numeric results into the one-sentence summaries
// shown to users. The sign/threshold policy lives here so every front end
// renders the same wording for the same numbers.
package report

import (
	"fmt"
	"math"

	"price-optimizer/internal/analysis"
	"price-optimizer/internal/pricing"
)

// Outcome classifies a simulation by the signs of its deltas.
// Keep these values stable; they are part of the API response.
type Outcome string

const (
	OutcomeNegligible          Outcome = "NEGLIGIBLE"
	OutcomeRevenueUpVolumeUp   Outcome = "REVENUE_UP_VOLUME_UP"
	OutcomeRevenueUpVolumeDown Outcome = "REVENUE_UP_VOLUME_DOWN"
	OutcomeRevenueDownVolumeUp Outcome = "REVENUE_DOWN_VOLUME_UP"
	OutcomeRevenueDownVolDown  Outcome = "REVENUE_DOWN_VOLUME_DOWN"
)

// DefaultNegligibleThresholdPct: percent deltas below this magnitude on
// both axes read as "no meaningful change" instead of "increased by 0.00%".
const DefaultNegligibleThresholdPct = 0.05

// Classify maps a simulation onto its outcome branch. thresholdPct <= 0
// falls back to the default negligible band.
func Classify(sim pricing.SimulationResult, thresholdPct float64) Outcome {
	if thresholdPct <= 0 {
		thresholdPct = DefaultNegligibleThresholdPct
	}
	if math.Abs(sim.RevenueDeltaPct) < thresholdPct && math.Abs(sim.VolumeDeltaPct) < thresholdPct {
		return OutcomeNegligible
	}
	if sim.RevenueDelta >= 0 {
		if sim.VolumeDelta >= 0 {
			return OutcomeRevenueUpVolumeUp
		}
		return OutcomeRevenueUpVolumeDown
	}
	if sim.VolumeDelta >= 0 {
		return OutcomeRevenueDownVolumeUp
	}
	return OutcomeRevenueDownVolDown
}

// Summarize renders the one-sentence summary for a simulation using the
// default negligible band.
func Summarize(sim pricing.SimulationResult) string {
	return SummarizeThreshold(sim, DefaultNegligibleThresholdPct)
}

// SummarizeThreshold renders the summary with an explicit negligible band.
func SummarizeThreshold(sim pricing.SimulationResult, thresholdPct float64) string {
	switch Classify(sim, thresholdPct) {
	case OutcomeNegligible:
		return fmt.Sprintf(
			"A %+.1f%% price change leaves revenue and volume essentially unchanged.",
			sim.PercentageChange)
	case OutcomeRevenueUpVolumeUp:
		return fmt.Sprintf(
			"A %+.1f%% price change raises projected revenue by %.2f%% and volume by %.2f%%.",
			sim.PercentageChange, sim.RevenueDeltaPct, sim.VolumeDeltaPct)
	case OutcomeRevenueUpVolumeDown:
		return fmt.Sprintf(
			"A %+.1f%% price change raises projected revenue by %.2f%% despite a %.2f%% drop in volume.",
			sim.PercentageChange, sim.RevenueDeltaPct, -sim.VolumeDeltaPct)
	case OutcomeRevenueDownVolumeUp:
		return fmt.Sprintf(
			"A %+.1f%% price change lowers projected revenue by %.2f%% even though volume grows %.2f%%.",
			sim.PercentageChange, -sim.RevenueDeltaPct, sim.VolumeDeltaPct)
	default:
		return fmt.Sprintf(
			"A %+.1f%% price change lowers projected revenue by %.2f%% and volume by %.2f%%.",
			sim.PercentageChange, -sim.RevenueDeltaPct, -sim.VolumeDeltaPct)
	}
}

// RiskAdvisoryParams tunes the markdown advisory.
type RiskAdvisoryParams struct {
	// SlopeWarning is the markdown slope (return-rate points per markdown
	// percentage point) above which a category is called out.
	SlopeWarning float64
	// MaxMarkdownPct is the markdown ceiling recommended for flagged
	// categories.
	MaxMarkdownPct float64
}

// RiskAdvisory renders the markdown recommendation for a return-risk
// profile: one sentence naming the categories whose return rate climbs
// fastest with discount depth, or an all-clear.
func RiskAdvisory(profile analysis.ReturnRiskProfile, params RiskAdvisoryParams) string {
	var flagged []string
	for _, c := range profile.Categories {
		if c.Sufficient && c.MarkdownSlope > params.SlopeWarning {
			flagged = append(flagged, c.Category)
		}
	}
	if len(flagged) == 0 {
		return "No category shows a meaningful link between markdown depth and return rate."
	}
	return fmt.Sprintf(
		"Avoid markdowns over %.0f%% for %s: deeper discounts correlate with higher return rates.",
		params.MaxMarkdownPct, joinNames(flagged))
}

func joinNames(names []string) string {
	switch len(names) {
	case 1:
		return fmt.Sprintf("%q", names[0])
	case 2:
		return fmt.Sprintf("%q and %q", names[0], names[1])
	}
	out := ""
	for i, n := range names[:len(names)-1] {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%q", n)
	}
	return out + fmt.Sprintf(" and %q", names[len(names)-1])
}

package main

import (
	"fmt"

	"price-optimizer/internal/analysis"
	"price-optimizer/internal/config"
	"price-optimizer/internal/data"
	"price-optimizer/internal/pricing"
	"price-optimizer/internal/report"
)

// Runs the full pipeline over the built-in sample dataset:
// estimate -> a few what-if simulations -> optimize -> return risk.
func main() {
	cfg := config.Default()
	ds := data.SampleDataset()

	fmt.Printf("Dataset %q: %d records across %v\n", ds.Name, ds.Len(), ds.Categories())

	m, err := pricing.NewEstimator(cfg.EstimatorParams()).Estimate(ds)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Elasticity: coefficient=%.4f baseline price=%.2f volume=%.0f (source: %s)\n\n",
		m.Coefficient, m.BaselinePrice, m.BaselineVolume, m.Source)

	fmt.Println("What-if scenarios:")
	for _, pct := range []float64{-20, -10, 0, 10, 20} {
		sim, err := pricing.Simulate(m, pct)
		if err != nil {
			panic(err)
		}
		fmt.Printf("  %+5.0f%%: price %7.2f volume x%.4f revenue %12.2f (delta %+10.2f)\n",
			pct, sim.NewPrice, sim.VolumeMultiplier, sim.ProjectedRevenue, sim.RevenueDelta)
	}
	fmt.Println()

	res, err := pricing.OptimizeStep(m, cfg.Domain(), cfg.Optimizer.StepPct)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Optimum within [%.0f, %.0f]: %+.1f%% (evaluated %d scenarios)\n",
		cfg.Optimizer.DomainLowPct, cfg.Optimizer.DomainHighPct, res.PercentageChange, res.Evaluated)
	fmt.Println(report.SummarizeThreshold(res.Simulation, cfg.Report.NegligibleThresholdPct))
	fmt.Println()

	profile := analysis.AnalyzeBuckets(ds, cfg.Returns.Buckets)
	fmt.Printf("Return risk: overall rate %.1f%%, markdown slope %+.4f\n",
		profile.Overall.ReturnRate*100, profile.Overall.MarkdownSlope)
	for _, cat := range profile.Categories {
		fmt.Printf("  %-12s rate %.1f%% slope %+.4f sufficient=%v\n",
			cat.Category, cat.ReturnRate*100, cat.MarkdownSlope, cat.Sufficient)
	}
	fmt.Println(report.RiskAdvisory(profile, report.RiskAdvisoryParams{
		SlopeWarning:   cfg.Returns.SlopeWarning,
		MaxMarkdownPct: cfg.Returns.MaxMarkdownPct,
	}))
}

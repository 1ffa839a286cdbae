package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"price-optimizer/internal/analysis"
	"price-optimizer/internal/config"
	"price-optimizer/internal/data"
	"price-optimizer/internal/pricing"
	"price-optimizer/internal/report"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "estimate":
		cmdEstimate(os.Args[2:])
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "optimize":
		cmdOptimize(os.Args[2:])
	case "returns":
		cmdReturns(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli estimate --data transactions.csv")
	fmt.Println("  cli simulate --data transactions.csv --change 10")
	fmt.Println("  cli optimize --data transactions.csv --low -50 --high 50 --out results/scan.csv")
	fmt.Println("  cli returns --data transactions.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - --config points at a YAML config; defaults apply without it")
	fmt.Println("  - optimize writes the full revenue curve to --out when set")
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func cmdEstimate(args []string) {
	fs := flag.NewFlagSet("estimate", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to transactions CSV")
	cfgPath := fs.String("config", "", "Path to YAML config")
	_ = fs.Parse(args)
	requireData(*dataPath)

	cfg := loadConfig(*cfgPath)
	ds, err := data.LoadCSV(*dataPath, filepath.Base(*dataPath))
	if err != nil {
		fatal(err)
	}

	m, err := pricing.NewEstimator(cfg.EstimatorParams()).Estimate(ds)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("Baseline price=%.2f volume=%.0f\n", m.BaselinePrice, m.BaselineVolume)
	fmt.Printf("Elasticity coefficient=%.4f (source: %s)\n", m.Coefficient, m.Source)
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to transactions CSV")
	cfgPath := fs.String("config", "", "Path to YAML config")
	change := fs.Float64("change", 0, "Percentage price change to simulate")
	_ = fs.Parse(args)
	requireData(*dataPath)

	cfg := loadConfig(*cfgPath)
	ds, err := data.LoadCSV(*dataPath, filepath.Base(*dataPath))
	if err != nil {
		fatal(err)
	}

	m, err := pricing.NewEstimator(cfg.EstimatorParams()).Estimate(ds)
	if err != nil {
		fatal(err)
	}
	sim, err := pricing.Simulate(m, *change)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("New price=%.2f volume x%.4f projected revenue=%.2f (delta %+.2f)\n",
		sim.NewPrice, sim.VolumeMultiplier, sim.ProjectedRevenue, sim.RevenueDelta)
	fmt.Println(report.SummarizeThreshold(sim, cfg.Report.NegligibleThresholdPct))
}

func cmdOptimize(args []string) {
	fs := flag.NewFlagSet("optimize", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to transactions CSV")
	cfgPath := fs.String("config", "", "Path to YAML config")
	low := fs.Float64("low", -50, "Domain lower bound (percentage change)")
	high := fs.Float64("high", 50, "Domain upper bound (percentage change)")
	outPath := fs.String("out", "", "Optional: write the scan ledger CSV here")
	_ = fs.Parse(args)
	requireData(*dataPath)

	cfg := loadConfig(*cfgPath)
	ds, err := data.LoadCSV(*dataPath, filepath.Base(*dataPath))
	if err != nil {
		fatal(err)
	}

	m, err := pricing.NewEstimator(cfg.EstimatorParams()).Estimate(ds)
	if err != nil {
		fatal(err)
	}

	domain := pricing.Domain{Low: *low, High: *high}
	res, err := pricing.OptimizeStep(m, domain, cfg.Optimizer.StepPct)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("Optimal change=%+.1f%% (evaluated %d scenarios)\n", res.PercentageChange, res.Evaluated)
	fmt.Println(report.SummarizeThreshold(res.Simulation, cfg.Report.NegligibleThresholdPct))

	if *outPath != "" {
		samples, err := pricing.Scan(m, domain, cfg.Optimizer.StepPct)
		if err != nil {
			fatal(err)
		}
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fatal(err)
		}
		if err := pricing.WriteScanCSV(*outPath, samples); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(samples), *outPath)
	}
}

func cmdReturns(args []string) {
	fs := flag.NewFlagSet("returns", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to transactions CSV")
	cfgPath := fs.String("config", "", "Path to YAML config")
	_ = fs.Parse(args)
	requireData(*dataPath)

	cfg := loadConfig(*cfgPath)
	ds, err := data.LoadCSV(*dataPath, filepath.Base(*dataPath))
	if err != nil {
		fatal(err)
	}

	profile := analysis.AnalyzeBuckets(ds, cfg.Returns.Buckets)
	fmt.Printf("Overall: %d records, return rate %.1f%%, markdown slope %+.4f\n",
		profile.Overall.Records, profile.Overall.ReturnRate*100, profile.Overall.MarkdownSlope)
	for _, cat := range profile.Categories {
		if !cat.Sufficient {
			fmt.Printf("  %-16s %d records, return rate %.1f%% (insufficient data for trend)\n",
				cat.Category, cat.Records, cat.ReturnRate*100)
			continue
		}
		fmt.Printf("  %-16s %d records, return rate %.1f%%, markdown slope %+.4f\n",
			cat.Category, cat.Records, cat.ReturnRate*100, cat.MarkdownSlope)
	}
	fmt.Println(report.RiskAdvisory(profile, report.RiskAdvisoryParams{
		SlopeWarning:   cfg.Returns.SlopeWarning,
		MaxMarkdownPct: cfg.Returns.MaxMarkdownPct,
	}))
}

func requireData(path string) {
	if path == "" {
		fmt.Println("--data is required")
		os.Exit(2)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

package pricing

import (
	"math"
	"testing"
)

func modelWithCoefficient(c float64) *ElasticityModel {
	return &ElasticityModel{
		BaselinePrice:  100,
		BaselineVolume: 1000,
		Coefficient:    c,
		Source:         SourceRegression,
	}
}

func TestOptimize_InelasticGoesToUpperBound(t *testing.T) {
	// Raising price always helps when demand barely responds.
	for _, c := range []float64{-0.5, 0, 0.3} {
		res, err := Optimize(modelWithCoefficient(c), Domain{Low: -50, High: 50})
		if err != nil {
			t.Fatalf("Optimize(c=%v) error: %v", c, err)
		}
		if res.PercentageChange != 50 {
			t.Errorf("Optimize(c=%v) = %v, want upper bound 50", c, res.PercentageChange)
		}
	}
}

func TestOptimize_UnitElasticPrefersNoChange(t *testing.T) {
	// Revenue is flat at c=-1; ties break toward the smallest change.
	res, err := Optimize(modelWithCoefficient(-1), Domain{Low: -50, High: 50})
	if err != nil {
		t.Fatal(err)
	}
	if res.PercentageChange != 0 {
		t.Errorf("optimum = %v, want 0", res.PercentageChange)
	}

	// Zero outside the domain: clamp to the nearest bound.
	res, err = Optimize(modelWithCoefficient(-1), Domain{Low: 10, High: 50})
	if err != nil {
		t.Fatal(err)
	}
	if res.PercentageChange != 10 {
		t.Errorf("optimum = %v, want 10", res.PercentageChange)
	}
}

func TestOptimize_ElasticGoesToLowerBound(t *testing.T) {
	// Under constant elasticity -2 revenue strictly increases as price
	// falls, so the optimum sits at the domain's lower bound.
	res, err := Optimize(modelWithCoefficient(-2), Domain{Low: -50, High: 50})
	if err != nil {
		t.Fatal(err)
	}
	if res.PercentageChange != -50 {
		t.Errorf("optimum = %v, want lower bound -50", res.PercentageChange)
	}
	if res.Evaluated < 1000 {
		t.Errorf("evaluated %d scenarios, want a full scan", res.Evaluated)
	}
}

func TestOptimize_DominatesDenseSample(t *testing.T) {
	domain := Domain{Low: -50, High: 50}
	for _, c := range []float64{-2.5, -2, -1.2, -1, -0.4, 0.5} {
		m := modelWithCoefficient(c)
		res, err := Optimize(m, domain)
		if err != nil {
			t.Fatalf("Optimize(c=%v) error: %v", c, err)
		}
		for pct := domain.Low; pct <= domain.High; pct++ {
			sim, err := Simulate(m, pct)
			if err != nil {
				t.Fatal(err)
			}
			if sim.ProjectedRevenue > res.Simulation.ProjectedRevenue+1e-6 {
				t.Errorf("c=%v: revenue at %v%% (%v) beats optimum at %v%% (%v)",
					c, pct, sim.ProjectedRevenue, res.PercentageChange, res.Simulation.ProjectedRevenue)
			}
		}
	}
}

func TestOptimize_InvalidDomain(t *testing.T) {
	m := modelWithCoefficient(-2)
	if _, err := Optimize(m, Domain{Low: 50, High: -50}); err == nil {
		t.Error("inverted domain: want error")
	}
	if _, err := Optimize(m, Domain{Low: -95, High: 50}); err == nil {
		t.Error("domain below supported range: want error")
	}
	if _, err := OptimizeStep(m, Domain{Low: -50, High: 50}, 0); err == nil {
		t.Error("zero step: want error")
	}
}

func TestScan_CoversBothBounds(t *testing.T) {
	m := modelWithCoefficient(-2)
	samples, err := Scan(m, Domain{Low: -10, High: 10}, 0.3)
	if err != nil {
		t.Fatal(err)
	}
	first := samples[0].PercentageChange
	last := samples[len(samples)-1].PercentageChange
	if first != -10 {
		t.Errorf("first sample = %v, want -10", first)
	}
	if math.Abs(last-10) > 1e-9 {
		t.Errorf("last sample = %v, want 10", last)
	}
}

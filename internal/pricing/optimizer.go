package pricing

import (
	"fmt"
	"math"
)

// DefaultScanStepPct is the scan resolution in percentage points.
const DefaultScanStepPct = 0.1

// Domain bounds the percentage changes an optimization may consider.
type Domain struct {
	Low  float64
	High float64
}

func (d Domain) Validate() error {
	if d.Low > d.High {
		return fmt.Errorf("domain low %.2f exceeds high %.2f", d.Low, d.High)
	}
	if d.Low < MinChangePct || d.High > MaxChangePct {
		return &OutOfRangeError{Value: d.Low, Low: MinChangePct, High: MaxChangePct}
	}
	return nil
}

// clamp returns x limited to the domain.
func (d Domain) clamp(x float64) float64 {
	if x < d.Low {
		return d.Low
	}
	if x > d.High {
		return d.High
	}
	return x
}

// OptimizationResult is the revenue-maximizing scenario within a domain.
type OptimizationResult struct {
	PercentageChange float64
	Simulation       SimulationResult
	Evaluated        int
}

// ScanSample is one evaluated point of an optimization scan, kept in scan
// order so callers can export the full revenue curve.
type ScanSample struct {
	PercentageChange float64
	NewPrice         float64
	VolumeMultiplier float64
	ProjectedVolume  float64
	ProjectedRevenue float64
}

// Optimize finds the percentage change maximizing projected revenue within
// the domain.
//
// Under constant elasticity, revenue(pct) = R0 * (1+pct/100)^(c+1), which
// is monotone in price, so two cases are closed-form and handled as
// explicit branches rather than scan artifacts:
//   - c > -1 (inelastic or upward-sloping data): revenue rises with price;
//     the optimum is the upper domain bound.
//   - c == -1 (unit elastic): revenue is flat; ties break toward the
//     smallest absolute change, i.e. zero clamped into the domain.
//
// For c < -1 a deterministic fixed-step scan selects the argmax, with ties
// broken by the smallest absolute percentage change (minimal disruption).
func Optimize(m *ElasticityModel, domain Domain) (OptimizationResult, error) {
	return OptimizeStep(m, domain, DefaultScanStepPct)
}

// OptimizeStep is Optimize with an explicit scan resolution.
func OptimizeStep(m *ElasticityModel, domain Domain, stepPct float64) (OptimizationResult, error) {
	if err := domain.Validate(); err != nil {
		return OptimizationResult{}, err
	}
	if stepPct <= 0 {
		return OptimizationResult{}, fmt.Errorf("scan step must be > 0, got %v", stepPct)
	}

	if m.Coefficient > -1 {
		sim, err := Simulate(m, domain.High)
		if err != nil {
			return OptimizationResult{}, err
		}
		return OptimizationResult{PercentageChange: domain.High, Simulation: sim, Evaluated: 1}, nil
	}
	if m.Coefficient == -1 {
		pct := domain.clamp(0)
		sim, err := Simulate(m, pct)
		if err != nil {
			return OptimizationResult{}, err
		}
		return OptimizationResult{PercentageChange: pct, Simulation: sim, Evaluated: 1}, nil
	}

	samples, err := Scan(m, domain, stepPct)
	if err != nil {
		return OptimizationResult{}, err
	}

	best := samples[0]
	for _, s := range samples[1:] {
		if s.ProjectedRevenue > best.ProjectedRevenue {
			best = s
			continue
		}
		if s.ProjectedRevenue == best.ProjectedRevenue &&
			math.Abs(s.PercentageChange) < math.Abs(best.PercentageChange) {
			best = s
		}
	}

	sim, err := Simulate(m, best.PercentageChange)
	if err != nil {
		return OptimizationResult{}, err
	}
	return OptimizationResult{
		PercentageChange: best.PercentageChange,
		Simulation:       sim,
		Evaluated:        len(samples),
	}, nil
}

// Scan evaluates the domain at a fixed step, always including both bounds.
func Scan(m *ElasticityModel, domain Domain, stepPct float64) ([]ScanSample, error) {
	if err := domain.Validate(); err != nil {
		return nil, err
	}
	if stepPct <= 0 {
		return nil, fmt.Errorf("scan step must be > 0, got %v", stepPct)
	}

	steps := int(math.Floor((domain.High-domain.Low)/stepPct + 1e-9))
	samples := make([]ScanSample, 0, steps+2)
	for i := 0; i <= steps; i++ {
		pct := domain.Low + float64(i)*stepPct
		if pct > domain.High {
			pct = domain.High
		}
		sim, err := Simulate(m, pct)
		if err != nil {
			return nil, err
		}
		samples = append(samples, toSample(sim))
	}
	// The step grid may stop short of the upper bound.
	if last := samples[len(samples)-1].PercentageChange; last < domain.High {
		sim, err := Simulate(m, domain.High)
		if err != nil {
			return nil, err
		}
		samples = append(samples, toSample(sim))
	}
	return samples, nil
}

func toSample(sim SimulationResult) ScanSample {
	return ScanSample{
		PercentageChange: sim.PercentageChange,
		NewPrice:         sim.NewPrice,
		VolumeMultiplier: sim.VolumeMultiplier,
		ProjectedVolume:  sim.ProjectedVolume,
		ProjectedRevenue: sim.ProjectedRevenue,
	}
}

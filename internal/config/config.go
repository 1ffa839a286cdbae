package config

import (
	"errors"
	"fmt"
	"os"

	"price-optimizer/internal/pricing"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Elasticity ElasticityConfig `yaml:"elasticity"`
	Optimizer  OptimizerConfig  `yaml:"optimizer"`
	Report     ReportConfig     `yaml:"report"`
	Returns    ReturnsConfig    `yaml:"returns"`
}

type ElasticityConfig struct {
	// DefaultCoefficient is used only when a dataset has zero price
	// variance. A pointer so an omitted key keeps the built-in fallback
	// while an explicit 0 disables it and such datasets are rejected.
	DefaultCoefficient *float64 `yaml:"default_coefficient"`
	MinRecords         int      `yaml:"min_records"`
}

type OptimizerConfig struct {
	StepPct       float64 `yaml:"step_pct"`
	DomainLowPct  float64 `yaml:"domain_low_pct"`
	DomainHighPct float64 `yaml:"domain_high_pct"`
}

type ReportConfig struct {
	NegligibleThresholdPct float64 `yaml:"negligible_threshold_pct"`
}

type ReturnsConfig struct {
	Buckets        int     `yaml:"buckets"`
	SlopeWarning   float64 `yaml:"slope_warning"`
	MaxMarkdownPct float64 `yaml:"max_markdown_pct"`
}

// Default returns the configuration used when no file is supplied.
// The -1.5 fallback coefficient matches the assumption the original
// analysis made for fashion retail.
func Default() *Config {
	fallback := -1.5
	return &Config{
		Elasticity: ElasticityConfig{
			DefaultCoefficient: &fallback,
			MinRecords:         2,
		},
		Optimizer: OptimizerConfig{
			StepPct:       pricing.DefaultScanStepPct,
			DomainLowPct:  -50,
			DomainHighPct: 50,
		},
		Report: ReportConfig{
			NegligibleThresholdPct: 0.05,
		},
		Returns: ReturnsConfig{
			Buckets:        10,
			SlopeWarning:   0.002,
			MaxMarkdownPct: 30,
		},
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads config and fills zero values with defaults, but does
// not validate. Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	applyDefaults(&c)
	return &c, nil
}

// applyDefaults fills unset fields so configs can stay concise.
func applyDefaults(c *Config) {
	d := Default()
	if c.Elasticity.DefaultCoefficient == nil {
		c.Elasticity.DefaultCoefficient = d.Elasticity.DefaultCoefficient
	}
	if c.Elasticity.MinRecords == 0 {
		c.Elasticity.MinRecords = d.Elasticity.MinRecords
	}
	if c.Optimizer.StepPct == 0 {
		c.Optimizer.StepPct = d.Optimizer.StepPct
	}
	if c.Optimizer.DomainLowPct == 0 && c.Optimizer.DomainHighPct == 0 {
		c.Optimizer.DomainLowPct = d.Optimizer.DomainLowPct
		c.Optimizer.DomainHighPct = d.Optimizer.DomainHighPct
	}
	if c.Report.NegligibleThresholdPct == 0 {
		c.Report.NegligibleThresholdPct = d.Report.NegligibleThresholdPct
	}
	if c.Returns.Buckets == 0 {
		c.Returns.Buckets = d.Returns.Buckets
	}
	if c.Returns.SlopeWarning == 0 {
		c.Returns.SlopeWarning = d.Returns.SlopeWarning
	}
	if c.Returns.MaxMarkdownPct == 0 {
		c.Returns.MaxMarkdownPct = d.Returns.MaxMarkdownPct
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Elasticity.MinRecords < 2 {
		return errors.New("elasticity.min_records must be >= 2")
	}
	if c.Optimizer.StepPct <= 0 {
		return errors.New("optimizer.step_pct must be > 0")
	}
	if err := c.Domain().Validate(); err != nil {
		return fmt.Errorf("optimizer domain invalid: %w", err)
	}
	if c.Report.NegligibleThresholdPct < 0 {
		return errors.New("report.negligible_threshold_pct must be >= 0")
	}
	if c.Returns.Buckets < 1 {
		return errors.New("returns.buckets must be >= 1")
	}
	if c.Returns.MaxMarkdownPct < 0 || c.Returns.MaxMarkdownPct > 100 {
		return errors.New("returns.max_markdown_pct must be in [0, 100]")
	}
	return nil
}

// Domain returns the optimizer search domain.
func (c *Config) Domain() pricing.Domain {
	return pricing.Domain{Low: c.Optimizer.DomainLowPct, High: c.Optimizer.DomainHighPct}
}

// EstimatorParams returns the estimator settings. A nil coefficient (a
// config built by hand, not through Load) means no fallback.
func (c *Config) EstimatorParams() pricing.EstimatorParams {
	p := pricing.EstimatorParams{MinRecords: c.Elasticity.MinRecords}
	if c.Elasticity.DefaultCoefficient != nil {
		p.DefaultCoefficient = *c.Elasticity.DefaultCoefficient
	}
	return p
}

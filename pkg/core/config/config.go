// Package config loads server settings, default assumption values and
// the slider bounds published to the presentation layer. Bounds are
// advisory: the core never enforces them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Range is an advisory [Min, Max] slider bound.
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Defaults are the pre-filled assumption values of the two pages.
type Defaults struct {
	InitialRevenue float64 `yaml:"initial_revenue" json:"initial_revenue"`
	GrowthRate     float64 `yaml:"growth_rate" json:"growth_rate"`
	EBITMargin     float64 `yaml:"ebit_margin" json:"ebit_margin"`
	TaxRate        float64 `yaml:"tax_rate" json:"tax_rate"`
	CapexPct       float64 `yaml:"capex_pct" json:"capex_pct"`
	WCChangePct    float64 `yaml:"wc_change_pct" json:"wc_change_pct"`
	Depreciation   float64 `yaml:"depreciation" json:"depreciation"`
	DiscountRate   float64 `yaml:"discount_rate" json:"discount_rate"`
	TerminalGrowth float64 `yaml:"terminal_growth" json:"terminal_growth"`

	MonteCarloRateMean   float64 `yaml:"monte_carlo_rate_mean" json:"monte_carlo_rate_mean"`
	MonteCarloRateStdDev float64 `yaml:"monte_carlo_rate_std_dev" json:"monte_carlo_rate_std_dev"`
	MonteCarloRuns       int     `yaml:"monte_carlo_runs" json:"monte_carlo_runs"`
}

// Bounds are the slider ranges the UI constrains its inputs to. The
// discount-rate and terminal-growth ranges are deliberately disjoint so
// the UI cannot drive the DCF into its degenerate r == g case.
type Bounds struct {
	GrowthRate     Range `yaml:"growth_rate" json:"growth_rate"`
	EBITMargin     Range `yaml:"ebit_margin" json:"ebit_margin"`
	TaxRate        Range `yaml:"tax_rate" json:"tax_rate"`
	CapexPct       Range `yaml:"capex_pct" json:"capex_pct"`
	WCChangePct    Range `yaml:"wc_change_pct" json:"wc_change_pct"`
	DiscountRate   Range `yaml:"discount_rate" json:"discount_rate"`
	TerminalGrowth Range `yaml:"terminal_growth" json:"terminal_growth"`
}

// Config is the full server configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Defaults Defaults `yaml:"defaults"`
	Bounds   Bounds   `yaml:"bounds"`
}

// Default returns the built-in configuration, used when no config file
// is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Addr = ":8080"
	cfg.Defaults = Defaults{
		InitialRevenue:       5000000,
		GrowthRate:           0.10,
		EBITMargin:           0.20,
		TaxRate:              0.25,
		CapexPct:             0.05,
		WCChangePct:          0.02,
		Depreciation:         100000,
		DiscountRate:         0.10,
		TerminalGrowth:       0.03,
		MonteCarloRateMean:   0.10,
		MonteCarloRateStdDev: 0.02,
		MonteCarloRuns:       1000,
	}
	cfg.Bounds = Bounds{
		GrowthRate:     Range{0, 0.5},
		EBITMargin:     Range{0, 0.5},
		TaxRate:        Range{0, 0.5},
		CapexPct:       Range{0, 0.3},
		WCChangePct:    Range{0, 0.1},
		DiscountRate:   Range{0.05, 0.15},
		TerminalGrowth: Range{0.01, 0.05},
	}
	return cfg
}

// Load reads a yaml config file, layering it over the built-in defaults
// so a partial file only overrides what it names.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

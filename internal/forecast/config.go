package forecast

import "github.com/creasty/defaults"

// Config holds the engine tunables. The flatness threshold and plot-point
// count are empirical values; they are named here so deployments can
// override them instead of re-tuning constants in code.
type Config struct {
	// PriceFloor clamps prices before any log transform.
	PriceFloor float64 `yaml:"price_floor" default:"1e-9"`
	// FlatnessThreshold is the relative deviation from the last close under
	// which a drift forecast counts as degenerate (flat) and falls back to
	// the trend model.
	FlatnessThreshold float64 `yaml:"flatness_threshold" default:"0.001"`
	// TargetPlotPoints bounds how many future points a sparse series carries.
	TargetPlotPoints int `yaml:"target_plot_points" default:"30"`
	// MinTrendPoints is the minimum history length for the log-linear model.
	MinTrendPoints int `yaml:"min_trend_points" default:"10"`
	// MinDriftPoints is the minimum history length for the drift model.
	MinDriftPoints int `yaml:"min_drift_points" default:"30"`
	// DriftEnabled gates the drift model entirely, so both selection paths
	// can be forced deterministically.
	DriftEnabled bool `yaml:"drift_enabled" default:"true"`
}

// Option overrides a Config field after defaults are applied.
type Option func(*Config)

// WithDriftEnabled toggles the drift model.
func WithDriftEnabled(on bool) Option {
	return func(c *Config) {
		c.DriftEnabled = on
	}
}

// WithFlatnessThreshold sets the degeneracy threshold.
func WithFlatnessThreshold(v float64) Option {
	return func(c *Config) {
		c.FlatnessThreshold = v
	}
}

// WithTargetPlotPoints sets the plotted-point budget per series.
func WithTargetPlotPoints(n int) Option {
	return func(c *Config) {
		c.TargetPlotPoints = n
	}
}

// WithMinPoints sets the minimum history lengths for trend and drift.
func WithMinPoints(trend, drift int) Option {
	return func(c *Config) {
		c.MinTrendPoints = trend
		c.MinDriftPoints = drift
	}
}

// WithPriceFloor sets the positive clamp applied before log transforms.
func WithPriceFloor(v float64) Option {
	return func(c *Config) {
		c.PriceFloor = v
	}
}

func newConfig(opts ...Option) Config {
	var c Config
	_ = defaults.Set(&c)
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Package forecast produces point forecasts for a daily price series at
// three horizons (3m/6m/1y) plus sparse chart series aligned on a shared
// x-axis. Two models are fitted per request: a random-walk-with-drift model
// and a log-linear trend. The drift model is preferred when it disagrees
// meaningfully with "no change"; otherwise the trend model guarantees a
// directional forecast. The engine is pure and safe for concurrent use.
package forecast

import "math"

// Horizon is a forecast distance in trading-day steps. Tags match the JSON
// field suffixes of the public API (pred_3m, series3m, ...).
type Horizon struct {
	Tag   string
	Steps int
}

// Horizons is the fixed set of forecast horizons.
var Horizons = [3]Horizon{
	{Tag: "3m", Steps: 90},
	{Tag: "6m", Steps: 180},
	{Tag: "1y", Steps: 365},
}

// padSteps pads every series out to the 1y horizon so all three share one
// chart timeline.
const padSteps = 365

// Model identifies which forecaster produced a horizon's output.
type Model string

const (
	ModelDrift Model = "drift"
	ModelTrend Model = "trend"
	ModelNone  Model = "none"
)

// HorizonForecast is one horizon's outcome. Final is nil when no model
// could run; Series slots are nil where nothing is plotted.
type HorizonForecast struct {
	Final  *float64
	Series []*float64
	Model  Model
}

// Result bundles the three horizons. TotalLen is identical across them.
type Result struct {
	TotalLen int
	Horizons map[string]HorizonForecast
}

// Selector orchestrates the two models and the fallback policy.
type Selector struct {
	cfg Config
}

func NewSelector(opts ...Option) *Selector {
	return &Selector{cfg: newConfig(opts...)}
}

// Config returns the effective engine configuration.
func (s *Selector) Config() Config {
	return s.cfg
}

// Run computes forecasts for every horizon. It never fails: horizons that
// no model can serve come back all-absent, and the caller decides how to
// surface that.
func (s *Selector) Run(prices []float64) Result {
	res := Result{Horizons: make(map[string]HorizonForecast, len(Horizons))}

	n := len(prices)
	if n == 0 {
		for _, h := range Horizons {
			res.Horizons[h.Tag] = HorizonForecast{Model: ModelNone}
		}
		return res
	}

	lastIdx := n - 1
	last := prices[lastIdx]
	res.TotalLen = lastIdx + padSteps + 1

	for _, h := range Horizons {
		res.Horizons[h.Tag] = s.runHorizon(prices, last, h, res.TotalLen)
	}
	return res
}

// runHorizon applies the selection policy for a single horizon: accept the
// drift forecast only when it deviates from the last close by more than the
// flatness threshold, otherwise fall back to the trend model.
func (s *Selector) runHorizon(prices []float64, last float64, h Horizon, totalLen int) HorizonForecast {
	if s.cfg.DriftEnabled {
		if final, series := driftForecast(s.cfg, prices, h.Steps, totalLen); final != nil {
			if relDeviation(*final, last) > s.cfg.FlatnessThreshold {
				return HorizonForecast{Final: final, Series: series, Model: ModelDrift}
			}
		}
	}

	if final, series := trendForecast(s.cfg, prices, h.Steps, totalLen); final != nil {
		return HorizonForecast{Final: final, Series: series, Model: ModelTrend}
	}

	return HorizonForecast{Model: ModelNone}
}

func relDeviation(forecast, last float64) float64 {
	den := last
	if den < 1e-9 {
		den = 1e-9
	}
	return math.Abs(forecast-last) / den
}

package forecast

import "math"

// driftForecast fits a random walk with drift, i.e. an integrated model of
// order 1 with a constant: the first difference of the series is modeled as
// a constant mean. The k-step forecast is last + k*drift.
//
// Returns (nil, nil) when the history is shorter than MinDriftPoints or when
// the fit turns up non-finite values. Both outcomes are recoverable; the
// selector falls back to the trend model.
func driftForecast(cfg Config, prices []float64, horizon, totalLen int) (*float64, []*float64) {
	n := len(prices)
	if n < cfg.MinDriftPoints {
		return nil, nil
	}

	arr := clampFloor(prices, cfg.PriceFloor)

	var sum float64
	for i := 1; i < n; i++ {
		sum += arr[i] - arr[i-1]
	}
	drift := sum / float64(n-1)
	if math.IsNaN(drift) || math.IsInf(drift, 0) {
		return nil, nil
	}

	lastIdx := n - 1
	last := arr[lastIdx]

	future := make([]float64, horizon)
	for s := 1; s <= horizon; s++ {
		v := last + drift*float64(s)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, nil
		}
		future[s-1] = v
	}

	series := padSparse(totalLen, lastIdx, future, horizon, cfg.TargetPlotPoints)
	series[lastIdx] = &last

	final := future[horizon-1]
	return &final, series
}

package forecast

import "math"

// trendForecast fits an exponential trend by ordinary least squares on
// ln(price) against the day index and extrapolates horizon steps ahead.
// The fitted curve is rescaled so that step 0 matches the last close
// exactly, keeping the plotted forecast continuous with history.
//
// Returns (nil, nil) when the history is shorter than MinTrendPoints.
func trendForecast(cfg Config, prices []float64, horizon, totalLen int) (*float64, []*float64) {
	n := len(prices)
	if n < cfg.MinTrendPoints {
		return nil, nil
	}

	arr := clampFloor(prices, cfg.PriceFloor)

	ys := make([]float64, n)
	var xbar, ybar float64
	for i, p := range arr {
		ys[i] = math.Log(p)
		xbar += float64(i)
		ybar += ys[i]
	}
	xbar /= float64(n)
	ybar /= float64(n)

	var num, den float64
	for i, y := range ys {
		dx := float64(i) - xbar
		num += dx * (y - ybar)
		den += dx * dx
	}
	slope := 0.0
	if den != 0 {
		slope = num / den
	}
	intercept := ybar - slope*xbar

	fit := func(k int) float64 {
		return math.Exp(intercept + slope*float64(k))
	}

	lastIdx := n - 1
	last := arr[lastIdx]

	// The regression line rarely passes exactly through the last observation;
	// scale every forecast so the curve starts from the last close.
	adjust := 1.0
	if m := fit(lastIdx); m > 0 {
		adjust = last / m
	}

	future := make([]float64, horizon)
	for s := 1; s <= horizon; s++ {
		future[s-1] = fit(lastIdx+s) * adjust
	}

	series := padSparse(totalLen, lastIdx, future, horizon, cfg.TargetPlotPoints)
	series[lastIdx] = &last

	final := future[horizon-1]
	return &final, series
}

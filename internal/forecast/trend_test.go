package forecast

import (
	"math"
	"testing"
)

func constantSeries(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func geometricSeries(n int, start, ratio float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start * math.Pow(ratio, float64(i))
	}
	return out
}

func TestTrendTooShort(t *testing.T) {
	cfg := newConfig()
	final, series := trendForecast(cfg, constantSeries(9, 100), 90, 475)
	if final != nil || series != nil {
		t.Fatalf("expected absent result for 9 points")
	}
}

func TestTrendAlwaysSucceedsAtMinLength(t *testing.T) {
	cfg := newConfig()
	prices := constantSeries(10, 100)
	final, series := trendForecast(cfg, prices, 90, 9+365+1)
	if final == nil || series == nil {
		t.Fatalf("expected forecast for 10 points")
	}
}

func TestTrendConstantSeries(t *testing.T) {
	cfg := newConfig()
	prices := constantSeries(40, 100)
	final, _ := trendForecast(cfg, prices, 365, 39+365+1)
	if final == nil {
		t.Fatalf("expected forecast")
	}
	if math.Abs(*final-100) > 1e-6 {
		t.Fatalf("constant series should forecast ~100, got %v", *final)
	}
}

func TestTrendRecoversGeometricGrowth(t *testing.T) {
	cfg := newConfig()
	prices := geometricSeries(100, 100, 1.001)
	last := prices[len(prices)-1]
	final, _ := trendForecast(cfg, prices, 365, 99+365+1)
	if final == nil {
		t.Fatalf("expected forecast")
	}
	// slope ~ ln(1.001) per step, so the 1y forecast is ~ last * 1.001^365.
	want := last * math.Pow(1.001, 365)
	if math.Abs(*final-want)/want > 1e-6 {
		t.Fatalf("expected ~%v, got %v", want, *final)
	}
	if *final <= last {
		t.Fatalf("1y forecast %v should exceed current price %v", *final, last)
	}
}

func TestTrendAnchorContinuity(t *testing.T) {
	cfg := newConfig()
	prices := geometricSeries(50, 200, 1.002)
	lastIdx := len(prices) - 1
	_, series := trendForecast(cfg, prices, 90, lastIdx+365+1)
	if series[lastIdx] == nil {
		t.Fatalf("anchor slot must be set")
	}
	if *series[lastIdx] != prices[lastIdx] {
		t.Fatalf("anchor %v must equal last price %v", *series[lastIdx], prices[lastIdx])
	}
}

func TestTrendClampsNonPositivePrices(t *testing.T) {
	cfg := newConfig()
	prices := constantSeries(20, 100)
	prices[3] = 0
	prices[7] = -5
	final, _ := trendForecast(cfg, prices, 90, 19+365+1)
	if final == nil {
		t.Fatalf("expected forecast despite non-positive input")
	}
	if math.IsNaN(*final) || math.IsInf(*final, 0) {
		t.Fatalf("forecast must stay finite, got %v", *final)
	}
}

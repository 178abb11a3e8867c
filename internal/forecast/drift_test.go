package forecast

import (
	"math"
	"testing"
)

func linearSeries(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

func TestDriftTooShort(t *testing.T) {
	cfg := newConfig()
	final, series := driftForecast(cfg, constantSeries(29, 100), 90, 28+365+1)
	if final != nil || series != nil {
		t.Fatalf("expected absent result for 29 points")
	}
}

func TestDriftConstantSeriesIsFlat(t *testing.T) {
	cfg := newConfig()
	final, _ := driftForecast(cfg, constantSeries(40, 100), 365, 39+365+1)
	if final == nil {
		t.Fatalf("expected forecast for 40 points")
	}
	if math.Abs(*final-100) > 100*0.001 {
		t.Fatalf("constant series should stay within 0.1%% of 100, got %v", *final)
	}
}

func TestDriftLinearSeries(t *testing.T) {
	cfg := newConfig()
	prices := linearSeries(60, 100, 0.5)
	last := prices[len(prices)-1]
	final, _ := driftForecast(cfg, prices, 90, 59+365+1)
	if final == nil {
		t.Fatalf("expected forecast")
	}
	// mean first difference is exactly 0.5, so 90 steps out is last + 45.
	want := last + 0.5*90
	if math.Abs(*final-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, *final)
	}
}

func TestDriftFittingFailureIsRecoverable(t *testing.T) {
	cfg := newConfig()
	prices := constantSeries(40, 100)
	prices[20] = math.NaN()
	final, series := driftForecast(cfg, prices, 90, 39+365+1)
	if final != nil || series != nil {
		t.Fatalf("non-finite input must yield the failure outcome, not a panic")
	}
}

func TestDriftAnchorContinuity(t *testing.T) {
	cfg := newConfig()
	prices := linearSeries(45, 300, 1.25)
	lastIdx := len(prices) - 1
	_, series := driftForecast(cfg, prices, 180, lastIdx+365+1)
	if series[lastIdx] == nil || *series[lastIdx] != prices[lastIdx] {
		t.Fatalf("anchor slot must equal last price")
	}
}

package usecase

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/nsurendrareddy/Crypto-Price-Predictor/internal/domain/models"
	"github.com/nsurendrareddy/Crypto-Price-Predictor/internal/forecast"
	"github.com/nsurendrareddy/Crypto-Price-Predictor/pkg/cache"
)

type fakeSource struct {
	closes     []float64
	chartCalls int
}

func (f *fakeSource) SimplePrice(_ context.Context, ids, vs string) (models.SimplePrices, error) {
	return models.SimplePrices{"bitcoin": {vs: 100}}, nil
}

func (f *fakeSource) MarketChart(_ context.Context, coinID, vs string, days int) (*models.MarketChart, error) {
	f.chartCalls++
	pts := make([]models.PricePoint, len(f.closes))
	for i, c := range f.closes {
		pts[i] = models.PricePoint{float64(i) * 86400000, c}
	}
	return &models.MarketChart{Prices: pts}, nil
}

func (f *fakeSource) Markets(_ context.Context, ids, vs string) ([]models.Market, error) {
	return []models.Market{{ID: "bitcoin", Symbol: "btc"}}, nil
}

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func newTestPredictor(src *fakeSource, c cache.Service) *Predictor {
	ttls := CacheTTLs{Price: 20 * time.Second, History: 2 * time.Minute, Markets: 40 * time.Second}
	return NewPredictor(src, forecast.NewSelector(), c, nil, nil, ttls, 365)
}

func TestPredictFlatSeriesFallsBackToTrend(t *testing.T) {
	src := &fakeSource{closes: constant(40, 100)}
	p := newTestPredictor(src, nil)

	pred, err := p.Predict(context.Background(), "bitcoin", "BTC", "inr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pred.CurrentPrice != 100 {
		t.Fatalf("unexpected current price %v", pred.CurrentPrice)
	}
	for _, f := range []*float64{pred.Pred3M, pred.Pred6M, pred.Pred1Y} {
		if f == nil {
			t.Fatalf("expected forecast")
		}
		if math.Abs(*f-100) > 1e-6 {
			t.Fatalf("constant series should forecast ~100, got %v", *f)
		}
	}
	if len(pred.Series1Y) != 39+365+1 {
		t.Fatalf("unexpected series length %d", len(pred.Series1Y))
	}
}

func TestPredictShortHistoryYieldsNulls(t *testing.T) {
	src := &fakeSource{closes: constant(5, 100)}
	p := newTestPredictor(src, nil)

	pred, err := p.Predict(context.Background(), "bitcoin", "BTC", "inr")
	if err != nil {
		t.Fatalf("short history must not be an error: %v", err)
	}
	if pred.Available() {
		t.Fatalf("expected no prediction available")
	}
	if pred.Pred3M != nil || pred.Series3M != nil {
		t.Fatalf("expected null forecast and series")
	}
}

func TestHistoryUsesCache(t *testing.T) {
	src := &fakeSource{closes: constant(40, 100)}
	mc := cache.NewMemoryCache()
	defer mc.Close()
	p := newTestPredictor(src, mc)

	ctx := context.Background()
	if _, err := p.History(ctx, "bitcoin", "inr", 365); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if _, err := p.History(ctx, "bitcoin", "inr", 365); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if src.chartCalls != 1 {
		t.Fatalf("expected one upstream call, got %d", src.chartCalls)
	}
}

func TestCachedHistorySurvivesRoundTrip(t *testing.T) {
	src := &fakeSource{closes: constant(40, 123.45)}
	mc := cache.NewMemoryCache()
	defer mc.Close()
	p := newTestPredictor(src, mc)

	ctx := context.Background()
	if _, err := p.History(ctx, "bitcoin", "inr", 365); err != nil {
		t.Fatalf("prime cache: %v", err)
	}
	chart, err := p.History(ctx, "bitcoin", "inr", 365)
	if err != nil {
		t.Fatalf("cached fetch: %v", err)
	}
	closes := chart.Closes()
	if len(closes) != 40 || closes[0] != 123.45 {
		t.Fatalf("cache corrupted the chart: %v", closes[:1])
	}
}

package usecase

import (
	"context"
	"time"

	"github.com/nsurendrareddy/Crypto-Price-Predictor/internal/domain/models"
	drepo "github.com/nsurendrareddy/Crypto-Price-Predictor/internal/domain/repository"
	"github.com/nsurendrareddy/Crypto-Price-Predictor/internal/forecast"
	"github.com/nsurendrareddy/Crypto-Price-Predictor/pkg/cache"
	xhttp "github.com/nsurendrareddy/Crypto-Price-Predictor/pkg/http"
	xlogger "github.com/nsurendrareddy/Crypto-Price-Predictor/pkg/logger"
)

// TTLs for the upstream response cache, per endpoint.
type CacheTTLs struct {
	Price   time.Duration
	History time.Duration
	Markets time.Duration
}

// Predictor orchestrates the upstream data source, the forecasting engine
// and the response cache. The engine itself is pure; caching and metrics
// wrap only the upstream fetches.
type Predictor struct {
	source      drepo.MarketDataSource
	engine      *forecast.Selector
	cache       cache.Service
	metrics     drepo.Metrics
	logger      *xlogger.Logger
	ttls        CacheTTLs
	historyDays int
}

func NewPredictor(
	source drepo.MarketDataSource,
	engine *forecast.Selector,
	c cache.Service,
	metrics drepo.Metrics,
	logger *xlogger.Logger,
	ttls CacheTTLs,
	historyDays int,
) *Predictor {
	if historyDays <= 0 {
		historyDays = 365
	}
	return &Predictor{
		source:      source,
		engine:      engine,
		cache:       c,
		metrics:     metrics,
		logger:      logger,
		ttls:        ttls,
		historyDays: historyDays,
	}
}

// Predict fetches one year of daily closes and runs the forecasting engine.
// A series too short for any model yields a well-formed response with null
// forecasts; only a missing history is an error.
func (p *Predictor) Predict(ctx context.Context, coinID, symbol, vsCurrency string) (*models.Prediction, error) {
	chart, err := p.History(ctx, coinID, vsCurrency, p.historyDays)
	if err != nil {
		return nil, err
	}

	closes := chart.Closes()
	if len(closes) == 0 {
		return nil, xhttp.NotFoundErrorf("no price history for %s", coinID)
	}
	current := closes[len(closes)-1]

	res := p.engine.Run(closes)

	pred := &models.Prediction{
		Symbol:       symbol,
		ID:           coinID,
		Currency:     vsCurrency,
		CurrentPrice: current,
	}
	for _, h := range forecast.Horizons {
		hf := res.Horizons[h.Tag]
		p.recordHorizon(hf, h.Tag)
		switch h.Tag {
		case "3m":
			pred.Pred3M, pred.Series3M = hf.Final, hf.Series
		case "6m":
			pred.Pred6M, pred.Series6M = hf.Final, hf.Series
		case "1y":
			pred.Pred1Y, pred.Series1Y = hf.Final, hf.Series
		}
	}

	if p.metrics != nil {
		p.metrics.RecordLastPrice(coinID, current)
	}
	if p.logger != nil {
		p.logger.Debug("forecast computed",
			xlogger.String("coin", coinID),
			xlogger.Int("history", len(closes)),
			xlogger.Bool("available", pred.Available()),
		)
	}
	return pred, nil
}

func (p *Predictor) recordHorizon(hf forecast.HorizonForecast, tag string) {
	if p.metrics == nil || hf.Model == forecast.ModelNone {
		return
	}
	p.metrics.RecordForecast(string(hf.Model), tag)
	// The trend model answering while drift is enabled means the drift fit
	// was flat or failed for this horizon.
	if hf.Model == forecast.ModelTrend && p.engine.Config().DriftEnabled {
		p.metrics.RecordFallback(tag)
	}
}

// History returns the cached market chart for a coin.
func (p *Predictor) History(ctx context.Context, coinID, vsCurrency string, days int) (*models.MarketChart, error) {
	key := cache.GenerateKeyWithParams("hist", coinID, vsCurrency, days)

	var cached models.MarketChart
	if p.lookup(ctx, "history", key, &cached) {
		return &cached, nil
	}

	chart, err := p.fetchChart(ctx, coinID, vsCurrency, days)
	if err != nil {
		return nil, err
	}
	p.store(ctx, key, chart, p.ttls.History)
	return chart, nil
}

// SimplePrice returns cached spot prices.
func (p *Predictor) SimplePrice(ctx context.Context, ids, vsCurrency string) (models.SimplePrices, error) {
	key := cache.GenerateKeyWithParams("sp", ids, vsCurrency)

	var cached models.SimplePrices
	if p.lookup(ctx, "simple_price", key, &cached) {
		return cached, nil
	}

	start := time.Now()
	prices, err := p.source.SimplePrice(ctx, ids, vsCurrency)
	p.recordUpstream("simple_price", start, err)
	if err != nil {
		return nil, err
	}
	p.store(ctx, key, prices, p.ttls.Price)
	return prices, nil
}

// Markets returns cached market listing rows.
func (p *Predictor) Markets(ctx context.Context, ids, vsCurrency string) ([]models.Market, error) {
	key := cache.GenerateKeyWithParams("mkt", ids, vsCurrency)

	var cached []models.Market
	if p.lookup(ctx, "markets", key, &cached) {
		return cached, nil
	}

	start := time.Now()
	rows, err := p.source.Markets(ctx, ids, vsCurrency)
	p.recordUpstream("markets", start, err)
	if err != nil {
		return nil, err
	}
	p.store(ctx, key, rows, p.ttls.Markets)
	return rows, nil
}

func (p *Predictor) fetchChart(ctx context.Context, coinID, vsCurrency string, days int) (*models.MarketChart, error) {
	start := time.Now()
	chart, err := p.source.MarketChart(ctx, coinID, vsCurrency, days)
	p.recordUpstream("history", start, err)
	return chart, err
}

func (p *Predictor) lookup(ctx context.Context, endpoint, key string, dest interface{}) bool {
	if p.cache == nil {
		return false
	}
	hit := p.cache.Get(ctx, key, dest) == nil
	if p.metrics != nil {
		p.metrics.RecordCacheLookup(endpoint, hit)
	}
	return hit
}

func (p *Predictor) store(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if p.cache == nil || ttl <= 0 {
		return
	}
	if err := p.cache.Set(ctx, key, value, ttl); err != nil && p.logger != nil {
		p.logger.Warn("cache store failed", xlogger.String("key", key), xlogger.Error(err))
	}
}

func (p *Predictor) recordUpstream(endpoint string, start time.Time, err error) {
	if p.metrics == nil {
		return
	}
	p.metrics.RecordUpstream(endpoint, err != nil)
	p.metrics.RecordUpstreamLatency(endpoint, time.Since(start).Seconds())
}

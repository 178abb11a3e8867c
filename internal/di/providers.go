package di

import (
	"fmt"

	"github.com/nsurendrareddy/Crypto-Price-Predictor/internal/domain/repository"
	"github.com/nsurendrareddy/Crypto-Price-Predictor/internal/forecast"
	"github.com/nsurendrareddy/Crypto-Price-Predictor/internal/handler/api"
	"github.com/nsurendrareddy/Crypto-Price-Predictor/internal/service/coingecko"
	"github.com/nsurendrareddy/Crypto-Price-Predictor/internal/usecase"
	"github.com/nsurendrareddy/Crypto-Price-Predictor/pkg/cache"
	"github.com/nsurendrareddy/Crypto-Price-Predictor/pkg/config"
	xlogger "github.com/nsurendrareddy/Crypto-Price-Predictor/pkg/logger"
	"github.com/nsurendrareddy/Crypto-Price-Predictor/pkg/metrics"
	"github.com/nsurendrareddy/Crypto-Price-Predictor/pkg/server"
)

// ProvideLogger creates the application logger. Development runs get
// console output at debug level, everything else JSON at info.
func ProvideLogger(cfg *config.Config) (*xlogger.Logger, error) {
	lc := &xlogger.Config{Level: "info", Format: "json", Output: "stdout"}
	if cfg.Environment == "development" {
		lc.Level = "debug"
		lc.Format = "console"
	}
	l, err := xlogger.New(lc)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCache picks the cache backend: a layered memory+Redis cache when
// Redis is configured, plain in-process memory otherwise.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Redis.Enabled {
		return cache.NewMemoryCache(), nil
	}

	rc, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Redis.Host),
		cache.WithRedisPort(cfg.Redis.Port),
		cache.WithRedisPassword(cfg.Redis.Password),
		cache.WithRedisDB(cfg.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return cache.NewLayeredCache(rc), nil
}

// ProvideMarketDataSource creates the CoinGecko API client.
func ProvideMarketDataSource(cfg *config.Config) repository.MarketDataSource {
	return coingecko.New(
		cfg.CoinGecko.BaseURL,
		coingecko.WithTimeout(cfg.CoinGecko.Timeout),
		coingecko.WithRateLimit(cfg.CoinGecko.RateLimit.Capacity, cfg.CoinGecko.RateLimit.RefillPerSec),
	)
}

// ProvideSelector builds the forecasting engine from config. Zero values
// mean "use the built-in default" so a sparse YAML stays valid.
func ProvideSelector(cfg *config.Config) *forecast.Selector {
	var opts []forecast.Option
	f := cfg.Forecast
	if f.PriceFloor > 0 {
		opts = append(opts, forecast.WithPriceFloor(f.PriceFloor))
	}
	if f.FlatnessThreshold > 0 {
		opts = append(opts, forecast.WithFlatnessThreshold(f.FlatnessThreshold))
	}
	if f.TargetPlotPoints > 0 {
		opts = append(opts, forecast.WithTargetPlotPoints(f.TargetPlotPoints))
	}
	if f.MinTrendPoints > 0 && f.MinDriftPoints > 0 {
		opts = append(opts, forecast.WithMinPoints(f.MinTrendPoints, f.MinDriftPoints))
	}
	if f.DriftEnabled != nil {
		opts = append(opts, forecast.WithDriftEnabled(*f.DriftEnabled))
	}
	return forecast.NewSelector(opts...)
}

// ProvidePredictor creates the prediction use case.
func ProvidePredictor(
	source repository.MarketDataSource,
	engine *forecast.Selector,
	c cache.Service,
	m repository.Metrics,
	l *xlogger.Logger,
	cfg *config.Config,
) *usecase.Predictor {
	ttls := usecase.CacheTTLs{
		Price:   cfg.CoinGecko.CacheTTL.Price,
		History: cfg.CoinGecko.CacheTTL.History,
		Markets: cfg.CoinGecko.CacheTTL.Markets,
	}
	return usecase.NewPredictor(source, engine, c, m, l, ttls, cfg.Forecast.HistoryDays)
}

// ProvideWarmer creates the scheduled cache warmer; nil when disabled.
func ProvideWarmer(p *usecase.Predictor, l *xlogger.Logger, cfg *config.Config) *usecase.Warmer {
	if !cfg.Warmup.Enabled {
		return nil
	}
	return usecase.NewWarmer(p, l, cfg.Warmup.Schedule, cfg.Warmup.Coins, cfg.CoinGecko.VsCurrency)
}

// ProvideHandler creates the HTTP API handler.
func ProvideHandler(l *xlogger.Logger, p *usecase.Predictor) *api.PredictHandler {
	return api.NewPredictHandler(l, p)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *xlogger.Logger,
	h *api.PredictHandler,
	w *usecase.Warmer,
	c cache.Service,
) *server.App {
	return server.New(cfg, l, h, w, c)
}

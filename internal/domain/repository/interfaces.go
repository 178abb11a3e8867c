package repository

import (
	"context"

	"github.com/nsurendrareddy/Crypto-Price-Predictor/internal/domain/models"
)

// MarketDataSource supplies upstream market data. Implementations may
// cache or rate-limit; callers treat every method as a remote call.
type MarketDataSource interface {
	SimplePrice(ctx context.Context, ids, vsCurrency string) (models.SimplePrices, error)
	MarketChart(ctx context.Context, coinID, vsCurrency string, days int) (*models.MarketChart, error)
	Markets(ctx context.Context, ids, vsCurrency string) ([]models.Market, error)
}

// Metrics records operational counters for forecasting and upstream I/O.
type Metrics interface {
	RecordForecast(model, horizon string)
	RecordFallback(horizon string)
	RecordUpstream(endpoint string, err bool)
	RecordUpstreamLatency(endpoint string, seconds float64)
	RecordCacheLookup(endpoint string, hit bool)
	RecordLastPrice(coin string, price float64)
}

package coingecko

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nsurendrareddy/Crypto-Price-Predictor/internal/domain/models"
	drepo "github.com/nsurendrareddy/Crypto-Price-Predictor/internal/domain/repository"
	"github.com/nsurendrareddy/Crypto-Price-Predictor/internal/service/ratelimit"
	xhttp "github.com/nsurendrareddy/Crypto-Price-Predictor/pkg/http"
)

// ErrRateLimited is returned when the local quota guard rejects a request
// before it reaches CoinGecko.
var ErrRateLimited = errors.New("coingecko: local rate limit exceeded")

// Client is a REST client for the CoinGecko v3 API.
type Client struct {
	baseURL string
	http    *xhttp.Client

	limiter      *ratelimit.Limiter
	capacity     float64
	refillPerSec float64
}

// ClientOption configures Client.
type ClientOption func(*Client)

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.http = xhttp.NewClient(xhttp.WithTimeout(timeout))
		}
	}
}

// WithRateLimit guards the free-tier quota with a token bucket.
func WithRateLimit(capacity, refillPerSec float64) ClientOption {
	return func(c *Client) {
		if capacity > 0 && refillPerSec > 0 {
			c.limiter = ratelimit.New()
			c.capacity = capacity
			c.refillPerSec = refillPerSec
		}
	}
}

// New creates a CoinGecko client for the given API base URL.
func New(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    xhttp.NewClient(xhttp.WithTimeout(30 * time.Second)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SimplePrice fetches spot prices for a comma-separated list of coin ids.
func (c *Client) SimplePrice(ctx context.Context, ids, vsCurrency string) (models.SimplePrices, error) {
	var out models.SimplePrices
	err := c.getJSON(ctx, "/simple/price", map[string][]string{
		"ids":           {ids},
		"vs_currencies": {vsCurrency},
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarketChart fetches the daily close history for one coin.
func (c *Client) MarketChart(ctx context.Context, coinID, vsCurrency string, days int) (*models.MarketChart, error) {
	var out models.MarketChart
	path := fmt.Sprintf("/coins/%s/market_chart", coinID)
	err := c.getJSON(ctx, path, map[string][]string{
		"vs_currency": {vsCurrency},
		"days":        {fmt.Sprintf("%d", days)},
		"interval":    {"daily"},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Markets fetches the market listing rows for a set of coin ids.
func (c *Client) Markets(ctx context.Context, ids, vsCurrency string) ([]models.Market, error) {
	var out []models.Market
	err := c.getJSON(ctx, "/coins/markets", map[string][]string{
		"vs_currency":             {vsCurrency},
		"ids":                     {ids},
		"order":                   {"market_cap_desc"},
		"per_page":                {"250"},
		"page":                    {"1"},
		"sparkline":               {"false"},
		"price_change_percentage": {"24h"},
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params map[string][]string, dest interface{}) error {
	if c.limiter != nil && !c.limiter.Allow("coingecko", c.capacity, c.refillPerSec) {
		return ErrRateLimited
	}
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + path,
		QueryParams: params,
	}, dest)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	return nil
}

var _ drepo.MarketDataSource = (*Client)(nil)

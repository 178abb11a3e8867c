package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMarketChart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/bitcoin/market_chart" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("interval"); got != "daily" {
			t.Fatalf("expected daily interval, got %q", got)
		}
		if got := r.URL.Query().Get("vs_currency"); got != "inr" {
			t.Fatalf("unexpected vs_currency %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"prices":[[1700000000000,100.5],[1700086400000,101.25]]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	chart, err := c.MarketChart(context.Background(), "bitcoin", "inr", 365)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	closes := chart.Closes()
	if len(closes) != 2 || closes[0] != 100.5 || closes[1] != 101.25 {
		t.Fatalf("unexpected closes %v", closes)
	}
}

func TestSimplePrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("ids"); got != "bitcoin,ethereum" {
			t.Fatalf("unexpected ids %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"bitcoin":{"inr":5500000},"ethereum":{"inr":300000}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	prices, err := c.SimplePrice(context.Background(), "bitcoin,ethereum", "inr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prices["bitcoin"]["inr"] != 5500000 {
		t.Fatalf("unexpected prices %v", prices)
	}
}

func TestUpstreamErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.MarketChart(context.Background(), "bitcoin", "inr", 365); err == nil {
		t.Fatalf("expected error on 429")
	}
}

func TestLocalRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	// One token, effectively no refill: the second call must be rejected
	// locally without hitting the server.
	c := New(srv.URL, WithRateLimit(1, 0.0001))
	if _, err := c.SimplePrice(context.Background(), "bitcoin", "inr"); err != nil {
		t.Fatalf("first call should pass: %v", err)
	}
	_, err := c.SimplePrice(context.Background(), "bitcoin", "inr")
	if err == nil {
		t.Fatalf("expected local rate limit error")
	}
}

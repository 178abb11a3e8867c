package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleYAML = `
environment: test
server:
  port: 9090
  read_timeout: 5s
coingecko:
  base_url: https://api.coingecko.com/api/v3
  vs_currency: usd
  cache_ttl:
    history: 2m
forecast:
  flatness_threshold: 0.002
  drift_enabled: false
warmup:
  enabled: true
  schedule: "@every 5m"
  coins: [bitcoin]
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("port = %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Fatalf("read timeout = %v", cfg.Server.ReadTimeout)
	}
	if cfg.CoinGecko.CacheTTL.History != 2*time.Minute {
		t.Fatalf("history ttl = %v", cfg.CoinGecko.CacheTTL.History)
	}
	if cfg.Forecast.DriftEnabled == nil || *cfg.Forecast.DriftEnabled {
		t.Fatal("drift_enabled should parse as explicit false")
	}
}

func TestValidateRejectsMissingBaseURL(t *testing.T) {
	_, err := Load(writeConfig(t, "environment: test\nserver:\n  port: 8080\n"))
	if err == nil {
		t.Fatal("expected validation error for missing base_url")
	}
}

func TestValidateRejectsEmptyWarmupCoins(t *testing.T) {
	body := `
environment: test
server:
  port: 8080
coingecko:
  base_url: http://localhost
warmup:
  enabled: true
`
	_, err := Load(writeConfig(t, body))
	if err == nil {
		t.Fatal("expected validation error for empty warmup coins")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("VS_CURRENCY", "eur")
	t.Setenv("PORT", "7070")
	t.Setenv("REDIS_ADDR", "cache.internal:6380")

	cfg, err := LoadWithEnv(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}
	if cfg.CoinGecko.VsCurrency != "eur" {
		t.Fatalf("vs_currency = %q", cfg.CoinGecko.VsCurrency)
	}
	if cfg.Server.Port != 7070 {
		t.Fatalf("port = %d", cfg.Server.Port)
	}
	if !cfg.Redis.Enabled || cfg.Redis.Host != "cache.internal" || cfg.Redis.Port != 6380 {
		t.Fatalf("redis override not applied: %+v", cfg.Redis)
	}
}

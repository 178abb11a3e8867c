package models

// PricePoint is one [timestamp_ms, value] pair as CoinGecko's chart
// endpoints encode them.
type PricePoint [2]float64

// TimestampMS returns the point's timestamp in milliseconds.
func (p PricePoint) TimestampMS() int64 { return int64(p[0]) }

// Value returns the point's price (or cap/volume) component.
func (p PricePoint) Value() float64 { return p[1] }

// MarketChart mirrors the /coins/{id}/market_chart payload.
type MarketChart struct {
	Prices       []PricePoint `json:"prices"`
	MarketCaps   []PricePoint `json:"market_caps,omitempty"`
	TotalVolumes []PricePoint `json:"total_volumes,omitempty"`
}

// Closes extracts the daily close series in chart order.
func (m *MarketChart) Closes() []float64 {
	out := make([]float64, len(m.Prices))
	for i, p := range m.Prices {
		out[i] = p.Value()
	}
	return out
}

// SimplePrices is the /simple/price payload: coin id -> currency -> price.
type SimplePrices map[string]map[string]float64

// Market is one row of the /coins/markets listing.
type Market struct {
	ID                 string   `json:"id"`
	Symbol             string   `json:"symbol"`
	Name               string   `json:"name"`
	Image              string   `json:"image"`
	CurrentPrice       float64  `json:"current_price"`
	MarketCap          float64  `json:"market_cap"`
	MarketCapRank      int      `json:"market_cap_rank"`
	TotalVolume        float64  `json:"total_volume"`
	PriceChangePct24H  *float64 `json:"price_change_percentage_24h"`
	CirculatingSupply  float64  `json:"circulating_supply"`
	LastUpdated        string   `json:"last_updated"`
}

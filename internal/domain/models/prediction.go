package models

// Prediction is the /api/predict response. Pointer fields carry "no
// prediction available" as JSON null; series slots are null wherever the
// chart has nothing to plot.
type Prediction struct {
	Symbol       string     `json:"symbol"`
	ID           string     `json:"id"`
	Currency     string     `json:"currency"`
	CurrentPrice float64    `json:"current_price"`
	Pred3M       *float64   `json:"pred_3m"`
	Pred6M       *float64   `json:"pred_6m"`
	Pred1Y       *float64   `json:"pred_1y"`
	Series3M     []*float64 `json:"series3m"`
	Series6M     []*float64 `json:"series6m"`
	Series1Y     []*float64 `json:"series1y"`
}

// Available reports whether at least one horizon produced a forecast.
func (p *Prediction) Available() bool {
	return p.Pred3M != nil || p.Pred6M != nil || p.Pred1Y != nil
}

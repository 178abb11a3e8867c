package models

// Requests for the public HTTP endpoints. Defined in domain for consistency
// and reuse.

type PredictRequest struct {
	Symbol     string `query:"symbol" json:"symbol" validate:"required"`
	VsCurrency string `query:"vs_currency" json:"vs_currency" default:"inr" validate:"alpha,min=2,max=10"`
}

type HistoryRequest struct {
	VsCurrency string `query:"vs_currency" json:"vs_currency" default:"inr" validate:"alpha,min=2,max=10"`
	Days       int    `query:"days" json:"days" default:"365" validate:"gte=1,lte=3650"`
}

type SimplePriceRequest struct {
	IDs        string `query:"ids" json:"ids" validate:"required"`
	VsCurrency string `query:"vs_currency" json:"vs_currency" default:"inr" validate:"alpha,min=2,max=10"`
}

type MarketsRequest struct {
	IDs        string `query:"ids" json:"ids" validate:"required"`
	VsCurrency string `query:"vs_currency" json:"vs_currency" default:"inr" validate:"alpha,min=2,max=10"`
}

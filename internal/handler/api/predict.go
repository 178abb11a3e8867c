package api

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nsurendrareddy/Crypto-Price-Predictor/internal/domain/models"
	"github.com/nsurendrareddy/Crypto-Price-Predictor/internal/service/coingecko"
	"github.com/nsurendrareddy/Crypto-Price-Predictor/internal/usecase"
	xhttp "github.com/nsurendrareddy/Crypto-Price-Predictor/pkg/http"
	xlogger "github.com/nsurendrareddy/Crypto-Price-Predictor/pkg/logger"
)

// PredictHandler exposes the forecasting service over HTTP.
type PredictHandler struct {
	logger    *xlogger.Logger
	predictor *usecase.Predictor
}

func NewPredictHandler(logger *xlogger.Logger, predictor *usecase.Predictor) *PredictHandler {
	return &PredictHandler{logger: logger, predictor: predictor}
}

func (h *PredictHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/predict/:coin_id", h.Predict)
	g.GET("/history/:coin_id", h.History)
	g.GET("/simple_price", h.SimplePrice)
	g.GET("/markets", h.Markets)
	g.GET("/health", h.Health)
}

func (h *PredictHandler) Predict(c echo.Context) error {
	req := &models.PredictRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	coinID := c.Param("coin_id")

	pred, err := h.predictor.Predict(c.Request().Context(), coinID, req.Symbol, req.VsCurrency)
	if err != nil {
		h.logger.Error("predict failed", xlogger.String("coin", coinID), xlogger.Error(err))
		return h.upstreamAware(c, err)
	}
	return c.JSON(200, pred)
}

func (h *PredictHandler) History(c echo.Context) error {
	req := &models.HistoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	coinID := c.Param("coin_id")

	chart, err := h.predictor.History(c.Request().Context(), coinID, req.VsCurrency, req.Days)
	if err != nil {
		h.logger.Error("history failed", xlogger.String("coin", coinID), xlogger.Error(err))
		return h.upstreamAware(c, err)
	}
	return xhttp.SuccessResponse(c, chart)
}

func (h *PredictHandler) SimplePrice(c echo.Context) error {
	req := &models.SimplePriceRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	prices, err := h.predictor.SimplePrice(c.Request().Context(), req.IDs, req.VsCurrency)
	if err != nil {
		h.logger.Error("simple price failed", xlogger.Error(err))
		return h.upstreamAware(c, err)
	}
	return xhttp.SuccessResponse(c, prices)
}

func (h *PredictHandler) Markets(c echo.Context) error {
	req := &models.MarketsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	rows, err := h.predictor.Markets(c.Request().Context(), req.IDs, req.VsCurrency)
	if err != nil {
		h.logger.Error("markets failed", xlogger.Error(err))
		return h.upstreamAware(c, err)
	}
	return xhttp.ListResponse(c, rows, int64(len(rows)))
}

func (h *PredictHandler) Health(c echo.Context) error {
	return c.JSON(200, map[string]interface{}{
		"ok":   true,
		"time": time.Now().Unix(),
	})
}

// upstreamAware maps the local quota guard to 503; everything else goes
// through the standard AppError mapping.
func (h *PredictHandler) upstreamAware(c echo.Context, err error) error {
	if errors.Is(err, coingecko.ErrRateLimited) {
		return xhttp.AppErrorResponse(c, xhttp.UnavailableError("upstream quota exhausted, retry later").WithError(err))
	}
	return xhttp.AppErrorResponse(c, err)
}

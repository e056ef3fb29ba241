package api

import (
	"context"
	"errors"
	"strings"

	"EquityLens/internal/domain/models"
	dsvc "EquityLens/internal/domain/service"
	xhttp "EquityLens/pkg/http"
	xlogger "EquityLens/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Analyzer is the slice of the usecase the handler needs; tests substitute
// a deterministic stub.
type Analyzer interface {
	Analyze(ctx context.Context, ticker string) (*models.StockReport, error)
}

// StockHandler serves GET/HEAD /stock/:ticker.
type StockHandler struct {
	logger   *xlogger.Logger
	analyzer Analyzer
}

func NewStockHandler(logger *xlogger.Logger, analyzer Analyzer) *StockHandler {
	return &StockHandler{logger: logger, analyzer: analyzer}
}

func (h *StockHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/stock/:ticker", h.Get)
	e.HEAD("/stock/:ticker", h.Head)
}

// StockRequest binds the ticker path parameter.
type StockRequest struct {
	Ticker string `param:"ticker" validate:"required,max=12,ticker"`
}

// Head short-circuits to an empty body before any fetch or computation.
func (h *StockHandler) Head(c echo.Context) error {
	return xhttp.NoContentResponse(c)
}

func (h *StockHandler) Get(c echo.Context) error {
	req := &StockRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	ticker := strings.ToUpper(req.Ticker)

	report, err := h.analyzer.Analyze(c.Request().Context(), ticker)
	if err != nil {
		if errors.Is(err, dsvc.ErrSymbolNotFound) {
			return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("ticker %s not found", ticker))
		}
		h.logger.Error("analyze failed", xlogger.String("ticker", ticker), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.UpstreamError("market data unavailable").WithError(err))
	}

	return xhttp.SuccessResponse(c, report)
}

package api

import (
	"github.com/labstack/echo/v4"

	"MarketScanner/internal/domain/models"
	"MarketScanner/internal/usecase"
	xhttp "MarketScanner/pkg/http"
	xlogger "MarketScanner/pkg/logger"
)

// ScannerEchoHandler serves the market scan endpoint.
type ScannerEchoHandler struct {
	logger  *xlogger.Logger
	scanner *usecase.MarketScanner
	path    string
}

func NewScannerEchoHandler(logger *xlogger.Logger, scanner *usecase.MarketScanner, path string) *ScannerEchoHandler {
	if path == "" {
		path = "/"
	}
	return &ScannerEchoHandler{logger: logger, scanner: scanner, path: path}
}

func (h *ScannerEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.POST(h.path, h.Scan)
}

// Scan always answers 200; unreadable bodies scan nothing.
func (h *ScannerEchoHandler) Scan(c echo.Context) error {
	req := &models.ScanRequest{}
	if err := xhttp.ReadJSON(c, req); err != nil {
		h.logger.Debug("scan body ignored", xlogger.Error(err))
		req.Assets = nil
	}

	outcomes := h.scanner.Scan(c.Request().Context(), req.Assets)
	return xhttp.SuccessResponse(c, models.ScanResponse{Stocks: usecase.Results(outcomes)})
}

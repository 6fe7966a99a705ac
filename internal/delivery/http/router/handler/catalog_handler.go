package handler

import (
	"log/slog"
	"net/http"

	"comanda/internal/delivery/http/response"
	"comanda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for product catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the last successfully fetched product list. A stale list with
// a warning is preferable to an empty screen, so fetch failures surface as a
// field instead of an error status.
func (h *CatalogHandler) List(c echo.Context) error {
	payload := map[string]any{
		"produtos": h.uc.Products(),
	}
	if lastErr := h.uc.LastError(); lastErr != nil {
		payload["warning"] = lastErr.Error()
	}

	return response.Success(c, http.StatusOK, payload, "")
}

// Refresh triggers a catalog fetch. A deferred refresh (catalog gated behind
// a missing session) succeeds without changing the list.
func (h *CatalogHandler) Refresh(c echo.Context) error {
	if err := h.uc.Refresh(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"produtos": h.uc.Products(),
	}, "Catalog refreshed")
}

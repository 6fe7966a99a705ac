package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"comanda/internal/delivery/http/response"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler exposes the reconciled order feeds, one per category stream.
type OrderHandler struct {
	feeds  map[string]usecase.OrderFeedUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(feeds map[string]usecase.OrderFeedUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		feeds:  feeds,
		logger: logger,
	}
}

// List returns the reconciled list for one category, newest first. The
// optional "date" query parameter (YYYY-MM-DD) filters to orders created on
// that local calendar day.
func (h *OrderHandler) List(c echo.Context) error {
	feed, ok := h.feeds[c.Param("category")]
	if !ok {
		return errors.WithStack(domainerrors.ErrUnknownCategory)
	}

	orders := feed.Orders()
	if date := c.QueryParam("date"); date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return response.BadRequest(c, "INVALID_DATE", "Date must be YYYY-MM-DD")
		}
		orders = feed.OrdersOn(day, time.Local)
	}

	payload := map[string]any{
		"pedidos": orders,
	}
	if lastErr := feed.LastError(); lastErr != nil {
		payload["warning"] = lastErr.Error()
	}

	return response.Success(c, http.StatusOK, payload, "")
}

// MarkPaid toggles the payment status of one order through the backend and
// returns the acknowledged record.
func (h *OrderHandler) MarkPaid(c echo.Context) error {
	feed, ok := h.feeds[c.Param("category")]
	if !ok {
		return errors.WithStack(domainerrors.ErrUnknownCategory)
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ORDER_ID", "Order id must be numeric")
	}

	order, err := feed.MarkPaid(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Payment status updated")
}

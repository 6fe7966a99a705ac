package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"comanda/internal/delivery/http/response"
	"comanda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CartHandler holds dependencies for cart ledger handlers.
type CartHandler struct {
	cart    usecase.CartUsecase
	catalog usecase.CatalogUsecase
	logger  *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(cart usecase.CartUsecase, catalog usecase.CatalogUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		cart:    cart,
		catalog: catalog,
		logger:  logger,
	}
}

// List returns the cart joined with the current catalog plus the running total.
func (h *CartHandler) List(c echo.Context) error {
	entries := h.cart.Entries(h.catalog.Products())

	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(entry.Subtotal)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"itens": entries,
		"total": total,
	}, "")
}

// Add increments the quantity for a catalog product.
func (h *CartHandler) Add(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_PRODUCT_ID", "Product id must be numeric")
	}

	product, ok := h.catalog.Find(productID)
	if !ok {
		return response.NotFound(c, "PRODUCT_NOT_FOUND", "Product is not in the catalog")
	}

	h.cart.Add(product)

	return response.Success(c, http.StatusOK, map[string]any{
		"id_produto": productID,
		"quantidade": h.cart.Quantity(productID),
	}, "")
}

// Remove decrements the quantity for a product, or deletes the whole line
// when the "all" query parameter is set. Removing an absent product is a
// silent no-op, mirroring the ledger semantics.
func (h *CartHandler) Remove(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_PRODUCT_ID", "Product id must be numeric")
	}

	product, ok := h.catalog.Find(productID)
	if !ok {
		// The ledger only needs the id to drop a line, so a product that
		// has since left the catalog can still be removed.
		product.ID = productID
	}

	if c.QueryParam("all") == "true" {
		h.cart.ClearOne(product)
	} else {
		h.cart.Remove(product)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"id_produto": productID,
		"quantidade": h.cart.Quantity(productID),
	}, "")
}

// Clear empties the whole ledger.
func (h *CartHandler) Clear(c echo.Context) error {
	h.cart.ClearAll()

	return response.Success(c, http.StatusOK, map[string]string{"message": "Cart cleared"}, "")
}

package impl

import (
	"context"
	"log/slog"

	"comanda/config"
	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/service"
	"comanda/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// checkoutService implements the CheckoutUsecase interface. It reads the
// cart ledger and the catalog cache only at submission time.
type checkoutService struct {
	api      service.OrderingAPI
	cart     usecase.CartUsecase
	catalog  usecase.CatalogUsecase
	sessions usecase.SessionUsecase
	venueID  string
	logger   *slog.Logger
	validate *validator.Validate
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	cfg *config.Config,
	api service.OrderingAPI,
	cart usecase.CartUsecase,
	catalog usecase.CatalogUsecase,
	sessions usecase.SessionUsecase,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	venueID := ""
	if cfg.API != nil {
		venueID = cfg.API.VenueID
	}

	return &checkoutService{
		api:      api,
		cart:     cart,
		catalog:  catalog,
		sessions: sessions,
		venueID:  venueID,
		logger:   logger,
		validate: validator.New(),
	}
}

// Submit composes the order payload from the cart and posts it once. The
// cart is cleared only after the server accepted the order.
func (srv *checkoutService) Submit(ctx context.Context, input usecase.CheckoutInput) (*entity.Order, error) {
	if err := srv.validate.Struct(&input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	entries := srv.cart.Entries(srv.catalog.Products())
	if len(entries) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	items := make([]entity.OrderItem, 0, len(entries))
	total := decimal.Zero
	for _, entry := range entries {
		items = append(items, entity.OrderItem{
			ProductID: entry.Product.ID,
			Name:      entry.Product.Name,
			Quantity:  entry.Quantity,
			UnitPrice: entry.Product.UnitPrice,
		})
		total = total.Add(entry.Subtotal)
	}

	req := &service.CreateOrderRequest{
		ClientName: input.ClientName,
		EmployeeID: input.EmployeeID,
		House:      input.House,
		Items:      items,
		Notes:      input.Notes,
		Total:      total,
		VenueID:    srv.venueID,
	}

	srv.logger.Info("Submitting order",
		slog.String("client", input.ClientName),
		slog.Int("items", len(items)),
		slog.String("total", total.String()),
	)

	order, err := srv.api.CreateOrder(ctx, req, srv.sessions.Current().Token)
	if err != nil {
		srv.logger.Error("Order submission failed", slog.Any("error", err))

		return nil, err
	}

	srv.cart.ClearAll()
	srv.logger.Info("Order submitted", slog.Int64("order_id", order.ID))

	return order, nil
}

// Employees returns the staff roster for the confirmation screen.
func (srv *checkoutService) Employees(ctx context.Context) ([]service.Employee, error) {
	return srv.api.FetchEmployees(ctx, srv.sessions.Current().Token)
}

package usecase

import (
	"context"

	"comanda/internal/domain/entity"
	"comanda/internal/domain/service"
)

// CheckoutInput is what the confirmation screen collects on top of the cart.
type CheckoutInput struct {
	ClientName string `json:"cliente" validate:"required"`
	EmployeeID string `json:"funcionario" validate:"required"`
	House      string `json:"casa" validate:"required"`
	Notes      string `json:"obs"`
}

// CheckoutUsecase turns the cart ledger and the catalog into one order
// submission.
type CheckoutUsecase interface {
	// Submit composes the payload from the current cart, posts it once, and
	// clears the cart on success. Cart entries referencing products missing
	// from the catalog are skipped, not errors.
	Submit(ctx context.Context, input CheckoutInput) (*entity.Order, error)

	// Employees returns the staff roster for the confirmation screen.
	Employees(ctx context.Context) ([]service.Employee, error)
}

// Package service declares the interfaces for external collaborators the
// engine depends on. Concrete implementations live under internal/infra.
package service

import (
	"context"

	"comanda/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// LoginRequest carries one credential pair to an auth endpoint.
type LoginRequest struct {
	Username    string             `json:"usuario"`
	Password    string             `json:"senha"`
	AccountType entity.AccountType `json:"-"`
}

// CreateOrderRequest is the order submission payload built by the checkout
// composer from the cart and the catalog.
type CreateOrderRequest struct {
	ClientName string             `json:"cliente"`
	EmployeeID string             `json:"funcionario"`
	House      string             `json:"casa"`
	Items      []entity.OrderItem `json:"itens"`
	Notes      string             `json:"obs"`
	Total      decimal.Decimal    `json:"total"`
	VenueID    string             `json:"restauranteid,omitempty"`
}

// Employee is one entry of the staff roster used by the checkout screen.
type Employee struct {
	ID   int64  `json:"id_funcionario"`
	Name string `json:"nome"`
}

// OrderingAPI is the remote HTTP service the engine synchronizes against.
// Bearer tokens are passed explicitly so the caller decides which operations
// are authenticated.
type OrderingAPI interface {
	// FetchProducts returns the normalized catalog. Token may be empty for
	// unauthenticated catalog access.
	FetchProducts(ctx context.Context, token string) ([]entity.Product, error)

	// FetchOrders returns the full current snapshot for one category stream.
	FetchOrders(ctx context.Context, category entity.Category, token string) ([]entity.Order, error)

	// CreateOrder submits a new order and returns the created record.
	CreateOrder(ctx context.Context, req *CreateOrderRequest, token string) (*entity.Order, error)

	// UpdateOrderStatus toggles the payment status of an order and returns
	// the updated record as the server acknowledged it.
	UpdateOrderStatus(ctx context.Context, orderID int64, token string) (*entity.Order, error)

	// Login exchanges credentials for a session. A rejected credential is
	// reported as an error, not a partial session.
	Login(ctx context.Context, req *LoginRequest) (*entity.Session, error)

	// FetchEmployees returns the staff roster.
	FetchEmployees(ctx context.Context, token string) ([]Employee, error)
}

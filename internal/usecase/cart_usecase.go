// Package usecase contains the application-specific business rules.
package usecase

import (
	"comanda/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CartEntry is one cart line joined with its catalog product.
type CartEntry struct {
	Product  entity.Product  `json:"produto"`
	Quantity int             `json:"quantidade"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CartUsecase tracks desired purchase quantities for one browsing session.
// All operations are safe to call concurrently and never fail: conditions
// like removing from an empty cart are silent no-ops.
type CartUsecase interface {
	// Add creates an entry at quantity 1 or increments an existing one.
	// Products without a valid identifier are ignored.
	Add(product entity.Product)

	// Remove decrements the entry; at quantity 1 the entry is deleted so a
	// zero-quantity entry never exists.
	Remove(product entity.Product)

	// ClearOne deletes the entry regardless of quantity.
	ClearOne(product entity.Product)

	// ClearAll empties the ledger, used after a successful submission.
	ClearAll()

	// Quantity returns the current quantity for a product id, zero if absent.
	Quantity(productID int64) int

	// Snapshot returns an immutable copy of the ledger keyed by product id.
	Snapshot() map[int64]int

	// Entries joins the ledger with the given catalog, skipping entries whose
	// product is no longer listed.
	Entries(catalog []entity.Product) []CartEntry
}

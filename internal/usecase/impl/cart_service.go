// Package impl contains the application-specific business rules implementations.
package impl

import (
	"log/slog"
	"sort"
	"sync"

	"comanda/internal/domain/entity"
	"comanda/internal/usecase"

	"github.com/shopspring/decimal"
)

// cartService implements the CartUsecase interface. The ledger itself is an
// immutable map snapshot; every mutation installs a fresh copy so concurrent
// readers never observe a partially updated cart.
type cartService struct {
	logger *slog.Logger

	mu     sync.Mutex
	ledger map[int64]int
}

// NewCartService is the constructor for cartService.
func NewCartService(logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		logger: logger,
		ledger: map[int64]int{},
	}
}

// Add creates an entry at quantity 1 or increments an existing one. Products
// without a valid id come from stale UI references and are ignored.
func (srv *cartService) Add(product entity.Product) {
	if product.ID == 0 {
		srv.logger.Debug("Ignoring cart add for product without id")

		return
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	next := cloneLedger(srv.ledger)
	next[product.ID]++
	srv.ledger = next
}

// Remove decrements an entry, deleting it at quantity 1 so no zero-quantity
// entry survives. Removing an absent product is a no-op.
func (srv *cartService) Remove(product entity.Product) {
	if product.ID == 0 {
		return
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	current, ok := srv.ledger[product.ID]
	if !ok {
		return
	}

	next := cloneLedger(srv.ledger)
	if current > 1 {
		next[product.ID] = current - 1
	} else {
		delete(next, product.ID)
	}
	srv.ledger = next
}

// ClearOne deletes the entry for a product regardless of quantity.
func (srv *cartService) ClearOne(product entity.Product) {
	if product.ID == 0 {
		return
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if _, ok := srv.ledger[product.ID]; !ok {
		return
	}

	next := cloneLedger(srv.ledger)
	delete(next, product.ID)
	srv.ledger = next
}

// ClearAll empties the ledger.
func (srv *cartService) ClearAll() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ledger = map[int64]int{}
}

// Quantity returns the current quantity for a product id, zero if absent.
func (srv *cartService) Quantity(productID int64) int {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.ledger[productID]
}

// Snapshot returns a copy of the ledger keyed by product id.
func (srv *cartService) Snapshot() map[int64]int {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return cloneLedger(srv.ledger)
}

// Entries joins the ledger with the given catalog. Entries whose product is
// no longer listed are skipped; they surface again if the product returns.
func (srv *cartService) Entries(catalog []entity.Product) []usecase.CartEntry {
	snapshot := srv.Snapshot()

	byID := make(map[int64]entity.Product, len(catalog))
	for _, product := range catalog {
		byID[product.ID] = product
	}

	entries := make([]usecase.CartEntry, 0, len(snapshot))
	for productID, quantity := range snapshot {
		product, ok := byID[productID]
		if !ok {
			srv.logger.Debug("Skipping cart entry for product missing from catalog",
				slog.Int64("product_id", productID),
			)

			continue
		}

		entries = append(entries, usecase.CartEntry{
			Product:  product,
			Quantity: quantity,
			Subtotal: product.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		})
	}

	// Map iteration order is random; screens want a stable listing.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Product.ID < entries[j].Product.ID
	})

	return entries
}

func cloneLedger(ledger map[int64]int) map[int64]int {
	next := make(map[int64]int, len(ledger)+1)
	for id, quantity := range ledger {
		next[id] = quantity
	}

	return next
}

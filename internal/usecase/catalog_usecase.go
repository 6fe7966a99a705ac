package usecase

import (
	"context"

	"comanda/internal/domain/entity"
)

// CatalogUsecase holds the authoritative product list for rendering and for
// cart-to-order translation.
type CatalogUsecase interface {
	// Refresh fetches the catalog. When the configured mode requires
	// authentication and no session is present, the refresh is deferred (a
	// no-op, not an error) and retried automatically once a session appears.
	// On fetch or parse failure the previous list is kept.
	Refresh(ctx context.Context) error

	// Products returns the last successfully fetched list.
	Products() []entity.Product

	// Find returns the product for an id from the current list.
	Find(productID int64) (entity.Product, bool)

	// LastError reports the warning from the most recent failed refresh,
	// nil after a successful one.
	LastError() error

	// Start begins watching the session for credential changes; Stop ends it.
	Start(ctx context.Context) error
	Stop()
}

package usecase

import (
	"context"
	"time"

	"comanda/internal/domain/entity"
)

// OrderFeedUsecase is one live, deduplicated order list for a single
// category stream, reconciling the push subscription with snapshot fetches.
type OrderFeedUsecase interface {
	// Category identifies the stream this feed serves.
	Category() entity.Category

	// Start opens the push subscription and issues the initial snapshot. For
	// session-gated categories the feed stays empty until a credential is
	// available and restarts whenever it changes.
	Start(ctx context.Context) error

	// Stop closes the push subscription and stops the session watcher.
	// Results of fetches still in flight are discarded.
	Stop()

	// Orders returns the reconciled list, newest first.
	Orders() []entity.Order

	// OrdersOn filters the reconciled list to orders created on the given
	// calendar day as observed in loc.
	OrdersOn(day time.Time, loc *time.Location) []entity.Order

	// MarkPaid toggles the payment status remotely and applies the
	// acknowledged status locally. On failure local state is untouched.
	MarkPaid(ctx context.Context, orderID int64) (*entity.Order, error)

	// LastError reports the warning from the most recent failed snapshot
	// fetch, nil after a successful one.
	LastError() error
}

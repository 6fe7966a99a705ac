package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"comanda/config"
	"comanda/internal/domain/entity"
	"comanda/internal/domain/service"
	"comanda/internal/usecase"
)

// orderFeedService implements the OrderFeedUsecase interface for one
// category stream. It reconciles two inputs into a single deduplicated,
// newest-first list: the continuously open push subscription and the
// authoritative snapshot fetch.
//
// Every state mutation is guarded by an epoch counter. A re-initialization
// (login, logout, Stop) bumps the epoch, so results of fetches and events
// belonging to a torn-down generation are discarded instead of being applied
// to fresh state.
type orderFeedService struct {
	category entity.Category
	api      service.OrderingAPI
	push     service.PushChannel
	sessions usecase.SessionUsecase
	repoll   time.Duration
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	epoch   uint64
	orders  []entity.Order
	sub     service.PushSubscription
	lastErr error

	cancelWatch func()
	stopOnce    sync.Once
}

// newOrderFeedService builds the reconciler for one category.
func newOrderFeedService(
	cfg *config.Config,
	category entity.Category,
	api service.OrderingAPI,
	push service.PushChannel,
	sessions usecase.SessionUsecase,
	logger *slog.Logger,
) *orderFeedService {
	var repoll time.Duration
	if cfg.Feeds != nil {
		repoll = cfg.Feeds.SnapshotRefreshInterval
	}

	return &orderFeedService{
		category: category,
		api:      api,
		push:     push,
		sessions: sessions,
		repoll:   repoll,
		logger:   logger.With(slog.String("feed", category.Name)),
	}
}

// NewOrderFeeds instantiates one reconciler per category stream.
func NewOrderFeeds(
	cfg *config.Config,
	api service.OrderingAPI,
	push service.PushChannel,
	sessions usecase.SessionUsecase,
	logger *slog.Logger,
) map[string]usecase.OrderFeedUsecase {
	feeds := make(map[string]usecase.OrderFeedUsecase)
	for _, category := range entity.Categories() {
		feeds[category.Name] = newOrderFeedService(cfg, category, api, push, sessions, logger)
	}

	return feeds
}

// Category identifies the stream this feed serves.
func (srv *orderFeedService) Category() entity.Category {
	return srv.category
}

// Start opens the stream. Gated categories wait for a session and restart on
// every credential change so one identity's subscription never keeps feeding
// the next identity's screen.
func (srv *orderFeedService) Start(ctx context.Context) error {
	srv.ctx, srv.cancel = context.WithCancel(context.WithoutCancel(ctx))

	if srv.category.RequiresAuth {
		sessions, cancel := srv.sessions.Watch()
		srv.cancelWatch = cancel
		go srv.watchSessions(sessions)
	} else {
		srv.restart(srv.sessions.Current().Token)
	}

	if srv.repoll > 0 {
		go srv.repollLoop()
	}

	return nil
}

func (srv *orderFeedService) watchSessions(sessions <-chan entity.Session) {
	for {
		select {
		case <-srv.ctx.Done():
			return
		case session, ok := <-sessions:
			if !ok {
				return
			}
			if session.IsAuthenticated() {
				srv.logger.Info("Session available, (re)initializing feed")
				srv.restart(session.Token)
			} else {
				srv.logger.Info("Session gone, tearing feed down")
				srv.teardown()
			}
		}
	}
}

// restart clears state, bumps the epoch, and opens the subscription and the
// snapshot fetch in parallel.
func (srv *orderFeedService) restart(token string) {
	srv.mu.Lock()
	srv.epoch++
	epoch := srv.epoch
	srv.orders = nil
	srv.lastErr = nil
	oldSub := srv.sub
	srv.sub = nil
	srv.mu.Unlock()

	if oldSub != nil {
		oldSub.Close() //nolint:errcheck // double close of a dead subscription is harmless
	}

	go srv.openSubscription(epoch)
	go srv.fetchSnapshot(epoch, token)
}

// teardown closes the subscription and clears the list without opening a new
// generation's inputs.
func (srv *orderFeedService) teardown() {
	srv.mu.Lock()
	srv.epoch++
	srv.orders = nil
	srv.lastErr = nil
	oldSub := srv.sub
	srv.sub = nil
	srv.mu.Unlock()

	if oldSub != nil {
		oldSub.Close() //nolint:errcheck // double close of a dead subscription is harmless
	}
}

// Stop closes the push subscription and stops the session watcher.
func (srv *orderFeedService) Stop() {
	srv.stopOnce.Do(func() {
		if srv.cancelWatch != nil {
			srv.cancelWatch()
		}
		if srv.cancel != nil {
			srv.cancel()
		}
		srv.teardown()
	})
}

func (srv *orderFeedService) openSubscription(epoch uint64) {
	sub, err := srv.push.Subscribe(srv.ctx, []string{srv.category.NewOrderEvent, entity.StatusChangedEventName})
	if err != nil {
		srv.logger.Error("Failed to open push subscription", slog.Any("error", err))

		return
	}

	srv.mu.Lock()
	if epoch != srv.epoch {
		// Torn down while the subscription was being opened.
		srv.mu.Unlock()
		sub.Close() //nolint:errcheck // unwanted subscription, nothing consumes it
		return
	}
	srv.sub = sub
	srv.mu.Unlock()

	go srv.consume(epoch, sub)
}

func (srv *orderFeedService) consume(epoch uint64, sub service.PushSubscription) {
	for msg := range sub.Events() {
		switch msg.Event {
		case srv.category.NewOrderEvent:
			event, err := entity.DecodeNewOrderEvent(msg.Data)
			if err != nil {
				srv.logger.Warn("Dropping malformed new-order event", slog.Any("error", err))

				continue
			}
			srv.applyNewOrder(epoch, event.Order)

		case entity.StatusChangedEventName:
			event, err := entity.DecodeStatusChangedEvent(msg.Data)
			if err != nil {
				srv.logger.Warn("Dropping malformed status-changed event", slog.Any("error", err))

				continue
			}
			srv.applyStatusChanged(epoch, event.ID, event.NewStatus)

		default:
			srv.logger.Debug("Ignoring unexpected push event", slog.String("event", msg.Event))
		}
	}
}

func (srv *orderFeedService) fetchSnapshot(epoch uint64, token string) {
	orders, err := srv.api.FetchOrders(srv.ctx, srv.category, token)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if epoch != srv.epoch {
		// The feed was re-initialized while this fetch was in flight; its
		// result belongs to a dead generation.
		srv.logger.Debug("Discarding stale snapshot result")

		return
	}

	if err != nil {
		srv.lastErr = err
		srv.logger.Warn("Snapshot fetch failed", slog.Any("error", err))

		return
	}

	// The most recent snapshot wins over anything accumulated only through
	// the subscription; dedup on later events keeps the two inputs
	// consistent.
	srv.orders = make([]entity.Order, len(orders))
	copy(srv.orders, orders)
	srv.lastErr = nil

	srv.logger.Info("Snapshot applied", slog.Int("count", len(orders)))
}

// applyNewOrder prepends the order unless an order with the same id is
// already present. The same order routinely arrives twice, once over push
// and once inside an overlapping snapshot.
func (srv *orderFeedService) applyNewOrder(epoch uint64, order entity.Order) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if epoch != srv.epoch {
		return
	}

	for _, existing := range srv.orders {
		if existing.ID == order.ID {
			srv.logger.Debug("Discarding duplicate new-order event", slog.Int64("order_id", order.ID))

			return
		}
	}

	srv.orders = append([]entity.Order{order}, srv.orders...)
	srv.logger.Info("New order received", slog.Int64("order_id", order.ID))
}

// applyStatusChanged replaces only the payment status, preserving position.
// An unknown id is acceptable staleness, not an error.
func (srv *orderFeedService) applyStatusChanged(epoch uint64, orderID int64, status entity.PaymentStatus) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if epoch != srv.epoch {
		return
	}

	for i := range srv.orders {
		if srv.orders[i].ID == orderID {
			srv.orders[i].PaymentStatus = status
			srv.logger.Info("Order status updated",
				slog.Int64("order_id", orderID),
				slog.String("status", string(status)),
			)

			return
		}
	}

	srv.logger.Debug("Status change for unknown order, discarding", slog.Int64("order_id", orderID))
}

func (srv *orderFeedService) repollLoop() {
	ticker := time.NewTicker(srv.repoll)
	defer ticker.Stop()

	for {
		select {
		case <-srv.ctx.Done():
			return
		case <-ticker.C:
			srv.mu.Lock()
			epoch := srv.epoch
			active := srv.sub != nil || !srv.category.RequiresAuth
			srv.mu.Unlock()
			if active {
				srv.fetchSnapshot(epoch, srv.sessions.Current().Token)
			}
		}
	}
}

// Orders returns the reconciled list, newest first.
func (srv *orderFeedService) Orders() []entity.Order {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	out := make([]entity.Order, len(srv.orders))
	copy(out, srv.orders)

	return out
}

// OrdersOn filters the reconciled list to orders created on the given
// calendar day as observed in loc.
func (srv *orderFeedService) OrdersOn(day time.Time, loc *time.Location) []entity.Order {
	all := srv.Orders()

	filtered := make([]entity.Order, 0, len(all))
	for _, order := range all {
		if order.OnLocalDay(day, loc) {
			filtered = append(filtered, order)
		}
	}

	return filtered
}

// MarkPaid toggles the payment status remotely and applies the acknowledged
// value locally. Local state stays untouched when the server rejects the
// update.
func (srv *orderFeedService) MarkPaid(ctx context.Context, orderID int64) (*entity.Order, error) {
	updated, err := srv.api.UpdateOrderStatus(ctx, orderID, srv.sessions.Current().Token)
	if err != nil {
		srv.logger.Warn("Status update failed",
			slog.Int64("order_id", orderID),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.mu.Lock()
	epoch := srv.epoch
	srv.mu.Unlock()
	srv.applyStatusChanged(epoch, updated.ID, updated.PaymentStatus)

	return updated, nil
}

// LastError reports the warning from the most recent failed snapshot fetch.
func (srv *orderFeedService) LastError() error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.lastErr
}

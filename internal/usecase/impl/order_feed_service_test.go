package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/service"
	"comanda/internal/infra/pubsub"
	mockService "comanda/internal/mocks/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type feedFixtures struct {
	feed     *orderFeedService
	api      *mockService.MockOrderingAPI
	hub      *pubsub.Hub
	sessions *sessionStub
}

func createTestOrderFeed(t *testing.T, category entity.Category, session entity.Session) feedFixtures {
	api := mockService.NewMockOrderingAPI(t)
	hub := pubsub.NewHub(testLogger())
	sessions := newSessionStub(session)

	feed := newOrderFeedService(testConfig(), category, api, hub, sessions, testLogger())
	t.Cleanup(feed.Stop)

	return feedFixtures{feed: feed, api: api, hub: hub, sessions: sessions}
}

func feedOrder(id int64, status entity.PaymentStatus, createdAt time.Time) entity.Order {
	return entity.Order{
		ID:            id,
		ClientName:    "Cliente",
		Total:         decimal.RequireFromString("10.00"),
		PaymentStatus: status,
		CreatedAt:     createdAt,
	}
}

func publishNewOrder(t *testing.T, hub *pubsub.Hub, event string, order entity.Order) {
	data, err := json.Marshal(order)
	require.NoError(t, err)
	hub.Publish(service.PushMessage{Event: event, Data: data})
}

func publishStatusChange(t *testing.T, hub *pubsub.Hub, id int64, status string) {
	t.Helper()
	data, err := json.Marshal(map[string]any{"id": id, "novoStatus": status})
	require.NoError(t, err)
	hub.Publish(service.PushMessage{Event: entity.StatusChangedEventName, Data: data})
}

func waitForOrders(t *testing.T, feed *orderFeedService, check func([]entity.Order) bool) {
	t.Helper()
	require.Eventually(t, func() bool {
		return check(feed.Orders())
	}, time.Second, 5*time.Millisecond)
}

// waitForSubscription blocks until the feed's push subscription is open, so
// published events cannot race past it.
func waitForSubscription(t *testing.T, feed *orderFeedService) {
	t.Helper()
	require.Eventually(t, func() bool {
		feed.mu.Lock()
		defer feed.mu.Unlock()

		return feed.sub != nil
	}, time.Second, 5*time.Millisecond)
}

func TestOrderFeed_SnapshotPopulatesList(t *testing.T) {
	fx := createTestOrderFeed(t, entity.CategoryGeneral, entity.Session{})
	now := time.Now()

	fx.api.EXPECT().
		FetchOrders(mock.Anything, entity.CategoryGeneral, "").
		Return([]entity.Order{feedOrder(2, entity.PaymentPending, now), feedOrder(1, entity.PaymentPaid, now)}, nil)

	require.NoError(t, fx.feed.Start(context.Background()))

	waitForOrders(t, fx.feed, func(orders []entity.Order) bool { return len(orders) == 2 })
	assert.Equal(t, int64(2), fx.feed.Orders()[0].ID)
	assert.Nil(t, fx.feed.LastError())
}

func TestOrderFeed_NewOrderEventsPrependAndDeduplicate(t *testing.T) {
	fx := createTestOrderFeed(t, entity.CategoryGeneral, entity.Session{})
	now := time.Now()

	fx.api.EXPECT().
		FetchOrders(mock.Anything, entity.CategoryGeneral, "").
		Return([]entity.Order{feedOrder(1, entity.PaymentPending, now)}, nil)

	require.NoError(t, fx.feed.Start(context.Background()))
	waitForSubscription(t, fx.feed)
	waitForOrders(t, fx.feed, func(orders []entity.Order) bool { return len(orders) == 1 })

	newest := feedOrder(2, entity.PaymentPending, now)
	publishNewOrder(t, fx.hub, entity.CategoryGeneral.NewOrderEvent, newest)
	waitForOrders(t, fx.feed, func(orders []entity.Order) bool { return len(orders) == 2 })
	assert.Equal(t, int64(2), fx.feed.Orders()[0].ID)

	// The same order arriving again, e.g. push racing an overlapping
	// snapshot, must not produce a duplicate row.
	publishNewOrder(t, fx.hub, entity.CategoryGeneral.NewOrderEvent, newest)
	publishStatusChange(t, fx.hub, 2, "pago")
	waitForOrders(t, fx.feed, func(orders []entity.Order) bool {
		return len(orders) == 2 && orders[0].PaymentStatus == entity.PaymentPaid
	})
}

func TestOrderFeed_StatusChangeForUnknownOrderIsDiscarded(t *testing.T) {
	fx := createTestOrderFeed(t, entity.CategoryGeneral, entity.Session{})
	now := time.Now()

	fx.api.EXPECT().
		FetchOrders(mock.Anything, entity.CategoryGeneral, "").
		Return([]entity.Order{feedOrder(1, entity.PaymentPending, now)}, nil)

	require.NoError(t, fx.feed.Start(context.Background()))
	waitForSubscription(t, fx.feed)
	waitForOrders(t, fx.feed, func(orders []entity.Order) bool { return len(orders) == 1 })

	publishStatusChange(t, fx.hub, 999, "pago")
	// Flush with a change for a known order; the unknown one left no trace.
	publishStatusChange(t, fx.hub, 1, "pago")
	waitForOrders(t, fx.feed, func(orders []entity.Order) bool {
		return len(orders) == 1 && orders[0].PaymentStatus == entity.PaymentPaid
	})
}

func TestOrderFeed_MalformedEventsAreDropped(t *testing.T) {
	fx := createTestOrderFeed(t, entity.CategoryGeneral, entity.Session{})
	now := time.Now()

	fx.api.EXPECT().
		FetchOrders(mock.Anything, entity.CategoryGeneral, "").
		Return([]entity.Order{feedOrder(1, entity.PaymentPending, now)}, nil)

	require.NoError(t, fx.feed.Start(context.Background()))
	waitForSubscription(t, fx.feed)
	waitForOrders(t, fx.feed, func(orders []entity.Order) bool { return len(orders) == 1 })

	fx.hub.Publish(service.PushMessage{Event: entity.CategoryGeneral.NewOrderEvent, Data: []byte(`{"nome_cliente":"sem id"}`)})
	fx.hub.Publish(service.PushMessage{Event: entity.StatusChangedEventName, Data: []byte(`{"id":1,"novoStatus":"quitado"}`)})
	publishStatusChange(t, fx.hub, 1, "pago")

	waitForOrders(t, fx.feed, func(orders []entity.Order) bool {
		return len(orders) == 1 && orders[0].PaymentStatus == entity.PaymentPaid
	})
}

func TestOrderFeed_SnapshotReplacesAccumulatedState(t *testing.T) {
	fx := createTestOrderFeed(t, entity.CategoryGeneral, entity.Session{})
	now := time.Now()

	pending := feedOrder(101, entity.PaymentPending, now)
	fetched := make(chan struct{})
	release := make(chan struct{})

	fx.api.EXPECT().
		FetchOrders(mock.Anything, entity.CategoryGeneral, "").
		RunAndReturn(func(context.Context, entity.Category, string) ([]entity.Order, error) {
			close(fetched)
			<-release

			paid := pending
			paid.PaymentStatus = entity.PaymentPaid

			return []entity.Order{paid}, nil
		})

	require.NoError(t, fx.feed.Start(context.Background()))
	waitForSubscription(t, fx.feed)
	<-fetched

	// The push event lands while the snapshot is still in flight.
	publishNewOrder(t, fx.hub, entity.CategoryGeneral.NewOrderEvent, pending)
	waitForOrders(t, fx.feed, func(orders []entity.Order) bool { return len(orders) == 1 })

	close(release)

	// The snapshot wins wholesale: same id, but the fetched payment status.
	waitForOrders(t, fx.feed, func(orders []entity.Order) bool {
		return len(orders) == 1 && orders[0].PaymentStatus == entity.PaymentPaid
	})
}

func TestOrderFeed_GatedFeedStaysEmptyWithoutSession(t *testing.T) {
	fx := createTestOrderFeed(t, entity.CategoryVenue, entity.Session{})

	// No FetchOrders expectation: the gated feed must not fetch logged out.
	require.NoError(t, fx.feed.Start(context.Background()))

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, fx.feed.Orders())
}

func TestOrderFeed_GatedFeedRestartsOnCredentialChange(t *testing.T) {
	fx := createTestOrderFeed(t, entity.CategoryVenue, authenticatedSession("token-1", "Casa A"))
	now := time.Now()

	fx.api.EXPECT().
		FetchOrders(mock.Anything, entity.CategoryVenue, "token-1").
		Return([]entity.Order{feedOrder(1, entity.PaymentPending, now)}, nil)

	require.NoError(t, fx.feed.Start(context.Background()))
	waitForOrders(t, fx.feed, func(orders []entity.Order) bool {
		return len(orders) == 1 && orders[0].ID == 1
	})

	// A different venue logs in: the feed must re-initialize with the new
	// credential and drop the previous venue's orders.
	fx.api.EXPECT().
		FetchOrders(mock.Anything, entity.CategoryVenue, "token-2").
		Return([]entity.Order{feedOrder(2, entity.PaymentPending, now)}, nil)

	fx.sessions.set(authenticatedSession("token-2", "Casa B"))

	waitForOrders(t, fx.feed, func(orders []entity.Order) bool {
		return len(orders) == 1 && orders[0].ID == 2
	})
}

func TestOrderFeed_GatedFeedTearsDownOnLogout(t *testing.T) {
	fx := createTestOrderFeed(t, entity.CategoryVenue, authenticatedSession("token-1", "Casa A"))
	now := time.Now()

	fx.api.EXPECT().
		FetchOrders(mock.Anything, entity.CategoryVenue, "token-1").
		Return([]entity.Order{feedOrder(1, entity.PaymentPending, now)}, nil)

	require.NoError(t, fx.feed.Start(context.Background()))
	waitForOrders(t, fx.feed, func(orders []entity.Order) bool { return len(orders) == 1 })

	fx.sessions.set(entity.Session{})

	waitForOrders(t, fx.feed, func(orders []entity.Order) bool { return len(orders) == 0 })
}

func TestOrderFeed_StaleSnapshotResultIsDiscarded(t *testing.T) {
	fx := createTestOrderFeed(t, entity.CategoryVenue, authenticatedSession("token-1", "Casa A"))
	now := time.Now()

	fetched := make(chan struct{})
	release := make(chan struct{})

	fx.api.EXPECT().
		FetchOrders(mock.Anything, entity.CategoryVenue, "token-1").
		RunAndReturn(func(context.Context, entity.Category, string) ([]entity.Order, error) {
			close(fetched)
			<-release

			return []entity.Order{feedOrder(1, entity.PaymentPending, now)}, nil
		})

	require.NoError(t, fx.feed.Start(context.Background()))
	<-fetched

	// Logout while the fetch is in flight tears the generation down.
	fx.sessions.set(entity.Session{})
	waitForOrders(t, fx.feed, func(orders []entity.Order) bool { return len(orders) == 0 })

	close(release)

	// The late result belongs to a dead epoch and must never surface.
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, fx.feed.Orders())
}

func TestOrderFeed_MarkPaidAppliesAcknowledgedStatus(t *testing.T) {
	fx := createTestOrderFeed(t, entity.CategoryGeneral, entity.Session{})
	now := time.Now()

	fx.api.EXPECT().
		FetchOrders(mock.Anything, entity.CategoryGeneral, "").
		Return([]entity.Order{feedOrder(1, entity.PaymentPending, now)}, nil)

	require.NoError(t, fx.feed.Start(context.Background()))
	waitForOrders(t, fx.feed, func(orders []entity.Order) bool { return len(orders) == 1 })

	acknowledged := feedOrder(1, entity.PaymentPaid, now)
	fx.api.EXPECT().
		UpdateOrderStatus(mock.Anything, int64(1), "").
		Return(&acknowledged, nil)

	updated, err := fx.feed.MarkPaid(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, updated.PaymentStatus)
	assert.Equal(t, entity.PaymentPaid, fx.feed.Orders()[0].PaymentStatus)
}

func TestOrderFeed_MarkPaidFailureLeavesLocalStateUntouched(t *testing.T) {
	fx := createTestOrderFeed(t, entity.CategoryGeneral, entity.Session{})
	now := time.Now()

	fx.api.EXPECT().
		FetchOrders(mock.Anything, entity.CategoryGeneral, "").
		Return([]entity.Order{feedOrder(1, entity.PaymentPending, now)}, nil)

	require.NoError(t, fx.feed.Start(context.Background()))
	waitForOrders(t, fx.feed, func(orders []entity.Order) bool { return len(orders) == 1 })

	fx.api.EXPECT().
		UpdateOrderStatus(mock.Anything, int64(1), "").
		Return(nil, domainerrors.ErrStatusUpdateFailed)

	_, err := fx.feed.MarkPaid(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, entity.PaymentPending, fx.feed.Orders()[0].PaymentStatus)
}

func TestOrderFeed_SnapshotFailureSurfacesAsLastError(t *testing.T) {
	fx := createTestOrderFeed(t, entity.CategoryGeneral, entity.Session{})

	fx.api.EXPECT().
		FetchOrders(mock.Anything, entity.CategoryGeneral, "").
		Return(nil, domainerrors.ErrNetwork)

	require.NoError(t, fx.feed.Start(context.Background()))

	require.Eventually(t, func() bool {
		return fx.feed.LastError() != nil
	}, time.Second, 5*time.Millisecond)
	assert.Empty(t, fx.feed.Orders())
}

func TestOrderFeed_OrdersOnFiltersByLocalCalendarDay(t *testing.T) {
	fx := createTestOrderFeed(t, entity.CategoryGeneral, entity.Session{})

	saoPaulo := time.FixedZone("-03", -3*60*60)
	// 23:59 local on May 1st is already May 2nd in UTC.
	lateEvening := time.Date(2024, 5, 1, 23, 59, 0, 0, saoPaulo)
	dayBefore := time.Date(2024, 4, 30, 12, 0, 0, 0, saoPaulo)

	fx.api.EXPECT().
		FetchOrders(mock.Anything, entity.CategoryGeneral, "").
		Return([]entity.Order{
			feedOrder(1, entity.PaymentPending, lateEvening),
			feedOrder(2, entity.PaymentPending, dayBefore),
		}, nil)

	require.NoError(t, fx.feed.Start(context.Background()))
	waitForOrders(t, fx.feed, func(orders []entity.Order) bool { return len(orders) == 2 })

	day := time.Date(2024, 5, 1, 0, 0, 0, 0, saoPaulo)
	onDay := fx.feed.OrdersOn(day, saoPaulo)
	require.Len(t, onDay, 1)
	assert.Equal(t, int64(1), onDay[0].ID)
}

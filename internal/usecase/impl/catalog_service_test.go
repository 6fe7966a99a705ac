package impl

import (
	"context"
	"testing"
	"time"

	"comanda/config"
	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	mockService "comanda/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogFixtures struct {
	service  *catalogService
	api      *mockService.MockOrderingAPI
	sessions *sessionStub
}

func createTestCatalogService(t *testing.T, requiresAuth bool, session entity.Session) catalogFixtures {
	api := mockService.NewMockOrderingAPI(t)
	sessions := newSessionStub(session)

	cfg := testConfig()
	cfg.API = &config.APIConfig{BaseURL: "http://backend", CatalogRequiresAuth: requiresAuth}

	service := NewCatalogService(cfg, api, sessions, testLogger()).(*catalogService)
	t.Cleanup(service.Stop)

	return catalogFixtures{service: service, api: api, sessions: sessions}
}

func TestCatalogService_RefreshReplacesList(t *testing.T) {
	fx := createTestCatalogService(t, false, entity.Session{})
	ctx := context.Background()

	first := []entity.Product{testProduct(1, "Acarajé", "12.50")}
	second := []entity.Product{testProduct(2, "Suco", "5.00"), testProduct(3, "Doce", "4.00")}

	fx.api.EXPECT().FetchProducts(ctx, "").Return(first, nil).Once()
	require.NoError(t, fx.service.Refresh(ctx))
	assert.Len(t, fx.service.Products(), 1)

	fx.api.EXPECT().FetchProducts(ctx, "").Return(second, nil).Once()
	require.NoError(t, fx.service.Refresh(ctx))
	assert.Len(t, fx.service.Products(), 2)
	assert.Nil(t, fx.service.LastError())
}

func TestCatalogService_RefreshFailureKeepsLastKnownList(t *testing.T) {
	fx := createTestCatalogService(t, false, entity.Session{})
	ctx := context.Background()

	products := []entity.Product{testProduct(1, "Acarajé", "12.50")}
	fx.api.EXPECT().FetchProducts(ctx, "").Return(products, nil).Once()
	require.NoError(t, fx.service.Refresh(ctx))

	fx.api.EXPECT().FetchProducts(ctx, "").Return(nil, domainerrors.ErrNetwork).Once()
	err := fx.service.Refresh(ctx)
	require.Error(t, err)

	assert.Len(t, fx.service.Products(), 1)
	assert.Error(t, fx.service.LastError())

	// A later success clears the warning.
	fx.api.EXPECT().FetchProducts(ctx, "").Return(products, nil).Once()
	require.NoError(t, fx.service.Refresh(ctx))
	assert.Nil(t, fx.service.LastError())
}

func TestCatalogService_GatedRefreshDefersWithoutSession(t *testing.T) {
	fx := createTestCatalogService(t, true, entity.Session{})
	ctx := context.Background()

	// No FetchProducts expectation: a deferred refresh must not hit the API.
	require.NoError(t, fx.service.Refresh(ctx))
	assert.Empty(t, fx.service.Products())
}

func TestCatalogService_DeferredRefreshRunsAfterLogin(t *testing.T) {
	fx := createTestCatalogService(t, true, entity.Session{})
	ctx := context.Background()

	require.NoError(t, fx.service.Start(ctx))
	require.NoError(t, fx.service.Refresh(ctx))
	assert.Empty(t, fx.service.Products())

	products := []entity.Product{testProduct(1, "Acarajé", "12.50")}
	fx.api.EXPECT().
		FetchProducts(mock.Anything, "token-1").
		Return(products, nil).
		Once()

	fx.sessions.set(authenticatedSession("token-1", "Maria"))

	require.Eventually(t, func() bool {
		return len(fx.service.Products()) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestCatalogService_GatedListClearedOnLogout(t *testing.T) {
	fx := createTestCatalogService(t, true, authenticatedSession("token-1", "Maria"))
	ctx := context.Background()

	products := []entity.Product{testProduct(1, "Acarajé", "12.50")}
	fx.api.EXPECT().FetchProducts(mock.Anything, "token-1").Return(products, nil)

	require.NoError(t, fx.service.Start(ctx))
	require.Eventually(t, func() bool {
		return len(fx.service.Products()) == 1
	}, time.Second, 10*time.Millisecond)

	fx.sessions.set(entity.Session{})

	require.Eventually(t, func() bool {
		return len(fx.service.Products()) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestCatalogService_FindLooksUpByID(t *testing.T) {
	fx := createTestCatalogService(t, false, entity.Session{})
	ctx := context.Background()

	fx.api.EXPECT().FetchProducts(ctx, "").
		Return([]entity.Product{testProduct(1, "Acarajé", "12.50")}, nil)
	require.NoError(t, fx.service.Refresh(ctx))

	product, ok := fx.service.Find(1)
	require.True(t, ok)
	assert.Equal(t, "Acarajé", product.Name)

	_, ok = fx.service.Find(99)
	assert.False(t, ok)
}

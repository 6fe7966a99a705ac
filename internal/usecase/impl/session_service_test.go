package impl

import (
	"context"
	"testing"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/domain/service"
	"comanda/internal/infra/auth"
	mockRepo "comanda/internal/mocks/repository"
	mockService "comanda/internal/mocks/service"
	"comanda/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixtures struct {
	service usecase.SessionUsecase
	api     *mockService.MockOrderingAPI
	store   *mockRepo.MockLocalStore
}

func createTestSessionService(t *testing.T, setup func(api *mockService.MockOrderingAPI, store *mockRepo.MockLocalStore)) sessionFixtures {
	api := mockService.NewMockOrderingAPI(t)
	store := mockRepo.NewMockLocalStore(t)
	if setup != nil {
		setup(api, store)
	}

	service, err := NewSessionService(api, store, auth.NewTokenInspector(), testLogger())
	require.NoError(t, err)

	return sessionFixtures{service: service, api: api, store: store}
}

func emptyStore(_ *mockService.MockOrderingAPI, store *mockRepo.MockLocalStore) {
	store.EXPECT().Get(mock.Anything, repository.KeyToken).Return(nil, repository.ErrKeyNotFound)
}

func TestSessionService_StartsLoggedOutWithEmptyStore(t *testing.T) {
	fx := createTestSessionService(t, emptyStore)

	assert.False(t, fx.service.Current().IsAuthenticated())
}

func TestSessionService_RestoresPersistedSession(t *testing.T) {
	fx := createTestSessionService(t, func(_ *mockService.MockOrderingAPI, store *mockRepo.MockLocalStore) {
		store.EXPECT().Get(mock.Anything, repository.KeyToken).Return([]byte("opaque-token"), nil)
		store.EXPECT().Get(mock.Anything, repository.KeyUser).Return([]byte(`{"tipo":"funcionario","dados":{"nome":"Maria"}}`), nil)
	})

	current := fx.service.Current()
	require.True(t, current.IsAuthenticated())
	assert.Equal(t, "opaque-token", current.Token)
	assert.Equal(t, "Maria", current.User.DisplayName())
}

func TestSessionService_DiscardsExpiredPersistedToken(t *testing.T) {
	// exp 2001-09-09, long dead.
	expired := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJleHAiOjEwMDAwMDAwMDB9." +
		"x"

	fx := createTestSessionService(t, func(_ *mockService.MockOrderingAPI, store *mockRepo.MockLocalStore) {
		store.EXPECT().Get(mock.Anything, repository.KeyToken).Return([]byte(expired), nil)
		store.EXPECT().Get(mock.Anything, repository.KeyUser).Return([]byte(`{"tipo":"funcionario"}`), nil)
		store.EXPECT().Delete(mock.Anything, repository.KeyToken).Return(nil)
		store.EXPECT().Delete(mock.Anything, repository.KeyUser).Return(nil)
	})

	assert.False(t, fx.service.Current().IsAuthenticated())
}

func TestSessionService_LoginPersistsAndPublishes(t *testing.T) {
	ctx := context.Background()
	session := authenticatedSession("token-1", "Maria")

	fx := createTestSessionService(t, emptyStore)
	fx.api.EXPECT().
		Login(ctx, mock.MatchedBy(func(req *service.LoginRequest) bool {
			return req.Username == "maria" && req.AccountType == entity.AccountEmployee
		})).
		Return(&session, nil)
	fx.store.EXPECT().Set(ctx, repository.KeyToken, []byte("token-1")).Return(nil)
	fx.store.EXPECT().Set(ctx, repository.KeyUser, mock.Anything).Return(nil)

	watch, cancel := fx.service.Watch()
	defer cancel()
	initial := <-watch
	assert.False(t, initial.IsAuthenticated())

	got, err := fx.service.Login(ctx, "maria", "secret", entity.AccountEmployee)
	require.NoError(t, err)
	assert.Equal(t, "token-1", got.Token)

	published := <-watch
	assert.True(t, published.IsAuthenticated())
	assert.Equal(t, "token-1", fx.service.Current().Token)
}

func TestSessionService_LoginRejectionLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()

	fx := createTestSessionService(t, emptyStore)
	fx.api.EXPECT().
		Login(ctx, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials)

	_, err := fx.service.Login(ctx, "maria", "wrong", entity.AccountEmployee)
	require.Error(t, err)
	assert.False(t, fx.service.Current().IsAuthenticated())
}

func TestSessionService_LoginRejectsUnknownAccountType(t *testing.T) {
	fx := createTestSessionService(t, emptyStore)

	_, err := fx.service.Login(context.Background(), "maria", "secret", entity.AccountType("admin"))
	require.Error(t, err)
}

func TestSessionService_LogoutClearsAndPublishes(t *testing.T) {
	ctx := context.Background()

	fx := createTestSessionService(t, func(_ *mockService.MockOrderingAPI, store *mockRepo.MockLocalStore) {
		store.EXPECT().Get(mock.Anything, repository.KeyToken).Return([]byte("opaque-token"), nil)
		store.EXPECT().Get(mock.Anything, repository.KeyUser).Return([]byte(`{"tipo":"funcionario"}`), nil)
		store.EXPECT().Delete(mock.Anything, repository.KeyToken).Return(nil)
		store.EXPECT().Delete(mock.Anything, repository.KeyUser).Return(nil)
	})
	require.True(t, fx.service.Current().IsAuthenticated())

	watch, cancel := fx.service.Watch()
	defer cancel()
	<-watch // current session delivered first

	require.NoError(t, fx.service.Logout(ctx))

	published := <-watch
	assert.False(t, published.IsAuthenticated())
	assert.False(t, fx.service.Current().IsAuthenticated())
}

func TestSessionService_WatchDeliversCurrentSessionFirst(t *testing.T) {
	fx := createTestSessionService(t, func(_ *mockService.MockOrderingAPI, store *mockRepo.MockLocalStore) {
		store.EXPECT().Get(mock.Anything, repository.KeyToken).Return([]byte("opaque-token"), nil)
		store.EXPECT().Get(mock.Anything, repository.KeyUser).Return([]byte(`{"tipo":"funcionario"}`), nil)
	})

	watch, cancel := fx.service.Watch()
	defer cancel()

	first := <-watch
	assert.Equal(t, "opaque-token", first.Token)
}

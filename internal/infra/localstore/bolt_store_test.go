package localstore

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"comanda/config"
	"comanda/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func createTestStore(t *testing.T) repository.LocalStore {
	t.Helper()

	cfg := &config.Config{
		Storage: &config.StorageConfig{Path: filepath.Join(t.TempDir(), "comanda.db")},
	}

	lc := fxtest.NewLifecycle(t)
	store, err := New(StoreParams{
		Lc:     lc,
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	lc.RequireStart()
	t.Cleanup(lc.RequireStop)

	return store
}

func TestBoltStore_SetGetRoundtrip(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "token", []byte("token-1")))

	value, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("token-1"), value)

	require.NoError(t, store.Set(ctx, "token", []byte("token-2")))

	value, err = store.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("token-2"), value)
}

func TestBoltStore_GetMissingKey(t *testing.T) {
	store := createTestStore(t)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestBoltStore_Delete(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "user", []byte(`{"tipo":"funcionario"}`)))
	require.NoError(t, store.Delete(ctx, "user"))

	_, err := store.Get(ctx, "user")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)

	// Deleting an absent key is a no-op.
	assert.NoError(t, store.Delete(ctx, "user"))
}

func TestBoltStore_ValueIsDetachedCopy(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "token", []byte("token-1")))

	value, err := store.Get(ctx, "token")
	require.NoError(t, err)
	value[0] = 'X'

	again, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("token-1"), again)
}

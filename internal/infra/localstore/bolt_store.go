// Package localstore implements the on-device key-value capability on top of
// a single-file bolt database.
package localstore

import (
	"context"
	"log/slog"

	"comanda/config"
	"comanda/internal/domain/repository"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/fx"
)

var bucketName = []byte("comanda")

type boltStore struct {
	db *bolt.DB
}

// StoreParams holds dependencies for the local store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New opens (or creates) the bolt file configured under storage.path.
func New(params StoreParams) (repository.LocalStore, error) {
	db, err := bolt.Open(params.Config.Storage.Path, 0o600, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open local store %s", params.Config.Storage.Path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)

		return err
	})
	if err != nil {
		db.Close()

		return nil, errors.Wrap(err, "failed to create storage bucket")
	}

	params.Logger.Info("Local store opened", slog.String("path", params.Config.Storage.Path))

	store := &boltStore{db: db}
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

func (s *boltStore) Get(_ context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketName).Get([]byte(key))
		if raw == nil {
			return repository.ErrKeyNotFound
		}
		value = make([]byte, len(raw))
		copy(value, raw)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

func (s *boltStore) Set(_ context.Context, key string, value []byte) error {
	return errors.Wrap(s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), value)
	}), "failed to write local store")
}

func (s *boltStore) Delete(_ context.Context, key string) error {
	return errors.Wrap(s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	}), "failed to delete from local store")
}

func (s *boltStore) Close() error {
	return errors.WithStack(s.db.Close())
}

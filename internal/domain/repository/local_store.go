// Package repository declares persistence interfaces owned by the domain.
package repository

import (
	"context"

	"comanda/internal/errors"
)

// ErrKeyNotFound is returned by Get when no value exists for the key.
var ErrKeyNotFound = errors.New("local store: key not found")

// Local storage keys for the persisted session.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// LocalStore is the on-device key-value capability backing session
// persistence. Values are opaque bytes; serialization is the caller's
// concern.
type LocalStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

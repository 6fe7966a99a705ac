package usecase

import (
	"context"

	"comanda/internal/domain/entity"
)

// SessionUsecase owns the current credential and identity. It is the only
// state read by several components at once; they treat it as read-only and
// react to changes through Watch.
type SessionUsecase interface {
	// Current returns the present session; the zero session when logged out.
	Current() entity.Session

	// Login authenticates against the endpoint selected by accountType and,
	// on success, persists and publishes the new session.
	Login(ctx context.Context, username, password string, accountType entity.AccountType) (entity.Session, error)

	// Logout clears the persisted credential and publishes the logged-out
	// session.
	Logout(ctx context.Context) error

	// Watch returns a channel receiving every session change and a cancel
	// function releasing the subscription. The current session is delivered
	// first so subscribers need no separate initial read.
	Watch() (<-chan entity.Session, func())
}

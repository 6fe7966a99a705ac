package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/domain/service"
	"comanda/internal/infra/auth"
	"comanda/internal/usecase"

	"github.com/pkg/errors"
)

// watchBuffer sizes the per-subscriber notification queues. Session changes
// are rare; the buffer only absorbs a subscriber between selects.
const watchBuffer = 4

// sessionService implements the SessionUsecase interface. It is the single
// owner of the credential; every other component reads it or watches it.
type sessionService struct {
	api       service.OrderingAPI
	store     repository.LocalStore
	inspector *auth.TokenInspector
	logger    *slog.Logger

	mu       sync.Mutex
	current  entity.Session
	watchers map[int]chan entity.Session
	nextID   int
}

// NewSessionService restores any persisted session from the local store and
// returns the store. A persisted token that is already expired is discarded
// so components do not start gated on a dead credential.
func NewSessionService(
	api service.OrderingAPI,
	store repository.LocalStore,
	inspector *auth.TokenInspector,
	logger *slog.Logger,
) (usecase.SessionUsecase, error) {
	srv := &sessionService{
		api:       api,
		store:     store,
		inspector: inspector,
		logger:    logger,
		watchers:  map[int]chan entity.Session{},
	}

	if err := srv.restore(context.Background()); err != nil {
		// A corrupt persisted session is not fatal; start logged out.
		logger.Warn("Failed to restore persisted session", slog.Any("error", err))
	}

	return srv, nil
}

func (srv *sessionService) restore(ctx context.Context) error {
	token, err := srv.store.Get(ctx, repository.KeyToken)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to read persisted token")
	}

	rawUser, err := srv.store.Get(ctx, repository.KeyUser)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to read persisted user")
	}

	if !srv.inspector.Usable(string(token)) {
		srv.logger.Info("Discarding expired persisted session")

		return srv.clearPersisted(ctx)
	}

	var user entity.UserProfile
	if err := json.Unmarshal(rawUser, &user); err != nil {
		return errors.Wrap(err, "failed to decode persisted user")
	}

	srv.mu.Lock()
	srv.current = entity.Session{Token: string(token), User: &user}
	srv.mu.Unlock()

	srv.logger.Info("Restored persisted session", slog.String("user", user.DisplayName()))

	return nil
}

// Current returns the present session.
func (srv *sessionService) Current() entity.Session {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.current
}

// Login authenticates and, on success, persists and publishes the session.
func (srv *sessionService) Login(ctx context.Context, username, password string, accountType entity.AccountType) (entity.Session, error) {
	srv.logger.Info("Logging in", slog.String("account_type", string(accountType)))

	if !accountType.Valid() {
		return entity.Session{}, domainerrors.ErrValidationFailed.WithDetails("unknown account type")
	}

	session, err := srv.api.Login(ctx, &service.LoginRequest{
		Username:    username,
		Password:    password,
		AccountType: accountType,
	})
	if err != nil {
		srv.logger.Warn("Login failed", slog.Any("error", err))

		return entity.Session{}, err
	}

	rawUser, err := json.Marshal(session.User)
	if err != nil {
		return entity.Session{}, errors.Wrap(err, "failed to encode user profile")
	}

	if err := srv.store.Set(ctx, repository.KeyToken, []byte(session.Token)); err != nil {
		return entity.Session{}, err
	}
	if err := srv.store.Set(ctx, repository.KeyUser, rawUser); err != nil {
		return entity.Session{}, err
	}

	srv.publish(*session)
	srv.logger.Info("Login successful", slog.String("user", session.User.DisplayName()))

	return *session, nil
}

// Logout clears the persisted credential and publishes the logged-out state.
func (srv *sessionService) Logout(ctx context.Context) error {
	srv.logger.Info("Logging out")

	if err := srv.clearPersisted(ctx); err != nil {
		return err
	}

	srv.publish(entity.Session{})

	return nil
}

func (srv *sessionService) clearPersisted(ctx context.Context) error {
	if err := srv.store.Delete(ctx, repository.KeyToken); err != nil {
		return err
	}

	return srv.store.Delete(ctx, repository.KeyUser)
}

// Watch returns a channel delivering the current session immediately and
// every change afterwards, plus a cancel function.
func (srv *sessionService) Watch() (<-chan entity.Session, func()) {
	srv.mu.Lock()
	id := srv.nextID
	srv.nextID++
	ch := make(chan entity.Session, watchBuffer)
	srv.watchers[id] = ch
	ch <- srv.current
	srv.mu.Unlock()

	cancel := func() {
		srv.mu.Lock()
		if existing, ok := srv.watchers[id]; ok {
			delete(srv.watchers, id)
			close(existing)
		}
		srv.mu.Unlock()
	}

	return ch, cancel
}

func (srv *sessionService) publish(session entity.Session) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.current = session
	for id, ch := range srv.watchers {
		select {
		case ch <- session:
		default:
			srv.logger.Warn("Dropping session notification for slow watcher", slog.Int("watcher_id", id))
		}
	}
}

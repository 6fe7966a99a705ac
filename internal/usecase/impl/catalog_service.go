package impl

import (
	"context"
	"log/slog"
	"sync"

	"comanda/config"
	"comanda/internal/domain/entity"
	"comanda/internal/domain/service"
	"comanda/internal/usecase"
)

// catalogService implements the CatalogUsecase interface. On failure the
// previous product list is kept and the error is surfaced as a passive
// warning through LastError, never as a crash of the consuming screen.
type catalogService struct {
	api          service.OrderingAPI
	sessions     usecase.SessionUsecase
	requiresAuth bool
	logger       *slog.Logger

	mu       sync.Mutex
	products []entity.Product
	lastErr  error
	deferred bool
	stop     func()
	stopOnce sync.Once
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	cfg *config.Config,
	api service.OrderingAPI,
	sessions usecase.SessionUsecase,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	requiresAuth := cfg.API != nil && cfg.API.CatalogRequiresAuth

	return &catalogService{
		api:          api,
		sessions:     sessions,
		requiresAuth: requiresAuth,
		logger:       logger,
	}
}

// Start watches the session so a refresh deferred for lack of credentials is
// retried as soon as authentication becomes true, and the cached list is
// dropped on logout to avoid leaking one identity's catalog to the next.
func (srv *catalogService) Start(ctx context.Context) error {
	sessions, cancel := srv.sessions.Watch()

	watchCtx, cancelCtx := context.WithCancel(context.WithoutCancel(ctx))
	srv.stop = func() {
		cancel()
		cancelCtx()
	}

	go func() {
		wasAuthenticated := false
		for {
			select {
			case <-watchCtx.Done():
				return
			case session, ok := <-sessions:
				if !ok {
					return
				}
				srv.onSessionChange(watchCtx, session, &wasAuthenticated)
			}
		}
	}()

	srv.Refresh(ctx) //nolint:errcheck // initial refresh failure is already surfaced via LastError

	return nil
}

func (srv *catalogService) onSessionChange(ctx context.Context, session entity.Session, wasAuthenticated *bool) {
	authenticated := session.IsAuthenticated()
	defer func() { *wasAuthenticated = authenticated }()

	if !srv.requiresAuth {
		return
	}

	switch {
	case authenticated && !*wasAuthenticated:
		srv.mu.Lock()
		retry := srv.deferred
		srv.mu.Unlock()
		if retry {
			srv.logger.Info("Retrying deferred catalog refresh after login")
		}
		srv.Refresh(ctx) //nolint:errcheck // failure is surfaced via LastError

	case !authenticated && *wasAuthenticated:
		// Cross-identity leakage guard: a gated catalog does not outlive the
		// credential that fetched it.
		srv.mu.Lock()
		srv.products = nil
		srv.mu.Unlock()
		srv.logger.Info("Cleared catalog after logout")
	}
}

// Stop ends the session watcher.
func (srv *catalogService) Stop() {
	srv.stopOnce.Do(func() {
		if srv.stop != nil {
			srv.stop()
		}
	})
}

// Refresh fetches the catalog, deferring while authentication is required
// but absent.
func (srv *catalogService) Refresh(ctx context.Context) error {
	session := srv.sessions.Current()
	if srv.requiresAuth && !session.IsAuthenticated() {
		srv.mu.Lock()
		srv.deferred = true
		srv.mu.Unlock()
		srv.logger.Debug("Deferring catalog refresh until authenticated")

		return nil
	}

	products, err := srv.api.FetchProducts(ctx, session.Token)
	if err != nil {
		srv.mu.Lock()
		srv.lastErr = err
		srv.mu.Unlock()
		srv.logger.Warn("Catalog refresh failed, keeping last known list", slog.Any("error", err))

		return err
	}

	srv.mu.Lock()
	srv.products = products
	srv.lastErr = nil
	srv.deferred = false
	srv.mu.Unlock()

	srv.logger.Info("Catalog refreshed", slog.Int("count", len(products)))

	return nil
}

// Products returns the last successfully fetched list.
func (srv *catalogService) Products() []entity.Product {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	out := make([]entity.Product, len(srv.products))
	copy(out, srv.products)

	return out
}

// Find returns the product for an id from the current list.
func (srv *catalogService) Find(productID int64) (entity.Product, bool) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	for _, product := range srv.products {
		if product.ID == productID {
			return product, true
		}
	}

	return entity.Product{}, false
}

// LastError reports the warning from the most recent failed refresh.
func (srv *catalogService) LastError() error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.lastErr
}

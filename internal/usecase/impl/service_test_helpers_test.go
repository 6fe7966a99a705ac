package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"comanda/config"
	"comanda/internal/domain/entity"
	"comanda/internal/usecase"

	"github.com/shopspring/decimal"
)

// testLogger returns a logger discarding all output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{}
}

// sessionStub is a hand-rolled SessionUsecase double. Tests drive session
// transitions through set, which fans out to watchers like the real owner.
type sessionStub struct {
	mu       sync.Mutex
	current  entity.Session
	watchers []chan entity.Session
}

func newSessionStub(session entity.Session) *sessionStub {
	return &sessionStub{current: session}
}

func (s *sessionStub) Current() entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

func (s *sessionStub) Login(_ context.Context, _, _ string, _ entity.AccountType) (entity.Session, error) {
	return s.Current(), nil
}

func (s *sessionStub) Logout(_ context.Context) error {
	s.set(entity.Session{})

	return nil
}

func (s *sessionStub) Watch() (<-chan entity.Session, func()) {
	s.mu.Lock()
	ch := make(chan entity.Session, 8)
	s.watchers = append(s.watchers, ch)
	ch <- s.current
	s.mu.Unlock()

	return ch, func() {}
}

func (s *sessionStub) set(session entity.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = session
	for _, ch := range s.watchers {
		ch <- session
	}
}

// authenticatedSession builds a session with a named identity.
func authenticatedSession(token, name string) entity.Session {
	return entity.Session{
		Token: token,
		User: &entity.UserProfile{
			Type: "funcionario",
			Data: []byte(`{"nome":"` + name + `"}`),
		},
	}
}

// catalogStub serves a fixed product list.
type catalogStub struct {
	products []entity.Product
}

func (c *catalogStub) Refresh(_ context.Context) error { return nil }

func (c *catalogStub) Products() []entity.Product {
	out := make([]entity.Product, len(c.products))
	copy(out, c.products)

	return out
}

func (c *catalogStub) Find(productID int64) (entity.Product, bool) {
	for _, product := range c.products {
		if product.ID == productID {
			return product, true
		}
	}

	return entity.Product{}, false
}

func (c *catalogStub) LastError() error              { return nil }
func (c *catalogStub) Start(_ context.Context) error { return nil }
func (c *catalogStub) Stop()                         {}

var _ usecase.CatalogUsecase = (*catalogStub)(nil)
var _ usecase.SessionUsecase = (*sessionStub)(nil)

func testProduct(id int64, name, price string) entity.Product {
	return entity.Product{
		ID:        id,
		Name:      name,
		UnitPrice: decimal.RequireFromString(price),
	}
}

package pubsub

import (
	"context"
	"log/slog"

	"comanda/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/pubsub"
	_ "gocloud.dev/pubsub/mempubsub" // mem:// driver for local development
)

// gocloudSubscriber feeds the hub from a portable gocloud.dev subscription
// URL (mem://, gcppubsub://, ...).
type gocloudSubscriber struct {
	sub    *pubsub.Subscription
	hub    *Hub
	logger *slog.Logger
	cancel context.CancelFunc
	done   chan struct{}
}

// NewGocloudSubscriber opens the subscription named by urlstr.
func NewGocloudSubscriber(ctx context.Context, urlstr string, hub *Hub, logger *slog.Logger) (*gocloudSubscriber, error) {
	sub, err := pubsub.OpenSubscription(ctx, urlstr)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open subscription %s", urlstr)
	}

	logger.Info("Portable Pub/Sub subscriber initialized", slog.String("url", urlstr))

	return &gocloudSubscriber{
		sub:    sub,
		hub:    hub,
		logger: logger,
		done:   make(chan struct{}),
	}, nil
}

// Run receives messages until ctx ends, publishing each into the hub.
func (s *gocloudSubscriber) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	defer close(s.done)

	for {
		msg, err := s.sub.Receive(runCtx)
		if err != nil {
			if runCtx.Err() != nil {
				return nil
			}

			return errors.WithStack(err)
		}

		event := msg.Metadata[attributeEvent]
		if event == "" {
			s.logger.Warn("[Gocloud] Dropping message without event attribute")
			msg.Ack()

			continue
		}

		s.hub.Publish(service.PushMessage{Event: event, Data: msg.Body})
		msg.Ack()
	}
}

// Close stops the receive loop and shuts the subscription down.
func (s *gocloudSubscriber) Close() error {
	if s.cancel != nil {
		s.cancel()
		<-s.done
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return errors.WithStack(s.sub.Shutdown(shutdownCtx))
}

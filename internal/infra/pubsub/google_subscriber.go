package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"comanda/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// attributeEvent names the message attribute carrying the push event kind.
const attributeEvent = "event"

// googleSubscriber feeds the hub from a Google Cloud Pub/Sub subscription.
type googleSubscriber struct {
	client *pubsub.Client
	subID  string
	hub    *Hub
	logger *slog.Logger
	cancel context.CancelFunc
	done   chan struct{}
}

// NewGoogleSubscriber creates a subscriber pulling from Google Pub/Sub.
func NewGoogleSubscriber(ctx context.Context, projectID, subscriptionID string, hub *Hub, logger *slog.Logger) (*googleSubscriber, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if the subscription exists using SubscriptionAdminClient
	subPath := fmt.Sprintf("projects/%s/subscriptions/%s", projectID, subscriptionID)
	_, err = client.SubscriptionAdminClient.GetSubscription(ctx, &pubsubpb.GetSubscriptionRequest{
		Subscription: subPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get subscription %s", subscriptionID)
	}

	logger.Info("Google Pub/Sub subscriber initialized",
		slog.String("project_id", projectID),
		slog.String("subscription_id", subscriptionID),
	)

	return &googleSubscriber{
		client: client,
		subID:  subscriptionID,
		hub:    hub,
		logger: logger,
		done:   make(chan struct{}),
	}, nil
}

// Run receives messages until ctx ends, publishing each into the hub.
func (s *googleSubscriber) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	defer close(s.done)

	subscriber := s.client.Subscriber(s.subID)
	err := subscriber.Receive(runCtx, func(_ context.Context, msg *pubsub.Message) {
		event := msg.Attributes[attributeEvent]
		if event == "" {
			s.logger.Warn("[GooglePubSub] Dropping message without event attribute",
				slog.String("message_id", msg.ID),
			)
			msg.Ack()

			return
		}

		s.hub.Publish(service.PushMessage{Event: event, Data: msg.Data})
		msg.Ack()
	})
	if err != nil && runCtx.Err() == nil {
		return errors.WithStack(err)
	}

	return nil
}

// Close stops the receive loop and releases the client.
func (s *googleSubscriber) Close() error {
	if s.cancel != nil {
		s.cancel()
		<-s.done
	}

	return errors.WithStack(s.client.Close())
}

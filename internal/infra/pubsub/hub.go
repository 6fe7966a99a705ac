// Package pubsub implements the push channel: a fan-out hub fed by one of
// several subscriber sources (Google Pub/Sub, a portable gocloud driver, or
// the worker's push endpoint).
package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"comanda/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// subscriptionBuffer bounds per-subscriber queues. A consumer that stops
// draining loses newest events rather than stalling the source loop.
const subscriptionBuffer = 64

// Hub fans incoming push messages out to per-screen subscriptions. It
// implements service.PushChannel; sources call Publish as events arrive.
type Hub struct {
	logger *slog.Logger

	mu     sync.Mutex
	subs   map[string]*hubSubscription
	closed bool
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logger,
		subs:   make(map[string]*hubSubscription),
	}
}

type hubSubscription struct {
	id     string
	events map[string]struct{}
	ch     chan service.PushMessage
	hub    *Hub
	once   sync.Once
}

func (s *hubSubscription) Events() <-chan service.PushMessage {
	return s.ch
}

func (s *hubSubscription) Close() error {
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subs, s.id)
		s.hub.mu.Unlock()
		close(s.ch)
	})

	return nil
}

// Subscribe opens an independent subscription filtered to the named events.
// The subscription is also closed when ctx ends.
func (h *Hub) Subscribe(ctx context.Context, events []string) (service.PushSubscription, error) {
	filter := make(map[string]struct{}, len(events))
	for _, event := range events {
		filter[event] = struct{}{}
	}

	sub := &hubSubscription{
		id:     uuid.New().String(),
		events: filter,
		ch:     make(chan service.PushMessage, subscriptionBuffer),
		hub:    h,
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()

		return nil, errors.New("push channel is closed")
	}
	h.subs[sub.id] = sub
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		sub.Close()
	}()

	return sub, nil
}

// Publish delivers one message to every subscription whose filter matches.
func (h *Hub) Publish(msg service.PushMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs {
		if _, ok := sub.events[msg.Event]; !ok {
			continue
		}
		select {
		case sub.ch <- msg:
		default:
			h.logger.Warn("Dropping push message for slow subscriber",
				slog.String("event", msg.Event),
				slog.String("subscription_id", sub.id),
			)
		}
	}
}

// Close tears down every open subscription.
func (h *Hub) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()

		return nil
	}
	h.closed = true
	subs := make([]*hubSubscription, 0, len(h.subs))
	for _, sub := range h.subs {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		sub.Close()
	}

	return nil
}

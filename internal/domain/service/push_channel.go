package service

import "context"

// PushMessage is one event delivered over the push channel. Data is the raw
// JSON payload; Event names the kind (novoPedido_*, statusAtualizado).
type PushMessage struct {
	Event string
	Data  []byte
}

// PushSubscription is one open event stream. Events is closed after Close
// returns or the subscription's context ends; consumers must drain it.
type PushSubscription interface {
	// Events delivers messages in arrival order.
	Events() <-chan PushMessage

	// Close tears the subscription down. Closing twice is a no-op.
	Close() error
}

// PushChannel is the persistent server-to-client event feed. Each Subscribe
// call opens an independent subscription filtered to the named events.
type PushChannel interface {
	Subscribe(ctx context.Context, events []string) (PushSubscription, error)
}

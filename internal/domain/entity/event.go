package entity

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// eventValidator checks required fields on decoded push payloads. The push
// channel delivers loosely shaped JSON; anything failing validation here is
// dropped at the boundary instead of propagating half-formed events inward.
var eventValidator = validator.New()

// NewOrderEvent is a push notification that a new order was created on a
// category stream.
type NewOrderEvent struct {
	Order Order
}

// StatusChangedEvent is a push notification that an existing order changed
// payment status. The payload carries only the id and the new value.
type StatusChangedEvent struct {
	ID        int64         `json:"id" validate:"required"`
	NewStatus PaymentStatus `json:"novoStatus" validate:"required,oneof=pago pendente"`
}

// DecodeNewOrderEvent parses and validates a novoPedido_* payload.
func DecodeNewOrderEvent(data []byte) (*NewOrderEvent, error) {
	var order Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, errors.Wrap(err, "malformed new-order payload")
	}
	if order.ID == 0 {
		return nil, errors.New("new-order payload missing id_pedido")
	}

	return &NewOrderEvent{Order: order}, nil
}

// DecodeStatusChangedEvent parses and validates a statusAtualizado payload.
func DecodeStatusChangedEvent(data []byte) (*StatusChangedEvent, error) {
	var event StatusChangedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "malformed status-changed payload")
	}
	if err := eventValidator.Struct(&event); err != nil {
		return nil, errors.Wrap(err, "invalid status-changed payload")
	}

	return &event, nil
}

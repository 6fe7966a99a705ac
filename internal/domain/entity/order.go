package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the payment state of an order as the backend reports it.
type PaymentStatus string

const (
	// PaymentPaid marks a settled order ("pago" on the wire).
	PaymentPaid PaymentStatus = "pago"

	// PaymentPending marks an unpaid order.
	PaymentPending PaymentStatus = "pendente"
)

// OrderItem is one line of an order, denormalized by the backend at creation
// time so later catalog edits do not rewrite order history.
type OrderItem struct {
	ProductID int64           `json:"produto_id"`
	Name      string          `json:"nome"`
	Quantity  int             `json:"quantidade"`
	UnitPrice decimal.Decimal `json:"preco"`
}

// Order is a server-created order. The client only ever reads it and toggles
// its payment status; identity is ID, unique within a category stream.
type Order struct {
	ID            int64           `json:"id_pedido"`
	ClientName    string          `json:"nome_cliente"`
	House         string          `json:"casa,omitempty"`
	Items         []OrderItem     `json:"pedidos"`
	Total         decimal.Decimal `json:"total"`
	PaymentStatus PaymentStatus   `json:"pag"`
	CreatedAt     time.Time       `json:"data_hora"`
	Notes         string          `json:"obs,omitempty"`
}

// OnLocalDay reports whether the order was created on the given calendar day
// as seen in loc. The comparison must use wall-clock fields, not a UTC slice
// of the timestamp, or orders near midnight land on the wrong day.
func (o Order) OnLocalDay(day time.Time, loc *time.Location) bool {
	if o.CreatedAt.IsZero() {
		return false
	}
	created := o.CreatedAt.In(loc)
	y1, m1, d1 := created.Date()
	y2, m2, d2 := day.In(loc).Date()

	return y1 == y2 && m1 == m2 && d1 == d2
}

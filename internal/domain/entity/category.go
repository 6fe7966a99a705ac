package entity

// Category identifies one live order stream. The three streams share one
// reconciler implementation parametrized by these fields.
type Category struct {
	Name          string // Stable identifier used in routes and logs.
	SnapshotPath  string // Endpoint returning the full current order list.
	NewOrderEvent string // Push event delivering newly created orders.
	RequiresAuth  bool   // Snapshot and subscription wait for a valid session.
}

// The order streams served by the backend. The venue stream is scoped to the
// authenticated restaurant, so it is gated on the session credential.
var (
	CategoryGeneral = Category{
		Name:          "geral",
		SnapshotPath:  "/pedidosGeral",
		NewOrderEvent: "novoPedido_geral",
	}

	CategoryAcaraje = Category{
		Name:          "acaraje",
		SnapshotPath:  "/pedidosAcaraje",
		NewOrderEvent: "novoPedido_acaraje",
	}

	CategoryVenue = Category{
		Name:          "restaurante",
		SnapshotPath:  "/pedidosRestaurante",
		NewOrderEvent: "novoPedido_restaurante",
		RequiresAuth:  true,
	}
)

// Categories lists every order stream in registration order.
func Categories() []Category {
	return []Category{CategoryGeneral, CategoryAcaraje, CategoryVenue}
}

// StatusChangedEventName is the shared push event announcing a payment status
// transition on any stream.
const StatusChangedEventName = "statusAtualizado"

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Product is one item of the remote catalog. Products are immutable once
// fetched; the catalog replaces them wholesale on every refresh.
type Product struct {
	ID        int64           `json:"id_produto"` // Catalog identity; cart entries reference it.
	Name      string          `json:"nome"`
	UnitPrice decimal.Decimal `json:"preco"`
	Category  string          `json:"categoria,omitempty"`
	ImageRef  string          `json:"imagem,omitempty"`
	Kitchen   string          `json:"cozinha,omitempty"` // Routing hint used by the checkout payload.
}

// productWire mirrors the heterogeneous catalog response. Older backend
// versions send "id" instead of "id_produto", and prices arrive either as
// JSON numbers or as strings.
type productWire struct {
	IDProduto *int64          `json:"id_produto"`
	ID        *int64          `json:"id"`
	Name      string          `json:"nome"`
	Price     decimal.Decimal `json:"preco"`
	Category  string          `json:"categoria"`
	ImageRef  string          `json:"imagem"`
	Kitchen   string          `json:"cozinha"`
}

// catalogWrapper is the object-shaped catalog response variant.
type catalogWrapper struct {
	Produtos []productWire `json:"produtos"`
}

// DecodeCatalog normalizes both catalog response shapes (a bare array or a
// wrapper object) into a single product list.
func DecodeCatalog(body []byte) ([]Product, error) {
	var wires []productWire
	if err := json.Unmarshal(body, &wires); err != nil {
		var wrapper catalogWrapper
		if err := json.Unmarshal(body, &wrapper); err != nil {
			return nil, errors.Wrap(err, "unrecognized catalog response shape")
		}
		wires = wrapper.Produtos
	}

	products := make([]Product, 0, len(wires))
	for _, w := range wires {
		id := int64(0)
		switch {
		case w.IDProduto != nil:
			id = *w.IDProduto
		case w.ID != nil:
			id = *w.ID
		}

		products = append(products, Product{
			ID:        id,
			Name:      w.Name,
			UnitPrice: w.Price,
			Category:  w.Category,
			ImageRef:  w.ImageRef,
			Kitchen:   w.Kitchen,
		})
	}

	return products, nil
}

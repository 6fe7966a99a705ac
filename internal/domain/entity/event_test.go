package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNewOrderEvent(t *testing.T) {
	payload := []byte(`{
		"id_pedido": 42,
		"nome_cliente": "Maria",
		"casa": "3",
		"pedidos": [{"produto_id":1,"nome":"Acarajé","quantidade":2,"preco":"12.50"}],
		"total": "25.00",
		"pag": "pendente",
		"data_hora": "2024-05-01T12:00:00Z"
	}`)

	event, err := DecodeNewOrderEvent(payload)
	require.NoError(t, err)
	assert.Equal(t, int64(42), event.Order.ID)
	assert.Equal(t, "Maria", event.Order.ClientName)
	assert.Equal(t, PaymentPending, event.Order.PaymentStatus)
	require.Len(t, event.Order.Items, 1)
	assert.Equal(t, 2, event.Order.Items[0].Quantity)
}

func TestDecodeNewOrderEvent_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: `novoPedido`},
		{name: "missing id", payload: `{"nome_cliente":"Maria","total":"25.00"}`},
		{name: "zero id", payload: `{"id_pedido":0,"nome_cliente":"Maria"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeNewOrderEvent([]byte(tt.payload))
			assert.Error(t, err)
		})
	}
}

func TestDecodeStatusChangedEvent(t *testing.T) {
	event, err := DecodeStatusChangedEvent([]byte(`{"id":42,"novoStatus":"pago"}`))
	require.NoError(t, err)
	assert.Equal(t, int64(42), event.ID)
	assert.Equal(t, PaymentPaid, event.NewStatus)
}

func TestDecodeStatusChangedEvent_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: `status`},
		{name: "missing id", payload: `{"novoStatus":"pago"}`},
		{name: "missing status", payload: `{"id":42}`},
		{name: "unknown status", payload: `{"id":42,"novoStatus":"quitado"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeStatusChangedEvent([]byte(tt.payload))
			assert.Error(t, err)
		})
	}
}

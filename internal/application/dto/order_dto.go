package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemDTO línea de pedido: producto y cantidad.
type OrderItemDTO struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest entrada para colocar un pedido. El total se calcula en el
// servidor a partir del precio unitario vigente de cada producto.
type CreateOrderRequest struct {
	ClientID string         `json:"client_id" validate:"required"`
	Items    []OrderItemDTO `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderRequest entrada para actualizar un pedido (reemplazo de campos).
// Si Items viene, la validación de stock se re-ejecuta contra las existencias
// actuales y el total se recalcula.
type UpdateOrderRequest struct {
	ClientID *string        `json:"client_id"`
	Items    []OrderItemDTO `json:"items"`
	Status   *string        `json:"status"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID        string          `json:"id"`
	Items     []OrderItemDTO  `json:"items"`
	ClientID  string          `json:"client_id"`
	SellerID  string          `json:"seller_id"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido. PENDING es el estado inicial al persistir; las
// transiciones a COMPLETED/CANCELLED llegan vía actualización externa.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

// ValidOrderStatus indica si s es un estado de pedido reconocido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem es una línea del pedido: producto y cantidad solicitada.
type OrderItem struct {
	ProductID string
	Quantity  int
}

// Order (pedido) pertenece a exactamente un vendedor. SellerID se fija en la
// creación a partir de la identidad del vendedor actuante y es inmutable.
// El cliente referenciado debe pertenecer al mismo vendedor.
type Order struct {
	ID        string
	Items     []OrderItem
	ClientID  string
	SellerID  string
	Total     decimal.Decimal
	Status    string
	CreatedAt time.Time
}

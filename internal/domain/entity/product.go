package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es un producto del catálogo global (sin scoping por vendedor).
// Stock nunca puede quedar negativo: los descuentos se aplican con una
// actualización condicional atómica en el repositorio.
type Product struct {
	ID        string
	Name      string
	Stock     int             // existencias disponibles
	Price     decimal.Decimal // precio unitario de venta
	CreatedAt time.Time
}

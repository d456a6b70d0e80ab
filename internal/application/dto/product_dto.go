package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name  string          `json:"name" validate:"required,min=1,max=200"`
	Stock int             `json:"stock" validate:"min=0"`
	Price decimal.Decimal `json:"price"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name  *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Stock *int             `json:"stock" validate:"omitempty,min=0"`
	Price *decimal.Decimal `json:"price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Stock     int             `json:"stock"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

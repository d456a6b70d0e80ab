package dto

import "github.com/shopspring/decimal"

// TopClientDTO fila del reporte de mejores clientes (pedidos COMPLETED).
type TopClientDTO struct {
	Client ClientResponse  `json:"client"`
	Total  decimal.Decimal `json:"total"`
}

// TopSellerDTO fila del reporte de mejores vendedores (pedidos COMPLETED).
type TopSellerDTO struct {
	Seller UserResponse    `json:"seller"`
	Total  decimal.Decimal `json:"total"`
}

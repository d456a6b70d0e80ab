package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
)

// ClientSalesResult fila del reporte de mejores clientes: cliente + suma de
// totales de sus pedidos COMPLETED.
type ClientSalesResult struct {
	Client entity.Client
	Total  decimal.Decimal
}

// SellerSalesResult fila del reporte de mejores vendedores.
type SellerSalesResult struct {
	Seller entity.User
	Total  decimal.Decimal
}

// ReportRepository consultas de agregación sobre pedidos históricos.
// Solo cuentan pedidos con estado COMPLETED; el orden es descendente por total.
type ReportRepository interface {
	TopClients(ctx context.Context) ([]ClientSalesResult, error)
	TopSellers(ctx context.Context, limit int) ([]SellerSalesResult, error)
}

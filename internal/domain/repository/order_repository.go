package repository

import (
	"context"

	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Order, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Order, error)
	ListBySellerAndStatus(ctx context.Context, sellerID, status string) ([]*entity.Order, error)
}

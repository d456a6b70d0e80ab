package repository

import (
	"context"

	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client (DIP).
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Client, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Client, error)
}

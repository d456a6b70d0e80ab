package repository

import (
	"context"

	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
//
// DecrementStock es la primitiva condicional atómica del almacén: descuenta
// qty solo si las existencias actuales alcanzan (stock >= qty) y devuelve el
// producto actualizado. Si el producto existe pero el stock no alcanza
// devuelve ErrInsufficientStock sin modificar nada; si no existe devuelve
// (nil, nil). Dos pedidos concurrentes sobre el mismo producto no pueden
// sobrevender: la condición y el descuento se evalúan en una sola operación.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Product, error)
	Search(ctx context.Context, text string) ([]*entity.Product, error)
	DecrementStock(ctx context.Context, id string, qty int) (*entity.Product, error)
}

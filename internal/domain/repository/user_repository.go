package repository

import (
	"context"

	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las lecturas devuelven (nil, nil) cuando el documento no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

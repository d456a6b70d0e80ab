package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD + búsqueda para el catálogo global.
// El descuento de stock por pedidos vive en el workflow de pedidos; aquí
// solo se administra el catálogo.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. Stock y precio no pueden ser negativos.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Stock < 0 || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Stock:     in.Stock,
		Price:     in.Price,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Inexistente -> ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto (campos presentes). Inexistente -> ErrNotFound.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. Inexistente -> ErrNotFound.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// List devuelve el catálogo completo.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Search busca productos por texto sobre el índice de name.
func (uc *ProductUseCase) Search(ctx context.Context, text string) ([]dto.ProductResponse, error) {
	if text == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.Search(ctx, text)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Stock:     p.Stock,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}

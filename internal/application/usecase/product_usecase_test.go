package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/application/usecase"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range f.products {
		list = append(list, p)
	}
	return list, nil
}

func (f *fakeProductRepo) Search(_ context.Context, text string) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range f.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(text)) {
			list = append(list, p)
		}
	}
	return list, nil
}

func (f *fakeProductRepo) DecrementStock(_ context.Context, id string, qty int) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	if p.Stock < qty {
		return nil, domain.ErrInsufficientStock
	}
	p.Stock -= qty
	cp := *p
	return &cp, nil
}

func TestProductCreate(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:  "Monitor 24\"",
		Stock: 10,
		Price: decimal.NewFromFloat(499.99),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, 10, out.Stock)
	assert.True(t, out.Price.Equal(decimal.NewFromFloat(499.99)))
}

func TestProductCreate_EntradaInvalida(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: "", Stock: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "Monitor", Stock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "Monitor", Price: decimal.NewFromInt(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductGetByID_Inexistente_RetornaNotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_CamposParciales(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{
		Name: "Monitor", Stock: 10, Price: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	nuevoStock := 25
	out, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{Stock: &nuevoStock})
	require.NoError(t, err)
	assert.Equal(t, 25, out.Stock)
	assert.Equal(t, "Monitor", out.Name, "los campos ausentes no cambian")
	assert.True(t, out.Price.Equal(decimal.NewFromInt(100)))

	stockNegativo := -1
	_, err = uc.Update(ctx, created.ID, dto.UpdateProductRequest{Stock: &stockNegativo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductDelete_Inexistente_RetornaNotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductSearch(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Monitor Samsung", Stock: 5, Price: decimal.NewFromInt(400)})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "Teclado mecánico", Stock: 5, Price: decimal.NewFromInt(80)})
	require.NoError(t, err)

	res, err := uc.Search(ctx, "monitor")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Monitor Samsung", res[0].Name)

	// Búsqueda vacía es entrada inválida, no catálogo completo.
	_, err = uc.Search(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

// ClientUseCase casos de uso de clientes. La propiedad es estricta: solo el
// vendedor que creó el cliente puede leerlo, actualizarlo o eliminarlo.
// ListAll queda sin scoping (vista administrativa).
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente asignando como propietario al vendedor actuante.
// Email duplicado -> ErrDuplicate.
func (uc *ClientUseCase) Create(ctx context.Context, sellerID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || in.LastName == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		LastName:  in.LastName,
		Company:   in.Company,
		Email:     in.Email,
		Phone:     in.Phone,
		SellerID:  sellerID,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente. Inexistente -> ErrNotFound; de otro vendedor -> ErrForbidden.
func (uc *ClientUseCase) GetByID(ctx context.Context, sellerID, id string) (*dto.ClientResponse, error) {
	client, err := uc.ownedClient(ctx, sellerID, id)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Update actualiza un cliente del vendedor actuante (SellerID es inmutable).
func (uc *ClientUseCase) Update(ctx context.Context, sellerID, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.ownedClient(ctx, sellerID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.LastName != nil {
		client.LastName = *in.LastName
	}
	if in.Company != nil {
		client.Company = *in.Company
	}
	if in.Email != nil {
		if *in.Email == "" {
			return nil, domain.ErrInvalidInput
		}
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente del vendedor actuante (borrado físico).
func (uc *ClientUseCase) Delete(ctx context.Context, sellerID, id string) error {
	if _, err := uc.ownedClient(ctx, sellerID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// ListAll devuelve todos los clientes sin scoping por vendedor.
func (uc *ClientUseCase) ListAll(ctx context.Context) ([]dto.ClientResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toClientResponses(list), nil
}

// ListBySeller devuelve los clientes del vendedor actuante.
func (uc *ClientUseCase) ListBySeller(ctx context.Context, sellerID string) ([]dto.ClientResponse, error) {
	list, err := uc.repo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	return toClientResponses(list), nil
}

// ownedClient resuelve el cliente y verifica la propiedad del vendedor.
func (uc *ClientUseCase) ownedClient(ctx context.Context, sellerID, id string) (*entity.Client, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if client.SellerID != sellerID {
		return nil, domain.ErrForbidden
	}
	return client, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		LastName:  c.LastName,
		Company:   c.Company,
		Email:     c.Email,
		Phone:     c.Phone,
		SellerID:  c.SellerID,
		CreatedAt: c.CreatedAt,
	}
}

func toClientResponses(list []*entity.Client) []dto.ClientResponse {
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return items
}

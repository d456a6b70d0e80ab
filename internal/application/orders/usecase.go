package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
	"github.com/tu-usuario/crm-ventas/pkg/logger"
)

// OrderUseCase es el motor del workflow de pedidos: valida las líneas contra
// el stock vigente, aplica los descuentos con la primitiva condicional
// atómica del almacén y persiste el pedido con estado PENDING.
//
// Los descuentos se aplican línea a línea según se validan; si una línea
// posterior falla, los descuentos ya aplicados a líneas anteriores no se
// restauran (no hay transacción entre líneas). Limitación conocida del
// modelo de consistencia; la operación completa igualmente se reporta como
// fallida al llamador.
type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	log         *logger.Logger
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	log *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		log:         log,
	}
}

// Place coloca un pedido para el vendedor actuante:
//  1. Resuelve el cliente; inexistente -> ErrNotFound.
//  2. Verifica que el cliente pertenezca al vendedor; ajeno -> ErrForbidden.
//  3. Por cada línea, en orden: resuelve el producto y descuenta el stock de
//     forma condicional atómica; sin existencias -> ErrInsufficientStock con
//     el nombre del producto y el pedido completo falla.
//  4. Persiste el pedido con seller_id del actuante, total calculado del
//     precio vigente y estado PENDING. Fallos de persistencia se propagan.
func (uc *OrderUseCase) Place(ctx context.Context, sellerID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.ClientID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, in.ClientID)
	}
	if client.SellerID != sellerID {
		return nil, domain.ErrForbidden
	}

	items, total, err := uc.consumeStock(ctx, in.Items)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		ID:        uuid.New().String(),
		Items:     items,
		ClientID:  client.ID,
		SellerID:  sellerID,
		Total:     total,
		Status:    entity.OrderStatusPending,
		CreatedAt: time.Now(),
	}
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		// Los descuentos de stock ya aplicados quedan huérfanos; se registra
		// y el fallo se propaga al llamador, nunca se silencia.
		uc.log.Error().Err(err).Str("order_id", order.ID).Msg("persistir pedido tras descontar stock")
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Update actualiza un pedido (reemplazo de campos):
//   - Pedido inexistente -> ErrNotFound.
//   - La propiedad se verifica contra el cliente referenciado (el del patch,
//     o el ya asociado), no contra el seller_id del propio pedido. Esta es la
//     regla vigente del workflow, distinta de la de lectura/borrado.
//   - Si el patch trae líneas nuevas, la validación y el descuento de stock
//     se re-ejecutan contra las existencias actuales; el stock reservado por
//     las líneas anteriores no se restaura antes de revalidar.
func (uc *OrderUseCase) Update(ctx context.Context, sellerID, orderID string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, orderID)
	}

	clientID := order.ClientID
	if in.ClientID != nil {
		clientID = *in.ClientID
	}
	client, err := uc.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, clientID)
	}
	if client.SellerID != sellerID {
		return nil, domain.ErrForbidden
	}

	if len(in.Items) > 0 {
		items, total, err := uc.consumeStock(ctx, in.Items)
		if err != nil {
			return nil, err
		}
		order.Items = items
		order.Total = total
	}
	if in.Status != nil {
		if !entity.ValidOrderStatus(*in.Status) {
			return nil, fmt.Errorf("%w: estado %s", domain.ErrInvalidInput, *in.Status)
		}
		order.Status = *in.Status
	}
	order.ClientID = clientID

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Delete elimina un pedido. La propiedad se verifica contra el seller_id del
// propio pedido.
func (uc *OrderUseCase) Delete(ctx context.Context, sellerID, orderID string) error {
	if _, err := uc.ownedOrder(ctx, sellerID, orderID); err != nil {
		return err
	}
	return uc.orderRepo.Delete(ctx, orderID)
}

// GetByID obtiene un pedido del vendedor actuante.
func (uc *OrderUseCase) GetByID(ctx context.Context, sellerID, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.ownedOrder(ctx, sellerID, orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// ListAll devuelve todos los pedidos sin scoping por vendedor.
func (uc *OrderUseCase) ListAll(ctx context.Context) ([]dto.OrderResponse, error) {
	list, err := uc.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListBySeller devuelve los pedidos del vendedor actuante.
func (uc *OrderUseCase) ListBySeller(ctx context.Context, sellerID string) ([]dto.OrderResponse, error) {
	list, err := uc.orderRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListByStatus devuelve los pedidos del vendedor actuante filtrados por estado.
func (uc *OrderUseCase) ListByStatus(ctx context.Context, sellerID, status string) ([]dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: estado %s", domain.ErrInvalidInput, status)
	}
	list, err := uc.orderRepo.ListBySellerAndStatus(ctx, sellerID, status)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// consumeStock valida y descuenta el stock de cada línea en orden, acumulando
// el total con el precio unitario vigente de cada producto.
func (uc *OrderUseCase) consumeStock(ctx context.Context, items []dto.OrderItemDTO) ([]entity.OrderItem, decimal.Decimal, error) {
	result := make([]entity.OrderItem, 0, len(items))
	total := decimal.Zero
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, decimal.Zero, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(ctx, it.ProductID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if product == nil {
			return nil, decimal.Zero, fmt.Errorf("%w: producto %s", domain.ErrNotFound, it.ProductID)
		}
		updated, err := uc.productRepo.DecrementStock(ctx, it.ProductID, it.Quantity)
		if err != nil {
			if errors.Is(err, domain.ErrInsufficientStock) {
				return nil, decimal.Zero, domain.InsufficientStock(product.Name)
			}
			return nil, decimal.Zero, err
		}
		if updated == nil {
			// El producto desapareció entre la consulta y el descuento.
			return nil, decimal.Zero, fmt.Errorf("%w: producto %s", domain.ErrNotFound, it.ProductID)
		}
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		result = append(result, entity.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return result, total, nil
}

// ownedOrder resuelve el pedido y verifica la propiedad contra su seller_id.
func (uc *OrderUseCase) ownedOrder(ctx context.Context, sellerID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, orderID)
	}
	if order.SellerID != sellerID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemDTO{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return &dto.OrderResponse{
		ID:        o.ID,
		Items:     items,
		ClientID:  o.ClientID,
		SellerID:  o.SellerID,
		Total:     o.Total,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}

func toOrderResponses(list []*entity.Order) []dto.OrderResponse {
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return items
}

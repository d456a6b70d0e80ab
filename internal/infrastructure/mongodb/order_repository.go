package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre MongoDB.
// Total se guarda como double para poder sumarlo en los pipelines de reportes.
type OrderRepo struct {
	coll *mongo.Collection
}

// NewOrderRepository construye el adaptador.
func NewOrderRepository(db *mongo.Database) *OrderRepo {
	return &OrderRepo{coll: db.Collection(collOrders)}
}

type orderItemDoc struct {
	ProductID string `bson:"product_id"`
	Quantity  int    `bson:"quantity"`
}

type orderDoc struct {
	ID        string         `bson:"_id"`
	Items     []orderItemDoc `bson:"items"`
	ClientID  string         `bson:"client_id"`
	SellerID  string         `bson:"seller_id"`
	Total     float64        `bson:"total"`
	Status    string         `bson:"status"`
	CreatedAt time.Time      `bson:"created_at"`
}

func toOrderDoc(o *entity.Order) orderDoc {
	items := make([]orderItemDoc, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemDoc{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return orderDoc{
		ID:        o.ID,
		Items:     items,
		ClientID:  o.ClientID,
		SellerID:  o.SellerID,
		Total:     o.Total.InexactFloat64(),
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}

func (d orderDoc) toEntity() *entity.Order {
	items := make([]entity.OrderItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, entity.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return &entity.Order{
		ID:        d.ID,
		Items:     items,
		ClientID:  d.ClientID,
		SellerID:  d.SellerID,
		Total:     decimal.NewFromFloat(d.Total),
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
	}
}

// Create persiste un nuevo pedido. Cualquier fallo del almacén se propaga
// al llamador como error explícito.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if _, err := r.coll.InsertOne(ctx, toOrderDoc(order)); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID. Devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var d orderDoc
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return d.toEntity(), nil
}

// Update reemplaza el documento completo. Si el ID no existe -> ErrNotFound.
func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	res, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: order.ID}}, toOrderDoc(order))
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un pedido por ID (borrado físico). Inexistente -> ErrNotFound.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los pedidos (consulta administrativa sin scoping).
func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	return r.find(ctx, bson.D{})
}

// ListBySeller devuelve los pedidos de un vendedor.
func (r *OrderRepo) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Order, error) {
	return r.find(ctx, bson.D{{Key: "seller_id", Value: sellerID}})
}

// ListBySellerAndStatus filtra por vendedor y estado.
func (r *OrderRepo) ListBySellerAndStatus(ctx context.Context, sellerID, status string) ([]*entity.Order, error) {
	return r.find(ctx, bson.D{
		{Key: "seller_id", Value: sellerID},
		{Key: "status", Value: status},
	})
}

func (r *OrderRepo) find(ctx context.Context, filter bson.D) ([]*entity.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var list []*entity.Order
	for cursor.Next(ctx) {
		var d orderDoc
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		list = append(list, d.toEntity())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor orders: %w", err)
	}
	return list, nil
}

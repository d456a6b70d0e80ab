package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository sobre MongoDB.
type ClientRepo struct {
	coll *mongo.Collection
}

// NewClientRepository construye el adaptador.
func NewClientRepository(db *mongo.Database) *ClientRepo {
	return &ClientRepo{coll: db.Collection(collClients)}
}

type clientDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	LastName  string    `bson:"last_name"`
	Company   string    `bson:"company"`
	Email     string    `bson:"email"`
	Phone     string    `bson:"phone"`
	SellerID  string    `bson:"seller_id"`
	CreatedAt time.Time `bson:"created_at"`
}

func toClientDoc(c *entity.Client) clientDoc {
	return clientDoc{
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

func (d clientDoc) toEntity() *entity.Client {
	return &entity.Client{
		ID:        d.ID,
		Name:      d.Name,
		LastName:  d.LastName,
		Company:   d.Company,
		Email:     d.Email,
		Phone:     d.Phone,
		SellerID:  d.SellerID,
		CreatedAt: d.CreatedAt,
	}
}

// Create persiste un nuevo cliente. Email duplicado -> ErrDuplicate.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	if _, err := r.coll.InsertOne(ctx, toClientDoc(client)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	var d clientDoc
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return d.toEntity(), nil
}

// Update reemplaza el documento completo. Si el ID no existe -> ErrNotFound.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	res, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: client.ID}}, toClientDoc(client))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update client: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por ID (borrado físico). Inexistente -> ErrNotFound.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los clientes (consulta administrativa sin scoping).
func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	return r.find(ctx, bson.D{})
}

// ListBySeller devuelve los clientes de un vendedor.
func (r *ClientRepo) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Client, error) {
	return r.find(ctx, bson.D{{Key: "seller_id", Value: sellerID}})
}

func (r *ClientRepo) find(ctx context.Context, filter bson.D) ([]*entity.Client, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cursor.Close(ctx)

	var list []*entity.Client
	for cursor.Next(ctx) {
		var d clientDoc
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode client: %w", err)
		}
		list = append(list, d.toEntity())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor clients: %w", err)
	}
	return list, nil
}

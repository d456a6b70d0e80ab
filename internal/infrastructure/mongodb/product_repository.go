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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre MongoDB.
// El precio se guarda como double para que los pipelines de agregación
// puedan sumar totales; la capa de dominio trabaja con decimal.
type ProductRepo struct {
	coll *mongo.Collection
}

// NewProductRepository construye el adaptador.
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{coll: db.Collection(collProducts)}
}

type productDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Stock     int       `bson:"stock"`
	Price     float64   `bson:"price"`
	CreatedAt time.Time `bson:"created_at"`
}

func toProductDoc(p *entity.Product) productDoc {
	return productDoc{
		ID:        p.ID,
		Name:      p.Name,
		Stock:     p.Stock,
		Price:     p.Price.InexactFloat64(),
		CreatedAt: p.CreatedAt,
	}
}

func (d productDoc) toEntity() *entity.Product {
	return &entity.Product{
		ID:        d.ID,
		Name:      d.Name,
		Stock:     d.Stock,
		Price:     decimal.NewFromFloat(d.Price),
		CreatedAt: d.CreatedAt,
	}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if _, err := r.coll.InsertOne(ctx, toProductDoc(product)); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var d productDoc
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return d.toEntity(), nil
}

// Update reemplaza el documento completo. Si el ID no existe -> ErrNotFound.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	res, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: product.ID}}, toProductDoc(product))
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID. Si el ID no existe -> ErrNotFound.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve el catálogo completo.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return decodeProducts(ctx, cursor)
}

// Search busca productos por texto usando el índice de texto sobre name.
func (r *ProductRepo) Search(ctx context.Context, text string) ([]*entity.Product, error) {
	filter := bson.D{{Key: "$text", Value: bson.D{{Key: "$search", Value: text}}}}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return decodeProducts(ctx, cursor)
}

// DecrementStock descuenta qty de forma condicional y atómica: el filtro exige
// stock >= qty y el $inc se aplica en la misma operación, de modo que dos
// pedidos concurrentes no pueden dejar existencias negativas.
// Producto sin stock suficiente -> ErrInsufficientStock; inexistente -> (nil, nil).
func (r *ProductRepo) DecrementStock(ctx context.Context, id string, qty int) (*entity.Product, error) {
	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "stock", Value: bson.D{{Key: "$gte", Value: qty}}},
	}
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "stock", Value: -qty}}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var d productDoc
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&d)
	if err == nil {
		return d.toEntity(), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("decrement stock: %w", err)
	}

	// Sin match: distinguir producto inexistente de stock insuficiente.
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	return nil, domain.ErrInsufficientStock
}

func decodeProducts(ctx context.Context, cursor *mongo.Cursor) ([]*entity.Product, error) {
	defer cursor.Close(ctx)
	var list []*entity.Product
	for cursor.Next(ctx) {
		var d productDoc
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		list = append(list, d.toEntity())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor products: %w", err)
	}
	return list, nil
}

package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tu-usuario/crm-ventas/pkg/config"
)

// Nombres de las colecciones.
const (
	collUsers    = "users"
	collProducts = "products"
	collClients  = "clients"
	collOrders   = "orders"
)

// Connect crea el cliente de MongoDB usando la configuración de la app y
// verifica la conexión con un ping al primario.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(25).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("conectar a MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	return client.Database(cfg.Database), nil
}

// EnsureIndexes crea los índices que el modelo de datos requiere:
// email único en users y clients, índice de texto sobre products.name
// para la búsqueda del catálogo.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	if _, err := db.Collection(collUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("índice users.email: %w", err)
	}

	if _, err := db.Collection(collClients).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("índice clients.email: %w", err)
	}

	if _, err := db.Collection(collProducts).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: "text"}},
	}); err != nil {
		return fmt.Errorf("índice de texto products.name: %w", err)
	}

	if _, err := db.Collection(collOrders).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "seller_id", Value: 1}, {Key: "status", Value: 1}},
	}); err != nil {
		return fmt.Errorf("índice orders.seller_id+status: %w", err)
	}

	return nil
}

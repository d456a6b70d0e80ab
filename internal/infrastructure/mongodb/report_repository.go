package mongodb

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo agregaciones sobre pedidos históricos: filtra COMPLETED, agrupa
// por cliente o vendedor, suma totales, ordena descendente y une la identidad
// con $lookup. El desempate entre totales iguales queda en el orden que
// produce la etapa de agrupación.
type ReportRepo struct {
	orders *mongo.Collection
}

// NewReportRepository construye el adaptador.
func NewReportRepository(db *mongo.Database) *ReportRepo {
	return &ReportRepo{orders: db.Collection(collOrders)}
}

type topClientRow struct {
	ID     string    `bson:"_id"`
	Total  float64   `bson:"total"`
	Client clientDoc `bson:"client"`
}

type topSellerRow struct {
	ID     string  `bson:"_id"`
	Total  float64 `bson:"total"`
	Seller userDoc `bson:"seller"`
}

// TopClients clientes ordenados por total de pedidos COMPLETED, sin límite.
func (r *ReportRepo) TopClients(ctx context.Context) ([]repository.ClientSalesResult, error) {
	pipeline := mongo.Pipeline{
		matchCompleted(),
		groupTotalBy("$client_id"),
		sortByTotalDesc(),
		lookupStage(collClients, "client"),
		unwindStage("$client"),
	}

	cursor, err := r.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate top clients: %w", err)
	}
	defer cursor.Close(ctx)

	var results []repository.ClientSalesResult
	for cursor.Next(ctx) {
		var row topClientRow
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode top client: %w", err)
		}
		results = append(results, repository.ClientSalesResult{
			Client: *row.Client.toEntity(),
			Total:  decimal.NewFromFloat(row.Total),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor top clients: %w", err)
	}
	return results, nil
}

// TopSellers vendedores ordenados por total de pedidos COMPLETED, truncado a limit.
func (r *ReportRepo) TopSellers(ctx context.Context, limit int) ([]repository.SellerSalesResult, error) {
	pipeline := mongo.Pipeline{
		matchCompleted(),
		groupTotalBy("$seller_id"),
		sortByTotalDesc(),
		bson.D{{Key: "$limit", Value: limit}},
		lookupStage(collUsers, "seller"),
		unwindStage("$seller"),
	}

	cursor, err := r.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate top sellers: %w", err)
	}
	defer cursor.Close(ctx)

	var results []repository.SellerSalesResult
	for cursor.Next(ctx) {
		var row topSellerRow
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode top seller: %w", err)
		}
		results = append(results, repository.SellerSalesResult{
			Seller: *row.Seller.toEntity(),
			Total:  decimal.NewFromFloat(row.Total),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor top sellers: %w", err)
	}
	return results, nil
}

func matchCompleted() bson.D {
	return bson.D{{Key: "$match", Value: bson.D{{Key: "status", Value: entity.OrderStatusCompleted}}}}
}

func groupTotalBy(field string) bson.D {
	return bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: field},
		{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total"}}},
	}}}
}

func sortByTotalDesc() bson.D {
	return bson.D{{Key: "$sort", Value: bson.D{{Key: "total", Value: -1}}}}
}

func lookupStage(from, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: "_id"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: as},
	}}}
}

func unwindStage(path string) bson.D {
	return bson.D{{Key: "$unwind", Value: path}}
}

package analytics_test

import (
	"context"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-ventas/internal/application/analytics"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

// fakeReportRepo reproduce en memoria la semántica de la agregación: agrupa
// los pedidos COMPLETED por cliente/vendedor, suma totales y ordena descendente.
type fakeReportRepo struct {
	clients map[string]entity.Client
	sellers map[string]entity.User
	orders  []entity.Order
}

func (f *fakeReportRepo) TopClients(_ context.Context) ([]repository.ClientSalesResult, error) {
	totals := map[string]decimal.Decimal{}
	for _, o := range f.orders {
		if o.Status != entity.OrderStatusCompleted {
			continue
		}
		totals[o.ClientID] = totals[o.ClientID].Add(o.Total)
	}
	rows := make([]repository.ClientSalesResult, 0, len(totals))
	for clientID, total := range totals {
		rows = append(rows, repository.ClientSalesResult{Client: f.clients[clientID], Total: total})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Total.GreaterThan(rows[j].Total) })
	return rows, nil
}

func (f *fakeReportRepo) TopSellers(_ context.Context, limit int) ([]repository.SellerSalesResult, error) {
	totals := map[string]decimal.Decimal{}
	for _, o := range f.orders {
		if o.Status != entity.OrderStatusCompleted {
			continue
		}
		totals[o.SellerID] = totals[o.SellerID].Add(o.Total)
	}
	rows := make([]repository.SellerSalesResult, 0, len(totals))
	for sellerID, total := range totals {
		rows = append(rows, repository.SellerSalesResult{Seller: f.sellers[sellerID], Total: total})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Total.GreaterThan(rows[j].Total) })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func newRepo() *fakeReportRepo {
	return &fakeReportRepo{
		clients: map[string]entity.Client{
			"x": {ID: "x", Name: "Ximena", Email: "x@test.com", SellerID: "s1"},
			"y": {ID: "y", Name: "Yolanda", Email: "y@test.com", SellerID: "s2"},
		},
		sellers: map[string]entity.User{
			"s1": {ID: "s1", Name: "Sara", Email: "s1@test.com"},
			"s2": {ID: "s2", Name: "Simón", Email: "s2@test.com"},
		},
	}
}

func order(clientID, sellerID, status string, total int64) entity.Order {
	return entity.Order{
		ID:       clientID + "-" + status,
		ClientID: clientID,
		SellerID: sellerID,
		Status:   status,
		Total:    decimal.NewFromInt(total),
	}
}

// Los pedidos PENDING y CANCELLED no cuentan: con X={100 COMPLETED, 20 PENDING}
// e Y={50 COMPLETED}, el reporte es [{X,100},{Y,50}].
func TestTopClients_SoloCuentaCompleted(t *testing.T) {
	repo := newRepo()
	repo.orders = []entity.Order{
		order("x", "s1", entity.OrderStatusCompleted, 100),
		order("y", "s2", entity.OrderStatusCompleted, 50),
		order("x", "s1", entity.OrderStatusPending, 20),
		order("y", "s2", entity.OrderStatusCancelled, 999),
	}
	uc := analytics.NewReportUseCase(repo)

	rows, err := uc.TopClients(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "x", rows[0].Client.ID)
	assert.True(t, rows[0].Total.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "y", rows[1].Client.ID)
	assert.True(t, rows[1].Total.Equal(decimal.NewFromInt(50)))
}

func TestTopClients_SinPedidos_RetornaVacio(t *testing.T) {
	uc := analytics.NewReportUseCase(newRepo())

	rows, err := uc.TopClients(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestTopSellers_OrdenDescendenteYLimite(t *testing.T) {
	repo := newRepo()
	repo.orders = []entity.Order{
		order("x", "s1", entity.OrderStatusCompleted, 40),
		order("y", "s2", entity.OrderStatusCompleted, 70),
	}
	uc := analytics.NewReportUseCase(repo)

	rows, err := uc.TopSellers(context.Background(), 0) // 0 -> límite por defecto
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "s2", rows[0].Seller.ID)
	assert.True(t, rows[0].Total.Equal(decimal.NewFromInt(70)))

	// Límite explícito trunca la lista.
	rows, err = uc.TopSellers(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "s2", rows[0].Seller.ID)
}

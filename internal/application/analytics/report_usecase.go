package analytics

import (
	"context"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

const (
	defaultTopSellers = 5
	maxTopSellers     = 100
)

// ReportUseCase reportes agregados sobre pedidos históricos. Solo cuentan
// pedidos con estado COMPLETED; el motor de pedidos no participa aquí.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

// TopClients mejores clientes por total de pedidos COMPLETED, descendente, sin límite.
func (uc *ReportUseCase) TopClients(ctx context.Context) ([]dto.TopClientDTO, error) {
	rows, err := uc.reportRepo.TopClients(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.TopClientDTO, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.TopClientDTO{
			Client: dto.ClientResponse{
				ID:        row.Client.ID,
				Name:      row.Client.Name,
				LastName:  row.Client.LastName,
				Company:   row.Client.Company,
				Email:     row.Client.Email,
				Phone:     row.Client.Phone,
				SellerID:  row.Client.SellerID,
				CreatedAt: row.Client.CreatedAt,
			},
			Total: row.Total,
		})
	}
	return result, nil
}

// TopSellers mejores vendedores por total de pedidos COMPLETED, descendente,
// truncado a limit (5 por defecto).
func (uc *ReportUseCase) TopSellers(ctx context.Context, limit int) ([]dto.TopSellerDTO, error) {
	if limit <= 0 {
		limit = defaultTopSellers
	}
	if limit > maxTopSellers {
		limit = maxTopSellers
	}
	rows, err := uc.reportRepo.TopSellers(ctx, limit)
	if err != nil {
		return nil, err
	}
	result := make([]dto.TopSellerDTO, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.TopSellerDTO{
			Seller: dto.UserResponse{
				ID:        row.Seller.ID,
				Email:     row.Seller.Email,
				Name:      row.Seller.Name,
				LastName:  row.Seller.LastName,
				CreatedAt: row.Seller.CreatedAt,
			},
			Total: row.Total,
		})
	}
	return result, nil
}

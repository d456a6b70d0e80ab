package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-ventas/internal/application/analytics"
)

// ReportHandler reportes agregados: mejores clientes y mejores vendedores.
type ReportHandler struct {
	uc *analytics.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// TopClients GET /api/reports/top-clients — por total de pedidos COMPLETED.
func (h *ReportHandler) TopClients(c *fiber.Ctx) error {
	out, err := h.uc.TopClients(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TopSellers GET /api/reports/top-sellers?limit=5 — por total de pedidos COMPLETED.
func (h *ReportHandler) TopSellers(c *fiber.Ctx) error {
	out, err := h.uc.TopSellers(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

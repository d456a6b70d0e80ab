package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/application/orders"
)

// OrderHandler maneja las peticiones HTTP de pedidos.
type OrderHandler struct {
	uc *orders.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Place godoc
// @Summary      Colocar pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "client_id y líneas del pedido"
// @Success      201   {object}  dto.OrderResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente"
// @Router       /api/orders [post]
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ClientID == "" || len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client_id e items son requeridos"})
	}
	out, err := h.uc.Place(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/orders/:id — si el patch trae líneas, el stock se revalida
// contra las existencias actuales.
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/orders/:id — solo el vendedor dueño del pedido.
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID GET /api/orders/:id — solo el vendedor dueño del pedido.
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListAll GET /api/orders — listado administrativo sin scoping.
func (h *OrderHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMine GET /api/orders/mine — pedidos del vendedor de la sesión.
func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListBySeller(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByStatus GET /api/orders/status/:status — implícitamente acotado al
// vendedor de la sesión.
func (h *OrderHandler) ListByStatus(c *fiber.Ctx) error {
	out, err := h.uc.ListByStatus(c.UserContext(), GetUserID(c), c.Params("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

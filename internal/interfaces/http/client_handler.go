package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/application/usecase"
)

// ClientHandler maneja las peticiones HTTP de clientes. Todas las operaciones
// sobre un cliente puntual exigen sesión y propiedad; el listado global queda
// sin scoping (vista administrativa).
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create POST /api/clients — el vendedor propietario sale de la sesión.
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.LastName == "" || in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, last_name y email son requeridos"})
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/clients/:id — solo el vendedor propietario.
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/clients/:id — solo el vendedor propietario.
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/clients/:id — solo el vendedor propietario.
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListAll GET /api/clients — listado administrativo sin scoping.
func (h *ClientHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMine GET /api/clients/mine — clientes del vendedor de la sesión.
func (h *ClientHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListBySeller(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

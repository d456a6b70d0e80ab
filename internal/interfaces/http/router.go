package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-ventas/internal/application/analytics"
	"github.com/tu-usuario/crm-ventas/internal/application/auth"
	"github.com/tu-usuario/crm-ventas/internal/application/orders"
	"github.com/tu-usuario/crm-ventas/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	ClientUC  *usecase.ClientUseCase
	OrderUC   *orders.OrderUseCase
	ReportUC  *analytics.ReportUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	// Products: catálogo global, sin scoping por vendedor
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Clients: el listado global queda abierto (vista administrativa);
	// el resto exige sesión y propiedad
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.ListAll)
	clients.Post("/", requireAuth, clientHandler.Create)
	clients.Get("/mine", requireAuth, clientHandler.ListMine)
	clients.Get("/:id", requireAuth, clientHandler.GetByID)
	clients.Put("/:id", requireAuth, clientHandler.Update)
	clients.Delete("/:id", requireAuth, clientHandler.Delete)

	// Orders: mismo esquema que clients
	ordersGroup := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Get("/", orderHandler.ListAll)
	ordersGroup.Post("/", requireAuth, orderHandler.Place)
	ordersGroup.Get("/mine", requireAuth, orderHandler.ListMine)
	ordersGroup.Get("/status/:status", requireAuth, orderHandler.ListByStatus)
	ordersGroup.Get("/:id", requireAuth, orderHandler.GetByID)
	ordersGroup.Put("/:id", requireAuth, orderHandler.Update)
	ordersGroup.Delete("/:id", requireAuth, orderHandler.Delete)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/top-clients", reportHandler.TopClients)
	reports.Get("/top-sellers", reportHandler.TopSellers)
}

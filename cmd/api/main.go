package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/crm-ventas/internal/application/analytics"
	"github.com/tu-usuario/crm-ventas/internal/application/auth"
	"github.com/tu-usuario/crm-ventas/internal/application/orders"
	"github.com/tu-usuario/crm-ventas/internal/application/usecase"
	"github.com/tu-usuario/crm-ventas/internal/infrastructure/mongodb"
	httpRouter "github.com/tu-usuario/crm-ventas/internal/interfaces/http"
	"github.com/tu-usuario/crm-ventas/pkg/config"
	"github.com/tu-usuario/crm-ventas/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		_ = db.Client().Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("crear índices")
	}

	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	reportRepo := mongodb.NewReportRepository(db)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpHours,
		Issuer:   cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	orderUC := orders.NewOrderUseCase(orderRepo, clientRepo, productRepo, log)
	reportUC := analytics.NewReportUseCase(reportRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM Ventas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ProductUC: productUC,
		ClientUC:  clientUC,
		OrderUC:   orderUC,
		ReportUC:  reportUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

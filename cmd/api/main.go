package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/report"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/almacen-api/internal/infrastructure/pdf"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/almacen-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
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
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios ligados al pool (lecturas y CRUD de catálogos). Las
	// escrituras de inventario usan el TxRunner, que ata sus propios repos a
	// cada transacción.
	itemRepo := postgres.NewItemRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	ledgerRepo := postgres.NewTransactionRepository(pool)
	specRepo := postgres.NewTechnicalSpecRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	checker := postgres.NewReferenceChecker(pool)

	txRunner := postgres.NewTxRunner(pool, log.Zerolog())
	inventoryUC := inventory.NewUseCase(txRunner, checker, itemRepo, inventory.Policy{
		SkipZeroAdjust: cfg.Inventory.SkipZeroAdjust,
	})
	queryUC := inventory.NewQueryUseCase(itemRepo, lotRepo, ledgerRepo, specRepo)

	locationUC := usecase.NewLocationUseCase(locationRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	specUC := usecase.NewTechnicalSpecUseCase(specRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportUC := report.NewUseCase(itemRepo, lotRepo, locationRepo, categoryRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC: inventoryUC,
		QueryUC:     queryUC,
		ReportUC:    reportUC,
		LocationUC:  locationUC,
		CategoryUC:  categoryUC,
		SpecUC:      specUC,
		UserUC:      userUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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

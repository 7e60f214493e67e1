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

	appmedia "github.com/HarshvardhanPondkule/InventoTrack/internal/application/media"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/reporting"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/stock"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/usecase"
	inframedia "github.com/HarshvardhanPondkule/InventoTrack/internal/infrastructure/media"
	infrapdf "github.com/HarshvardhanPondkule/InventoTrack/internal/infrastructure/pdf"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/infrastructure/postgres"
	httpRouter "github.com/HarshvardhanPondkule/InventoTrack/internal/interfaces/http"
	"github.com/HarshvardhanPondkule/InventoTrack/pkg/config"
	"github.com/HarshvardhanPondkule/InventoTrack/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}

	associationRepo := postgres.NewAssociationRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	associationUC := usecase.NewAssociationUseCase(associationRepo)
	categoryUC := usecase.NewCategoryUseCase(associationRepo, categoryRepo)
	productUC := usecase.NewProductUseCase(associationRepo, categoryRepo, productRepo)
	stockUC := stock.NewUseCase(txRunner, associationRepo)
	reportingUC := reporting.NewUseCase(
		associationRepo, productRepo, categoryRepo, transactionRepo,
		infrapdf.NewMarotoStockReport(),
	)

	// Image hosting is optional: without credentials the upload endpoints
	// are not registered and products keep whatever URL the client sends.
	var uploader appmedia.Uploader
	if cfg.Cloudinary.CloudName != "" {
		uploader, err = inframedia.NewCloudinaryUploader(cfg.Cloudinary)
		if err != nil {
			log.Fatal().Err(err).Msg("cloudinary init")
		}
	} else {
		log.Warn().Msg("cloudinary not configured; upload endpoints disabled")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "InventoTrack API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AssociationUC: associationUC,
		CategoryUC:    categoryUC,
		ProductUC:     productUC,
		StockUC:       stockUC,
		ReportingUC:   reportingUC,
		Uploader:      uploader,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server terminated")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}

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

	"github.com/jhoicas/Almacen-api/internal/application/reconcile"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Almacen-api/internal/interfaces/http"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"github.com/jhoicas/Almacen-api/pkg/logger"
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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		materialRepo  repository.MaterialRepository
		categoryRepo  repository.CategoryRepository
		workOrderRepo repository.WorkOrderRepository
		analyticsRepo repository.AnalyticsRepository
		txRunner      reconcile.TxRunner
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		store := memory.NewStore()
		materialRepo = memory.NewMaterialRepository(store)
		categoryRepo = memory.NewCategoryRepository(store)
		workOrderRepo = memory.NewWorkOrderRepository(store)
		analyticsRepo = memory.NewAnalyticsRepository(store)
		txRunner = memory.NewTxRunner(store)
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al apagar")

	default: // postgres
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		materialRepo = postgres.NewMaterialRepository(pool)
		categoryRepo = postgres.NewCategoryRepository(pool)
		workOrderRepo = postgres.NewWorkOrderRepository(pool)
		analyticsRepo = postgres.NewAnalyticsRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	engine := reconcile.NewUseCase(txRunner, log.Zerolog())
	catalogUC := usecase.NewCatalogUseCase(materialRepo, categoryRepo)
	workOrderUC := usecase.NewWorkOrderUseCase(workOrderRepo)
	analyticsUC := usecase.NewAnalyticsUseCase(analyticsRepo, materialRepo)

	var metrics *httpRouter.Metrics
	if cfg.Metrics.Enabled {
		metrics = httpRouter.NewMetrics()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    12 << 20, // margen sobre el tope de upload
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén Board API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:     catalogUC,
		WorkOrderUC:   workOrderUC,
		AnalyticsUC:   analyticsUC,
		Engine:        engine,
		MaterialRepo:  materialRepo,
		WorkOrderRepo: workOrderRepo,
		Metrics:       metrics,
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

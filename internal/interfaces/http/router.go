package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/reconcile"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC     *usecase.CatalogUseCase
	WorkOrderUC   *usecase.WorkOrderUseCase
	AnalyticsUC   *usecase.AnalyticsUseCase
	Engine        *reconcile.UseCase
	MaterialRepo  repository.MaterialRepository
	WorkOrderRepo repository.WorkOrderRepository
	Metrics       *Metrics
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}

	api := app.Group("/api")

	// Catálogo
	catalog := api.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalog.Get("/", catalogHandler.List)
	catalog.Get("/low-stock", catalogHandler.ListLowStock)
	catalog.Post("/", catalogHandler.Create)
	catalog.Patch("/:id", catalogHandler.AdjustQuantity)
	catalog.Delete("/:id", catalogHandler.Delete)

	// Órdenes de trabajo
	workOrders := api.Group("/work-orders")
	workOrderHandler := NewWorkOrderHandler(deps.Engine, deps.WorkOrderUC, deps.Metrics)
	workOrders.Post("/upload", workOrderHandler.Upload)
	workOrders.Post("/", workOrderHandler.Confirm)
	workOrders.Get("/", workOrderHandler.List)

	// Analítica
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	api.Get("/analytics", analyticsHandler.GetDashboard)

	// Reportes
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.MaterialRepo, deps.WorkOrderRepo)
	reports.Get("/catalog.xlsx", reportHandler.CatalogExcel)
	reports.Get("/work-orders.pdf", reportHandler.WorkOrderPDF)
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/export"
)

// ReportHandler genera los reportes descargables.
type ReportHandler struct {
	materialRepo  repository.MaterialRepository
	workOrderRepo repository.WorkOrderRepository
}

// NewReportHandler construye el handler.
func NewReportHandler(materialRepo repository.MaterialRepository, workOrderRepo repository.WorkOrderRepository) *ReportHandler {
	return &ReportHandler{materialRepo: materialRepo, workOrderRepo: workOrderRepo}
}

// CatalogExcel godoc
// @Summary      Catálogo en Excel
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/catalog.xlsx [get]
func (h *ReportHandler) CatalogExcel(c *fiber.Ctx) error {
	materials, err := h.materialRepo.List(c.Context())
	if err != nil {
		return respondError(c, domain.WrapStorage(err))
	}
	book, err := export.CatalogExcel(materials)
	if err != nil {
		return respondError(c, domain.WrapStorage(err))
	}
	name := "catalogo_" + time.Now().Format("20060102_150405") + ".xlsx"
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(book)
}

// WorkOrderPDF godoc
// @Summary      Histórico de órdenes en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/work-orders.pdf [get]
func (h *ReportHandler) WorkOrderPDF(c *fiber.Ctx) error {
	orders, err := h.workOrderRepo.List(c.Context())
	if err != nil {
		return respondError(c, domain.WrapStorage(err))
	}
	doc, err := export.WorkOrderLogPDF(orders)
	if err != nil {
		return respondError(c, domain.WrapStorage(err))
	}
	name := "ordenes_" + time.Now().Format("20060102_150405") + ".pdf"
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(doc)
}

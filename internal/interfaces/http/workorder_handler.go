package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/extract"
	"github.com/jhoicas/Almacen-api/internal/application/reconcile"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// maxUploadBytes tope del documento subido (10 MB).
const maxUploadBytes = 10 << 20

// WorkOrderHandler maneja el flujo de órdenes de trabajo: extracción del
// documento, confirmación del lote contra el motor y lectura del libro.
type WorkOrderHandler struct {
	engine  *reconcile.UseCase
	listing *usecase.WorkOrderUseCase
	metrics *Metrics
}

// NewWorkOrderHandler construye el handler.
func NewWorkOrderHandler(engine *reconcile.UseCase, listing *usecase.WorkOrderUseCase, metrics *Metrics) *WorkOrderHandler {
	return &WorkOrderHandler{engine: engine, listing: listing, metrics: metrics}
}

// Upload godoc
// @Summary      Extraer líneas de un documento de orden de trabajo
// @Description  Acepta PDF o texto plano con líneas "Material - Cantidad".
//
//	No toca el inventario: devuelve los candidatos para revisión.
//
// @Tags         work-orders
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "documento de la orden"
// @Success      200   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/work-orders/upload [post]
func (h *WorkOrderHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "falta el archivo 'file'"})
	}
	if fh.Size > maxUploadBytes {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "archivo demasiado grande"})
	}

	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()

	doc, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
	}

	lines, err := extract.Extract(doc)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EXTRACTION", Message: "no se pudo extraer texto del documento"})
	}
	if len(lines) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "EXTRACTION",
			Message: "el documento no contiene líneas con el formato \"Material - Cantidad\"",
		})
	}

	out := dto.UploadResponse{FileName: fh.Filename, Lines: make([]dto.ExtractedLineDTO, 0, len(lines))}
	for _, l := range lines {
		out.Lines = append(out.Lines, dto.ExtractedLineDTO{MaterialName: l.MaterialName, Quantity: l.Quantity})
	}
	return c.JSON(out)
}

// Confirm godoc
// @Summary      Confirmar una orden de trabajo
// @Description  Valida el lote contra el catálogo y descuenta el stock de forma
//
//	atómica. Cualquier rechazo deja el inventario intacto.
//
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConfirmWorkOrderRequest  true  "work_order_name, lines"
// @Success      201   {object}  dto.WorkOrderDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/work-orders [post]
func (h *WorkOrderHandler) Confirm(c *fiber.Ctx) error {
	var in dto.ConfirmWorkOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	input := reconcile.Input{WorkOrderName: in.WorkOrderName}
	for _, l := range in.Lines {
		input.Lines = append(input.Lines, reconcile.InputLine{MaterialName: l.MaterialName, Quantity: l.Quantity})
	}

	wo, err := h.engine.Reconcile(c.Context(), input)
	if err != nil {
		h.metrics.ObserveReconciliation(err)
		return respondError(c, err)
	}
	h.metrics.ObserveReconciliation(nil)

	out := dto.WorkOrderDTO{
		ID:        wo.ID,
		Name:      wo.Name,
		Status:    wo.Status,
		CreatedAt: wo.CreatedAt,
		Lines:     make([]dto.ConsumptionLineDTO, 0, len(wo.Lines)),
	}
	for _, l := range wo.Lines {
		out.Lines = append(out.Lines, dto.ConsumptionLineDTO{MaterialName: l.MaterialName, QuantityUsed: l.QuantityUsed})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Libro de órdenes procesadas
// @Tags         work-orders
// @Produce      json
// @Success      200  {array}   dto.WorkOrderDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/work-orders [get]
func (h *WorkOrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.listing.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

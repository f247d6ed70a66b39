package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// shortfallDetail detalle serializable de un faltante de stock.
type shortfallDetail struct {
	MaterialName string `json:"material_name"`
	Available    string `json:"available"`
	Requested    string `json:"requested"`
}

// respondError traduce un error de dominio a la respuesta HTTP. Los errores
// de stock insuficiente incluyen todos los faltantes del lote en Details.
func respondError(c *fiber.Ctx, err error) error {
	var insufficient *domain.InsufficientStockError
	if errors.As(err, &insufficient) {
		details := make([]shortfallDetail, 0, len(insufficient.Shortfalls))
		for _, s := range insufficient.Shortfalls {
			details = append(details, shortfallDetail{
				MaterialName: s.MaterialName,
				Available:    s.Available.String(),
				Requested:    s.Requested.String(),
			})
		}
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: "stock insuficiente para completar la orden",
			Details: details,
		})
	}

	var unknown *domain.UnknownMaterialError
	if errors.As(err, &unknown) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    "UNKNOWN_MATERIAL",
			Message: "material no registrado en el catálogo",
			Details: fiber.Map{"material_name": unknown.Name},
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicateWorkOrder):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_WORK_ORDER", Message: "la orden de trabajo ya fue procesada"})
	case errors.Is(err, domain.ErrUnknownMaterial):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_MATERIAL", Message: "material no registrado en el catálogo"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE", Message: "fallo de almacenamiento"})
	}
}

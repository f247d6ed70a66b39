package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// AnalyticsHandler maneja la petición del dashboard.
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetDashboard godoc
// @Summary      Analítica de consumo para el dashboard
// @Description  Métricas, consumo por categoría, top de materiales y serie
//
//	mensual con pronóstico del siguiente período.
//
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.AnalyticsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics [get]
func (h *AnalyticsHandler) GetDashboard(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

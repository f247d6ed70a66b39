package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Almacen-api/internal/domain"
)

// Metrics contadores Prometheus del servicio. El label outcome discrimina el
// resultado de cada conciliación.
type Metrics struct {
	registry        *prometheus.Registry
	reconciliations *prometheus.CounterVec
}

// NewMetrics registra los colectores en un registry propio (incluye los de
// proceso y Go runtime).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	reconciliations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "almacen",
		Name:      "reconciliations_total",
		Help:      "Conciliaciones de órdenes de trabajo por resultado.",
	}, []string{"outcome"})
	reg.MustRegister(reconciliations)

	return &Metrics{registry: reg, reconciliations: reconciliations}
}

// ObserveReconciliation clasifica el resultado de una conciliación. Tolera
// receptor nil para despliegues sin métricas.
func (m *Metrics) ObserveReconciliation(err error) {
	if m == nil {
		return
	}
	outcome := "success"
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrDuplicateWorkOrder):
		outcome = "duplicate"
	case errors.Is(err, domain.ErrUnknownMaterial):
		outcome = "unknown_material"
	case errors.Is(err, domain.ErrInsufficientStock):
		outcome = "insufficient_stock"
	case errors.Is(err, domain.ErrInvalidInput):
		outcome = "invalid_input"
	default:
		outcome = "storage_error"
	}
	m.reconciliations.WithLabelValues(outcome).Inc()
}

// Handler expone el endpoint /metrics en formato Prometheus.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ConsumptionFact fila cruda del join líneas de consumo + material + categoría
// + fecha de la orden. La produce el almacenamiento; el use case la agrega.
type ConsumptionFact struct {
	MaterialName string
	CategoryName string
	QuantityUsed decimal.Decimal
	OrderedAt    time.Time
}

// AnalyticsRepository define las consultas de lectura para la analítica de
// consumo. Las implementaciones son read-only: leen el mismo libro que escribe
// el motor de conciliación, nunca un snapshot cacheado.
type AnalyticsRepository interface {
	// ListConsumptionFacts devuelve todas las líneas de consumo enriquecidas,
	// en orden de inserción (estable para los desempates del top-N).
	ListConsumptionFacts(ctx context.Context) ([]ConsumptionFact, error)
	// CountWorkOrders devuelve el total de órdenes procesadas.
	CountWorkOrders(ctx context.Context) (int, error)
}

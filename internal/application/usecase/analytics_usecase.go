package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

const (
	topMaterials   = 10 // materiales en el ranking de consumo
	forecastWindow = 3  // períodos observados para la media móvil
)

// AnalyticsUseCase agrega el libro de consumo para el dashboard: totales por
// categoría, top de materiales, serie mensual con pronóstico y métricas de
// salud del catálogo. Datos derivados de presentación; se recomputan en cada
// lectura sobre el mismo libro que escribe el motor.
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	materialRepo  repository.MaterialRepository
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(analyticsRepo repository.AnalyticsRepository, materialRepo repository.MaterialRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{analyticsRepo: analyticsRepo, materialRepo: materialRepo}
}

// GetDashboard construye la respuesta completa de analítica.
func (uc *AnalyticsUseCase) GetDashboard(ctx context.Context) (*dto.AnalyticsDTO, error) {
	facts, err := uc.analyticsRepo.ListConsumptionFacts(ctx)
	if err != nil {
		return nil, domain.WrapStorage(err)
	}
	orderCount, err := uc.analyticsRepo.CountWorkOrders(ctx)
	if err != nil {
		return nil, domain.WrapStorage(err)
	}
	materials, err := uc.materialRepo.List(ctx)
	if err != nil {
		return nil, domain.WrapStorage(err)
	}

	totalConsumed := decimal.Zero
	for _, f := range facts {
		totalConsumed = totalConsumed.Add(f.QuantityUsed)
	}

	warnings := 0
	for _, m := range materials {
		if m.IsLowStock() {
			warnings++
		}
	}
	health := 100
	if len(materials) > 0 {
		ratio := decimal.NewFromInt(int64(len(materials) - warnings)).
			Div(decimal.NewFromInt(int64(len(materials)))).
			Mul(decimal.NewFromInt(100))
		health = int(ratio.Round(0).IntPart())
	}

	return &dto.AnalyticsDTO{
		Metrics: dto.MetricsDTO{
			TotalWorkOrders:        orderCount,
			TotalMaterialsConsumed: totalConsumed,
			ActiveWarnings:         warnings,
			SystemHealth:           health,
		},
		CategoryUsage: sumByKey(facts, func(f repository.ConsumptionFact) string { return f.CategoryName }),
		MaterialUsage: topN(sumByKey(facts, func(f repository.ConsumptionFact) string { return f.MaterialName }), topMaterials),
		Trend:         monthlyTrend(facts),
	}, nil
}

// sumByKey agrupa y suma preservando el orden de primera aparición, para que
// los desempates posteriores sean estables respecto a la entrada.
func sumByKey(facts []repository.ConsumptionFact, key func(repository.ConsumptionFact) string) []dto.UsagePointDTO {
	idx := make(map[string]int)
	points := make([]dto.UsagePointDTO, 0)
	for _, f := range facts {
		k := key(f)
		i, ok := idx[k]
		if !ok {
			idx[k] = len(points)
			points = append(points, dto.UsagePointDTO{Name: k, Value: decimal.Zero})
			i = idx[k]
		}
		points[i].Value = points[i].Value.Add(f.QuantityUsed)
	}
	return points
}

// topN ordena descendente por valor (estable: a igual valor manda el orden de
// entrada) y recorta a n.
func topN(points []dto.UsagePointDTO, n int) []dto.UsagePointDTO {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Value.GreaterThan(points[j].Value)
	})
	if len(points) > n {
		points = points[:n]
	}
	return points
}

// monthlyTrend arma la serie mensual de consumo y le anexa el punto del
// siguiente mes calendario con el pronóstico: media de los últimos tres
// períodos observados, rellenando con cero si hay menos de tres, redondeada
// al entero más cercano.
func monthlyTrend(facts []repository.ConsumptionFact) []dto.TrendPointDTO {
	if len(facts) == 0 {
		return []dto.TrendPointDTO{}
	}

	byMonth := make(map[time.Time]decimal.Decimal)
	for _, f := range facts {
		m := time.Date(f.OrderedAt.Year(), f.OrderedAt.Month(), 1, 0, 0, 0, 0, time.UTC)
		byMonth[m] = byMonth[m].Add(f.QuantityUsed)
	}

	months := make([]time.Time, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	trend := make([]dto.TrendPointDTO, 0, len(months)+1)
	for _, m := range months {
		trend = append(trend, dto.TrendPointDTO{
			Date:  m.Format("Jan 2006"),
			Value: byMonth[m],
		})
	}

	// Pronóstico: suma de los últimos (hasta) tres valores dividida siempre
	// entre tres; los períodos faltantes cuentan como cero.
	sum := decimal.Zero
	start := len(months) - forecastWindow
	if start < 0 {
		start = 0
	}
	for _, m := range months[start:] {
		sum = sum.Add(byMonth[m])
	}
	forecast := sum.Div(decimal.NewFromInt(forecastWindow)).Round(0).IntPart()

	next := months[len(months)-1].AddDate(0, 1, 0)
	trend = append(trend, dto.TrendPointDTO{
		Date:     next.Format("Jan 2006"),
		Value:    decimal.Zero,
		Forecast: &forecast,
	})
	return trend
}

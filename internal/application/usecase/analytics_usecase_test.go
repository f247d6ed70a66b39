package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
)

// stubAnalytics libro de consumo fijo para controlar fechas y orden.
type stubAnalytics struct {
	facts  []repository.ConsumptionFact
	orders int
}

func (s *stubAnalytics) ListConsumptionFacts(context.Context) ([]repository.ConsumptionFact, error) {
	return s.facts, nil
}

func (s *stubAnalytics) CountWorkOrders(context.Context) (int, error) {
	return s.orders, nil
}

func fact(material, category string, qty int64, when time.Time) repository.ConsumptionFact {
	return repository.ConsumptionFact{
		MaterialName: material,
		CategoryName: category,
		QuantityUsed: decimal.NewFromInt(qty),
		OrderedAt:    when,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

// seedMaterials materializa un catálogo en memoria para las métricas de alerta.
func seedMaterials(t *testing.T, specs []struct {
	name      string
	qty       int64
	threshold int64
}) repository.MaterialRepository {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	catRepo := memory.NewCategoryRepository(store)
	cat := &entity.Category{Name: "General"}
	require.NoError(t, catRepo.Create(ctx, cat))

	matRepo := memory.NewMaterialRepository(store)
	for _, s := range specs {
		require.NoError(t, matRepo.Create(ctx, &entity.Material{
			Name:              s.name,
			CategoryID:        cat.ID,
			AvailableQuantity: decimal.NewFromInt(s.qty),
			LowStockThreshold: decimal.NewFromInt(s.threshold),
		}))
	}
	return matRepo
}

func emptyMaterials(t *testing.T) repository.MaterialRepository {
	t.Helper()
	return memory.NewMaterialRepository(memory.NewStore())
}

// ──────────────────────────────────────────────────────────────────────────────
// Agrupaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestAnalytics_AgrupaPorCategoriaYMaterial(t *testing.T) {
	march := day(2026, time.March, 5)
	analytics := &stubAnalytics{
		orders: 3,
		facts: []repository.ConsumptionFact{
			fact("Plywood 18mm", "Core materials", 6, march),
			fact("Edge band", "Edge-bands", 12, march),
			fact("Plywood 18mm", "Core materials", 4, march),
		},
	}

	uc := usecase.NewAnalyticsUseCase(analytics, emptyMaterials(t))
	out, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, out.Metrics.TotalWorkOrders)
	assert.True(t, out.Metrics.TotalMaterialsConsumed.Equal(decimal.NewFromInt(22)))

	require.Len(t, out.CategoryUsage, 2)
	assert.Equal(t, "Core materials", out.CategoryUsage[0].Name)
	assert.True(t, out.CategoryUsage[0].Value.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "Edge-bands", out.CategoryUsage[1].Name)
	assert.True(t, out.CategoryUsage[1].Value.Equal(decimal.NewFromInt(12)))

	// Material: ordenado por consumo descendente.
	require.Len(t, out.MaterialUsage, 2)
	assert.Equal(t, "Edge band", out.MaterialUsage[0].Name)
	assert.Equal(t, "Plywood 18mm", out.MaterialUsage[1].Name)
}

func TestAnalytics_TopDiezConDesempateEstable(t *testing.T) {
	march := day(2026, time.March, 5)
	facts := make([]repository.ConsumptionFact, 0, 12)
	// Once materiales con valor 5; el duodécimo con valor 9 debe encabezar.
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"}
	for _, n := range names {
		facts = append(facts, fact(n, "Hardware", 5, march))
	}
	facts = append(facts, fact("Winner", "Hardware", 9, march))

	uc := usecase.NewAnalyticsUseCase(&stubAnalytics{facts: facts}, emptyMaterials(t))
	out, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)

	require.Len(t, out.MaterialUsage, 10, "el ranking se recorta a diez")
	assert.Equal(t, "Winner", out.MaterialUsage[0].Name)
	// A igual valor manda el orden de primera aparición.
	assert.Equal(t, "A", out.MaterialUsage[1].Name)
	assert.Equal(t, "B", out.MaterialUsage[2].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Serie mensual y pronóstico
// ──────────────────────────────────────────────────────────────────────────────

func TestAnalytics_PronosticoRellenaConCeros(t *testing.T) {
	// Un solo mes observado: la media móvil divide entre tres igualmente.
	uc := usecase.NewAnalyticsUseCase(&stubAnalytics{
		facts: []repository.ConsumptionFact{
			fact("Plywood 18mm", "Core materials", 30, day(2026, time.March, 10)),
		},
	}, emptyMaterials(t))

	out, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)

	require.Len(t, out.Trend, 2)
	assert.Equal(t, "Mar 2026", out.Trend[0].Date)
	assert.True(t, out.Trend[0].Value.Equal(decimal.NewFromInt(30)))
	assert.Nil(t, out.Trend[0].Forecast)

	assert.Equal(t, "Apr 2026", out.Trend[1].Date)
	require.NotNil(t, out.Trend[1].Forecast)
	assert.Equal(t, int64(10), *out.Trend[1].Forecast, "30 / 3 = 10, los meses faltantes cuentan como cero")
}

func TestAnalytics_PronosticoConTresMeses(t *testing.T) {
	uc := usecase.NewAnalyticsUseCase(&stubAnalytics{
		facts: []repository.ConsumptionFact{
			fact("Plywood 18mm", "Core materials", 50, day(2026, time.January, 3)),
			fact("Plywood 18mm", "Core materials", 60, day(2026, time.February, 14)),
			fact("Plywood 18mm", "Core materials", 70, day(2026, time.March, 28)),
		},
	}, emptyMaterials(t))

	out, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)

	require.Len(t, out.Trend, 4)
	assert.Equal(t, "Apr 2026", out.Trend[3].Date)
	require.NotNil(t, out.Trend[3].Forecast)
	assert.Equal(t, int64(60), *out.Trend[3].Forecast, "(50+60+70) / 3 = 60")
}

func TestAnalytics_SinConsumoNoHayTendencia(t *testing.T) {
	uc := usecase.NewAnalyticsUseCase(&stubAnalytics{}, emptyMaterials(t))
	out, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Empty(t, out.Trend)
	assert.Empty(t, out.CategoryUsage)
	assert.Empty(t, out.MaterialUsage)
	assert.Equal(t, 100, out.Metrics.SystemHealth, "catálogo vacío reporta salud completa")
}

// ──────────────────────────────────────────────────────────────────────────────
// Salud del sistema
// ──────────────────────────────────────────────────────────────────────────────

func TestAnalytics_SaludDelSistema(t *testing.T) {
	matRepo := seedMaterials(t, []struct {
		name      string
		qty       int64
		threshold int64
	}{
		{"A", 100, 10}, // sano
		{"B", 5, 10},   // alerta
		{"C", 50, 10},  // sano
		{"D", 0, 10},   // alerta (crítico)
	})

	uc := usecase.NewAnalyticsUseCase(&stubAnalytics{}, matRepo)
	out, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, out.Metrics.ActiveWarnings)
	assert.Equal(t, 50, out.Metrics.SystemHealth, "2 de 4 materiales fuera de alerta")
}

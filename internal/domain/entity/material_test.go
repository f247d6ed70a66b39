package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

func mat(qty, threshold string) *entity.Material {
	return &entity.Material{
		AvailableQuantity: decimal.RequireFromString(qty),
		LowStockThreshold: decimal.RequireFromString(threshold),
	}
}

// La clasificación es derivada: cantidad <= umbral es alerta, cantidad <= 30%
// del umbral es crítica. Los bordes son inclusivos.
func TestMaterial_ClasificacionDeStock(t *testing.T) {
	cases := []struct {
		name      string
		qty       string
		threshold string
		low       bool
		critical  bool
	}{
		{"por encima del umbral", "11", "10", false, false},
		{"exactamente en el umbral", "10", "10", true, false},
		{"entre crítico y umbral", "5", "10", true, false},
		{"justo encima del corte crítico", "3.01", "10", true, false},
		{"exactamente en el corte crítico", "3", "10", true, true},
		{"por debajo del corte crítico", "1", "10", true, true},
		{"agotado", "0", "10", true, true},
		{"umbral cero con stock", "5", "0", false, false},
		{"umbral cero agotado", "0", "0", true, true},
		{"umbral fraccionario", "0.3", "1", true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mat(tc.qty, tc.threshold)
			assert.Equal(t, tc.low, m.IsLowStock(), "IsLowStock(%s, umbral %s)", tc.qty, tc.threshold)
			assert.Equal(t, tc.critical, m.IsCritical(), "IsCritical(%s, umbral %s)", tc.qty, tc.threshold)
		})
	}
}

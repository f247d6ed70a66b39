package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// factor de criticidad sobre el umbral de stock bajo.
var criticalFactor = decimal.RequireFromString("0.3")

// Material representa un producto del catálogo maestro del almacén.
// El nombre es la clave natural (único); el ID lo asigna el almacenamiento.
// AvailableQuantity nunca baja de cero: solo la muta el motor de conciliación
// o un ajuste administrativo explícito.
type Material struct {
	ID                int64
	Name              string
	CategoryID        int64
	CategoryName      string // denormalizado en lecturas
	AvailableQuantity decimal.Decimal
	LowStockThreshold decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsLowStock clasifica el material como "stock bajo": cantidad <= umbral.
// Es una propiedad derivada en lectura; nunca se persiste ni se cachea.
func (m *Material) IsLowStock() bool {
	return m.AvailableQuantity.LessThanOrEqual(m.LowStockThreshold)
}

// IsCritical clasifica como "crítico": cantidad <= 30% del umbral.
func (m *Material) IsCritical() bool {
	return m.AvailableQuantity.LessThanOrEqual(m.LowStockThreshold.Mul(criticalFactor))
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de trabajo. El motor solo produce Success; Failed queda
// reservado en la taxonomía para intentos persistidos en el futuro.
const (
	WorkOrderStatusSuccess = "Success"
	WorkOrderStatusFailed  = "Failed"
)

// WorkOrder es una entrada inmutable del libro de consumo: un lote procesado
// una única vez. El nombre es único para siempre; esa unicidad es la única
// guarda contra el doble procesamiento.
type WorkOrder struct {
	ID        int64
	Name      string
	Status    string
	CreatedAt time.Time
	Lines     []*ConsumptionLine
}

// ConsumptionLine vincula una orden de trabajo con un material consumido.
// Se crea solo junto a su orden; inmutable después.
type ConsumptionLine struct {
	ID           int64
	WorkOrderID  int64
	MaterialID   int64
	MaterialName string // denormalizado en lecturas
	QuantityUsed decimal.Decimal
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkOrderLineRequest una línea (material, cantidad) del lote a confirmar.
type WorkOrderLineRequest struct {
	MaterialName string          `json:"material_name"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// ConfirmWorkOrderRequest body para POST /api/work-orders.
type ConfirmWorkOrderRequest struct {
	WorkOrderName string                 `json:"work_order_name"`
	Lines         []WorkOrderLineRequest `json:"lines"`
}

// ConsumptionLineDTO línea de consumo en el libro de órdenes.
type ConsumptionLineDTO struct {
	MaterialName string          `json:"material_name"`
	QuantityUsed decimal.Decimal `json:"quantity_used"`
}

// WorkOrderDTO una orden procesada con sus líneas.
type WorkOrderDTO struct {
	ID        int64                `json:"id"`
	Name      string               `json:"name"`
	Status    string               `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	Lines     []ConsumptionLineDTO `json:"lines"`
}

// ExtractedLineDTO candidato extraído de un documento; el usuario lo revisa
// antes de confirmar.
type ExtractedLineDTO struct {
	MaterialName string          `json:"material_name"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// UploadResponse respuesta de POST /api/work-orders/upload.
type UploadResponse struct {
	FileName string             `json:"file_name"`
	Lines    []ExtractedLineDTO `json:"lines"`
}

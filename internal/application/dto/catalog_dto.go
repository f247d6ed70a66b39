package dto

import "github.com/shopspring/decimal"

// MaterialDTO un material del catálogo con su clasificación de stock,
// recalculada en cada lectura.
type MaterialDTO struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	AvailableQuantity decimal.Decimal `json:"available_quantity"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
	CategoryName      string          `json:"category_name"`
	LowStock          bool            `json:"low_stock"`
	Critical          bool            `json:"critical"`
}

// CreateMaterialRequest body para POST /api/catalog.
type CreateMaterialRequest struct {
	Name              string          `json:"name"`
	AvailableQuantity decimal.Decimal `json:"available_quantity"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
	CategoryName      string          `json:"category_name"`
}

// AdjustQuantityRequest body para PATCH /api/catalog/:id. Ajuste administrativo
// directo: no pasa por el motor y no genera línea de auditoría (limitación
// documentada del diseño).
type AdjustQuantityRequest struct {
	AvailableQuantity decimal.Decimal `json:"available_quantity"`
}

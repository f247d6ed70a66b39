package dto

import "github.com/shopspring/decimal"

// MetricsDTO bloque de métricas del dashboard.
type MetricsDTO struct {
	TotalWorkOrders        int             `json:"total_work_orders"`
	TotalMaterialsConsumed decimal.Decimal `json:"total_materials_consumed"`
	ActiveWarnings         int             `json:"active_warnings"`
	SystemHealth           int             `json:"system_health"` // % de materiales fuera de alerta
}

// UsagePointDTO consumo total por nombre (categoría o material).
type UsagePointDTO struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// TrendPointDTO punto de la serie mensual. Forecast solo viene en el punto
// proyectado del siguiente período.
type TrendPointDTO struct {
	Date     string          `json:"date"` // ej. "Jan 2026"
	Value    decimal.Decimal `json:"value"`
	Forecast *int64          `json:"forecast"`
}

// AnalyticsDTO respuesta completa de GET /api/analytics.
type AnalyticsDTO struct {
	Metrics       MetricsDTO      `json:"metrics"`
	CategoryUsage []UsagePointDTO `json:"category_usage"`
	MaterialUsage []UsagePointDTO `json:"material_usage"`
	Trend         []TrendPointDTO `json:"trend"`
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only para la analítica de consumo.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// ListConsumptionFacts devuelve todas las líneas de consumo con material,
// categoría y fecha de la orden, en orden de inserción.
func (r *AnalyticsRepo) ListConsumptionFacts(ctx context.Context) ([]repository.ConsumptionFact, error) {
	query := `
		SELECT m.name, c.name, cl.quantity_used, wo.created_at
		FROM consumption_lines cl
		JOIN materials m ON m.id = cl.material_id
		JOIN categories c ON c.id = m.category_id
		JOIN work_orders wo ON wo.id = cl.work_order_id
		ORDER BY cl.id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list consumption facts: %w", err)
	}
	defer rows.Close()

	var facts []repository.ConsumptionFact
	for rows.Next() {
		var f repository.ConsumptionFact
		if err := rows.Scan(&f.MaterialName, &f.CategoryName, &f.QuantityUsed, &f.OrderedAt); err != nil {
			return nil, fmt.Errorf("scan consumption fact: %w", err)
		}
		facts = append(facts, f)
	}
	return facts, rows.Err()
}

// CountWorkOrders total de órdenes procesadas.
func (r *AnalyticsRepo) CountWorkOrders(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM work_orders`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count work orders: %w", err)
	}
	return n, nil
}

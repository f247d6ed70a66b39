package memory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only en memoria para la analítica de consumo.
type AnalyticsRepo struct {
	v view
}

// NewAnalyticsRepository construye el repositorio sobre el store compartido.
func NewAnalyticsRepository(s *Store) *AnalyticsRepo {
	return &AnalyticsRepo{v: view{s: s}}
}

// ListConsumptionFacts recorre el libro en orden de inserción y enriquece
// cada línea con la categoría vigente del material.
func (r *AnalyticsRepo) ListConsumptionFacts(_ context.Context) ([]repository.ConsumptionFact, error) {
	var facts []repository.ConsumptionFact
	err := r.v.read(func(d *dataset) error {
		for _, wo := range d.workOrders {
			for _, l := range wo.Lines {
				category := "Unknown"
				if m := d.materialByID(l.MaterialID); m != nil {
					if c := d.categoryByID(m.CategoryID); c != nil {
						category = c.Name
					}
				}
				facts = append(facts, repository.ConsumptionFact{
					MaterialName: l.MaterialName,
					CategoryName: category,
					QuantityUsed: l.QuantityUsed,
					OrderedAt:    wo.CreatedAt,
				})
			}
		}
		return nil
	})
	return facts, err
}

// CountWorkOrders total de órdenes procesadas.
func (r *AnalyticsRepo) CountWorkOrders(_ context.Context) (int, error) {
	var n int
	err := r.v.read(func(d *dataset) error {
		n = len(d.workOrders)
		return nil
	})
	return n, err
}

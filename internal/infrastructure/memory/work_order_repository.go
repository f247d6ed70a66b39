package memory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo implementación en memoria de WorkOrderRepository.
type WorkOrderRepo struct {
	v view
}

// NewWorkOrderRepository construye el repositorio sobre el store compartido.
func NewWorkOrderRepository(s *Store) *WorkOrderRepo {
	return &WorkOrderRepo{v: view{s: s}}
}

// Create registra la orden. La unicidad del nombre se verifica aquí de forma
// atómica bajo el lock del dataset, igual que el constraint en PostgreSQL.
func (r *WorkOrderRepo) Create(_ context.Context, wo *entity.WorkOrder) error {
	return r.v.write(func(d *dataset) error {
		if d.workOrderByName(wo.Name) != nil {
			return domain.ErrDuplicateWorkOrder
		}
		d.nextWorkOrderID++
		wo.ID = d.nextWorkOrderID
		cp := *wo
		cp.Lines = []*entity.ConsumptionLine{}
		d.workOrders = append(d.workOrders, &cp)
		return nil
	})
}

// GetByName devuelve (nil, nil) si no existe.
func (r *WorkOrderRepo) GetByName(_ context.Context, name string) (*entity.WorkOrder, error) {
	var out *entity.WorkOrder
	err := r.v.read(func(d *dataset) error {
		if wo := d.workOrderByName(name); wo != nil {
			out = copyWorkOrder(wo)
		}
		return nil
	})
	return out, err
}

// AddLine anexa la línea a su orden.
func (r *WorkOrderRepo) AddLine(_ context.Context, line *entity.ConsumptionLine) error {
	return r.v.write(func(d *dataset) error {
		wo := d.workOrderByID(line.WorkOrderID)
		if wo == nil {
			return domain.ErrNotFound
		}
		d.nextLineID++
		line.ID = d.nextLineID
		if line.MaterialName == "" {
			if m := d.materialByID(line.MaterialID); m != nil {
				line.MaterialName = m.Name
			}
		}
		cp := *line
		wo.Lines = append(wo.Lines, &cp)
		return nil
	})
}

// List devuelve las órdenes con sus líneas, la más reciente primero.
func (r *WorkOrderRepo) List(_ context.Context) ([]*entity.WorkOrder, error) {
	var out []*entity.WorkOrder
	err := r.v.read(func(d *dataset) error {
		out = make([]*entity.WorkOrder, 0, len(d.workOrders))
		for i := len(d.workOrders) - 1; i >= 0; i-- {
			out = append(out, copyWorkOrder(d.workOrders[i]))
		}
		return nil
	})
	return out, err
}

func copyWorkOrder(wo *entity.WorkOrder) *entity.WorkOrder {
	cp := *wo
	cp.Lines = make([]*entity.ConsumptionLine, len(wo.Lines))
	for i, l := range wo.Lines {
		lcp := *l
		cp.Lines[i] = &lcp
	}
	return &cp
}

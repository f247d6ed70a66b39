package usecase

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// WorkOrderUseCase lectura del libro de órdenes procesadas.
type WorkOrderUseCase struct {
	workOrderRepo repository.WorkOrderRepository
}

// NewWorkOrderUseCase construye el caso de uso.
func NewWorkOrderUseCase(workOrderRepo repository.WorkOrderRepository) *WorkOrderUseCase {
	return &WorkOrderUseCase{workOrderRepo: workOrderRepo}
}

// List devuelve el libro completo, la orden más reciente primero.
func (uc *WorkOrderUseCase) List(ctx context.Context) ([]dto.WorkOrderDTO, error) {
	orders, err := uc.workOrderRepo.List(ctx)
	if err != nil {
		return nil, domain.WrapStorage(err)
	}
	out := make([]dto.WorkOrderDTO, 0, len(orders))
	for _, wo := range orders {
		d := dto.WorkOrderDTO{
			ID:        wo.ID,
			Name:      wo.Name,
			Status:    wo.Status,
			CreatedAt: wo.CreatedAt,
			Lines:     make([]dto.ConsumptionLineDTO, 0, len(wo.Lines)),
		}
		for _, l := range wo.Lines {
			d.Lines = append(d.Lines, dto.ConsumptionLineDTO{
				MaterialName: l.MaterialName,
				QuantityUsed: l.QuantityUsed,
			})
		}
		out = append(out, d)
	}
	return out, nil
}

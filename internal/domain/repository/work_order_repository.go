package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// WorkOrderRepository define el puerto de persistencia del libro de órdenes.
// El almacenamiento es la autoridad sobre la unicidad del nombre: Create debe
// devolver domain.ErrDuplicateWorkOrder ante una violación del constraint,
// aunque el motor ya haya hecho su chequeo previo.
type WorkOrderRepository interface {
	// Create persiste la orden y asigna su ID.
	Create(ctx context.Context, wo *entity.WorkOrder) error
	// GetByName devuelve (nil, nil) si no existe una orden con ese nombre.
	GetByName(ctx context.Context, name string) (*entity.WorkOrder, error)
	// AddLine persiste una línea de consumo de la orden.
	AddLine(ctx context.Context, line *entity.ConsumptionLine) error
	// List devuelve las órdenes con sus líneas, la más reciente primero.
	List(ctx context.Context) ([]*entity.WorkOrder, error)
}

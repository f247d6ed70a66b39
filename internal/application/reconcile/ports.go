package reconcile

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de almacenamiento,
// pasando repositorios atados a esa transacción. Garantiza que la validación
// y el commit del motor se vean como una sola operación: o se aplica todo el
// lote o no se aplica nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		materialRepo repository.MaterialRepository,
		workOrderRepo repository.WorkOrderRepository,
	) error) error
}

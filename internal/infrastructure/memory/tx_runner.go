package memory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/reconcile"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// Ensure TxRunner implements reconcile.TxRunner.
var _ reconcile.TxRunner = (*TxRunner)(nil)

// TxRunner transaccionalidad en memoria: toma el lock de escritura del store,
// clona el dataset, ejecuta fn contra el clon y lo publica solo si fn termina
// sin error. Un fallo a mitad del commit descarta el clon entero, nunca queda
// estado parcial visible. El lock además serializa todos los commits.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el store compartido.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn con repos atados a un clon del dataset y publica el clon en
// el commit.
func (r *TxRunner) Run(ctx context.Context, fn func(
	materialRepo repository.MaterialRepository,
	workOrderRepo repository.WorkOrderRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	clone := r.s.data.clone()
	materialRepo := &MaterialRepo{v: view{ds: clone}}
	workOrderRepo := &WorkOrderRepo{v: view{ds: clone}}

	if err := fn(materialRepo, workOrderRepo); err != nil {
		return err
	}
	// Caller cancelado: no publicar; la operación queda totalmente sin aplicar.
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.data = clone
	return nil
}

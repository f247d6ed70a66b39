package reconcile

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// UseCase es el motor de conciliación de consumo: valida un lote de
// (material, cantidad) contra el catálogo y aplica la deducción de forma
// atómica, dejando la orden de trabajo y sus líneas como rastro de auditoría.
//
// Dos fases dentro de una misma transacción:
//  1. validación: orden duplicada, materiales existentes, stock suficiente
//     contra la demanda agregada por material;
//  2. commit: crea la orden, descuenta cada material una sola vez (neto) y
//     registra una línea por cada línea enviada.
//
// Cualquier fallo aborta el lote completo; nunca hay deducción parcial visible.
type UseCase struct {
	txRunner TxRunner
	log      zerolog.Logger
}

// NewUseCase construye el motor.
func NewUseCase(txRunner TxRunner, log zerolog.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, log: log}
}

// InputLine una línea del lote a conciliar. Entrada no confiable: puede venir
// de la extracción de un documento o de cualquier caller; se valida igual.
type InputLine struct {
	MaterialName string
	Quantity     decimal.Decimal
}

// Input lote completo a conciliar.
type Input struct {
	WorkOrderName string
	Lines         []InputLine
}

// Reconcile valida y aplica el lote. Devuelve la orden creada, o un error
// discriminado del dominio (ErrInvalidInput, ErrDuplicateWorkOrder,
// UnknownMaterialError, InsufficientStockError, ErrStorage) sin tocar estado.
func (uc *UseCase) Reconcile(ctx context.Context, input Input) (*entity.WorkOrder, error) {
	name := strings.TrimSpace(input.WorkOrderName)
	if name == "" || len(input.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for i := range input.Lines {
		input.Lines[i].MaterialName = strings.TrimSpace(input.Lines[i].MaterialName)
		if input.Lines[i].MaterialName == "" || !input.Lines[i].Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
	}

	traceID := uuid.New().String()
	now := time.Now()

	var created *entity.WorkOrder
	err := uc.txRunner.Run(ctx, func(
		materialRepo repository.MaterialRepository,
		workOrderRepo repository.WorkOrderRepository,
	) error {
		// 1) Chequeo de duplicado por nombre. Es un pre-vuelo: la garantía
		// autoritativa la da el constraint único al insertar más abajo.
		existing, err := workOrderRepo.GetByName(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicateWorkOrder
		}

		// 2) Demanda agregada por material: un lote con el mismo nombre en
		// varias líneas se juzga contra la suma, no línea a línea.
		demand := aggregateDemand(input.Lines)

		// Bloquear materiales en orden de nombre para evitar deadlocks entre
		// conciliaciones concurrentes que comparten materiales.
		names := make([]string, 0, len(demand))
		for n := range demand {
			names = append(names, n)
		}
		sort.Strings(names)

		materials := make(map[string]*entity.Material, len(names))
		var shortfalls []domain.Shortfall
		for _, n := range names {
			m, err := materialRepo.GetByNameForUpdate(ctx, n)
			if err != nil {
				return err
			}
			if m == nil {
				return &domain.UnknownMaterialError{Name: n}
			}
			if m.AvailableQuantity.LessThan(demand[n]) {
				shortfalls = append(shortfalls, domain.Shortfall{
					MaterialName: n,
					Available:    m.AvailableQuantity,
					Requested:    demand[n],
				})
			}
			materials[n] = m
		}
		if len(shortfalls) > 0 {
			return &domain.InsufficientStockError{Shortfalls: shortfalls}
		}

		// 3) Commit: orden + deducciones + líneas de auditoría.
		wo := &entity.WorkOrder{
			Name:      name,
			Status:    entity.WorkOrderStatusSuccess,
			CreatedAt: now,
		}
		if err := workOrderRepo.Create(ctx, wo); err != nil {
			return err
		}

		for _, n := range names {
			m := materials[n]
			if err := materialRepo.UpdateQuantity(ctx, m.ID, m.AvailableQuantity.Sub(demand[n])); err != nil {
				return err
			}
		}
		for _, line := range input.Lines {
			cl := &entity.ConsumptionLine{
				WorkOrderID:  wo.ID,
				MaterialID:   materials[line.MaterialName].ID,
				MaterialName: line.MaterialName,
				QuantityUsed: line.Quantity,
			}
			if err := workOrderRepo.AddLine(ctx, cl); err != nil {
				return err
			}
			wo.Lines = append(wo.Lines, cl)
		}

		created = wo
		return nil
	})
	if err != nil {
		err = domain.WrapStorage(err)
		uc.log.Warn().
			Str("trace_id", traceID).
			Str("work_order", name).
			Err(err).
			Msg("conciliación rechazada")
		return nil, err
	}

	uc.log.Info().
		Str("trace_id", traceID).
		Str("work_order", name).
		Int("lines", len(created.Lines)).
		Msg("conciliación aplicada")
	return created, nil
}

// aggregateDemand suma las cantidades pedidas por nombre de material.
func aggregateDemand(lines []InputLine) map[string]decimal.Decimal {
	demand := make(map[string]decimal.Decimal, len(lines))
	for _, l := range lines {
		demand[l.MaterialName] = demand[l.MaterialName].Add(l.Quantity)
	}
	return demand
}

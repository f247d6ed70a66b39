package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo implementación de WorkOrderRepository sobre PostgreSQL
// (usable con pool o tx).
type WorkOrderRepo struct {
	q Querier
}

// NewWorkOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkOrderRepository(q Querier) *WorkOrderRepo {
	return &WorkOrderRepo{q: q}
}

// Create persiste la orden y asigna su ID. El índice único de name es la
// autoridad contra el doble procesamiento: 23505 -> ErrDuplicateWorkOrder.
func (r *WorkOrderRepo) Create(ctx context.Context, wo *entity.WorkOrder) error {
	query := `
		INSERT INTO work_orders (name, status, created_at)
		VALUES ($1, $2, $3)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, wo.Name, wo.Status, wo.CreatedAt).Scan(&wo.ID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateWorkOrder
		}
		return fmt.Errorf("create work order: %w", err)
	}
	return nil
}

// GetByName devuelve (nil, nil) si no existe una orden con ese nombre.
func (r *WorkOrderRepo) GetByName(ctx context.Context, name string) (*entity.WorkOrder, error) {
	var wo entity.WorkOrder
	err := r.q.QueryRow(ctx,
		`SELECT id, name, status, created_at FROM work_orders WHERE name = $1`, name).
		Scan(&wo.ID, &wo.Name, &wo.Status, &wo.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work order: %w", err)
	}
	return &wo, nil
}

// AddLine persiste una línea de consumo.
func (r *WorkOrderRepo) AddLine(ctx context.Context, line *entity.ConsumptionLine) error {
	query := `
		INSERT INTO consumption_lines (work_order_id, material_id, quantity_used)
		VALUES ($1, $2, $3)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, line.WorkOrderID, line.MaterialID, line.QuantityUsed).Scan(&line.ID); err != nil {
		return fmt.Errorf("add consumption line: %w", err)
	}
	return nil
}

// List devuelve las órdenes con sus líneas, la más reciente primero.
// Dos consultas (órdenes y líneas) fusionadas en memoria.
func (r *WorkOrderRepo) List(ctx context.Context) ([]*entity.WorkOrder, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, status, created_at FROM work_orders ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list work orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.WorkOrder
	byID := make(map[int64]*entity.WorkOrder)
	for rows.Next() {
		var wo entity.WorkOrder
		if err := rows.Scan(&wo.ID, &wo.Name, &wo.Status, &wo.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		wo.Lines = []*entity.ConsumptionLine{}
		orders = append(orders, &wo)
		byID[wo.ID] = &wo
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	lineRows, err := r.q.Query(ctx, `
		SELECT cl.id, cl.work_order_id, cl.material_id, m.name, cl.quantity_used
		FROM consumption_lines cl
		JOIN materials m ON m.id = cl.material_id
		ORDER BY cl.id`)
	if err != nil {
		return nil, fmt.Errorf("list consumption lines: %w", err)
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var l entity.ConsumptionLine
		if err := lineRows.Scan(&l.ID, &l.WorkOrderID, &l.MaterialID, &l.MaterialName, &l.QuantityUsed); err != nil {
			return nil, fmt.Errorf("scan consumption line: %w", err)
		}
		if wo, ok := byID[l.WorkOrderID]; ok {
			wo.Lines = append(wo.Lines, &l)
		}
	}
	return orders, lineRows.Err()
}

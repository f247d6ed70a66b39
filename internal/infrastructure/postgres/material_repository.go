package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación de MaterialRepository sobre PostgreSQL (usable con pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

const materialColumns = `
	m.id, m.name, m.category_id, c.name, m.available_quantity, m.low_stock_threshold, m.created_at, m.updated_at`

// Create persiste un material; el nombre duplicado se rechaza como entrada inválida.
func (r *MaterialRepo) Create(ctx context.Context, m *entity.Material) error {
	query := `
		INSERT INTO materials (name, category_id, available_quantity, low_stock_threshold)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, m.Name, m.CategoryID, m.AvailableQuantity, m.LowStockThreshold).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("create material: %w", err)
	}
	return nil
}

// GetByID obtiene un material por ID. Devuelve (nil, nil) si no existe.
func (r *MaterialRepo) GetByID(ctx context.Context, id int64) (*entity.Material, error) {
	query := `
		SELECT` + materialColumns + `
		FROM materials m JOIN categories c ON c.id = m.category_id
		WHERE m.id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get material")
}

// GetByName obtiene un material por su clave natural. Devuelve (nil, nil) si no existe.
func (r *MaterialRepo) GetByName(ctx context.Context, name string) (*entity.Material, error) {
	query := `
		SELECT` + materialColumns + `
		FROM materials m JOIN categories c ON c.id = m.category_id
		WHERE m.name = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, name), "get material by name")
}

// GetByNameForUpdate obtiene el material y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *MaterialRepo) GetByNameForUpdate(ctx context.Context, name string) (*entity.Material, error) {
	query := `
		SELECT` + materialColumns + `
		FROM materials m JOIN categories c ON c.id = m.category_id
		WHERE m.name = $1
		FOR UPDATE OF m`
	return r.scanOne(r.q.QueryRow(ctx, query, name), "get material for update")
}

// List devuelve el catálogo completo ordenado por ID.
func (r *MaterialRepo) List(ctx context.Context) ([]*entity.Material, error) {
	query := `
		SELECT` + materialColumns + `
		FROM materials m JOIN categories c ON c.id = m.category_id
		ORDER BY m.id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.Name, &m.CategoryID, &m.CategoryName,
			&m.AvailableQuantity, &m.LowStockThreshold, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// UpdateQuantity fija la cantidad disponible. El CHECK de la tabla rechaza
// negativos aunque el caller se salte la validación.
func (r *MaterialRepo) UpdateQuantity(ctx context.Context, id int64, quantity decimal.Decimal) error {
	query := `UPDATE materials SET available_quantity = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, quantity)
	if err != nil {
		return fmt.Errorf("update quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un material. Un material con líneas de consumo no puede
// borrarse: el FK protege el rastro de auditoría.
func (r *MaterialRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("delete material: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MaterialRepo) scanOne(row pgx.Row, op string) (*entity.Material, error) {
	var m entity.Material
	err := row.Scan(&m.ID, &m.Name, &m.CategoryID, &m.CategoryName,
		&m.AvailableQuantity, &m.LowStockThreshold, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &m, nil
}

package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// MaterialRepository define el puerto de persistencia del catálogo (DIP).
// Los métodos Get* devuelven (nil, nil) si el material no existe.
type MaterialRepository interface {
	Create(ctx context.Context, m *entity.Material) error
	GetByID(ctx context.Context, id int64) (*entity.Material, error)
	GetByName(ctx context.Context, name string) (*entity.Material, error)
	// GetByNameForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Usado dentro de transacciones por el motor de conciliación.
	GetByNameForUpdate(ctx context.Context, name string) (*entity.Material, error)
	List(ctx context.Context) ([]*entity.Material, error)
	UpdateQuantity(ctx context.Context, id int64, quantity decimal.Decimal) error
	Delete(ctx context.Context, id int64) error
}

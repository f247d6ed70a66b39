package memory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación en memoria de MaterialRepository.
type MaterialRepo struct {
	v view
}

// NewMaterialRepository construye el repositorio sobre el store compartido.
func NewMaterialRepository(s *Store) *MaterialRepo {
	return &MaterialRepo{v: view{s: s}}
}

// Create asigna un ID secuencial y registra el material. Nombre duplicado -> ErrInvalidInput.
func (r *MaterialRepo) Create(_ context.Context, m *entity.Material) error {
	return r.v.write(func(d *dataset) error {
		if d.materialByName(m.Name) != nil {
			return domain.ErrInvalidInput
		}
		d.nextMaterialID++
		m.ID = d.nextMaterialID
		now := time.Now()
		m.CreatedAt = now
		m.UpdatedAt = now
		if cat := d.categoryByID(m.CategoryID); cat != nil {
			m.CategoryName = cat.Name
		}
		cp := *m
		d.materials = append(d.materials, &cp)
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *MaterialRepo) GetByID(_ context.Context, id int64) (*entity.Material, error) {
	var out *entity.Material
	err := r.v.read(func(d *dataset) error {
		if m := d.materialByID(id); m != nil {
			cp := *m
			out = &cp
		}
		return nil
	})
	return out, err
}

// GetByName devuelve (nil, nil) si no existe.
func (r *MaterialRepo) GetByName(_ context.Context, name string) (*entity.Material, error) {
	var out *entity.Material
	err := r.v.read(func(d *dataset) error {
		if m := d.materialByName(name); m != nil {
			cp := *m
			out = &cp
		}
		return nil
	})
	return out, err
}

// GetByNameForUpdate en memoria equivale a GetByName: la serialización la da
// el lock de commit del TxRunner, que ya sostiene el caller transaccional.
func (r *MaterialRepo) GetByNameForUpdate(ctx context.Context, name string) (*entity.Material, error) {
	return r.GetByName(ctx, name)
}

// List devuelve el catálogo en orden de inserción (IDs ascendentes).
func (r *MaterialRepo) List(_ context.Context) ([]*entity.Material, error) {
	var out []*entity.Material
	err := r.v.read(func(d *dataset) error {
		out = make([]*entity.Material, 0, len(d.materials))
		for _, m := range d.materials {
			cp := *m
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

// UpdateQuantity fija la cantidad disponible; rechaza negativos como lo haría
// el CHECK de la tabla en PostgreSQL.
func (r *MaterialRepo) UpdateQuantity(_ context.Context, id int64, quantity decimal.Decimal) error {
	return r.v.write(func(d *dataset) error {
		if quantity.IsNegative() {
			return domain.ErrInvalidInput
		}
		m := d.materialByID(id)
		if m == nil {
			return domain.ErrNotFound
		}
		m.AvailableQuantity = quantity
		m.UpdatedAt = time.Now()
		return nil
	})
}

// Delete elimina el material del catálogo. Un material con líneas de consumo
// no puede borrarse, igual que el FK en PostgreSQL protege la auditoría.
func (r *MaterialRepo) Delete(_ context.Context, id int64) error {
	return r.v.write(func(d *dataset) error {
		for _, wo := range d.workOrders {
			for _, l := range wo.Lines {
				if l.MaterialID == id {
					return domain.ErrInvalidInput
				}
			}
		}
		for i, m := range d.materials {
			if m.ID == id {
				d.materials = append(d.materials[:i], d.materials[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

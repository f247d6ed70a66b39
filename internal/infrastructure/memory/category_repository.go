package memory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación en memoria de CategoryRepository.
type CategoryRepo struct {
	v view
}

// NewCategoryRepository construye el repositorio sobre el store compartido.
func NewCategoryRepository(s *Store) *CategoryRepo {
	return &CategoryRepo{v: view{s: s}}
}

// Create asigna un ID secuencial y registra la categoría.
func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	return r.v.write(func(d *dataset) error {
		for _, existing := range d.categories {
			if existing.Name == c.Name {
				return domain.ErrInvalidInput
			}
		}
		d.nextCategoryID++
		c.ID = d.nextCategoryID
		cp := *c
		d.categories = append(d.categories, &cp)
		return nil
	})
}

// GetByName devuelve (nil, nil) si no existe.
func (r *CategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	var out *entity.Category
	err := r.v.read(func(d *dataset) error {
		for _, c := range d.categories {
			if c.Name == name {
				cp := *c
				out = &cp
				return nil
			}
		}
		return nil
	})
	return out, err
}

// List devuelve todas las categorías en orden de inserción.
func (r *CategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	err := r.v.read(func(d *dataset) error {
		out = make([]*entity.Category, 0, len(d.categories))
		for _, c := range d.categories {
			cp := *c
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

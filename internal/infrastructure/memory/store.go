// Package memory implementa el puerto de persistencia en memoria: respaldo
// para tests y demos sin base de datos. Reemplaza al dataset mock global del
// diseño anterior por una implementación explícita seleccionada por
// configuración.
//
// Las escrituras transaccionales operan sobre un clon profundo del dataset
// que se publica solo en el commit, así el conjunto entero del lote se aplica
// o se descarta de una vez (cola de escritor único para todo el motor).
package memory

import (
	"sync"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// Store estado compartido de todos los repositorios en memoria.
type Store struct {
	mu   sync.RWMutex
	data *dataset
}

// NewStore crea un almacenamiento vacío.
func NewStore() *Store {
	return &Store{data: &dataset{}}
}

// dataset el contenido completo del almacenamiento. Los slices preservan el
// orden de inserción (IDs ascendentes).
type dataset struct {
	nextCategoryID  int64
	nextMaterialID  int64
	nextWorkOrderID int64
	nextLineID      int64

	categories []*entity.Category
	materials  []*entity.Material
	workOrders []*entity.WorkOrder
}

// clone copia profunda: entidades nuevas, sin aliasing con el original.
func (d *dataset) clone() *dataset {
	c := &dataset{
		nextCategoryID:  d.nextCategoryID,
		nextMaterialID:  d.nextMaterialID,
		nextWorkOrderID: d.nextWorkOrderID,
		nextLineID:      d.nextLineID,
		categories:      make([]*entity.Category, len(d.categories)),
		materials:       make([]*entity.Material, len(d.materials)),
		workOrders:      make([]*entity.WorkOrder, len(d.workOrders)),
	}
	for i, cat := range d.categories {
		cp := *cat
		c.categories[i] = &cp
	}
	for i, m := range d.materials {
		cp := *m
		c.materials[i] = &cp
	}
	for i, wo := range d.workOrders {
		cp := *wo
		cp.Lines = make([]*entity.ConsumptionLine, len(wo.Lines))
		for j, l := range wo.Lines {
			lcp := *l
			cp.Lines[j] = &lcp
		}
		c.workOrders[i] = &cp
	}
	return c
}

func (d *dataset) materialByID(id int64) *entity.Material {
	for _, m := range d.materials {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (d *dataset) materialByName(name string) *entity.Material {
	for _, m := range d.materials {
		if m.Name == name {
			return m
		}
	}
	return nil
}

func (d *dataset) categoryByID(id int64) *entity.Category {
	for _, c := range d.categories {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (d *dataset) workOrderByName(name string) *entity.WorkOrder {
	for _, wo := range d.workOrders {
		if wo.Name == name {
			return wo
		}
	}
	return nil
}

func (d *dataset) workOrderByID(id int64) *entity.WorkOrder {
	for _, wo := range d.workOrders {
		if wo.ID == id {
			return wo
		}
	}
	return nil
}

// view resuelve contra qué dataset opera un repositorio: el del Store (con su
// lock) o el clon de una transacción en curso (el TxRunner ya sostiene el lock).
type view struct {
	s  *Store
	ds *dataset
}

func (v view) read(fn func(d *dataset) error) error {
	if v.ds != nil {
		return fn(v.ds)
	}
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	return fn(v.s.data)
}

func (v view) write(fn func(d *dataset) error) error {
	if v.ds != nil {
		return fn(v.ds)
	}
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return fn(v.s.data)
}

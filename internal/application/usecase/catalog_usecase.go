package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// CatalogUseCase operaciones de lectura y administración del catálogo maestro.
// Los ajustes directos saltan el motor de conciliación y no dejan línea de
// auditoría; son la vía de override administrativo.
type CatalogUseCase struct {
	materialRepo repository.MaterialRepository
	categoryRepo repository.CategoryRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(materialRepo repository.MaterialRepository, categoryRepo repository.CategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{materialRepo: materialRepo, categoryRepo: categoryRepo}
}

// List devuelve el catálogo completo con la clasificación de stock derivada.
func (uc *CatalogUseCase) List(ctx context.Context) ([]dto.MaterialDTO, error) {
	materials, err := uc.materialRepo.List(ctx)
	if err != nil {
		return nil, domain.WrapStorage(err)
	}
	out := make([]dto.MaterialDTO, 0, len(materials))
	for _, m := range materials {
		out = append(out, toMaterialDTO(m))
	}
	return out, nil
}

// ListLowStock devuelve solo los materiales en alerta, el más crítico primero
// (cantidad disponible ascendente).
func (uc *CatalogUseCase) ListLowStock(ctx context.Context) ([]dto.MaterialDTO, error) {
	materials, err := uc.materialRepo.List(ctx)
	if err != nil {
		return nil, domain.WrapStorage(err)
	}
	low := make([]dto.MaterialDTO, 0)
	for _, m := range materials {
		if m.IsLowStock() {
			low = append(low, toMaterialDTO(m))
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		return low[i].AvailableQuantity.LessThan(low[j].AvailableQuantity)
	})
	return low, nil
}

// Create da de alta un material. La categoría se resuelve por nombre y debe
// existir previamente.
func (uc *CatalogUseCase) Create(ctx context.Context, in dto.CreateMaterialRequest) (*dto.MaterialDTO, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.AvailableQuantity.IsNegative() || in.LowStockThreshold.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	cat, err := uc.categoryRepo.GetByName(ctx, strings.TrimSpace(in.CategoryName))
	if err != nil {
		return nil, domain.WrapStorage(err)
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	m := &entity.Material{
		Name:              name,
		CategoryID:        cat.ID,
		CategoryName:      cat.Name,
		AvailableQuantity: in.AvailableQuantity,
		LowStockThreshold: in.LowStockThreshold,
	}
	if err := uc.materialRepo.Create(ctx, m); err != nil {
		return nil, domain.WrapStorage(err)
	}
	out := toMaterialDTO(m)
	return &out, nil
}

// AdjustQuantity fija la cantidad disponible de un material (override
// administrativo). Rechaza cantidades negativas para sostener el invariante
// del catálogo.
func (uc *CatalogUseCase) AdjustQuantity(ctx context.Context, id int64, in dto.AdjustQuantityRequest) error {
	if in.AvailableQuantity.IsNegative() {
		return domain.ErrInvalidInput
	}
	m, err := uc.materialRepo.GetByID(ctx, id)
	if err != nil {
		return domain.WrapStorage(err)
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return domain.WrapStorage(uc.materialRepo.UpdateQuantity(ctx, id, in.AvailableQuantity))
}

// Delete elimina un material del catálogo (acción administrativa).
func (uc *CatalogUseCase) Delete(ctx context.Context, id int64) error {
	m, err := uc.materialRepo.GetByID(ctx, id)
	if err != nil {
		return domain.WrapStorage(err)
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return domain.WrapStorage(uc.materialRepo.Delete(ctx, id))
}

func toMaterialDTO(m *entity.Material) dto.MaterialDTO {
	return dto.MaterialDTO{
		ID:                m.ID,
		Name:              m.Name,
		AvailableQuantity: m.AvailableQuantity,
		LowStockThreshold: m.LowStockThreshold,
		CategoryName:      m.CategoryName,
		LowStock:          m.IsLowStock(),
		Critical:          m.IsCritical(),
	}
}

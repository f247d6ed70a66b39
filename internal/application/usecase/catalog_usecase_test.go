package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
)

func newCatalogUC(t *testing.T) (*usecase.CatalogUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	catRepo := memory.NewCategoryRepository(store)
	require.NoError(t, catRepo.Create(context.Background(), &entity.Category{Name: "Core materials"}))
	return usecase.NewCatalogUseCase(memory.NewMaterialRepository(store), catRepo), store
}

func createMaterial(t *testing.T, uc *usecase.CatalogUseCase, name string, qty, threshold int64) dto.MaterialDTO {
	t.Helper()
	m, err := uc.Create(context.Background(), dto.CreateMaterialRequest{
		Name:              name,
		AvailableQuantity: decimal.NewFromInt(qty),
		LowStockThreshold: decimal.NewFromInt(threshold),
		CategoryName:      "Core materials",
	})
	require.NoError(t, err)
	return *m
}

func TestCatalog_CreateYList(t *testing.T) {
	uc, _ := newCatalogUC(t)
	created := createMaterial(t, uc, "Plywood 18mm", 40, 10)

	assert.Equal(t, "Core materials", created.CategoryName)
	assert.False(t, created.LowStock)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Plywood 18mm", list[0].Name)
}

func TestCatalog_CreateCategoriaInexistente(t *testing.T) {
	uc, _ := newCatalogUC(t)
	_, err := uc.Create(context.Background(), dto.CreateMaterialRequest{
		Name:              "Plywood 18mm",
		AvailableQuantity: decimal.NewFromInt(40),
		LowStockThreshold: decimal.NewFromInt(10),
		CategoryName:      "no existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_CreateValoresInvalidos(t *testing.T) {
	uc, _ := newCatalogUC(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateMaterialRequest{Name: "   ", CategoryName: "Core materials"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateMaterialRequest{
		Name:              "Negativo",
		AvailableQuantity: decimal.NewFromInt(-1),
		CategoryName:      "Core materials",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalog_LowStockOrdenadoPorCriticidad(t *testing.T) {
	uc, _ := newCatalogUC(t)
	createMaterial(t, uc, "Sano", 100, 10)
	createMaterial(t, uc, "Alerta", 8, 10)
	createMaterial(t, uc, "Critico", 1, 10)
	createMaterial(t, uc, "Agotado", 0, 10)

	low, err := uc.ListLowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 3, "el material sano no aparece")

	assert.Equal(t, "Agotado", low[0].Name, "el más crítico primero")
	assert.Equal(t, "Critico", low[1].Name)
	assert.Equal(t, "Alerta", low[2].Name)
	assert.True(t, low[0].Critical)
}

func TestCatalog_AdjustQuantity(t *testing.T) {
	uc, _ := newCatalogUC(t)
	created := createMaterial(t, uc, "Plywood 18mm", 40, 10)
	ctx := context.Background()

	require.NoError(t, uc.AdjustQuantity(ctx, created.ID, dto.AdjustQuantityRequest{
		AvailableQuantity: decimal.NewFromInt(5),
	}))

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.True(t, list[0].AvailableQuantity.Equal(decimal.NewFromInt(5)))
	assert.True(t, list[0].LowStock, "la clasificación se recalcula tras el ajuste")

	err = uc.AdjustQuantity(ctx, created.ID, dto.AdjustQuantityRequest{
		AvailableQuantity: decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.AdjustQuantity(ctx, 9999, dto.AdjustQuantityRequest{
		AvailableQuantity: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_Delete(t *testing.T) {
	uc, _ := newCatalogUC(t)
	created := createMaterial(t, uc, "Plywood 18mm", 40, 10)
	ctx := context.Background()

	require.NoError(t, uc.Delete(ctx, created.ID))

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, uc.Delete(ctx, created.ID), domain.ErrNotFound)
}

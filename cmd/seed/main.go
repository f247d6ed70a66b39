// Comando seed: carga el catálogo maestro de demostración en PostgreSQL.
// Idempotente: los materiales y categorías ya existentes se saltan.
package main

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

type seedMaterial struct {
	category  string
	name      string
	quantity  int64
	threshold int64
}

var seedCategories = []string{
	"Core materials",
	"Finish materials",
	"Edge-bands",
	"Hardware",
}

var seedMaterials = []seedMaterial{
	// Core materials
	{"Core materials", "8mm CSMR - Century Sainik", 120, 20},
	{"Core materials", "16mm CSMR - Century Sainik MR", 45, 15},
	{"Core materials", "16mm CCP BWP Ply - Century Club Prime", 60, 10},
	{"Core materials", "19mm CCP BWP Ply - Century Club Prime", 35, 10},
	{"Core materials", "9mm CCP BWP Ply - Century Club Prime", 80, 15},
	{"Core materials", "16mm CS7 BWP Ply - Century Sainik", 50, 10},
	{"Core materials", "19mm CS7 BWP Ply - Century Sainik", 40, 10},
	{"Core materials", "9mm CS7 BWP Ply - Century Sainik", 90, 15},

	// Finish materials
	{"Finish materials", "6952 Off White 0.8mm", 200, 50},
	{"Finish materials", "108 SUD Absolute white 1mm", 150, 40},
	{"Finish materials", "5375 SUD Saturno walnut 1mm", 130, 30},

	// Edge-bands
	{"Edge-bands", "0.8 x 22 mm 6968 Woven Fabric Grey Edgeband", 500, 100},
	{"Edge-bands", "2 x 22 mm 6968 Woven Fabric Grey Edgeband", 450, 100},
	{"Edge-bands", "0.8 x 22 mm 6967 Woven fabric Edgeband", 300, 80},
	{"Edge-bands", "2 x 22 mm 6967 Woven fabric Edgeband", 320, 80},
	{"Edge-bands", "2 x 22 mm 6952 Off White Edgeband", 400, 80},
	{"Edge-bands", "2 x 22 mm 5375 Saturno walnut Edgeband", 250, 60},
	{"Edge-bands", "2 x 22 mm 108 Absolute white Edgeband", 380, 80},

	// Hardware
	{"Hardware", "8x40 Wooden Dowel", 2000, 500},
	{"Hardware", "Minifix _ External", 1500, 300},
	{"Hardware", "Minifix 40mm_Internal", 1200, 300},
	{"Hardware", "MH-Minifix _ External", 800, 200},
	{"Hardware", "MH_Minifix 40mm_Internal", 750, 200},
	{"Hardware", "Black Screw 3.5x19mm", 5000, 1000},
	{"Hardware", "HETTICH SKIRTING LEG_100mm", 400, 100},
	{"Hardware", "BZH(160)", 300, 50},
	{"Hardware", "MH_Hinge with 0 crank,Opening angle 105", 600, 150},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	ctx := context.Background()

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)

	categoryIDs := make(map[string]int64, len(seedCategories))
	for _, name := range seedCategories {
		existing, err := categoryRepo.GetByName(ctx, name)
		if err != nil {
			log.Fatal().Err(err).Str("category", name).Msg("consultar categoría")
		}
		if existing != nil {
			categoryIDs[name] = existing.ID
			continue
		}
		c := &entity.Category{Name: name}
		if err := categoryRepo.Create(ctx, c); err != nil {
			log.Fatal().Err(err).Str("category", name).Msg("crear categoría")
		}
		categoryIDs[name] = c.ID
		log.Info().Str("category", name).Msg("categoría creada")
	}

	created, skipped := 0, 0
	for _, sm := range seedMaterials {
		m := &entity.Material{
			Name:              sm.name,
			CategoryID:        categoryIDs[sm.category],
			AvailableQuantity: decimal.NewFromInt(sm.quantity),
			LowStockThreshold: decimal.NewFromInt(sm.threshold),
		}
		err := materialRepo.Create(ctx, m)
		switch {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrInvalidInput):
			// ya existe
			skipped++
		default:
			log.Fatal().Err(err).Str("material", sm.name).Msg("crear material")
		}
	}

	log.Info().
		Int("created", created).
		Int("skipped", skipped).
		Msg("catálogo de demostración cargado")
}

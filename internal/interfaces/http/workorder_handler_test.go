package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/reconcile"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Almacen-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp levanta la API completa sobre almacenamiento en memoria con un
// catálogo mínimo sembrado.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()

	catRepo := memory.NewCategoryRepository(store)
	cat := &entity.Category{Name: "Core materials"}
	require.NoError(t, catRepo.Create(ctx, cat))

	matRepo := memory.NewMaterialRepository(store)
	seed := []struct {
		name      string
		qty       int64
		threshold int64
	}{
		{"Plywood 18mm", 40, 10},
		{"Edge band", 10, 5},
	}
	for _, s := range seed {
		require.NoError(t, matRepo.Create(ctx, &entity.Material{
			Name:              s.name,
			CategoryID:        cat.ID,
			AvailableQuantity: decimal.NewFromInt(s.qty),
			LowStockThreshold: decimal.NewFromInt(s.threshold),
		}))
	}

	workOrderRepo := memory.NewWorkOrderRepository(store)
	analyticsRepo := memory.NewAnalyticsRepository(store)
	engine := reconcile.NewUseCase(memory.NewTxRunner(store), zerolog.Nop())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CatalogUC:     usecase.NewCatalogUseCase(matRepo, catRepo),
		WorkOrderUC:   usecase.NewWorkOrderUseCase(workOrderRepo),
		AnalyticsUC:   usecase.NewAnalyticsUseCase(analyticsRepo, matRepo),
		Engine:        engine,
		MaterialRepo:  matRepo,
		WorkOrderRepo: workOrderRepo,
		Metrics:       apphttp.NewMetrics(),
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, app *fiber.App, path string, out any) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func confirmBody(name string, lines ...map[string]any) map[string]any {
	return map[string]any{"work_order_name": name, "lines": lines}
}

func line(material string, quantity float64) map[string]any {
	return map[string]any{"material_name": material, "quantity": quantity}
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/work-orders
// ──────────────────────────────────────────────────────────────────────────────

func TestConfirm_OrdenValida(t *testing.T) {
	app := buildTestApp(t)

	resp := postJSON(t, app, "/api/work-orders",
		confirmBody("WO-1", line("Plywood 18mm", 6)))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var wo struct {
		Name   string `json:"name"`
		Status string `json:"status"`
		Lines  []struct {
			MaterialName string `json:"material_name"`
		} `json:"lines"`
	}
	decodeBody(t, resp, &wo)
	assert.Equal(t, "WO-1", wo.Name)
	assert.Equal(t, "Success", wo.Status)
	require.Len(t, wo.Lines, 1)

	// El stock quedó descontado.
	var catalog []struct {
		Name              string          `json:"name"`
		AvailableQuantity decimal.Decimal `json:"available_quantity"`
	}
	getJSON(t, app, "/api/catalog", &catalog)
	for _, m := range catalog {
		if m.Name == "Plywood 18mm" {
			assert.True(t, m.AvailableQuantity.Equal(decimal.NewFromInt(34)))
		}
	}
}

func TestConfirm_OrdenDuplicada(t *testing.T) {
	app := buildTestApp(t)

	resp := postJSON(t, app, "/api/work-orders", confirmBody("WO-1", line("Plywood 18mm", 1)))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/api/work-orders", confirmBody("WO-1", line("Plywood 18mm", 1)))
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var e struct {
		Code string `json:"code"`
	}
	decodeBody(t, resp, &e)
	assert.Equal(t, "DUPLICATE_WORK_ORDER", e.Code)
}

func TestConfirm_StockInsuficienteConDetalles(t *testing.T) {
	app := buildTestApp(t)

	resp := postJSON(t, app, "/api/work-orders",
		confirmBody("WO-1", line("Edge band", 6), line("Edge band", 7)))
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var e struct {
		Code    string `json:"code"`
		Details []struct {
			MaterialName string `json:"material_name"`
			Available    string `json:"available"`
			Requested    string `json:"requested"`
		} `json:"details"`
	}
	decodeBody(t, resp, &e)
	assert.Equal(t, "INSUFFICIENT_STOCK", e.Code)
	require.Len(t, e.Details, 1)
	assert.Equal(t, "Edge band", e.Details[0].MaterialName)
	assert.Equal(t, "10", e.Details[0].Available)
	assert.Equal(t, "13", e.Details[0].Requested, "la demanda se agrega por material")
}

func TestConfirm_MaterialDesconocido(t *testing.T) {
	app := buildTestApp(t)

	resp := postJSON(t, app, "/api/work-orders", confirmBody("WO-1", line("MDF 12mm", 2)))
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var e struct {
		Code string `json:"code"`
	}
	decodeBody(t, resp, &e)
	assert.Equal(t, "UNKNOWN_MATERIAL", e.Code)
}

func TestConfirm_EntradaInvalida(t *testing.T) {
	app := buildTestApp(t)

	resp := postJSON(t, app, "/api/work-orders", confirmBody("", line("Plywood 18mm", 1)))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, app, "/api/work-orders", confirmBody("WO-1", line("Plywood 18mm", 0)))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/work-orders/upload
// ──────────────────────────────────────────────────────────────────────────────

func TestUpload_ExtraeLineasDeTextoPlano(t *testing.T) {
	app := buildTestApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "wo-1.txt")
	require.NoError(t, err)
	_, err = io.WriteString(fw, "Plywood 18mm - 6\nEdge band - 2\nnota sin formato\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/work-orders/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		FileName string `json:"file_name"`
		Lines    []struct {
			MaterialName string `json:"material_name"`
		} `json:"lines"`
	}
	decodeBody(t, resp, &out)
	assert.Equal(t, "wo-1.txt", out.FileName)
	require.Len(t, out.Lines, 2)
	assert.Equal(t, "Plywood 18mm", out.Lines[0].MaterialName)
}

func TestUpload_DocumentoSinLineasValidas(t *testing.T) {
	app := buildTestApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "nota.txt")
	require.NoError(t, err)
	_, err = io.WriteString(fw, "remito interno sin materiales\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/work-orders/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var e struct {
		Code string `json:"code"`
	}
	decodeBody(t, resp, &e)
	assert.Equal(t, "EXTRACTION", e.Code)
}

func TestUpload_SinArchivo(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/work-orders/upload", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestListWorkOrders_MasRecientePrimero(t *testing.T) {
	app := buildTestApp(t)

	for _, name := range []string{"WO-1", "WO-2"} {
		resp := postJSON(t, app, "/api/work-orders", confirmBody(name, line("Plywood 18mm", 1)))
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	var orders []struct {
		Name string `json:"name"`
	}
	resp := getJSON(t, app, "/api/work-orders", &orders)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, orders, 2)
	assert.Equal(t, "WO-2", orders[0].Name)
}

func TestLowStock_SoloMaterialesEnAlerta(t *testing.T) {
	app := buildTestApp(t)

	// Edge band queda en 2 (umbral 5) tras esta orden.
	resp := postJSON(t, app, "/api/work-orders", confirmBody("WO-1", line("Edge band", 8)))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var low []struct {
		Name     string `json:"name"`
		LowStock bool   `json:"low_stock"`
	}
	getJSON(t, app, "/api/catalog/low-stock", &low)
	require.Len(t, low, 1)
	assert.Equal(t, "Edge band", low[0].Name)
	assert.True(t, low[0].LowStock)
}

func TestAnalytics_ReflejaElConsumo(t *testing.T) {
	app := buildTestApp(t)

	resp := postJSON(t, app, "/api/work-orders", confirmBody("WO-1", line("Plywood 18mm", 6)))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out struct {
		Metrics struct {
			TotalWorkOrders int `json:"total_work_orders"`
		} `json:"metrics"`
		MaterialUsage []struct {
			Name string `json:"name"`
		} `json:"material_usage"`
	}
	resp = getJSON(t, app, "/api/analytics", &out)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, out.Metrics.TotalWorkOrders)
	require.Len(t, out.MaterialUsage, 1)
	assert.Equal(t, "Plywood 18mm", out.MaterialUsage[0].Name)
}

func TestHealth(t *testing.T) {
	app := buildTestApp(t)
	resp := getJSON(t, app, "/health", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestReports_Descargables(t *testing.T) {
	app := buildTestApp(t)

	resp := getJSON(t, app, "/api/reports/catalog.xlsx", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

	resp = getJSON(t, app, "/api/reports/work-orders.pdf", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

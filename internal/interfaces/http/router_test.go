package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-lite/internal/application/backup"
	"github.com/tu-usuario/stock-lite/internal/application/dto"
	"github.com/tu-usuario/stock-lite/internal/application/item"
	"github.com/tu-usuario/stock-lite/internal/application/ledger"
	"github.com/tu-usuario/stock-lite/internal/application/report"
	"github.com/tu-usuario/stock-lite/internal/infrastructure/pdf"
	"github.com/tu-usuario/stock-lite/internal/infrastructure/storage"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// newTestApp levanta la app completa sobre un KV en memoria, sin auth.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	kv := storage.NewMemory()
	items := storage.NewItemRepository(kv)
	movs := storage.NewMovementRepository(kv)
	runner := storage.NewTxRunner(kv)

	itemUC := item.NewUseCase(runner, items, 5)
	ledgerUC := ledger.NewUseCase(runner, movs)

	app := fiber.New()
	Router(app, RouterDeps{
		ItemUC:   itemUC,
		LedgerUC: ledgerUC,
		BackupUC: backup.NewUseCase(runner, items, movs),
		ReportUC: report.NewUseCase(itemUC, pdf.NewMarotoStockReport("StockLite Test")),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createItem(t *testing.T, app *fiber.App, name string, qty int) dto.ItemResponse {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, "/api/items/", map[string]any{
		"name":          name,
		"quantity":      qty,
		"purchasePrice": "1.00",
		"salePrice":     "2.00",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decode[dto.ItemResponse](t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ítems
// ──────────────────────────────────────────────────────────────────────────────

func TestItems_CicloCompleto(t *testing.T) {
	app := newTestApp(t)

	created := createItem(t, app, "Café molido", 10)
	assert.NotEmpty(t, created.ID)

	resp := doJSON(t, app, fiber.MethodGet, "/api/items/"+created.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := decode[dto.ItemResponse](t, resp)
	assert.Equal(t, "Café molido", got.Name)

	resp = doJSON(t, app, fiber.MethodPut, "/api/items/"+created.ID, map[string]any{
		"name": "Café molido premium",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := decode[dto.ItemResponse](t, resp)
	assert.Equal(t, "Café molido premium", updated.Name)
	assert.Equal(t, 10, updated.Quantity)

	resp = doJSON(t, app, fiber.MethodDelete, "/api/items/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/items/"+created.ID, nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "ITEM_NOT_FOUND", errBody.Code)
}

func TestItems_CreacionInvalida(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/items/", map[string]any{
		"name": "   ", "quantity": 1,
	})

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", errBody.Code)
}

func TestItems_ListadoConBusqueda(t *testing.T) {
	app := newTestApp(t)
	createItem(t, app, "Café molido", 2)
	createItem(t, app, "Azúcar", 20)

	resp := doJSON(t, app, fiber.MethodGet, "/api/items/?search=cafe", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[dto.ItemListResponse](t, resp)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Café molido", list.Items[0].Name)
	assert.Equal(t, 1, list.Page.Total)
}

func TestItems_Resumen(t *testing.T) {
	app := newTestApp(t)
	createItem(t, app, "Café molido", 2)
	createItem(t, app, "Azúcar", 20)

	resp := doJSON(t, app, fiber.MethodGet, "/api/items/summary", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	sum := decode[dto.StockSummaryResponse](t, resp)
	assert.Equal(t, 2, sum.UniqueItems)
	assert.Equal(t, 22, sum.TotalUnits)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestMovements_RegistroYReversa(t *testing.T) {
	app := newTestApp(t)
	it := createItem(t, app, "Arroz", 10)

	resp := doJSON(t, app, fiber.MethodPost, "/api/items/"+it.ID+"/movements", dto.RecordMovementRequest{
		Type: "entrada", Quantity: 5,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	mov := decode[dto.MovementResponse](t, resp)
	assert.Equal(t, "entrada", mov.Type)

	resp = doJSON(t, app, fiber.MethodGet, "/api/items/"+it.ID, nil)
	got := decode[dto.ItemResponse](t, resp)
	assert.Equal(t, 15, got.Quantity)

	resp = doJSON(t, app, fiber.MethodDelete, "/api/items/"+it.ID+"/movements/"+mov.ID, nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/items/"+it.ID, nil)
	got = decode[dto.ItemResponse](t, resp)
	assert.Equal(t, 10, got.Quantity, "la eliminación revierte el efecto del movimiento")
}

// El 409 de stock insuficiente lleva el saldo disponible en el cuerpo.
func TestMovements_SalidaInsuficienteResponde409(t *testing.T) {
	app := newTestApp(t)
	it := createItem(t, app, "Arroz", 3)

	resp := doJSON(t, app, fiber.MethodPost, "/api/items/"+it.ID+"/movements", dto.RecordMovementRequest{
		Type: "salida", Quantity: 7,
	})

	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", errBody.Code)
	require.NotNil(t, errBody.Available)
	assert.Equal(t, 3, *errBody.Available)

	resp = doJSON(t, app, fiber.MethodGet, "/api/items/"+it.ID, nil)
	got := decode[dto.ItemResponse](t, resp)
	assert.Equal(t, 3, got.Quantity, "el saldo no cambió")
}

func TestMovements_TipoInvalidoResponde400(t *testing.T) {
	app := newTestApp(t)
	it := createItem(t, app, "Arroz", 3)

	resp := doJSON(t, app, fiber.MethodPost, "/api/items/"+it.ID+"/movements", dto.RecordMovementRequest{
		Type: "ajuste", Quantity: 1,
	})

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_TYPE", errBody.Code)
}

func TestMovements_ListadoMasRecientePrimero(t *testing.T) {
	app := newTestApp(t)
	it := createItem(t, app, "Arroz", 50)

	for _, qty := range []int{1, 2, 3} {
		resp := doJSON(t, app, fiber.MethodPost, "/api/items/"+it.ID+"/movements", dto.RecordMovementRequest{
			Type: "salida", Quantity: qty,
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, fiber.MethodGet, "/api/items/"+it.ID+"/movements", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[dto.MovementListResponse](t, resp)
	require.Equal(t, 3, list.Total)
	assert.Equal(t, 3, list.Movements[0].Quantity, "el último registrado va primero")
	assert.Equal(t, 1, list.Movements[2].Quantity)
}

func TestMovements_ItemInexistente(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/items/no-existe/movements", dto.RecordMovementRequest{
		Type: "entrada", Quantity: 1,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Listar el histórico de un ítem sin movimientos no es error.
	resp = doJSON(t, app, fiber.MethodGet, "/api/items/no-existe/movements", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[dto.MovementListResponse](t, resp)
	assert.Zero(t, list.Total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Respaldo
// ──────────────────────────────────────────────────────────────────────────────

func TestBackup_ExportarImportarReset(t *testing.T) {
	app := newTestApp(t)
	it := createItem(t, app, "Yerba mate", 8)
	resp := doJSON(t, app, fiber.MethodPost, "/api/items/"+it.ID+"/movements", dto.RecordMovementRequest{
		Type: "entrada", Quantity: 2,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/backup/export", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	doc := decode[dto.BackupDocument](t, resp)
	require.Len(t, doc.Items, 1)
	require.Len(t, doc.History[it.ID], 1)

	// Importar en una app limpia reproduce el estado.
	other := newTestApp(t)
	resp = doJSON(t, other, fiber.MethodPost, "/api/backup/import", doc)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decode[dto.ImportResultResponse](t, resp)
	assert.Equal(t, 1, result.Items)
	assert.Equal(t, 1, result.Movements)

	resp = doJSON(t, other, fiber.MethodGet, "/api/items/"+it.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, other, fiber.MethodDelete, "/api/backup/", nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, other, fiber.MethodGet, "/api/items/", nil)
	list := decode[dto.ItemListResponse](t, resp)
	assert.Empty(t, list.Items)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestReports_StockPDF(t *testing.T) {
	app := newTestApp(t)
	createItem(t, app, "Café molido", 4)

	resp := doJSON(t, app, fiber.MethodGet, "/api/reports/stock.pdf", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")), "el cuerpo debe ser un PDF")
}

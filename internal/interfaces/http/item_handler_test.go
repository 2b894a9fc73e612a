package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudmoonocus/home-inventory/internal/application/usecase"
	"github.com/cloudmoonocus/home-inventory/internal/domain"
	"github.com/cloudmoonocus/home-inventory/internal/domain/entity"
	"github.com/cloudmoonocus/home-inventory/internal/domain/repository"
	apphttp "github.com/cloudmoonocus/home-inventory/internal/interfaces/http"
	"github.com/cloudmoonocus/home-inventory/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: una app Fiber completa (router real, casos de uso reales)
// sobre repositorios en memoria que imitan la semántica SQL del adaptador.
// ──────────────────────────────────────────────────────────────────────────────

type memItemRepo struct {
	items    map[int64]*entity.Item
	nextID   int64
	clock    time.Time
	failWith error
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: make(map[int64]*entity.Item), nextID: 1, clock: time.Now()}
}

// tick produce timestamps estrictamente crecientes para que el orden sea estable.
func (m *memItemRepo) tick() time.Time {
	m.clock = m.clock.Add(time.Millisecond)
	return m.clock
}

func containsFold(field *string, term string) bool {
	return field != nil && strings.Contains(strings.ToLower(*field), strings.ToLower(term))
}

func (m *memItemRepo) matches(it *entity.Item, f repository.ItemFilter) bool {
	if f.Search != "" {
		name := it.Name
		if !containsFold(&name, f.Search) && !containsFold(it.Location, f.Search) &&
			!containsFold(it.Source, f.Search) && !containsFold(it.Notes, f.Search) {
			return false
		}
	}
	if f.CategoryID != nil && (it.CategoryID == nil || *it.CategoryID != *f.CategoryID) {
		return false
	}
	if f.SizeType.Valid() && it.SizeType != f.SizeType {
		return false
	}
	return true
}

func (m *memItemRepo) List(_ context.Context, f repository.ItemFilter) ([]*entity.Item, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := make([]*entity.Item, 0)
	for _, it := range m.items {
		if m.matches(it, f) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (m *memItemRepo) Create(_ context.Context, item *entity.Item) error {
	if m.failWith != nil {
		return m.failWith
	}
	item.ID = m.nextID
	m.nextID++
	now := m.tick()
	item.CreatedAt = now
	item.UpdatedAt = now
	copied := *item
	m.items[item.ID] = &copied
	return nil
}

func (m *memItemRepo) Update(_ context.Context, item *entity.Item) error {
	if m.failWith != nil {
		return m.failWith
	}
	stored, ok := m.items[item.ID]
	if !ok {
		return domain.ErrNotFound
	}
	item.CreatedAt = stored.CreatedAt
	item.UpdatedAt = m.tick()
	copied := *item
	m.items[item.ID] = &copied
	return nil
}

func (m *memItemRepo) Delete(_ context.Context, id int64) error {
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type memStatsRepo struct {
	items *memItemRepo
}

func (m *memStatsRepo) Totals(context.Context) (repository.InventoryTotals, error) {
	var t repository.InventoryTotals
	for _, it := range m.items.items {
		t.TotalItems++
		t.TotalQuantity += int64(it.Quantity)
		switch it.SizeType {
		case entity.SizeSmall:
			t.SmallItems++
		case entity.SizeLarge:
			t.LargeItems++
		}
	}
	return t, nil
}

func (m *memStatsRepo) CategoryBreakdown(context.Context) ([]repository.CategoryUsage, error) {
	return []repository.CategoryUsage{}, nil
}

func (m *memStatsRepo) RecentItems(_ context.Context, limit int) ([]*entity.Item, error) {
	out, _ := m.items.List(context.Background(), repository.ItemFilter{})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memCategoryRepo struct{ categories []*entity.Category }

func (m *memCategoryRepo) List(context.Context) ([]*entity.Category, error) {
	return m.categories, nil
}

// buildTestApp construye la aplicación con el router real y los fakes en memoria.
func buildTestApp(itemRepo *memItemRepo, catRepo *memCategoryRepo) *fiber.App {
	app := fiber.New()
	log := logger.New(logger.Config{Level: "error"})
	apphttp.Router(app, apphttp.RouterDeps{
		ItemUC:     usecase.NewItemUseCase(itemRepo),
		CategoryUC: usecase.NewCategoryUseCase(catRepo),
		StatsUC:    usecase.NewStatsUseCase(&memStatsRepo{items: itemRepo}),
		Log:        log,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario completo: crear → listar filtrado → borrar → 404 al repetir.
// ──────────────────────────────────────────────────────────────────────────────

func TestItems_CicloDeVidaCompleto(t *testing.T) {
	app := buildTestApp(newMemItemRepo(), &memCategoryRepo{})

	// POST con solo los campos requeridos → 201 con defaults del servidor
	resp := doJSON(t, app, http.MethodPost, "/api/items", fiber.Map{
		"name": "电饭煲", "size_type": "small",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	decodeBody(t, resp, &created)
	assert.Equal(t, float64(1), created["quantity"], "quantity ausente debe quedar en 1")
	assert.Nil(t, created["category_id"], "category_id ausente debe quedar en null")
	id := int(created["id"].(float64))

	// GET filtrado por size_type=small lo incluye
	resp = doJSON(t, app, http.MethodGet, "/api/items?size_type=small", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var listed []map[string]any
	decodeBody(t, resp, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, "电饭煲", listed[0]["name"])

	// DELETE → 200 {success:true}
	resp = doJSON(t, app, http.MethodDelete, "/api/items/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var ack map[string]any
	decodeBody(t, resp, &ack)
	assert.Equal(t, true, ack["success"])

	// El listado ya no lo incluye
	resp = doJSON(t, app, http.MethodGet, "/api/items", nil)
	decodeBody(t, resp, &listed)
	assert.Empty(t, listed)

	// Segundo DELETE del mismo ID → 404
	resp = doJSON(t, app, http.MethodDelete, "/api/items/1", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "id %d ya fue borrado", id)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación y códigos de estado.
// ──────────────────────────────────────────────────────────────────────────────

func TestItems_CrearSinNombreRetorna400(t *testing.T) {
	app := buildTestApp(newMemItemRepo(), &memCategoryRepo{})

	resp := doJSON(t, app, http.MethodPost, "/api/items", fiber.Map{
		"name": "", "size_type": "small",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "名称和物品规格为必填项", body["error"],
		"el cuerpo de error es {error: mensaje localizado}")
}

func TestItems_CrearSinSizeTypeRetorna400(t *testing.T) {
	app := buildTestApp(newMemItemRepo(), &memCategoryRepo{})

	resp := doJSON(t, app, http.MethodPost, "/api/items", fiber.Map{"name": "电饭煲"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestItems_ActualizarIDInexistenteRetorna404(t *testing.T) {
	app := buildTestApp(newMemItemRepo(), &memCategoryRepo{})

	resp := doJSON(t, app, http.MethodPut, "/api/items/999", fiber.Map{
		"name": "电饭煲", "size_type": "small",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "物品不存在", body["error"])
}

func TestItems_IDNoNumericoRetorna404(t *testing.T) {
	app := buildTestApp(newMemItemRepo(), &memCategoryRepo{})

	resp := doJSON(t, app, http.MethodPut, "/api/items/abc", fiber.Map{
		"name": "电饭煲", "size_type": "small",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"un id no numérico no corresponde a ninguna fila")
}

func TestItems_FiltrosInvalidosSeIgnoran(t *testing.T) {
	app := buildTestApp(newMemItemRepo(), &memCategoryRepo{})

	resp := doJSON(t, app, http.MethodPost, "/api/items", fiber.Map{
		"name": "沙发", "size_type": "large",
	})
	resp.Body.Close()

	// category no numérica y size_type fuera de enum: ambos se descartan,
	// el listado responde 200 con todo
	resp = doJSON(t, app, http.MethodGet, "/api/items?category=abc&size_type=huge", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var listed []map[string]any
	decodeBody(t, resp, &listed)
	assert.Len(t, listed, 1)
}

func TestItems_BusquedaSinDistinguirMayusculas(t *testing.T) {
	app := buildTestApp(newMemItemRepo(), &memCategoryRepo{})

	resp := doJSON(t, app, http.MethodPost, "/api/items", fiber.Map{
		"name": "Rice Cooker", "size_type": "small", "location": "厨房",
	})
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/items?search=rice", nil)
	var listed []map[string]any
	decodeBody(t, resp, &listed)
	require.Len(t, listed, 1, "la búsqueda no distingue mayúsculas")

	resp = doJSON(t, app, http.MethodGet, "/api/items?search=厨房", nil)
	decodeBody(t, resp, &listed)
	require.Len(t, listed, 1, "la búsqueda también cubre location")

	resp = doJSON(t, app, http.MethodGet, "/api/items?search=noexiste", nil)
	decodeBody(t, resp, &listed)
	assert.Empty(t, listed)
}

// El listado sin filtros viene ordenado por updated_at descendente.
func TestItems_OrdenPorActualizacionDescendente(t *testing.T) {
	app := buildTestApp(newMemItemRepo(), &memCategoryRepo{})

	for _, name := range []string{"первый", "second", "第三"} {
		resp := doJSON(t, app, http.MethodPost, "/api/items", fiber.Map{
			"name": name, "size_type": "small",
		})
		resp.Body.Close()
	}
	// Tocar el primero: debe subir al frente del listado
	resp := doJSON(t, app, http.MethodPut, "/api/items/1", fiber.Map{
		"name": "первый", "size_type": "large",
	})
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/items", nil)
	var listed []map[string]any
	decodeBody(t, resp, &listed)
	require.Len(t, listed, 3)
	assert.Equal(t, "первый", listed[0]["name"])
	assert.Equal(t, "第三", listed[1]["name"])
	assert.Equal(t, "second", listed[2]["name"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores del almacén: 500 con mensaje genérico, sin detalle interno.
// ──────────────────────────────────────────────────────────────────────────────

func TestItems_ErrorDelAlmacenNoFiltraDetalle(t *testing.T) {
	repo := newMemItemRepo()
	repo.failWith = errors.New("pq: connection refused on 10.0.0.5:5432")
	app := buildTestApp(repo, &memCategoryRepo{})

	resp := doJSON(t, app, http.MethodGet, "/api/items", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(raw), "获取物品失败")
	assert.NotContains(t, string(raw), "connection refused",
		"el texto del driver nunca debe llegar al cliente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Stats y categorías.
// ──────────────────────────────────────────────────────────────────────────────

func TestStats_InventarioVacio(t *testing.T) {
	app := buildTestApp(newMemItemRepo(), &memCategoryRepo{})

	resp := doJSON(t, app, http.MethodGet, "/api/stats", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, float64(0), body["totalItems"])
	assert.Equal(t, float64(0), body["totalQuantity"], "la suma debe ser 0, no null")
	assert.Equal(t, float64(0), body["smallItems"])
	assert.Equal(t, float64(0), body["largeItems"])
	assert.NotContains(t, string(raw), `"categoryBreakdown":null`,
		"los arreglos vacíos se serializan como []")
	assert.NotContains(t, string(raw), `"recentItems":null`)
}

func TestStats_ConteosPorTamano(t *testing.T) {
	app := buildTestApp(newMemItemRepo(), &memCategoryRepo{})

	for i := 0; i < 2; i++ {
		resp := doJSON(t, app, http.MethodPost, "/api/items", fiber.Map{
			"name": "小物件", "size_type": "small",
		})
		resp.Body.Close()
	}
	resp := doJSON(t, app, http.MethodPost, "/api/items", fiber.Map{
		"name": "沙发", "size_type": "large", "quantity": 2,
	})
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/stats", nil)
	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, float64(2), body["smallItems"])
	assert.Equal(t, float64(1), body["largeItems"])
	assert.Equal(t, float64(3), body["totalItems"])
	assert.Equal(t, float64(4), body["totalQuantity"])
}

func TestCategories_ListadoConEtiquetas(t *testing.T) {
	app := buildTestApp(newMemItemRepo(), &memCategoryRepo{
		categories: []*entity.Category{
			{ID: 1, Name: "books", Icon: "BookOpen", CreatedAt: time.Now()},
			{ID: 2, Name: "electronics", Icon: "Monitor", CreatedAt: time.Now()},
		},
	})

	resp := doJSON(t, app, http.MethodGet, "/api/categories", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var listed []map[string]any
	decodeBody(t, resp, &listed)
	require.Len(t, listed, 2)
	assert.Equal(t, "books", listed[0]["name"])
	assert.Equal(t, "书籍", listed[0]["display_name"])
	assert.Equal(t, "电子产品", listed[1]["display_name"])
}

package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkonpro/estimator/internal/domain/catalog"
	"github.com/balkonpro/estimator/internal/domain/materials"
)

type fakeStore struct {
	items map[string]*materials.Material
}

func (f *fakeStore) GetByID(_ context.Context, id string) (*materials.Material, error) {
	m, ok := f.items[id]
	if !ok {
		return nil, materials.ErrNotFound
	}
	return m, nil
}

func (f *fakeStore) ListByCategory(_ context.Context, tag string, page, pageSize int) ([]materials.Material, int, error) {
	var all []materials.Material
	for _, m := range f.items {
		for _, c := range m.Categories {
			if c == tag {
				all = append(all, *m)
				break
			}
		}
	}
	if page > 1 {
		return nil, len(all), nil
	}
	return all, len(all), nil
}

func (f *fakeStore) Create(_ context.Context, m *materials.Material) (*materials.Material, error) {
	if m.ID == "" {
		m.ID = "generated"
	}
	f.items[m.ID] = m
	return m, nil
}

func (f *fakeStore) Update(_ context.Context, m *materials.Material) (*materials.Material, error) {
	if _, ok := f.items[m.ID]; !ok {
		return nil, materials.ErrNotFound
	}
	f.items[m.ID] = m
	return m, nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return materials.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func newMaterialsMux(store *fakeStore) *http.ServeMux {
	log := slog.New(slog.DiscardHandler)
	svc := catalog.NewService(store, catalog.NewCache(time.Minute), log)
	h := NewMaterialsHandler(svc, log)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/materials", h.Create)
	mux.HandleFunc("GET /api/materials", h.List)
	mux.HandleFunc("GET /api/materials/{id}", h.Get)
	mux.HandleFunc("PUT /api/materials/{id}", h.Update)
	mux.HandleFunc("DELETE /api/materials/{id}", h.Delete)
	return mux
}

func TestMaterialsCRUD(t *testing.T) {
	store := &fakeStore{items: map[string]*materials.Material{}}
	mux := newMaterialsMux(store)

	body := `{
		"name": "Панель ПВХ",
		"categories": ["Главная стена:Отделка"],
		"price": 350,
		"unit": "шт.",
		"dimensions": {"length": 600, "width": 300}
	}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/materials", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created materials.Material
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/materials/"+created.ID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/materials/"+created.ID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/materials/"+created.ID, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMaterialsCreateRejectsInvalid(t *testing.T) {
	mux := newMaterialsMux(&fakeStore{items: map[string]*materials.Material{}})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/materials",
		strings.NewReader(`{"name": "Клей", "categories": ["безколона"], "price": 10, "unit": "шт."}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMaterialsListRequiresValidCategory(t *testing.T) {
	mux := newMaterialsMux(&fakeStore{items: map[string]*materials.Material{}})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/materials?category=безколона", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMaterialsListPaginatedEnvelope(t *testing.T) {
	store := &fakeStore{items: map[string]*materials.Material{
		"a": {ID: "a", Name: "Лага", Categories: []string{"Пол:Скрытые"}, Price: 10, Unit: "шт."},
	}}
	mux := newMaterialsMux(store)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/materials?category="+"Пол:Скрытые", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp PaginatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalRows)
	assert.Equal(t, 1, resp.TotalPages)
	assert.Equal(t, 1, resp.CurrentPage)
}

package catalog

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkonpro/estimator/internal/domain/materials"
)

type fakeStore struct {
	items     []materials.Material
	err       error
	errOnPage int
	pageCalls int
}

func (f *fakeStore) GetByID(_ context.Context, id string) (*materials.Material, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, materials.ErrNotFound
}

func (f *fakeStore) ListByCategory(_ context.Context, _ string, page, pageSize int) ([]materials.Material, int, error) {
	f.pageCalls++
	if f.err != nil && (f.errOnPage == 0 || f.errOnPage == page) {
		return nil, 0, f.err
	}
	start := (page - 1) * pageSize
	if start >= len(f.items) {
		return nil, len(f.items), nil
	}
	end := start + pageSize
	if end > len(f.items) {
		end = len(f.items)
	}
	return f.items[start:end], len(f.items), nil
}

func (f *fakeStore) Create(_ context.Context, m *materials.Material) (*materials.Material, error) {
	f.items = append(f.items, *m)
	return m, nil
}

func (f *fakeStore) Update(_ context.Context, m *materials.Material) (*materials.Material, error) {
	return m, nil
}

func (f *fakeStore) Delete(_ context.Context, _ string) error { return nil }

func mats(n int) []materials.Material {
	out := make([]materials.Material, n)
	for i := range out {
		out[i] = materials.Material{
			ID:         string(rune('a' + i)),
			Name:       "Материал",
			Categories: []string{"Пол:Скрытые"},
			Price:      10,
			Unit:       "шт.",
		}
	}
	return out
}

func newTestService(store Store, ttl time.Duration) *Service {
	s := NewService(store, NewCache(ttl), slog.New(slog.DiscardHandler))
	s.pageSize = 2
	return s
}

func TestAllByCategoryStopsAtShortPage(t *testing.T) {
	store := &fakeStore{items: mats(3)}
	s := newTestService(store, time.Minute)

	all, err := s.AllByCategory(context.Background(), "Пол:Скрытые")
	require.NoError(t, err)
	assert.Len(t, all, 3)
	// Страница из 2 и страница из 1: короткая страница останавливает цикл.
	assert.Equal(t, 2, store.pageCalls)
}

func TestAllByCategoryExactPageBoundary(t *testing.T) {
	store := &fakeStore{items: mats(2)}
	s := newTestService(store, time.Minute)

	all, err := s.AllByCategory(context.Background(), "Пол:Скрытые")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	// Полная страница, затем пустая: ровно два запроса.
	assert.Equal(t, 2, store.pageCalls)
}

func TestAllByCategoryAbortsOnError(t *testing.T) {
	store := &fakeStore{items: mats(4), err: errors.New("boom"), errOnPage: 2}
	s := newTestService(store, time.Minute)

	_, err := s.AllByCategory(context.Background(), "Пол:Скрытые")
	require.Error(t, err)

	// Частичный результат не закэширован: повторный вызов снова идёт
	// в хранилище с первой страницы.
	store.err = nil
	all, err := s.AllByCategory(context.Background(), "Пол:Скрытые")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestAllByCategoryUsesCache(t *testing.T) {
	store := &fakeStore{items: mats(1)}
	s := newTestService(store, time.Minute)

	_, err := s.AllByCategory(context.Background(), "Пол:Скрытые")
	require.NoError(t, err)
	calls := store.pageCalls

	_, err = s.AllByCategory(context.Background(), "Пол:Скрытые")
	require.NoError(t, err)
	assert.Equal(t, calls, store.pageCalls, "второй вызов должен идти из кэша")
}

func TestWritesInvalidateCache(t *testing.T) {
	store := &fakeStore{items: mats(1)}
	s := newTestService(store, time.Minute)

	_, err := s.AllByCategory(context.Background(), "Пол:Скрытые")
	require.NoError(t, err)

	_, err = s.CreateMaterial(context.Background(), &materials.Material{
		Name:       "Новый",
		Categories: []string{"Пол:Скрытые"},
		Price:      5,
		Unit:       "шт.",
	})
	require.NoError(t, err)

	all, err := s.AllByCategory(context.Background(), "Пол:Скрытые")
	require.NoError(t, err)
	assert.Len(t, all, 2, "после записи кэш сброшен и виден новый материал")
}

func TestWriteValidationStillInvalidates(t *testing.T) {
	store := &fakeStore{items: mats(1)}
	s := newTestService(store, time.Minute)

	_, err := s.AllByCategory(context.Background(), "Пол:Скрытые")
	require.NoError(t, err)
	calls := store.pageCalls

	_, err = s.CreateMaterial(context.Background(), &materials.Material{Name: ""})
	require.Error(t, err)

	_, err = s.AllByCategory(context.Background(), "Пол:Скрытые")
	require.NoError(t, err)
	assert.Greater(t, store.pageCalls, calls)
}

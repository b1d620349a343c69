package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/balkonpro/estimator/internal/domain/materials"
)

const defaultPageSize = 50

// Store операции хранилища, от которых зависит каталог.
type Store interface {
	GetByID(ctx context.Context, id string) (*materials.Material, error)
	ListByCategory(ctx context.Context, tag string, page, pageSize int) ([]materials.Material, int, error)
	Create(ctx context.Context, m *materials.Material) (*materials.Material, error)
	Update(ctx context.Context, m *materials.Material) (*materials.Material, error)
	Delete(ctx context.Context, id string) error
}

// Service слой каталога, который потребляет движок расчёта: точечный
// поиск материала и полная выборка категории поверх постраничного
// хранилища, с кэшем списков.
type Service struct {
	store    Store
	cache    *Cache
	log      *slog.Logger
	pageSize int
}

func NewService(store Store, cache *Cache, log *slog.Logger) *Service {
	return &Service{store: store, cache: cache, log: log, pageSize: defaultPageSize}
}

func (s *Service) Material(ctx context.Context, id string) (*materials.Material, error) {
	return s.store.GetByID(ctx, id)
}

// AllByCategory выбирает ВСЕ материалы категории, листая страницы, пока
// страница не окажется короче запрошенной. Ошибка любой страницы
// прерывает выборку целиком: частичного списка не бывает.
func (s *Service) AllByCategory(ctx context.Context, tag string) ([]materials.Material, error) {
	if items, ok := s.cache.Get(tag); ok {
		return items, nil
	}

	var all []materials.Material
	for page := 1; ; page++ {
		items, _, err := s.store.ListByCategory(ctx, tag, page, s.pageSize)
		if err != nil {
			return nil, fmt.Errorf("list category %q page %d: %w", tag, page, err)
		}
		all = append(all, items...)
		if len(items) < s.pageSize {
			break
		}
	}

	s.cache.Put(tag, all)
	return all, nil
}

func (s *Service) ListByCategory(ctx context.Context, tag string, page, pageSize int) ([]materials.Material, int, error) {
	if pageSize <= 0 || pageSize > defaultPageSize*2 {
		pageSize = s.pageSize
	}
	return s.store.ListByCategory(ctx, tag, page, pageSize)
}

/* Записи: каждая безусловно сбрасывает кэш перед возвратом. */

func (s *Service) CreateMaterial(ctx context.Context, m *materials.Material) (*materials.Material, error) {
	defer s.cache.Invalidate()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return s.store.Create(ctx, m)
}

func (s *Service) UpdateMaterial(ctx context.Context, m *materials.Material) (*materials.Material, error) {
	defer s.cache.Invalidate()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return s.store.Update(ctx, m)
}

func (s *Service) DeleteMaterial(ctx context.Context, id string) error {
	defer s.cache.Invalidate()
	return s.store.Delete(ctx, id)
}

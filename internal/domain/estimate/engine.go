package estimate

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/balkonpro/estimator/internal/domain/materials"
)

// Catalog то, что движку нужно от каталога материалов.
type Catalog interface {
	Material(ctx context.Context, id string) (*materials.Material, error)
	AllByCategory(ctx context.Context, tag string) ([]materials.Material, error)
}

// Engine движок расчёта сметы: чистая диспетчеризация по вкладке.
// Состояния между запросами нет, каждый вызов Compute независим.
type Engine struct {
	catalog Catalog
	log     *slog.Logger
}

func New(catalog Catalog, log *slog.Logger) *Engine {
	return &Engine{catalog: catalog, log: log}
}

const (
	errUnsupportedTab = "неподдерживаемая вкладка"
	errBadForm        = "некорректные данные формы"
	errCatalog        = "ошибка каталога материалов"
)

// Compute считает смету вкладки. Никогда не возвращает ошибку наружу:
// любой сбой превращается в {success:false, error}.
func (e *Engine) Compute(ctx context.Context, tabName string, data json.RawMessage) Result {
	tab, ok := ParseTab(tabName)
	if !ok {
		return fail(errUnsupportedTab + ": " + tabName)
	}

	switch tab {
	case TabMainWall, TabFacadeWall, TabBlockWall, TabBlock, TabCeiling, TabFloor:
		return e.computeSurface(ctx, tab, data)
	case TabMoveIn:
		return e.computeMoveIn(ctx, data)
	case TabGlazing:
		return e.computeGlazing(ctx, data)
	case TabElectrical:
		return e.computeElectrical(ctx, data)
	case TabFurniture:
		return e.computeFurniture(ctx, data)
	case TabExtra:
		return e.computeExtra(ctx, data)
	}
	return fail(errUnsupportedTab + ": " + tabName)
}

// resolveRef разворачивает составной ключ в материал каталога.
func (e *Engine) resolveRef(ctx context.Context, key string) (*materials.Material, error) {
	ref, err := materials.ParseRef(key)
	if err != nil {
		return nil, err
	}
	return e.catalog.Material(ctx, ref.MaterialID)
}

// skipped секундарный материал выпал из сметы: предупреждение, не сбой.
func (e *Engine) skipped(reason, detail string) {
	e.log.Warn("material skipped", "reason", reason, "detail", detail)
}

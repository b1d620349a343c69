package estimate

import (
	"context"
	"encoding/json"
)

const (
	catMoveInSheets    = NameMoveIn + ":Листы"
	catMoveInFasteners = NameMoveIn + ":Крепёж"
	catMoveInTiling    = NameMoveIn + ":Плитка"
)

// computeMoveIn вкладка "На заезд": три переключателя, каждый тянет
// свою категорию целиком. Количество берётся из каталожного остатка
// материала, не из геометрии.
func (e *Engine) computeMoveIn(ctx context.Context, data json.RawMessage) Result {
	var f MoveInForm
	if err := json.Unmarshal(data, &f); err != nil {
		return fail(errBadForm)
	}

	var b bill
	toggles := []struct {
		value string
		tag   string
	}{
		{f.Sheets, catMoveInSheets},
		{f.Fasteners, catMoveInFasteners},
		{f.Tiling, catMoveInTiling},
	}
	for _, t := range toggles {
		if t.value != yes {
			continue
		}
		if ok := e.addCategoryAtStock(ctx, t.tag, &b); !ok {
			return fail(errCatalog)
		}
	}

	e.applyExtras(ctx, f.ExtraMaterials, &b)
	return b.result()
}

// addCategoryAtStock добавляет все материалы категории по их
// каталожному количеству (минимум 1). Возвращает false при сбое
// выборки каталога.
func (e *Engine) addCategoryAtStock(ctx context.Context, tag string, b *bill) bool {
	items, err := e.catalog.AllByCategory(ctx, tag)
	if err != nil {
		return false
	}
	for _, m := range items {
		if !m.HasPricing() {
			e.skipped("missing price/unit", m.Name)
			continue
		}
		q := m.Quantity
		if q <= 0 {
			q = 1
		}
		b.add(LineItem{
			Material: m.Name,
			Quantity: qty2(q),
			Unit:     m.Unit,
			Cost:     money(q * m.Price),
			Hidden:   false,
		}, q*m.Price, m.IsHidden)
	}
	return true
}

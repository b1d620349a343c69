package estimate

import (
	"context"
	"encoding/json"
)

const (
	catFurniturePaint      = NameFurniture + ":Покраска"
	catFurnitureStove      = NameFurniture + ":Плита"
	catFurnitureCountertop = NameFurniture + ":Столешница"
)

// computeFurniture вкладка "Мебель": три штучных материала, покраска
// по фиксированной категории и два переключателя категориями целиком.
func (e *Engine) computeFurniture(ctx context.Context, data json.RawMessage) Result {
	var f FurnitureForm
	if err := json.Unmarshal(data, &f); err != nil {
		return fail(errBadForm)
	}

	var b bill
	pairs := []struct {
		key string
		qty Number
	}{
		{f.BodyMaterial, f.BodyQuantity},
		{f.TopShelfMaterial, f.TopShelfQuantity},
		{f.BottomShelfMaterial, f.BottomShelfQuantity},
	}
	for _, p := range pairs {
		e.addFixedItem(ctx, p.key, p.qty, &b)
	}

	if f.FurniturePainting == yes {
		paints, err := e.catalog.AllByCategory(ctx, catFurniturePaint)
		if err != nil {
			return fail(errCatalog)
		}
		for _, m := range paints {
			if !m.HasPricing() {
				e.skipped("missing price/unit", m.Name)
				continue
			}
			b.add(LineItem{
				Material: m.Name,
				Quantity: qty2(1),
				Unit:     m.Unit,
				Cost:     money(m.Price),
				Hidden:   false,
			}, m.Price, m.IsHidden)
		}
	}

	toggles := []struct {
		value string
		tag   string
	}{
		{f.StoveSide, catFurnitureStove},
		{f.Countertop, catFurnitureCountertop},
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

package estimate

import (
	"context"
	"encoding/json"
	"slices"
)

const catWindow = NameGlazing + ":Окно"

// WindowVariants допустимые типы окна. Значение windowType — простая
// строка варианта, а не составной ключ: материал ищется по имени в
// категории "Остекление:Окно".
var WindowVariants = []string{
	"ПВХ",
	"Алюминий холодный",
	"Алюминий тёплый",
	"Дерево",
	"Безрамное",
}

// computeGlazing вкладка "Остекление": тип окна с количеством, его
// скрытые материалы по варианту и до семи штучных опций по единице.
func (e *Engine) computeGlazing(ctx context.Context, data json.RawMessage) Result {
	var f GlazingForm
	if err := json.Unmarshal(data, &f); err != nil {
		return fail(errBadForm)
	}
	if !slices.Contains(WindowVariants, f.WindowType) {
		return fail("неизвестный тип окна: " + f.WindowType)
	}
	if !f.WindowQuantity.positive() {
		return fail("количество окон должно быть положительным числом")
	}
	windowQty := float64(f.WindowQuantity)

	// Тип окна — первичный материал: ищем по имени среди всех окон.
	windows, err := e.catalog.AllByCategory(ctx, catWindow)
	if err != nil {
		return fail(errCatalog)
	}
	var b bill
	var found bool
	for _, m := range windows {
		if m.Name != f.WindowType {
			continue
		}
		if !m.HasPricing() {
			return fail("у материала окна не заданы цена или единица измерения")
		}
		b.add(LineItem{
			Material: m.Name,
			Quantity: windowQty,
			Unit:     m.Unit,
			Cost:     money(windowQty * m.Price),
			Hidden:   false,
		}, windowQty*m.Price, m.IsHidden)
		found = true
		break
	}
	if !found {
		return fail("материал для типа окна не найден: " + f.WindowType)
	}

	// Скрытые материалы конкретного варианта окна, по окну на штуку.
	variantHidden, err := e.catalog.AllByCategory(ctx, catWindow+":"+f.WindowType+":"+subHidden)
	if err != nil {
		return fail(errCatalog)
	}
	for _, m := range variantHidden {
		if !m.HasPricing() {
			e.skipped("missing price/unit", m.Name)
			continue
		}
		b.add(LineItem{
			Material: m.Name,
			Quantity: qty2(windowQty),
			Unit:     m.Unit,
			Cost:     money(windowQty * m.Price),
			Hidden:   true,
		}, windowQty*m.Price, m.IsHidden)
	}

	// Опции в объявленном порядке, по одной единице каждая.
	options := []string{
		f.Frame,
		f.ExteriorFinish,
		f.BlockReplacement,
		f.Slopes,
		f.WindowSill,
		f.Roof,
		f.WhatToDo,
	}
	for _, opt := range options {
		if opt == "" || opt == "no" {
			continue
		}
		m, err := e.resolveRef(ctx, opt)
		if err != nil {
			e.skipped("option material not found", opt)
			continue
		}
		if !m.HasPricing() {
			e.skipped("missing price/unit", m.Name)
			continue
		}
		b.add(LineItem{
			Material: m.Name,
			Quantity: 1.0,
			Unit:     m.Unit,
			Cost:     money(m.Price),
			Hidden:   false,
		}, m.Price, m.IsHidden)
	}

	e.applyExtras(ctx, f.ExtraMaterials, &b)
	return b.result()
}

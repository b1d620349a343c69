package estimate

import (
	"context"
	"encoding/json"
)

// applyExtras накладывает свободный список дополнительных материалов
// на смету. Невалидные записи и несуществующие материалы молча
// выпадают (с предупреждением) — сбой одной позиции никогда не валит
// весь расчёт. Материалы с каталожным isHidden учитываются в итоге,
// но в видимый список не попадают.
func (e *Engine) applyExtras(ctx context.Context, extras []ExtraItem, b *bill) {
	for _, it := range extras {
		if it.MaterialKey == "" || !it.Quantity.positive() {
			e.skipped("invalid extra entry", it.MaterialKey)
			continue
		}
		m, err := e.resolveRef(ctx, it.MaterialKey)
		if err != nil {
			e.skipped("extra material not found", it.MaterialKey)
			continue
		}
		if !m.HasPricing() {
			e.skipped("missing price/unit", m.Name)
			continue
		}
		q := float64(it.Quantity)
		b.add(LineItem{
			Material: m.Name,
			Quantity: qty2(q),
			Unit:     m.Unit,
			Cost:     money(q * m.Price),
			Hidden:   false,
		}, q*m.Price, m.IsHidden)
	}
}

// computeExtra вкладка "Доп. параметр": только свободный список,
// и он обязан быть непустым.
func (e *Engine) computeExtra(ctx context.Context, data json.RawMessage) Result {
	var f ExtraForm
	if err := json.Unmarshal(data, &f); err != nil {
		return fail(errBadForm)
	}
	if len(f.ExtraMaterials) == 0 {
		return fail("список дополнительных материалов пуст")
	}
	var b bill
	e.applyExtras(ctx, f.ExtraMaterials, &b)
	return b.result()
}

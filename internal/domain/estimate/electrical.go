package estimate

import (
	"context"
	"encoding/json"
)

// computeElectrical вкладка "Электрика": четыре пары (материал,
// количество) без вывода количества из геометрии. Отсутствующая или
// не найденная позиция пропускается, не валя расчёт.
func (e *Engine) computeElectrical(ctx context.Context, data json.RawMessage) Result {
	var f ElectricalForm
	if err := json.Unmarshal(data, &f); err != nil {
		return fail(errBadForm)
	}

	var b bill
	pairs := []struct {
		key string
		qty Number
	}{
		{f.CableType, f.CableQuantity},
		{f.SwitchType, f.SwitchQuantity},
		{f.SocketType, f.SocketQuantity},
		{f.SpotType, f.SpotQuantity},
	}
	for _, p := range pairs {
		e.addFixedItem(ctx, p.key, p.qty, &b)
	}

	e.applyExtras(ctx, f.ExtraMaterials, &b)
	return b.result()
}

// addFixedItem штучная позиция: количество задано пользователем,
// стоимость = количество × цена. Пустой ключ или неположительное
// количество — просто пропуск.
func (e *Engine) addFixedItem(ctx context.Context, key string, qty Number, b *bill) {
	if key == "" || key == "no" || !qty.positive() {
		return
	}
	m, err := e.resolveRef(ctx, key)
	if err != nil {
		e.skipped("material not found", key)
		return
	}
	if !m.HasPricing() {
		e.skipped("missing price/unit", m.Name)
		return
	}
	q := float64(qty)
	b.add(LineItem{
		Material: m.Name,
		Quantity: q,
		Unit:     m.Unit,
		Cost:     money(q * m.Price),
		Hidden:   false,
	}, q*m.Price, m.IsHidden)
}

package estimate

import (
	"context"
	"encoding/json"
)

// computeSurface смета стен, потолка и пола: видимая отделка по
// площади, скрытая обрешётка по погонной формуле, опциональные
// утеплитель и покраска. Для стен width — это высота помещения.
func (e *Engine) computeSurface(ctx context.Context, tab TabKind, data json.RawMessage) Result {
	var f SurfaceForm
	if err := json.Unmarshal(data, &f); err != nil {
		return fail(errBadForm)
	}
	if !f.Length.positive() || !f.Width.positive() {
		return fail("длина и ширина должны быть положительными числами")
	}
	length, width := float64(f.Length), float64(f.Width)

	// 1) Видимая отделка: обязательна и должна быть полноценной.
	if f.FinishType == "" {
		return fail("не выбран материал отделки")
	}
	finish, err := e.resolveRef(ctx, f.FinishType)
	if err != nil {
		return fail("материал отделки не найден")
	}
	if !finish.HasPricing() {
		return fail("у материала отделки не заданы цена или единица измерения")
	}
	units, err := coverageUnits(length, width, finish.Dims)
	if err != nil {
		return fail("у материала отделки некорректные габариты")
	}

	var b bill
	b.add(LineItem{
		Material: finish.Name,
		Quantity: units,
		Unit:     finish.Unit,
		Cost:     money(units * finish.Price),
		Hidden:   false,
	}, units*finish.Price, finish.IsHidden)

	// 2) Скрытые материалы вкладки: обрешётка и крепёж по погонной
	// формуле. Попадают в выдачу с hidden:true.
	hidden, err := e.catalog.AllByCategory(ctx, tab.hiddenCategory())
	if err != nil {
		return fail(errCatalog)
	}
	for _, m := range hidden {
		if !m.HasPricing() {
			e.skipped("missing price/unit", m.Name)
			continue
		}
		railLen := 0.0
		if m.Dims != nil {
			railLen = m.Dims.Length
		}
		if railLen <= 0 {
			e.log.Warn("hidden material has no length, using default", "material", m.Name, "default_mm", defaultRailLengthMM)
		}
		q := railUnits(length, width, railLen)
		b.add(LineItem{
			Material: m.Name,
			Quantity: qty2(q),
			Unit:     m.Unit,
			Cost:     money(q * m.Price),
			Hidden:   true,
		}, q*m.Price, m.IsHidden)
	}

	// 3) Утеплитель: секундарный, пропуски не фатальны.
	if f.InsulationType != "" && f.InsulationType != "no" {
		ins, err := e.resolveRef(ctx, f.InsulationType)
		switch {
		case err != nil:
			e.skipped("insulation not found", f.InsulationType)
		case !ins.HasPricing():
			e.skipped("missing price/unit", ins.Name)
		default:
			q := insulationUnits(length, width, ins.Dims)
			b.add(LineItem{
				Material: ins.Name,
				Quantity: qty2(q),
				Unit:     ins.Unit,
				Cost:     money(q * ins.Price),
				Hidden:   false,
			}, q*ins.Price, ins.IsHidden)
		}
	}

	// 4) Покраска: у пола шага нет вовсе.
	if tag := tab.paintCategory(); tag != "" && e.paintingRequested(tab, f) {
		paints, err := e.catalog.AllByCategory(ctx, tag)
		if err != nil {
			return fail(errCatalog)
		}
		roomArea := areaM2(length, width)
		for _, m := range paints {
			if !m.HasPricing() {
				e.skipped("missing price/unit", m.Name)
				continue
			}
			q := paintUnits(roomArea)
			b.add(LineItem{
				Material: m.Name,
				Quantity: qty2(q),
				Unit:     m.Unit,
				Cost:     money(q * m.Price),
				Hidden:   false,
			}, q*m.Price, m.IsHidden)
		}
	}

	e.applyExtras(ctx, f.ExtraMaterials, &b)
	return b.result()
}

func (e *Engine) paintingRequested(tab TabKind, f SurfaceForm) bool {
	if tab == TabCeiling {
		return f.CeilingPainting == yes
	}
	return f.WallPainting == yes
}

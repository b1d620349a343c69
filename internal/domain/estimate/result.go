package estimate

import "strconv"

// LineItem строка сметы. Quantity — строка с двумя знаками после
// запятой для производных количеств и число для штучных позиций.
// Hidden помечает подразумеваемые компоненты (обрешётку, крепёж):
// такие строки остаются в выдаче, но группируются отдельно.
type LineItem struct {
	Material string `json:"material"`
	Quantity any    `json:"quantity"`
	Unit     string `json:"unit"`
	Cost     string `json:"cost"`
	Hidden   bool   `json:"hidden"`
}

type Result struct {
	Success   bool       `json:"success"`
	Results   []LineItem `json:"results,omitempty"`
	TotalCost string     `json:"totalCost,omitempty"`
	Error     string     `json:"error,omitempty"`
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func qty2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func fail(msg string) Result {
	return Result{Success: false, Error: msg}
}

// bill аккумулятор строк и итога в пределах одного расчёта.
// Материалы с каталожным флагом isHidden попадают только в итог.
type bill struct {
	items []LineItem
	total float64
}

func (b *bill) add(li LineItem, cost float64, catalogHidden bool) {
	b.total += cost
	if !catalogHidden {
		b.items = append(b.items, li)
	}
}

func (b *bill) result() Result {
	items := b.items
	if items == nil {
		items = []LineItem{}
	}
	return Result{Success: true, Results: items, TotalCost: money(b.total)}
}

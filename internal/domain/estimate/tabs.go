package estimate

// TabKind закрытое перечисление вкладок (участков помещения).
// Русские названия — это и есть протокольные значения tabName.
type TabKind int

const (
	TabMainWall TabKind = iota
	TabFacadeWall
	TabBlockWall
	TabBlock
	TabCeiling
	TabFloor
	TabMoveIn
	TabGlazing
	TabElectrical
	TabFurniture
	TabExtra
)

const (
	NameMainWall   = "Главная стена"
	NameFacadeWall = "Фасадная стена"
	NameBlockWall  = "Стена балконного блока"
	NameBlock      = "Балконный блок"
	NameCeiling    = "Потолок"
	NameFloor      = "Пол"
	NameMoveIn     = "На заезд"
	NameGlazing    = "Остекление"
	NameElectrical = "Электрика"
	NameFurniture  = "Мебель"
	NameExtra      = "Доп. параметр"
)

var tabNames = map[string]TabKind{
	NameMainWall:   TabMainWall,
	NameFacadeWall: TabFacadeWall,
	NameBlockWall:  TabBlockWall,
	NameBlock:      TabBlock,
	NameCeiling:    TabCeiling,
	NameFloor:      TabFloor,
	NameMoveIn:     TabMoveIn,
	NameGlazing:    TabGlazing,
	NameElectrical: TabElectrical,
	NameFurniture:  TabFurniture,
	NameExtra:      TabExtra,
}

func ParseTab(name string) (TabKind, bool) {
	t, ok := tabNames[name]
	return t, ok
}

func (t TabKind) Label() string {
	switch t {
	case TabMainWall:
		return NameMainWall
	case TabFacadeWall:
		return NameFacadeWall
	case TabBlockWall:
		return NameBlockWall
	case TabBlock:
		return NameBlock
	case TabCeiling:
		return NameCeiling
	case TabFloor:
		return NameFloor
	case TabMoveIn:
		return NameMoveIn
	case TabGlazing:
		return NameGlazing
	case TabElectrical:
		return NameElectrical
	case TabFurniture:
		return NameFurniture
	case TabExtra:
		return NameExtra
	}
	return ""
}

// hiddenCategory тег скрытых (подразумеваемых) материалов вкладки:
// обрешётка, крепёж и прочее, что тянет за собой видимая отделка.
func (t TabKind) hiddenCategory() string {
	return t.Label() + ":" + subHidden
}

// paintCategory тег красок вкладки; пустая строка — покраски нет (пол).
func (t TabKind) paintCategory() string {
	switch t {
	case TabMainWall, TabFacadeWall, TabBlockWall, TabBlock:
		return t.Label() + ":" + subWallPaint
	case TabCeiling:
		return t.Label() + ":" + subCeilingPaint
	}
	return ""
}

const (
	subHidden       = "Скрытые"
	subWallPaint    = "Покраска стен"
	subCeilingPaint = "Покраска потолка"
)

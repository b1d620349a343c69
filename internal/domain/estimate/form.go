package estimate

import (
	"bytes"
	"math"
	"strconv"
)

// Number число из веб-формы. Приходит либо JSON-числом, либо строкой
// ("3000"); пустая или нечисловая строка декодируется в NaN, чтобы
// валидация вкладки дала свой ответ вместо ошибки разбора.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	s := string(b)
	if s == "" || s == "null" {
		*n = Number(math.NaN())
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = Number(math.NaN())
		return nil
	}
	*n = Number(v)
	return nil
}

// positive валидное строго положительное значение.
func (n Number) positive() bool {
	v := float64(n)
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

const yes = "yes"

// ExtraItem элемент свободного списка дополнительных материалов.
type ExtraItem struct {
	MaterialKey string `json:"materialKey"`
	Quantity    Number `json:"quantity"`
}

// SurfaceForm форма стен, потолка и пола. FinishDirection собирается
// интерфейсом, но на расчёт не влияет.
type SurfaceForm struct {
	Length          Number      `json:"length"`
	Width           Number      `json:"width"`
	FinishType      string      `json:"finishType"`
	FinishDirection string      `json:"finishDirection"`
	InsulationType  string      `json:"insulationType"`
	WallPainting    string      `json:"wallPainting"`
	CeilingPainting string      `json:"ceilingPainting"`
	ExtraMaterials  []ExtraItem `json:"extraMaterials"`
}

type MoveInForm struct {
	Sheets         string      `json:"sheets"`
	Fasteners      string      `json:"fasteners"`
	Tiling         string      `json:"tiling"`
	ExtraMaterials []ExtraItem `json:"extraMaterials"`
}

type GlazingForm struct {
	WindowType       string      `json:"windowType"`
	WindowQuantity   Number      `json:"windowQuantity"`
	Frame            string      `json:"frame"`
	ExteriorFinish   string      `json:"exteriorFinish"`
	BlockReplacement string      `json:"blockReplacement"`
	Slopes           string      `json:"slopes"`
	WindowSill       string      `json:"windowSill"`
	Roof             string      `json:"roof"`
	WhatToDo         string      `json:"whatToDo"`
	ExtraMaterials   []ExtraItem `json:"extraMaterials"`
}

type ElectricalForm struct {
	CableType      string      `json:"cableType"`
	CableQuantity  Number      `json:"cableQuantity"`
	SwitchType     string      `json:"switchType"`
	SwitchQuantity Number      `json:"switchQuantity"`
	SocketType     string      `json:"socketType"`
	SocketQuantity Number      `json:"socketQuantity"`
	SpotType       string      `json:"spotType"`
	SpotQuantity   Number      `json:"spotQuantity"`
	ExtraMaterials []ExtraItem `json:"extraMaterials"`
}

type FurnitureForm struct {
	BodyMaterial        string      `json:"bodyMaterial"`
	BodyQuantity        Number      `json:"bodyQuantity"`
	TopShelfMaterial    string      `json:"topShelfMaterial"`
	TopShelfQuantity    Number      `json:"topShelfQuantity"`
	BottomShelfMaterial string      `json:"bottomShelfMaterial"`
	BottomShelfQuantity Number      `json:"bottomShelfQuantity"`
	FurniturePainting   string      `json:"furniturePainting"`
	StoveSide           string      `json:"stoveSide"`
	Countertop          string      `json:"countertop"`
	ExtraMaterials      []ExtraItem `json:"extraMaterials"`
}

type ExtraForm struct {
	ExtraMaterials []ExtraItem `json:"extraMaterials"`
}

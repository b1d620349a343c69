package estimate

import (
	"fmt"
	"math"

	"github.com/balkonpro/estimator/internal/domain/materials"
)

const (
	// wasteFactor запас 10% на подрезку видимой отделки.
	wasteFactor = 1.10
	// railStepM шаг обрешётки по горизонтали, метры.
	railStepM = 0.5
	// railWasteFactor запас 5% на рейки/крепёж.
	railWasteFactor = 1.05
	// defaultRailLengthMM длина рейки, когда у скрытого материала не
	// заданы габариты.
	defaultRailLengthMM = 3000
	// paintCoverageM2 укрывистость: м² на одну единицу краски.
	paintCoverageM2 = 10

	mmPerM = 1000
)

func areaM2(lengthMM, widthMM float64) float64 {
	return lengthMM * widthMM / (mmPerM * mmPerM)
}

// coverageUnits штук материала на площадь помещения с запасом.
// Нулевая/отсутствующая площадь материала — ошибка: для видимой
// отделки она обязана быть задана.
func coverageUnits(roomLenMM, roomWidMM float64, dims *materials.Dimensions) (float64, error) {
	if dims == nil || dims.Length <= 0 || dims.Width <= 0 {
		return 0, fmt.Errorf("некорректные габариты материала")
	}
	matArea := areaM2(dims.Length, dims.Width)
	return math.Ceil(areaM2(roomLenMM, roomWidMM) / matArea * wasteFactor), nil
}

// insulationUnits то же покрытие по площади, но с молчаливым
// знаменателем 1 м², когда у утеплителя нет габаритов.
func insulationUnits(roomLenMM, roomWidMM float64, dims *materials.Dimensions) float64 {
	matArea := 1.0
	if dims != nil && dims.Length > 0 && dims.Width > 0 {
		matArea = areaM2(dims.Length, dims.Width)
	}
	return math.Ceil(areaM2(roomLenMM, roomWidMM) / matArea * wasteFactor)
}

// railUnits количество реек обрешётки: горизонтальные ряды с шагом
// railStepM на вертикальные отрезки длиной в рейку, с запасом.
func railUnits(roomLenMM, roomHeightMM, railLengthMM float64) float64 {
	if railLengthMM <= 0 {
		railLengthMM = defaultRailLengthMM
	}
	horizontal := math.Ceil(roomLenMM / mmPerM / railStepM)
	vertical := math.Ceil(roomHeightMM / railLengthMM)
	return horizontal * vertical * railWasteFactor
}

// paintUnits единиц краски на площадь.
func paintUnits(roomAreaM2 float64) float64 {
	return math.Ceil(roomAreaM2 / paintCoverageM2)
}

package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/balkonpro/estimator/internal/domain/estimate"
)

// Workbook собирает смету вкладки в xlsx-файл: шапка, строки позиций,
// итоговая строка.
func Workbook(tab string, res estimate.Result) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetCellValue(sheet, "A1", tab); err != nil {
		return nil, err
	}

	header := []interface{}{
		"материал",
		"количество",
		"ед.",
		"стоимость",
		"скрытый",
	}
	if err := f.SetSheetRow(sheet, "A2", &header); err != nil {
		return nil, err
	}

	row := 3
	for _, it := range res.Results {
		hidden := ""
		if it.Hidden {
			hidden = "да"
		}
		excelRow := []interface{}{
			it.Material,
			fmt.Sprint(it.Quantity),
			it.Unit,
			it.Cost,
			hidden,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, err
		}
		row++
	}

	totalRow := []interface{}{"итого", "", "", res.TotalCost, ""}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, cell, &totalRow); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

package materials

import (
	"fmt"
	"strings"
	"time"
)

const (
	maxNameLen     = 100
	maxCategoryLen = 200
	maxUnitLen     = 20
	maxColorLen    = 50
	maxPrice       = 1_000_000
	maxDimensionMM = 100_000
)

// Dimensions габариты материала в миллиметрах. Отсутствие Dimensions
// означает непланарный материал (краска, клей и т.п.).
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height,omitempty"`
}

type Material struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Categories []string    `json:"categories"`
	Price      float64     `json:"price"`
	Quantity   float64     `json:"quantity"`
	Unit       string      `json:"unit"`
	Dims       *Dimensions `json:"dimensions,omitempty"`
	Color      string      `json:"color,omitempty"`
	IsHidden   bool        `json:"isHidden"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// HasPricing материал пригоден для включения в смету.
func (m *Material) HasPricing() bool {
	return m.Price > 0 && m.Unit != ""
}

// ValidateCategoryTag проверяет формат тега "Вкладка:Подкатегория[:...]".
func ValidateCategoryTag(tag string) error {
	if tag == "" || len(tag) > maxCategoryLen {
		return fmt.Errorf("категория должна быть от 1 до %d символов", maxCategoryLen)
	}
	i := strings.Index(tag, ":")
	if i <= 0 {
		return fmt.Errorf("категория %q должна иметь вид \"Вкладка:Подкатегория\"", tag)
	}
	return nil
}

func (m *Material) Validate() error {
	if m.Name == "" || len(m.Name) > maxNameLen {
		return fmt.Errorf("название должно быть от 1 до %d символов", maxNameLen)
	}
	if len(m.Categories) == 0 {
		return fmt.Errorf("нужна хотя бы одна категория")
	}
	for _, c := range m.Categories {
		if err := ValidateCategoryTag(c); err != nil {
			return err
		}
	}
	if m.Price < 0 || m.Price > maxPrice {
		return fmt.Errorf("цена должна быть в диапазоне 0..%d", maxPrice)
	}
	if m.Quantity < 0 {
		return fmt.Errorf("количество не может быть отрицательным")
	}
	if m.Unit == "" || len(m.Unit) > maxUnitLen {
		return fmt.Errorf("единица измерения должна быть от 1 до %d символов", maxUnitLen)
	}
	if len(m.Color) > maxColorLen {
		return fmt.Errorf("цвет не длиннее %d символов", maxColorLen)
	}
	if d := m.Dims; d != nil {
		if d.Length <= 0 || d.Width <= 0 || d.Height < 0 {
			return fmt.Errorf("габариты должны быть положительными")
		}
		if d.Length > maxDimensionMM || d.Width > maxDimensionMM || d.Height > maxDimensionMM {
			return fmt.Errorf("габариты не больше %d мм", maxDimensionMM)
		}
	}
	return nil
}

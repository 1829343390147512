package units

import "math"

// ============================================================
// Unit & Coordinate Conversion
// ============================================================

// DefaultPixelsPerMeter — экранных единиц в одном метре.
// Единственная точка конфигурации масштаба: смета, 3D-проекция и
// экспорт получают один и тот же Converter, построенный в main.
const DefaultPixelsPerMeter = 50.0

// Converter переводит экранные единицы в метры по фиксированному
// соотношению.
type Converter struct {
	pixelsPerMeter float64
}

// NewConverter создаёт конвертер. Неположительное соотношение
// заменяется значением по умолчанию.
func NewConverter(pixelsPerMeter float64) Converter {
	if pixelsPerMeter <= 0 {
		pixelsPerMeter = DefaultPixelsPerMeter
	}
	return Converter{pixelsPerMeter: pixelsPerMeter}
}

// PixelsPerMeter возвращает используемое соотношение.
func (c Converter) PixelsPerMeter() float64 { return c.pixelsPerMeter }

// Meters переводит расстояние из экранных единиц в метры.
func (c Converter) Meters(px float64) float64 {
	return px / c.pixelsPerMeter
}

// Offset переводит пару экранных координат в смещение в метрах.
func (c Converter) Offset(xPx, yPx float64) (x, y float64) {
	return c.Meters(xPx), c.Meters(yPx)
}

// RectArea — площадь прямоугольника в м². Вырожденные размеры
// дают ноль, а не ошибку.
func (c Converter) RectArea(widthPx, heightPx float64) float64 {
	if widthPx <= 0 || heightPx <= 0 {
		return 0
	}
	return c.Meters(widthPx) * c.Meters(heightPx)
}

// CircleArea — площадь круга в м² по радиусу в экранных единицах.
func (c Converter) CircleArea(radiusPx float64) float64 {
	if radiusPx <= 0 {
		return 0
	}
	r := c.Meters(radiusPx)
	return math.Pi * r * r
}

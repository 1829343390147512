package estimate

import (
	"errors"
	"fmt"
	"math"

	"plan-designer/internal/designer/scene"
	"plan-designer/internal/designer/units"
)

// ============================================================
// Cost Estimator
// ============================================================

var ErrInvalidRate = errors.New("rate must be a non-negative number")

// RateTable — ставки за квадратный метр. Все поля редактируются
// пользователем, верхней границы нет.
type RateTable struct {
	ConcretePerSqM  float64 `json:"concretePerSqM"`
	BricksPerSqM    float64 `json:"bricksPerSqM"`
	LaborPerSqM     float64 `json:"laborPerSqM"`
	FinishingPerSqM float64 `json:"finishingPerSqM"`
}

// Validate отклоняет отрицательные и нечисловые ставки на входе:
// до расчёта невалидная таблица не доходит.
func (t RateTable) Validate() error {
	fields := []struct {
		name string
		val  float64
	}{
		{"concretePerSqM", t.ConcretePerSqM},
		{"bricksPerSqM", t.BricksPerSqM},
		{"laborPerSqM", t.LaborPerSqM},
		{"finishingPerSqM", t.FinishingPerSqM},
	}
	for _, f := range fields {
		if f.val < 0 || math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return fmt.Errorf("%s: %w", f.name, ErrInvalidRate)
		}
	}
	return nil
}

// Breakdown — результат сметы: общая площадь, стоимость по
// материалам, работа и итог, округлённые до целой денежной
// единицы, плюс таблица ставок, по которой считали.
type Breakdown struct {
	AreaSqM   float64   `json:"areaSqM"`
	Concrete  int64     `json:"concrete"`
	Bricks    int64     `json:"bricks"`
	Finishing int64     `json:"finishing"`
	Materials int64     `json:"materials"`
	Labor     int64     `json:"labor"`
	Total     int64     `json:"total"`
	Rates     RateTable `json:"rates"`
}

// Estimate считает смету по снимку сцены. В застроенную площадь
// входят только прямоугольники: круги-объекты и линии площади не
// дают. Снимок и таблица ставок не изменяются; повторный вызов с
// теми же входами детерминирован.
func Estimate(snap *scene.Snapshot, conv units.Converter, rates RateTable) (Breakdown, error) {
	if err := rates.Validate(); err != nil {
		return Breakdown{}, err
	}

	var area float64
	for _, sh := range snap.Shapes(false) {
		r, ok := sh.(*scene.Rect)
		if !ok {
			continue
		}
		b := r.Bounds()
		area += conv.RectArea(b.Width, b.Height)
	}

	concrete := roundCurrency(area * rates.ConcretePerSqM)
	bricks := roundCurrency(area * rates.BricksPerSqM)
	finishing := roundCurrency(area * rates.FinishingPerSqM)
	materials := roundCurrency(area * (rates.ConcretePerSqM + rates.BricksPerSqM + rates.FinishingPerSqM))
	labor := roundCurrency(area * rates.LaborPerSqM)

	return Breakdown{
		AreaSqM:   area,
		Concrete:  concrete,
		Bricks:    bricks,
		Finishing: finishing,
		Materials: materials,
		Labor:     labor,
		Total:     materials + labor,
		Rates:     rates,
	}, nil
}

func roundCurrency(v float64) int64 {
	return int64(math.Round(v))
}

package projection

import (
	"plan-designer/internal/designer/scene"
	"plan-designer/internal/designer/units"
)

// ============================================================
// 3D Projection Generator
// ============================================================

const (
	// WallHeight — высота стен в метрах при экструзии.
	WallHeight = 3.0
	// FixtureHeight — высота цилиндров напольных объектов.
	FixtureHeight = 0.5
)

// Vector3 — точка 3D-сцены. Y направлен вверх, план лежит в
// плоскости XZ с центром холста в (0,0,0).
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// PrimitiveType определяет вид 3D-примитива.
type PrimitiveType string

const (
	PrimitiveBox      PrimitiveType = "box"
	PrimitiveCylinder PrimitiveType = "cylinder"
	PrimitiveSegment  PrimitiveType = "segment"
)

// Primitive — один элемент 3D-представления плана. Набор
// заполненных полей определяется полем type.
type Primitive struct {
	Type   PrimitiveType `json:"type"`
	Color  string        `json:"color,omitempty"`
	Center Vector3       `json:"center,omitzero"`

	// box
	Width  float64 `json:"width,omitempty"`
	Depth  float64 `json:"depth,omitempty"`
	Height float64 `json:"height,omitempty"`

	// cylinder
	Radius float64 `json:"radius,omitempty"`

	// segment
	Start Vector3 `json:"start,omitzero"`
	End   Vector3 `json:"end,omitzero"`
}

// Generate строит 3D-примитивы из снимка сцены: прямоугольники
// становятся стенами-коробами, круги — цилиндрами, линии —
// отрезками на высоте стен. Сетка и подписи пропускаются.
// Функция чистая: повторный вызов на том же снимке даёт
// геометрически идентичный результат.
func Generate(snap *scene.Snapshot, conv units.Converter) []Primitive {
	cx := snap.Width / 2
	cy := snap.Height / 2

	var out []Primitive
	for _, sh := range snap.Shapes(false) {
		switch v := sh.(type) {
		case *scene.Rect:
			b := v.Bounds()
			wx, wz := conv.Offset(b.X+b.Width/2-cx, b.Y+b.Height/2-cy)
			out = append(out, Primitive{
				Type:   PrimitiveBox,
				Color:  v.Style.Fill,
				Center: Vector3{X: wx, Y: WallHeight / 2, Z: wz},
				Width:  conv.Meters(b.Width),
				Depth:  conv.Meters(b.Height),
				Height: WallHeight,
			})
		case *scene.Circle:
			wx, wz := conv.Offset(v.X-cx, v.Y-cy)
			out = append(out, Primitive{
				Type:   PrimitiveCylinder,
				Color:  v.Style.Fill,
				Center: Vector3{X: wx, Y: FixtureHeight / 2, Z: wz},
				Radius: conv.Meters(v.EffectiveRadius()),
				Height: FixtureHeight,
			})
		case *scene.Line:
			x1, z1 := conv.Offset(v.X1-cx, v.Y1-cy)
			x2, z2 := conv.Offset(v.X2-cx, v.Y2-cy)
			out = append(out, Primitive{
				Type:  PrimitiveSegment,
				Color: v.Style.Stroke,
				Start: Vector3{X: x1, Y: WallHeight, Z: z1},
				End:   Vector3{X: x2, Y: WallHeight, Z: z2},
			})
		default:
			// Неизвестные типы фигур пропускаются без ошибки.
		}
	}
	return out
}

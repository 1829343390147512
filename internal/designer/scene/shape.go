package scene

// ============================================================
// Shape Model
// ============================================================

// Kind определяет тип примитива сцены.
type Kind string

const (
	KindRectangle Kind = "rectangle"
	KindCircle    Kind = "circle"
	KindLine      Kind = "line"
	KindLabel     Kind = "label"
)

// Style описывает заливку и обводку фигуры.
type Style struct {
	Fill        string  `json:"fill"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"`
}

// Bounds — позиция и эффективные (с учётом масштаба) размеры фигуры.
type Bounds struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Point — точка в экранных координатах.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Shape — примитив сцены. Закрытый набор реализаций:
// Rect, Circle, Line, Label. Каждый потребитель (3D-проекция,
// экспорт, смета) делает исчерпывающий type switch по ним.
type Shape interface {
	ID() string
	Kind() Kind
	Bounds() Bounds

	clone() Shape
}

// ============================================================
// Rect
// ============================================================

type Rect struct {
	Ident    string
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Rotation float64 // градусы, вокруг центра
	ScaleX   float64
	ScaleY   float64
	Style    Style
}

func (r *Rect) ID() string { return r.Ident }

func (r *Rect) Kind() Kind { return KindRectangle }

// Bounds возвращает позицию и размеры с учётом масштаба.
func (r *Rect) Bounds() Bounds {
	return Bounds{
		X:      r.X,
		Y:      r.Y,
		Width:  r.Width * r.ScaleX,
		Height: r.Height * r.ScaleY,
	}
}

func (r *Rect) clone() Shape {
	c := *r
	return &c
}

// ============================================================
// Circle
// ============================================================

type Circle struct {
	Ident  string
	X      float64 // центр
	Y      float64
	Radius float64
	Scale  float64
	Style  Style
}

func (c *Circle) ID() string { return c.Ident }

func (c *Circle) Kind() Kind { return KindCircle }

// EffectiveRadius — радиус с учётом масштаба.
func (c *Circle) EffectiveRadius() float64 {
	return c.Radius * c.Scale
}

func (c *Circle) Bounds() Bounds {
	r := c.EffectiveRadius()
	return Bounds{
		X:      c.X - r,
		Y:      c.Y - r,
		Width:  2 * r,
		Height: 2 * r,
	}
}

func (c *Circle) clone() Shape {
	cp := *c
	return &cp
}

// ============================================================
// Line
// ============================================================

type Line struct {
	Ident string
	X1    float64
	Y1    float64
	X2    float64
	Y2    float64
	Style Style

	// Interactive=false помечает линии фоновой сетки: они не
	// выбираются и исключаются из всех производных вычислений.
	Interactive bool
}

func (l *Line) ID() string { return l.Ident }

func (l *Line) Kind() Kind { return KindLine }

func (l *Line) Bounds() Bounds {
	return Bounds{
		X:      minf(l.X1, l.X2),
		Y:      minf(l.Y1, l.Y2),
		Width:  absf(l.X2 - l.X1),
		Height: absf(l.Y2 - l.Y1),
	}
}

func (l *Line) clone() Shape {
	c := *l
	return &c
}

// ============================================================
// Label
// ============================================================

type Label struct {
	Ident    string
	X        float64
	Y        float64
	Text     string
	FontSize float64
	Fill     string
}

func (t *Label) ID() string { return t.Ident }

func (t *Label) Kind() Kind { return KindLabel }

func (t *Label) Bounds() Bounds {
	return Bounds{X: t.X, Y: t.Y, Height: t.FontSize}
}

func (t *Label) clone() Shape {
	c := *t
	return &c
}

// interactive сообщает, участвует ли фигура в выборе и
// производных вычислениях. Только линии сетки возвращают false.
func interactive(s Shape) bool {
	if l, ok := s.(*Line); ok {
		return l.Interactive
	}
	return true
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

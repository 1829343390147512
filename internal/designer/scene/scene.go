package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// ============================================================
// Scene Graph / Canvas Controller
// ============================================================

// Tool — активный инструмент редактора.
type Tool string

const (
	ToolSelect    Tool = "select"
	ToolRectangle Tool = "rectangle"
	ToolCircle    Tool = "circle"
	ToolLine      Tool = "line"
	ToolLabel     Tool = "label"
)

// DefaultCellSize — шаг фоновой сетки в экранных единицах.
const DefaultCellSize = 50.0

var (
	ErrUninitializedScene = errors.New("scene not initialized")
	ErrShapeNotFound      = errors.New("shape not found")
	ErrUnknownTool        = errors.New("unknown tool")
	ErrUnknownKind        = errors.New("unknown shape kind")
)

// Размеры фигур по умолчанию при создании через AddShape.
const (
	defaultRectWidth  = 100.0
	defaultRectHeight = 80.0
	defaultRadius     = 40.0
	defaultLineLength = 100.0
	defaultFontSize   = 18.0
)

// Scene владеет упорядоченной коллекцией фигур и фоновой сеткой.
// Все мутации происходят синхронно в цикле редактора; фоновые
// задачи работают только со Snapshot.
type Scene struct {
	width       float64
	height      float64
	cellSize    float64
	shapes      []Shape
	tool        Tool
	multiSelect bool
	initialized bool
}

// New создаёт пустую, ещё не инициализированную сцену.
func New() *Scene {
	return &Scene{
		cellSize:    DefaultCellSize,
		tool:        ToolSelect,
		multiSelect: true,
	}
}

// Initialize задаёт размеры холста и генерирует линии сетки.
// Повторный вызов сбрасывает сцену.
func (s *Scene) Initialize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("canvas %gx%g: dimensions must be positive", width, height)
	}

	s.width = width
	s.height = height
	s.shapes = s.shapes[:0]
	s.tool = ToolSelect
	s.multiSelect = true
	s.initialized = true

	s.renderGrid()
	return nil
}

// renderGrid добавляет round(w/cell)+round(h/cell) неинтерактивных линий.
func (s *Scene) renderGrid() {
	gridStyle := Style{Stroke: "#e0e0e0", StrokeWidth: 1}

	vertical := int(math.Round(s.width / s.cellSize))
	for i := 0; i < vertical; i++ {
		x := float64(i) * s.cellSize
		s.shapes = append(s.shapes, &Line{
			Ident: uuid.NewString(),
			X1:    x, Y1: 0,
			X2: x, Y2: s.height,
			Style:       gridStyle,
			Interactive: false,
		})
	}

	horizontal := int(math.Round(s.height / s.cellSize))
	for i := 0; i < horizontal; i++ {
		y := float64(i) * s.cellSize
		s.shapes = append(s.shapes, &Line{
			Ident: uuid.NewString(),
			X1:    0, Y1: y,
			X2: s.width, Y2: y,
			Style:       gridStyle,
			Interactive: false,
		})
	}
}

// AddShape создаёт фигуру указанного типа с размерами по умолчанию.
// at == nil ставит фигуру в центр холста. Возвращает id новой фигуры.
func (s *Scene) AddShape(kind Kind, at *Point) (string, error) {
	if !s.initialized {
		return "", ErrUninitializedScene
	}

	pos := Point{X: s.width / 2, Y: s.height / 2}
	if at != nil {
		pos = *at
	}

	id := uuid.NewString()
	var shape Shape

	switch kind {
	case KindRectangle:
		shape = &Rect{
			Ident: id,
			X:     pos.X - defaultRectWidth/2,
			Y:     pos.Y - defaultRectHeight/2,
			Width: defaultRectWidth, Height: defaultRectHeight,
			ScaleX: 1, ScaleY: 1,
			Style: Style{Fill: "#cccccc", Stroke: "#333333", StrokeWidth: 2},
		}
	case KindCircle:
		shape = &Circle{
			Ident:  id,
			X:      pos.X,
			Y:      pos.Y,
			Radius: defaultRadius,
			Scale:  1,
			Style:  Style{Fill: "#dddddd", Stroke: "#333333", StrokeWidth: 2},
		}
	case KindLine:
		shape = &Line{
			Ident: id,
			X1:    pos.X - defaultLineLength/2, Y1: pos.Y,
			X2: pos.X + defaultLineLength/2, Y2: pos.Y,
			Style:       Style{Stroke: "#333333", StrokeWidth: 2},
			Interactive: true,
		}
	case KindLabel:
		shape = &Label{
			Ident:    id,
			X:        pos.X,
			Y:        pos.Y,
			Text:     "Label",
			FontSize: defaultFontSize,
			Fill:     "#333333",
		}
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	s.shapes = append(s.shapes, shape)
	return id, nil
}

// RemoveShape удаляет фигуру по id. Линии сетки удалить нельзя.
func (s *Scene) RemoveShape(id string) error {
	if !s.initialized {
		return ErrUninitializedScene
	}

	for i, sh := range s.shapes {
		if sh.ID() != id || !interactive(sh) {
			continue
		}
		s.shapes = append(s.shapes[:i], s.shapes[i+1:]...)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrShapeNotFound, id)
}

// MoveShape переносит фигуру в новую позицию (origin для
// прямоугольника и подписи, центр для круга, первая точка для линии).
func (s *Scene) MoveShape(id string, x, y float64) error {
	if !s.initialized {
		return ErrUninitializedScene
	}

	sh, err := s.find(id)
	if err != nil {
		return err
	}

	switch v := sh.(type) {
	case *Rect:
		v.X, v.Y = x, y
	case *Circle:
		v.X, v.Y = x, y
	case *Line:
		dx, dy := x-v.X1, y-v.Y1
		v.X1, v.Y1 = x, y
		v.X2 += dx
		v.Y2 += dy
	case *Label:
		v.X, v.Y = x, y
	}
	return nil
}

// UpdateStyle заменяет стиль фигуры. Для подписи применяется
// только цвет заливки.
func (s *Scene) UpdateStyle(id string, style Style) error {
	if !s.initialized {
		return ErrUninitializedScene
	}

	sh, err := s.find(id)
	if err != nil {
		return err
	}

	switch v := sh.(type) {
	case *Rect:
		v.Style = style
	case *Circle:
		v.Style = style
	case *Line:
		v.Style = style
	case *Label:
		v.Fill = style.Fill
	}
	return nil
}

func (s *Scene) find(id string) (Shape, error) {
	for _, sh := range s.shapes {
		if sh.ID() == id && interactive(sh) {
			return sh, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrShapeNotFound, id)
}

// SetActiveTool — чистый переход состояния между инструментами.
// Уход с select отключает множественный выбор, возврат включает.
func (s *Scene) SetActiveTool(tool Tool) error {
	if !s.initialized {
		return ErrUninitializedScene
	}

	switch tool {
	case ToolSelect, ToolRectangle, ToolCircle, ToolLine, ToolLabel:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTool, tool)
	}

	s.tool = tool
	s.multiSelect = tool == ToolSelect
	return nil
}

// ActiveTool возвращает текущий инструмент.
func (s *Scene) ActiveTool() Tool { return s.tool }

// MultiSelectEnabled сообщает, доступен ли множественный выбор.
func (s *Scene) MultiSelectEnabled() bool { return s.multiSelect }

// Size возвращает размеры холста.
func (s *Scene) Size() (width, height float64) { return s.width, s.height }

// Shapes перечисляет фигуры в порядке добавления. Сетка
// исключается, если includeNonInteractive == false. До инициализации
// перечислять нечего: возвращается ошибка, а не пустой срез.
func (s *Scene) Shapes(includeNonInteractive bool) ([]Shape, error) {
	if !s.initialized {
		return nil, ErrUninitializedScene
	}
	return filterShapes(s.shapes, includeNonInteractive), nil
}

func filterShapes(shapes []Shape, includeNonInteractive bool) []Shape {
	out := make([]Shape, 0, len(shapes))
	for _, sh := range shapes {
		if !includeNonInteractive && !interactive(sh) {
			continue
		}
		out = append(out, sh)
	}
	return out
}

// ============================================================
// Snapshot
// ============================================================

// Snapshot — неизменяемая копия сцены на момент вызова. Фоновые
// задачи (3D, смета, экспорт) читают только его: правки сцены,
// сделанные позже, на снимок не влияют.
type Snapshot struct {
	Width    float64
	Height   float64
	CellSize float64
	shapes   []Shape
}

// Snapshot снимает глубокую копию всех фигур.
func (s *Scene) Snapshot() (*Snapshot, error) {
	if !s.initialized {
		return nil, ErrUninitializedScene
	}

	shapes := make([]Shape, len(s.shapes))
	for i, sh := range s.shapes {
		shapes[i] = sh.clone()
	}

	return &Snapshot{
		Width:    s.width,
		Height:   s.height,
		CellSize: s.cellSize,
		shapes:   shapes,
	}, nil
}

// Shapes перечисляет фигуры снимка, сетка исключена по умолчанию.
func (sn *Snapshot) Shapes(includeNonInteractive bool) []Shape {
	return filterShapes(sn.shapes, includeNonInteractive)
}

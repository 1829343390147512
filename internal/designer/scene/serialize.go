package scene

import (
	"encoding/json"
	"fmt"
)

// ============================================================
// Serialization
// ============================================================

// sceneDoc — формат снимка сцены: размеры холста, шаг сетки и
// упорядоченный список записей фигур.
type sceneDoc struct {
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	CellSize float64       `json:"cellSize"`
	Shapes   []shapeRecord `json:"shapes"`
}

// shapeRecord — плоская запись фигуры с тегом типа. Набор
// заполненных полей определяется полем kind.
type shapeRecord struct {
	ID   string  `json:"id"`
	Kind Kind    `json:"kind"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`

	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Rotation float64 `json:"rotation,omitempty"`
	ScaleX   float64 `json:"scaleX,omitempty"`
	ScaleY   float64 `json:"scaleY,omitempty"`

	Radius float64 `json:"radius,omitempty"`
	Scale  float64 `json:"scale,omitempty"`

	X2          float64 `json:"x2,omitempty"`
	Y2          float64 `json:"y2,omitempty"`
	Interactive bool    `json:"interactive"`

	Text     string  `json:"text,omitempty"`
	FontSize float64 `json:"fontSize,omitempty"`
	Fill     string  `json:"fill,omitempty"`

	Style *Style `json:"style,omitempty"`
}

// Serialize выдаёт снимок сцены, пригодный для точного
// восстановления через Deserialize.
func (s *Scene) Serialize() ([]byte, error) {
	if !s.initialized {
		return nil, ErrUninitializedScene
	}

	doc := sceneDoc{
		Width:    s.width,
		Height:   s.height,
		CellSize: s.cellSize,
		Shapes:   make([]shapeRecord, 0, len(s.shapes)),
	}

	for _, sh := range s.shapes {
		doc.Shapes = append(doc.Shapes, encodeShape(sh))
	}

	return json.Marshal(doc)
}

// Deserialize восстанавливает сцену фигура-в-фигуру, включая
// линии сетки, позиции, размеры, повороты, масштабы и стили.
func Deserialize(data []byte) (*Scene, error) {
	var doc sceneDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}

	s := New()
	s.width = doc.Width
	s.height = doc.Height
	if doc.CellSize > 0 {
		s.cellSize = doc.CellSize
	}
	s.initialized = true

	for _, rec := range doc.Shapes {
		sh, err := decodeShape(rec)
		if err != nil {
			return nil, err
		}
		s.shapes = append(s.shapes, sh)
	}

	return s, nil
}

func encodeShape(sh Shape) shapeRecord {
	switch v := sh.(type) {
	case *Rect:
		style := v.Style
		return shapeRecord{
			ID: v.Ident, Kind: KindRectangle,
			X: v.X, Y: v.Y,
			Width: v.Width, Height: v.Height,
			Rotation: v.Rotation, ScaleX: v.ScaleX, ScaleY: v.ScaleY,
			Interactive: true,
			Style:       &style,
		}
	case *Circle:
		style := v.Style
		return shapeRecord{
			ID: v.Ident, Kind: KindCircle,
			X: v.X, Y: v.Y,
			Radius: v.Radius, Scale: v.Scale,
			Interactive: true,
			Style:       &style,
		}
	case *Line:
		style := v.Style
		return shapeRecord{
			ID: v.Ident, Kind: KindLine,
			X: v.X1, Y: v.Y1, X2: v.X2, Y2: v.Y2,
			Interactive: v.Interactive,
			Style:       &style,
		}
	case *Label:
		return shapeRecord{
			ID: v.Ident, Kind: KindLabel,
			X: v.X, Y: v.Y,
			Text: v.Text, FontSize: v.FontSize, Fill: v.Fill,
			Interactive: true,
		}
	default:
		// Закрытый набор типов: сюда попадать не должно.
		panic(fmt.Sprintf("encodeShape: unexpected shape %T", sh))
	}
}

func decodeShape(rec shapeRecord) (Shape, error) {
	style := Style{}
	if rec.Style != nil {
		style = *rec.Style
	}

	switch rec.Kind {
	case KindRectangle:
		return &Rect{
			Ident: rec.ID,
			X:     rec.X, Y: rec.Y,
			Width: rec.Width, Height: rec.Height,
			Rotation: rec.Rotation, ScaleX: rec.ScaleX, ScaleY: rec.ScaleY,
			Style: style,
		}, nil
	case KindCircle:
		return &Circle{
			Ident: rec.ID,
			X:     rec.X, Y: rec.Y,
			Radius: rec.Radius, Scale: rec.Scale,
			Style: style,
		}, nil
	case KindLine:
		return &Line{
			Ident: rec.ID,
			X1:    rec.X, Y1: rec.Y, X2: rec.X2, Y2: rec.Y2,
			Style:       style,
			Interactive: rec.Interactive,
		}, nil
	case KindLabel:
		return &Label{
			Ident: rec.ID,
			X:     rec.X, Y: rec.Y,
			Text: rec.Text, FontSize: rec.FontSize, Fill: rec.Fill,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, rec.Kind)
	}
}

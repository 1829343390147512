package scene

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerializeRoundTripAllKinds(t *testing.T) {
	s := newTestScene(t, 200, 200)

	rectID, err := s.AddShape(KindRectangle, &Point{X: 60, Y: 60})
	require.NoError(t, err)
	_, err = s.AddShape(KindCircle, &Point{X: 120, Y: 80})
	require.NoError(t, err)
	_, err = s.AddShape(KindLine, &Point{X: 100, Y: 150})
	require.NoError(t, err)
	_, err = s.AddShape(KindLabel, &Point{X: 30, Y: 30})
	require.NoError(t, err)

	// поворот и масштаб должны пережить сериализацию
	rect, err := s.find(rectID)
	require.NoError(t, err)
	rect.(*Rect).Rotation = 30
	rect.(*Rect).ScaleX = 2
	rect.(*Rect).ScaleY = 0.5

	raw, err := s.Serialize()
	require.NoError(t, err)

	restored, err := Deserialize(raw)
	require.NoError(t, err)

	require.Equal(t, s.width, restored.width)
	require.Equal(t, s.height, restored.height)
	require.Equal(t, s.cellSize, restored.cellSize)
	require.Len(t, restored.shapes, len(s.shapes))
	for i := range s.shapes {
		require.Equal(t, s.shapes[i], restored.shapes[i], "shape %d", i)
	}
}

func TestSerializeRoundTripEmptyScene(t *testing.T) {
	// холст меньше ячейки сетки: линий нет вовсе
	s := newTestScene(t, 20, 20)
	require.Empty(t, mustShapes(t, s, true))

	raw, err := s.Serialize()
	require.NoError(t, err)

	restored, err := Deserialize(raw)
	require.NoError(t, err)
	require.Empty(t, mustShapes(t, restored, true))
	require.Equal(t, 20.0, restored.width)
	require.Equal(t, 20.0, restored.height)
}

func TestSerializeStable(t *testing.T) {
	s := newTestScene(t, 300, 300)
	_, err := s.AddShape(KindRectangle, nil)
	require.NoError(t, err)

	first, err := s.Serialize()
	require.NoError(t, err)

	restored, err := Deserialize(first)
	require.NoError(t, err)

	second, err := restored.Serialize()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestDeserializeGridPreserved(t *testing.T) {
	s := newTestScene(t, 500, 400)

	raw, err := s.Serialize()
	require.NoError(t, err)

	restored, err := Deserialize(raw)
	require.NoError(t, err)
	require.Empty(t, mustShapes(t, restored, false))
	require.Len(t, mustShapes(t, restored, true), 18)
}

func TestDeserializeUnknownKind(t *testing.T) {
	doc := `{"width":100,"height":100,"cellSize":50,"shapes":[{"id":"s1","kind":"hexagon","x":0,"y":0}]}`

	_, err := Deserialize([]byte(doc))
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestDeserializeInvalidJSON(t *testing.T) {
	_, err := Deserialize([]byte("not json"))
	require.Error(t, err)
}

package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeters(t *testing.T) {
	conv := NewConverter(50)

	require.Equal(t, 1.0, conv.Meters(50))
	require.Equal(t, 4.0, conv.Meters(200))
	require.Equal(t, 0.0, conv.Meters(0))
}

func TestOffset(t *testing.T) {
	conv := NewConverter(50)

	x, y := conv.Offset(100, -150)
	require.Equal(t, 2.0, x)
	require.Equal(t, -3.0, y)
}

func TestRectArea(t *testing.T) {
	conv := NewConverter(50)

	require.Equal(t, 12.0, conv.RectArea(200, 150)) // 4m x 3m

	// вырожденные размеры дают ноль, а не ошибку
	require.Equal(t, 0.0, conv.RectArea(0, 150))
	require.Equal(t, 0.0, conv.RectArea(200, 0))
	require.Equal(t, 0.0, conv.RectArea(-10, 10))
}

func TestCircleArea(t *testing.T) {
	conv := NewConverter(50)

	require.InDelta(t, math.Pi, conv.CircleArea(50), 1e-12)
	require.Equal(t, 0.0, conv.CircleArea(0))
}

func TestConversionIdempotent(t *testing.T) {
	conv := NewConverter(50)

	first := conv.RectArea(321, 417)
	second := conv.RectArea(321, 417)
	require.Equal(t, first, second)
}

func TestNewConverterDefaultsOnBadRatio(t *testing.T) {
	require.Equal(t, DefaultPixelsPerMeter, NewConverter(0).PixelsPerMeter())
	require.Equal(t, DefaultPixelsPerMeter, NewConverter(-5).PixelsPerMeter())
	require.Equal(t, 100.0, NewConverter(100).PixelsPerMeter())
}

package export

import (
	"math"
	"strconv"
	"strings"

	"plan-designer/internal/designer/scene"
)

// ============================================================
// Vector Interchange (DXF subset)
// ============================================================

// DXF выводит сцену в минимальный текстовый CAD-формат: пары
// групповой код/значение, секции HEADER и ENTITIES. Координаты
// идут в экранных единицах без перевода в метры — это
// сознательное упрощение формата, а не пропуск конвертации.
// Прямоугольники становятся замкнутыми полилиниями из 4+1 вершин,
// линии — двухточечными LINE; круги и подписи в формат не входят.
func DXF(snap *scene.Snapshot) []byte {
	var b strings.Builder

	b.WriteString("0\nSECTION\n2\nHEADER\n0\nENDSEC\n")
	b.WriteString("0\nSECTION\n2\nENTITIES\n")

	for _, sh := range snap.Shapes(false) {
		switch v := sh.(type) {
		case *scene.Rect:
			writePolyline(&b, rectCorners(v))
		case *scene.Line:
			writeLine(&b, v)
		case *scene.Circle, *scene.Label:
			// Не поддерживаются форматом, пропускаются.
		}
	}

	b.WriteString("0\nENDSEC\n0\nEOF")
	return []byte(b.String())
}

// rectCorners возвращает четыре угла прямоугольника по часовой
// стрелке, с поворотом вокруг центра при Rotation != 0.
func rectCorners(r *scene.Rect) []scene.Point {
	b := r.Bounds()
	corners := []scene.Point{
		{X: b.X, Y: b.Y},
		{X: b.X + b.Width, Y: b.Y},
		{X: b.X + b.Width, Y: b.Y + b.Height},
		{X: b.X, Y: b.Y + b.Height},
	}

	if r.Rotation == 0 {
		return corners
	}

	cx := b.X + b.Width/2
	cy := b.Y + b.Height/2
	rad := r.Rotation * math.Pi / 180
	sin := math.Sin(rad)
	cos := math.Cos(rad)

	for i, p := range corners {
		dx := p.X - cx
		dy := p.Y - cy
		corners[i] = scene.Point{
			X: cx + dx*cos - dy*sin,
			Y: cy + dx*sin + dy*cos,
		}
	}
	return corners
}

// writePolyline пишет замкнутую полилинию: вершины с кодами 10/20,
// первая вершина повторяется в конце.
func writePolyline(b *strings.Builder, corners []scene.Point) {
	b.WriteString("0\nPOLYLINE\n")
	for _, p := range append(corners, corners[0]) {
		b.WriteString("10\n")
		b.WriteString(formatCoord(p.X))
		b.WriteString("\n20\n")
		b.WriteString(formatCoord(p.Y))
		b.WriteString("\n")
	}
}

// writeLine пишет LINE: начало кодами 10/20, конец кодами 11/21.
func writeLine(b *strings.Builder, l *scene.Line) {
	b.WriteString("0\nLINE\n")
	b.WriteString("10\n")
	b.WriteString(formatCoord(l.X1))
	b.WriteString("\n20\n")
	b.WriteString(formatCoord(l.Y1))
	b.WriteString("\n11\n")
	b.WriteString(formatCoord(l.X2))
	b.WriteString("\n21\n")
	b.WriteString(formatCoord(l.Y2))
	b.WriteString("\n")
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

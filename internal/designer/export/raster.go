package export

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"plan-designer/internal/designer/scene"
)

// ============================================================
// Raster Export (PNG / JPEG)
// ============================================================

const (
	// SupersampleFactor — множитель разрешения растра.
	SupersampleFactor = 2
	// JPEGQuality — фиксированное качество сжатия JPEG.
	JPEGQuality = 90
)

var (
	labelFontOnce sync.Once
	labelFont     *truetype.Font
)

func labelFace(size float64) font.Face {
	labelFontOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			// Шрифт встроен в бинарник, парсинг не может упасть.
			panic(err)
		}
		labelFont = f
	})
	return truetype.NewFace(labelFont, &truetype.Options{Size: size})
}

// PNG растеризует сцену в PNG без потерь.
func PNG(snap *scene.Snapshot) ([]byte, error) {
	dc, err := rasterize(snap)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("%w: encode png: %v", ErrExportFailed, err)
	}
	return buf.Bytes(), nil
}

// JPEG растеризует сцену в JPEG с качеством JPEGQuality.
func JPEG(snap *scene.Snapshot) ([]byte, error) {
	dc, err := rasterize(snap)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dc.Image(), &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("%w: encode jpeg: %v", ErrExportFailed, err)
	}
	return buf.Bytes(), nil
}

// rasterize рисует видимую сцену целиком, включая линии сетки,
// с увеличением SupersampleFactor.
func rasterize(snap *scene.Snapshot) (*gg.Context, error) {
	// дробные размеры холста округляются вверх, чтобы растр
	// покрывал холст полностью
	w := int(math.Ceil(snap.Width)) * SupersampleFactor
	h := int(math.Ceil(snap.Height)) * SupersampleFactor
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: canvas %gx%g", ErrExportFailed, snap.Width, snap.Height)
	}

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.Scale(SupersampleFactor, SupersampleFactor)

	for _, sh := range snap.Shapes(true) {
		switch v := sh.(type) {
		case *scene.Rect:
			drawRect(dc, v)
		case *scene.Circle:
			drawCircle(dc, v)
		case *scene.Line:
			drawLine(dc, v)
		case *scene.Label:
			drawLabel(dc, v)
		}
	}

	return dc, nil
}

func drawRect(dc *gg.Context, r *scene.Rect) {
	b := r.Bounds()

	dc.Push()
	if r.Rotation != 0 {
		dc.RotateAbout(gg.Radians(r.Rotation), b.X+b.Width/2, b.Y+b.Height/2)
	}

	dc.DrawRectangle(b.X, b.Y, b.Width, b.Height)
	if r.Style.Fill != "" {
		dc.SetHexColor(r.Style.Fill)
		dc.FillPreserve()
	}
	strokePath(dc, r.Style)
	dc.Pop()
}

func drawCircle(dc *gg.Context, c *scene.Circle) {
	dc.DrawCircle(c.X, c.Y, c.EffectiveRadius())
	if c.Style.Fill != "" {
		dc.SetHexColor(c.Style.Fill)
		dc.FillPreserve()
	}
	strokePath(dc, c.Style)
}

func drawLine(dc *gg.Context, l *scene.Line) {
	dc.DrawLine(l.X1, l.Y1, l.X2, l.Y2)
	strokePath(dc, l.Style)
}

func drawLabel(dc *gg.Context, t *scene.Label) {
	size := t.FontSize
	if size <= 0 {
		size = 12
	}
	dc.SetFontFace(labelFace(size * SupersampleFactor))

	fill := t.Fill
	if fill == "" {
		fill = "#000000"
	}
	dc.SetHexColor(fill)
	dc.DrawString(t.Text, t.X, t.Y)
}

func strokePath(dc *gg.Context, s scene.Style) {
	if s.Stroke == "" {
		dc.ClearPath()
		return
	}
	dc.SetHexColor(s.Stroke)
	width := s.StrokeWidth
	if width <= 0 {
		width = 1
	}
	dc.SetLineWidth(width)
	dc.Stroke()
}

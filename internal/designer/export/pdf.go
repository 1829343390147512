package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"plan-designer/internal/designer/scene"
)

// ============================================================
// Paginated Document (PDF)
// ============================================================

// PDF собирает одностраничный документ: страница размером с холст
// в пикселях, внутри — растр сцены, поверх — название плана и
// отметка времени генерации.
func PDF(snap *scene.Snapshot, title string, generatedAt time.Time) ([]byte, error) {
	png, err := PNG(snap)
	if err != nil {
		return nil, err
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: snap.Width, Ht: snap.Height},
	})
	doc.SetTitle(title, true)
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("floor-plan", opts, bytes.NewReader(png))
	doc.ImageOptions("floor-plan", 0, 0, snap.Width, snap.Height, false, opts, 0, "")

	doc.SetFont("Helvetica", "B", 16)
	doc.SetTextColor(33, 33, 33)
	doc.Text(20, 30, title)

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(120, 120, 120)
	doc.Text(20, 46, "Generated "+generatedAt.Format("2006-01-02 15:04"))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: assemble pdf: %v", ErrExportFailed, err)
	}
	return buf.Bytes(), nil
}

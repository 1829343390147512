package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"

	"plan-designer/internal/designer/export"
	"plan-designer/internal/designer/repository"
)

// ============================================================
// Export Handler
// ============================================================

const auditTimeout = 5 * time.Second

// Export сериализует сцену из тела запроса в запрошенный формат и
// отдаёт файл. Журнальная запись экспорта пишется асинхронно уже
// после сборки артефакта: её сбой логируется и никогда не
// превращается в ошибку экспорта.
func (h *Handler) Export(c fiber.Ctx) error {
	format, ok := export.ParseFormat(c.Params("format"))
	if !ok {
		return badRequest(c, fmt.Sprintf("unsupported export format %q", c.Params("format")))
	}

	planID := c.Params("id")
	plan, err := h.repo.GetPlan(context.Background(), planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "plan not found"})
		}
		return internalError(c, err)
	}

	s, err := decodeScene(c.Body())
	if err != nil {
		return badRequest(c, err.Error())
	}

	snap, err := s.Snapshot()
	if err != nil {
		return badRequest(c, err.Error())
	}

	var artifact []byte
	switch format {
	case export.FormatPNG:
		artifact, err = export.PNG(snap)
	case export.FormatJPEG:
		artifact, err = export.JPEG(snap)
	case export.FormatPDF:
		artifact, err = export.PDF(snap, plan.Title, time.Now())
	case export.FormatDXF:
		artifact = export.DXF(snap)
	}
	if err != nil {
		if errors.Is(err, export.ErrExportFailed) {
			return badRequest(c, err.Error())
		}
		return internalError(c, err)
	}

	h.auditExport(planID, c.Get("X-User-ID"), format)

	c.Set("Content-Type", format.ContentType())
	c.Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"`, export.Filename(plan.Title, format)))
	return c.Send(artifact)
}

// auditExport — fire-and-forget запись в журнал экспорта.
func (h *Handler) auditExport(planID, userID string, format export.Format) {
	if userID == "" {
		userID = "anonymous"
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
		defer cancel()

		if err := h.repo.InsertExportAudit(ctx, planID, userID, string(format)); err != nil {
			log.Printf("[EXPORT] audit log failed (plan %s, %s): %v", planID, format, err)
		}
	}()
}

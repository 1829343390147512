package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"plan-designer/internal/designer/models"
	"plan-designer/internal/designer/repository"
)

// ============================================================
// Plan Handlers
// ============================================================

type createPlanRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CreatePlan заводит новый план.
func (h *Handler) CreatePlan(c fiber.Ctx) error {
	var req createPlanRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return badRequest(c, "invalid JSON payload")
	}
	if req.Title == "" {
		return badRequest(c, "title required")
	}

	plan, err := h.repo.CreatePlan(context.Background(), req.Title, req.Description)
	if err != nil {
		return internalError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(plan)
}

// GetPlan возвращает метаданные плана.
func (h *Handler) GetPlan(c fiber.Ctx) error {
	plan, err := h.repo.GetPlan(context.Background(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "plan not found"})
		}
		return internalError(c, err)
	}
	return c.JSON(plan)
}

// SaveVersion сохраняет сериализованную сцену как следующую
// версию плана. Тело запроса — снимок сцены; он проверяется
// восстановлением перед записью.
func (h *Handler) SaveVersion(c fiber.Ctx) error {
	raw := c.Body()
	if _, err := decodeScene(raw); err != nil {
		return badRequest(c, err.Error())
	}

	version, err := h.repo.SaveVersion(context.Background(), c.Params("id"), raw)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "plan not found"})
		}
		return internalError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"version": version})
}

// LatestVersion отдаёт последний снимок плана.
func (h *Handler) LatestVersion(c fiber.Ctx) error {
	v, err := h.repo.LatestVersion(context.Background(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "version not found"})
		}
		return internalError(c, err)
	}
	return c.JSON(v)
}

// ListVersions отдаёт историю версий плана.
func (h *Handler) ListVersions(c fiber.Ctx) error {
	versions, err := h.repo.ListVersions(context.Background(), c.Params("id"))
	if err != nil {
		return internalError(c, err)
	}
	if versions == nil {
		versions = []models.VersionInfo{} // пустой список вместо null
	}
	return c.JSON(versions)
}

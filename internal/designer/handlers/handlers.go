package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"plan-designer/internal/designer/repository"
	"plan-designer/internal/designer/scene"
	"plan-designer/internal/designer/units"
)

// ============================================================
// Designer Handlers
// ============================================================

// Handler связывает HTTP-поверхность сервиса с движком сцены,
// конвертером единиц и хранилищем планов.
type Handler struct {
	repo *repository.Repository
	conv units.Converter
}

func New(repo *repository.Repository, conv units.Converter) *Handler {
	return &Handler{repo: repo, conv: conv}
}

// decodeScene восстанавливает сцену из тела запроса.
func decodeScene(raw []byte) (*scene.Scene, error) {
	if len(raw) == 0 {
		return nil, errors.New("body required")
	}
	return scene.Deserialize(raw)
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func internalError(c fiber.Ctx, err error) error {
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// sendScene сериализует сцену обратно в ответ.
func sendScene(c fiber.Ctx, s *scene.Scene, extra fiber.Map) error {
	raw, err := s.Serialize()
	if err != nil {
		return internalError(c, err)
	}

	payload := fiber.Map{"scene": json.RawMessage(raw)}
	for k, v := range extra {
		payload[k] = v
	}
	return c.JSON(payload)
}

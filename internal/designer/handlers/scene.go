package handlers

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v3"

	"plan-designer/internal/designer/scene"
)

// ============================================================
// Scene Handlers
// ============================================================

type newSceneRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewScene создаёт пустую сцену с фоновой сеткой и возвращает её
// сериализованный снимок.
func (h *Handler) NewScene(c fiber.Ctx) error {
	var req newSceneRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return badRequest(c, "invalid JSON payload")
	}

	s := scene.New()
	if err := s.Initialize(req.Width, req.Height); err != nil {
		return badRequest(c, err.Error())
	}

	log.Printf("[SCENE] Created %gx%g canvas", req.Width, req.Height)
	return sendScene(c, s, nil)
}

type addShapeRequest struct {
	Scene json.RawMessage `json:"scene"`
	Kind  string          `json:"kind"`
	At    *scene.Point    `json:"at"`
}

// AddShape добавляет фигуру в переданную сцену и возвращает её id
// вместе с обновлённым снимком.
func (h *Handler) AddShape(c fiber.Ctx) error {
	var req addShapeRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return badRequest(c, "invalid JSON payload")
	}

	s, err := decodeScene(req.Scene)
	if err != nil {
		return badRequest(c, err.Error())
	}

	id, err := s.AddShape(scene.Kind(req.Kind), req.At)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return sendScene(c, s, fiber.Map{"id": id})
}

type removeShapeRequest struct {
	Scene json.RawMessage `json:"scene"`
	ID    string          `json:"id"`
}

// RemoveShape удаляет фигуру по id.
func (h *Handler) RemoveShape(c fiber.Ctx) error {
	var req removeShapeRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return badRequest(c, "invalid JSON payload")
	}

	s, err := decodeScene(req.Scene)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := s.RemoveShape(req.ID); err != nil {
		return badRequest(c, err.Error())
	}

	return sendScene(c, s, nil)
}

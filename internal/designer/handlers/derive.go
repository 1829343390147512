package handlers

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v3"

	"plan-designer/internal/designer/estimate"
	"plan-designer/internal/designer/projection"
)

// ============================================================
// Derived Artifacts: 3D & Estimate
// ============================================================

// Project3D строит список 3D-примитивов по снимку сцены из тела
// запроса.
func (h *Handler) Project3D(c fiber.Ctx) error {
	s, err := decodeScene(c.Body())
	if err != nil {
		return badRequest(c, err.Error())
	}

	snap, err := s.Snapshot()
	if err != nil {
		return badRequest(c, err.Error())
	}

	primitives := projection.Generate(snap, h.conv)
	log.Printf("[3D] Projected %d primitives", len(primitives))

	return c.JSON(fiber.Map{
		"count":      len(primitives),
		"primitives": primitives,
	})
}

type estimateRequest struct {
	Scene json.RawMessage    `json:"scene"`
	Rates estimate.RateTable `json:"rates"`
}

// EstimateCost считает смету по снимку сцены и таблице ставок.
func (h *Handler) EstimateCost(c fiber.Ctx) error {
	var req estimateRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return badRequest(c, "invalid JSON payload")
	}

	s, err := decodeScene(req.Scene)
	if err != nil {
		return badRequest(c, err.Error())
	}

	snap, err := s.Snapshot()
	if err != nil {
		return badRequest(c, err.Error())
	}

	breakdown, err := estimate.Estimate(snap, h.conv, req.Rates)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.JSON(breakdown)
}

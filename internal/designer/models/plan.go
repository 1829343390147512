package models

import "encoding/json"

// ============================================================
// Plan Models
// ============================================================

type Plan struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// Version — неизменяемый снимок плана: сериализованная сцена под
// монотонно растущим номером.
type Version struct {
	PlanID    string          `json:"plan_id"`
	Version   int             `json:"version"`
	Scene     json.RawMessage `json:"scene"`
	CreatedAt string          `json:"created_at"`
}

// VersionInfo — запись истории без тела сцены.
type VersionInfo struct {
	Version   int    `json:"version"`
	CreatedAt string `json:"created_at"`
}

// ExportAudit — журнальная запись экспорта, fire-and-forget.
type ExportAudit struct {
	FloorPlanID string `json:"floor_plan_id"`
	UserID      string `json:"user_id"`
	ExportType  string `json:"export_type"`
	CreatedAt   string `json:"created_at"`
}

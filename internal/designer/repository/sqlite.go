package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"plan-designer/internal/designer/models"
)

// ============================================================
// SQLite Repository
// ============================================================

var ErrNotFound = errors.New("not found")

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Init запускает миграции схемы планов.
func (r *Repository) Init(ctx context.Context, migrationsPath string) error {
	data, err := os.ReadFile(migrationsPath)
	if err != nil {
		return fmt.Errorf("read migration: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, string(data)); err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}
	return nil
}

// ============================================================
// Plans
// ============================================================

func (r *Repository) CreatePlan(ctx context.Context, title, description string) (*models.Plan, error) {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO plans (id, title, description)
        VALUES (?, ?, ?)
    `, id, title, description)
	if err != nil {
		return nil, fmt.Errorf("insert plan: %w", err)
	}
	return r.GetPlan(ctx, id)
}

func (r *Repository) GetPlan(ctx context.Context, id string) (*models.Plan, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, title, description, created_at
        FROM plans
        WHERE id = ?
    `, id)

	var p models.Plan
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ============================================================
// Versions
// ============================================================

// SaveVersion сохраняет сериализованную сцену под следующим
// номером версии плана.
func (r *Repository) SaveVersion(ctx context.Context, planID string, sceneJSON []byte) (int, error) {
	if _, err := r.GetPlan(ctx, planID); err != nil {
		return 0, err
	}

	row := r.db.QueryRowContext(ctx, `
        INSERT INTO plan_versions (plan_id, version, scene)
        VALUES (?, COALESCE((SELECT MAX(version) FROM plan_versions WHERE plan_id = ?), 0) + 1, ?)
        RETURNING version
    `, planID, planID, string(sceneJSON))

	var version int
	if err := row.Scan(&version); err != nil {
		return 0, fmt.Errorf("insert version: %w", err)
	}
	return version, nil
}

// LatestVersion возвращает последний снимок плана.
func (r *Repository) LatestVersion(ctx context.Context, planID string) (*models.Version, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT plan_id, version, scene, created_at
        FROM plan_versions
        WHERE plan_id = ?
        ORDER BY version DESC
        LIMIT 1
    `, planID)

	var v models.Version
	var scene string
	if err := row.Scan(&v.PlanID, &v.Version, &scene, &v.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	v.Scene = []byte(scene)
	return &v, nil
}

// ListVersions возвращает историю версий без тел сцен, новые первыми.
func (r *Repository) ListVersions(ctx context.Context, planID string) ([]models.VersionInfo, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT version, created_at
        FROM plan_versions
        WHERE plan_id = ?
        ORDER BY version DESC
    `, planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.VersionInfo
	for rows.Next() {
		var info models.VersionInfo
		if err := rows.Scan(&info.Version, &info.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

// ============================================================
// Export Audit
// ============================================================

// InsertExportAudit пишет журнальную запись экспорта.
func (r *Repository) InsertExportAudit(ctx context.Context, floorPlanID, userID, exportType string) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO export_audit (floor_plan_id, user_id, export_type)
        VALUES (?, ?, ?)
    `, floorPlanID, userID, exportType)
	if err != nil {
		return fmt.Errorf("insert export audit: %w", err)
	}
	return nil
}

// OpenSQLite открывает sqlite по указанному пути.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

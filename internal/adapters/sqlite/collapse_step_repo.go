package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/hearth/internal/ports/secondary"
)

// CollapseStepRepository implements secondary.CollapseStepRepository with
// SQLite. A collapse writes a pending row before each per-clan freeze and
// marks it done after the tag lands; pending rows left behind are how a
// partial collapse is detected.
type CollapseStepRepository struct {
	db *sql.DB
}

// NewCollapseStepRepository creates a new SQLite collapse step repository.
func NewCollapseStepRepository(db *sql.DB) *CollapseStepRepository {
	return &CollapseStepRepository{db: db}
}

// Begin journals a pending freeze step and fills in its row id.
func (r *CollapseStepRepository) Begin(ctx context.Context, step *secondary.CollapseStep) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO collapse_steps (collapse_id, project_id, clan_id, status) VALUES (?, ?, ?, ?)",
		step.CollapseID, step.ProjectID, step.ClanID, secondary.StepPending,
	)
	if err != nil {
		return fmt.Errorf("failed to begin collapse step: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read collapse step id: %w", err)
	}
	step.ID = id
	step.Status = secondary.StepPending
	return nil
}

// MarkDone completes a journaled freeze step with its hash and tag.
func (r *CollapseStepRepository) MarkDone(ctx context.Context, id int64, freezeHash, tag string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE collapse_steps SET status = ?, freeze_hash = ?, tag = ? WHERE id = ?",
		secondary.StepDone, freezeHash, tag, id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark collapse step done: %w", err)
	}
	return nil
}

// ListPending returns the pending steps for a project, oldest first.
func (r *CollapseStepRepository) ListPending(ctx context.Context, projectID string) ([]*secondary.CollapseStep, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, collapse_id, project_id, clan_id, COALESCE(freeze_hash, ''), COALESCE(tag, ''), status, created_at
		 FROM collapse_steps WHERE project_id = ? AND status = ? ORDER BY id`,
		projectID, secondary.StepPending,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending steps: %w", err)
	}
	defer rows.Close()

	var steps []*secondary.CollapseStep
	for rows.Next() {
		var createdAt time.Time
		step := &secondary.CollapseStep{}
		err := rows.Scan(&step.ID, &step.CollapseID, &step.ProjectID, &step.ClanID,
			&step.FreezeHash, &step.Tag, &step.Status, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan collapse step: %w", err)
		}
		step.CreatedAt = createdAt.Format(time.RFC3339)
		steps = append(steps, step)
	}
	return steps, rows.Err()
}

// Ensure CollapseStepRepository implements the interface
var _ secondary.CollapseStepRepository = (*CollapseStepRepository)(nil)

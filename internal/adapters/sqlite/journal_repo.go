package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/hearth/internal/ports/secondary"
)

// JournalRepository implements secondary.JournalWriter with SQLite. Every
// entity mutation (project create, clan add, collapse) leaves a row here.
type JournalRepository struct {
	db *sql.DB
}

// NewJournalRepository creates a new SQLite journal writer.
func NewJournalRepository(db *sql.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// LogCreate records a create operation for an entity.
func (r *JournalRepository) LogCreate(ctx context.Context, projectID, entityType, entityID string) error {
	return r.write(ctx, projectID, entityType, entityID, "create", "")
}

// LogUpdate records an update operation for an entity.
func (r *JournalRepository) LogUpdate(ctx context.Context, projectID, entityType, entityID, detail string) error {
	return r.write(ctx, projectID, entityType, entityID, "update", detail)
}

func (r *JournalRepository) write(ctx context.Context, projectID, entityType, entityID, action, detail string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO journal (project_id, entity_type, entity_id, action, detail) VALUES (?, ?, ?, ?, ?)",
		projectID, entityType, entityID, action, detail,
	)
	if err != nil {
		return fmt.Errorf("failed to write journal entry: %w", err)
	}
	return nil
}

// Ensure JournalRepository implements the interface
var _ secondary.JournalWriter = (*JournalRepository)(nil)

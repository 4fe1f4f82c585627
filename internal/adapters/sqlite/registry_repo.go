// Package sqlite contains SQLite implementations of the registry and journal
// ports.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/hearth/internal/ports/secondary"
)

// RegistryRepository implements secondary.ProjectRegistry with SQLite.
type RegistryRepository struct {
	db *sql.DB
}

// NewRegistryRepository creates a new SQLite project registry.
func NewRegistryRepository(db *sql.DB) *RegistryRepository {
	return &RegistryRepository{db: db}
}

// Register records a project id and its on-disk root.
func (r *RegistryRepository) Register(ctx context.Context, record *secondary.ProjectRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO projects (id, name, path) VALUES (?, ?, ?)",
		record.ID, record.Name, record.Path,
	)
	if err != nil {
		return fmt.Errorf("failed to register project: %w", err)
	}
	return nil
}

// GetByID resolves a project id to its registry record.
func (r *RegistryRepository) GetByID(ctx context.Context, id string) (*secondary.ProjectRecord, error) {
	var createdAt time.Time

	record := &secondary.ProjectRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, path, created_at FROM projects WHERE id = ?", id,
	).Scan(&record.ID, &record.Name, &record.Path, &createdAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project %s %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	return record, nil
}

// List returns all registered projects, newest first.
func (r *RegistryRepository) List(ctx context.Context) ([]*secondary.ProjectRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, path, created_at FROM projects ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ProjectRecord
	for rows.Next() {
		var createdAt time.Time
		record := &secondary.ProjectRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.Path, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		record.CreatedAt = createdAt.Format(time.RFC3339)
		records = append(records, record)
	}
	return records, rows.Err()
}

// Ensure RegistryRepository implements the interface
var _ secondary.ProjectRegistry = (*RegistryRepository)(nil)

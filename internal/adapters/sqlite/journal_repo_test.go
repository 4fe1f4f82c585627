package sqlite

import (
	"context"
	"testing"
)

func TestJournalRepository_Write(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewJournalRepository(conn)
	ctx := context.Background()

	if err := repo.LogCreate(ctx, "demo", "clan", "clan-0-alpha"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := repo.LogUpdate(ctx, "demo", "collapse", "win-123", "COLLAPSE: Alpha + Beta → Synth"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM journal WHERE project_id = ?", "demo").Scan(&count); err != nil {
		t.Fatalf("count query: %v", err)
	}
	if count != 2 {
		t.Errorf("journal rows = %d, want 2", count)
	}

	var action, detail string
	err := conn.QueryRow(
		"SELECT action, detail FROM journal WHERE entity_type = 'collapse'",
	).Scan(&action, &detail)
	if err != nil {
		t.Fatalf("detail query: %v", err)
	}
	if action != "update" || detail == "" {
		t.Errorf("action=%q detail=%q", action, detail)
	}
}

func TestJournalRepository_RejectsUnknownEntityType(t *testing.T) {
	repo := NewJournalRepository(setupTestDB(t))

	// The schema constrains entity_type to the known set.
	if err := repo.LogCreate(context.Background(), "demo", "gadget", "g-1"); err == nil {
		t.Error("expected constraint error for unknown entity type, got nil")
	}
}

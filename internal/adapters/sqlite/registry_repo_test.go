package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/example/hearth/internal/ports/secondary"
)

func TestRegistryRepository_RegisterAndGet(t *testing.T) {
	repo := NewRegistryRepository(setupTestDB(t))
	ctx := context.Background()

	err := repo.Register(ctx, &secondary.ProjectRecord{
		ID: "demo", Name: "Demo", Path: "/tmp/demo",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	record, err := repo.GetByID(ctx, "demo")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if record.Name != "Demo" || record.Path != "/tmp/demo" {
		t.Errorf("record = %+v", record)
	}
	if record.CreatedAt == "" {
		t.Error("expected created_at to be populated")
	}
}

func TestRegistryRepository_GetMissing(t *testing.T) {
	repo := NewRegistryRepository(setupTestDB(t))

	_, err := repo.GetByID(context.Background(), "nope")
	if !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRegistryRepository_DuplicatePath(t *testing.T) {
	repo := NewRegistryRepository(setupTestDB(t))
	ctx := context.Background()

	_ = repo.Register(ctx, &secondary.ProjectRecord{ID: "a", Name: "A", Path: "/tmp/same"})
	err := repo.Register(ctx, &secondary.ProjectRecord{ID: "b", Name: "B", Path: "/tmp/same"})
	if err == nil {
		t.Error("expected error for duplicate path, got nil")
	}
}

func TestRegistryRepository_List(t *testing.T) {
	repo := NewRegistryRepository(setupTestDB(t))
	ctx := context.Background()

	_ = repo.Register(ctx, &secondary.ProjectRecord{ID: "a", Name: "A", Path: "/tmp/a"})
	_ = repo.Register(ctx, &secondary.ProjectRecord{ID: "b", Name: "B", Path: "/tmp/b"})

	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(records) != 2 {
		t.Errorf("records = %d, want 2", len(records))
	}
}

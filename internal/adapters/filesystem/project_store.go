// Package filesystem contains the JSON document stores: the project
// document, per-worktree clan state files and standalone constant documents.
package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/hearth/internal/models"
	"github.com/example/hearth/internal/ports/secondary"
)

// ProjectDocument is the filename of the project document at the project root.
const ProjectDocument = "project.json"

// ProjectStore persists the project document as a single JSON file. Saves
// are guarded by an optimistic version counter: a save against a document
// that was rewritten since it was loaded fails with ErrVersionConflict
// instead of silently clobbering the other writer's changes.
type ProjectStore struct{}

// NewProjectStore creates a new project document store.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{}
}

// Load reads the project document from root.
func (s *ProjectStore) Load(root string) (*models.Project, error) {
	path := filepath.Join(root, ProjectDocument)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: project document at %s", secondary.ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read project document: %w", err)
	}

	var project models.Project
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("failed to parse project document: %w", err)
	}
	return &project, nil
}

// Write writes the initial document unconditionally.
func (s *ProjectStore) Write(root string, project *models.Project) error {
	return writeJSON(filepath.Join(root, ProjectDocument), project)
}

// Save rewrites the whole document, provided the stored copy still carries
// expectedVersion. The saved document's Version is expectedVersion+1.
func (s *ProjectStore) Save(root string, project *models.Project, expectedVersion int) error {
	stored, err := s.Load(root)
	if err != nil {
		return err
	}
	if stored.Version != expectedVersion {
		return fmt.Errorf("%w: expected %d, found %d",
			secondary.ErrVersionConflict, expectedVersion, stored.Version)
	}

	project.Version = expectedVersion + 1
	return writeJSON(filepath.Join(root, ProjectDocument), project)
}

// writeJSON marshals v with indentation and writes it to path.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// Ensure ProjectStore implements the interface
var _ secondary.ProjectStore = (*ProjectStore)(nil)

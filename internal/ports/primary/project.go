// Package primary defines the driving-side ports: the service interfaces the
// CLI calls into, with their request/response types.
package primary

import (
	"context"

	"github.com/example/hearth/internal/models"
)

// CreateProjectResponse is returned by ProjectService.CreateProject.
type CreateProjectResponse struct {
	Project *models.Project
	Path    string
}

// ProjectInfo is a registry-level view of a project.
type ProjectInfo struct {
	ID        string
	Name      string
	Path      string
	CreatedAt string
}

// ProjectService manages project lifecycle.
type ProjectService interface {
	// CreateProject creates the on-disk layout, initializes the repository,
	// writes the initial project document and commits it.
	CreateProject(ctx context.Context, name string) (*CreateProjectResponse, error)

	// GetProject loads the full project document by id.
	GetProject(ctx context.Context, projectID string) (*models.Project, error)

	// ListProjects lists registered projects.
	ListProjects(ctx context.Context) ([]*ProjectInfo, error)
}

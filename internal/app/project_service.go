// Package app contains the application services implementing the primary
// ports. Services orchestrate the git adapter, the document stores and the
// registry; business rules live in internal/core.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	coreclan "github.com/example/hearth/internal/core/clan"
	"github.com/example/hearth/internal/models"
	"github.com/example/hearth/internal/ports/primary"
	"github.com/example/hearth/internal/ports/secondary"
)

// projectSubdirs is the fixed per-project directory layout.
var projectSubdirs = []string{"worktrees", "constants", "artifacts", "stamps"}

// ProjectServiceImpl implements the ProjectService interface.
type ProjectServiceImpl struct {
	git      secondary.GitAdapter
	store    secondary.ProjectStore
	registry secondary.ProjectRegistry
	journal  secondary.JournalWriter
	basePath string
}

// NewProjectService creates a new ProjectService with injected dependencies.
// basePath is the directory new project roots are created under; empty means
// ~/hearth.
func NewProjectService(
	git secondary.GitAdapter,
	store secondary.ProjectStore,
	registry secondary.ProjectRegistry,
	journal secondary.JournalWriter,
	basePath string,
) *ProjectServiceImpl {
	return &ProjectServiceImpl{
		git:      git,
		store:    store,
		registry: registry,
		journal:  journal,
		basePath: basePath,
	}
}

// CreateProject creates the on-disk layout, initializes the repository,
// writes the initial project document and commits it.
func (s *ProjectServiceImpl) CreateProject(ctx context.Context, name string) (*primary.CreateProjectResponse, error) {
	id := coreclan.Slug(name)
	if id == "" {
		return nil, fmt.Errorf("project name %q produces an empty id", name)
	}

	root, err := s.resolveRoot(id)
	if err != nil {
		return nil, err
	}

	for _, sub := range projectSubdirs {
		if err := os.MkdirAll(filepath.Join(root, sub), 0755); err != nil {
			return nil, fmt.Errorf("failed to create project directory: %w", err)
		}
	}

	if _, err := s.git.Initialize(ctx, root); err != nil {
		return nil, fmt.Errorf("failed to initialize project repository: %w", err)
	}

	project := &models.Project{
		SchemaVersion: models.SchemaVersion,
		Version:       1,
		ID:            id,
		Name:          name,
		Created:       time.Now().UTC().Format(time.RFC3339),
		Gates:         models.DefaultGates(),
		Clans:         []models.Clan{},
		Windows:       []models.Window{models.RootWindow()},
		ActiveWindow:  models.RootWindowID,
	}
	project.Windows[0].GitCommitAtBirth, _ = s.git.ResolveShortHash(ctx, root)

	if err := s.store.Write(root, project); err != nil {
		return nil, err
	}

	if _, err := s.git.Commit(ctx, root, "project-start: "+name, "project.json"); err != nil {
		return nil, fmt.Errorf("failed to commit project document: %w", err)
	}

	err = s.registry.Register(ctx, &secondary.ProjectRecord{
		ID:   id,
		Name: name,
		Path: root,
	})
	if err != nil {
		return nil, err
	}

	// Journal failures never abort the mutation they describe.
	_ = s.journal.LogCreate(ctx, id, "project", id)

	return &primary.CreateProjectResponse{Project: project, Path: root}, nil
}

// GetProject loads the full project document by id.
func (s *ProjectServiceImpl) GetProject(ctx context.Context, projectID string) (*models.Project, error) {
	record, err := s.registry.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.store.Load(record.Path)
}

// ListProjects lists registered projects.
func (s *ProjectServiceImpl) ListProjects(ctx context.Context) ([]*primary.ProjectInfo, error) {
	records, err := s.registry.List(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]*primary.ProjectInfo, len(records))
	for i, r := range records {
		infos[i] = &primary.ProjectInfo{
			ID:        r.ID,
			Name:      r.Name,
			Path:      r.Path,
			CreatedAt: r.CreatedAt,
		}
	}
	return infos, nil
}

func (s *ProjectServiceImpl) resolveRoot(id string) (string, error) {
	base := s.basePath
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, "hearth")
	}
	return filepath.Join(base, id), nil
}

// Ensure ProjectServiceImpl implements the interface
var _ primary.ProjectService = (*ProjectServiceImpl)(nil)

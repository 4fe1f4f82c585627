package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	coreclan "github.com/example/hearth/internal/core/clan"
	"github.com/example/hearth/internal/models"
	"github.com/example/hearth/internal/ports/primary"
	"github.com/example/hearth/internal/ports/secondary"
)

// ContextFile is the free-text context document written into a new worktree.
const ContextFile = "CONTEXT.md"

// ClanServiceImpl implements the ClanService interface.
type ClanServiceImpl struct {
	git        secondary.GitAdapter
	store      secondary.ProjectStore
	stateStore secondary.ClanStateStore
	registry   secondary.ProjectRegistry
	journal    secondary.JournalWriter
}

// NewClanService creates a new ClanService with injected dependencies.
func NewClanService(
	git secondary.GitAdapter,
	store secondary.ProjectStore,
	stateStore secondary.ClanStateStore,
	registry secondary.ProjectRegistry,
	journal secondary.JournalWriter,
) *ClanServiceImpl {
	return &ClanServiceImpl{
		git:        git,
		store:      store,
		stateStore: stateStore,
		registry:   registry,
		journal:    journal,
	}
}

// AddClan creates a new clan as an independent worktree with its own state
// file, and appends its record to the project document.
func (s *ClanServiceImpl) AddClan(ctx context.Context, req primary.AddClanRequest) (*primary.AddClanResponse, error) {
	record, err := s.registry.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	root := record.Path

	project, err := s.store.Load(root)
	if err != nil {
		return nil, err
	}
	loadedVersion := project.Version

	// Ordinal is the current clan count, which keeps ids unique within the
	// project without a global counter.
	clanID := coreclan.GenerateClanID(len(project.Clans), req.Name)
	branch := coreclan.BranchName(clanID)
	worktree := filepath.Join(root, "worktrees", clanID)

	if err := s.git.AttachWorktree(ctx, root, worktree, branch); err != nil {
		return nil, err
	}

	if err := os.WriteFile(filepath.Join(worktree, ContextFile), []byte(req.Context), 0644); err != nil {
		return nil, fmt.Errorf("failed to write context document: %w", err)
	}

	state := models.NewClanState(clanID, req.Name)
	if err := s.stateStore.Save(worktree, state); err != nil {
		return nil, err
	}

	if _, err := s.git.Commit(ctx, worktree, "clan-start: "+req.Name, ContextFile, "clan.json"); err != nil {
		return nil, err
	}

	clan := models.Clan{
		ID:            clanID,
		Name:          req.Name,
		Branch:        branch,
		Worktree:      worktree,
		State:         models.ClanActive,
		DesktopChatID: uuid.NewString(),
	}
	project.Clans = append(project.Clans, clan)

	if err := s.store.Save(root, project, loadedVersion); err != nil {
		return nil, err
	}

	_ = s.journal.LogCreate(ctx, project.ID, "clan", clanID)

	return &primary.AddClanResponse{Clan: &clan, Worktree: worktree}, nil
}

// ListClans returns the project-facing clan records.
func (s *ClanServiceImpl) ListClans(ctx context.Context, projectID string) ([]models.Clan, error) {
	record, err := s.registry.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	project, err := s.store.Load(record.Path)
	if err != nil {
		return nil, err
	}
	return project.Clans, nil
}

// GetClanState reads a clan's worktree state file.
func (s *ClanServiceImpl) GetClanState(ctx context.Context, projectID, clanID string) (*models.ClanState, error) {
	record, err := s.registry.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	project, err := s.store.Load(record.Path)
	if err != nil {
		return nil, err
	}

	clan := project.FindClan(clanID)
	if clan == nil {
		return nil, fmt.Errorf("clan %s %w", clanID, secondary.ErrNotFound)
	}
	return s.stateStore.Load(clan.Worktree)
}

// Ensure ClanServiceImpl implements the interface
var _ primary.ClanService = (*ClanServiceImpl)(nil)

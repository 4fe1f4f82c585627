package app

import (
	"context"
	"fmt"
	"time"

	coreclan "github.com/example/hearth/internal/core/clan"
	"github.com/example/hearth/internal/core/collapse"
	"github.com/example/hearth/internal/models"
	"github.com/example/hearth/internal/ports/primary"
	"github.com/example/hearth/internal/ports/secondary"
)

// CollapseServiceImpl implements the CollapseService interface. Collapse is
// the only multi-entity transaction in hearth: it freezes each selected clan
// (commit + permanent tag), persists a constant per clan, then folds the
// active window's constants plus the new ones into a freshly created window.
//
// There is no rollback: tags are permanent. Each per-clan freeze is journaled
// (pending before, done after), so a collapse that fails mid-way leaves
// pending rows for the caller to detect and repair.
type CollapseServiceImpl struct {
	git           secondary.GitAdapter
	store         secondary.ProjectStore
	stateStore    secondary.ClanStateStore
	constantStore secondary.ConstantStore
	registry      secondary.ProjectRegistry
	steps         secondary.CollapseStepRepository
	journal       secondary.JournalWriter
}

// NewCollapseService creates a new CollapseService with injected dependencies.
func NewCollapseService(
	git secondary.GitAdapter,
	store secondary.ProjectStore,
	stateStore secondary.ClanStateStore,
	constantStore secondary.ConstantStore,
	registry secondary.ProjectRegistry,
	steps secondary.CollapseStepRepository,
	journal secondary.JournalWriter,
) *CollapseServiceImpl {
	return &CollapseServiceImpl{
		git:           git,
		store:         store,
		stateStore:    stateStore,
		constantStore: constantStore,
		registry:      registry,
		steps:         steps,
		journal:       journal,
	}
}

// Collapse freezes the selected active clans into constants and folds them
// into a new window. Fewer than two valid source clans is a quiet no-op:
// (nil, nil) with no partial effects.
func (s *CollapseServiceImpl) Collapse(ctx context.Context, req primary.CollapseRequest) (*primary.CollapseResponse, error) {
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

	selected := collapse.SelectClans(project, req.ClanIDs)
	if !collapse.CanCollapse(selected) {
		return nil, nil
	}

	parent := project.FindWindow(project.ActiveWindow)
	if parent == nil {
		return nil, fmt.Errorf("active window %s %w", project.ActiveWindow, secondary.ErrNotFound)
	}

	now := time.Now()
	windowID := collapse.GenerateWindowID(now)

	var (
		produced  []models.Constant
		clanNames []string
	)

	for _, c := range selected {
		if result := coreclan.CanFreeze(c.ID, c.State); !result.Allowed {
			return nil, result.Error()
		}

		step := &secondary.CollapseStep{
			CollapseID: windowID,
			ProjectID:  project.ID,
			ClanID:     c.ID,
		}
		if err := s.steps.Begin(ctx, step); err != nil {
			return nil, err
		}

		target := project.FindClan(c.ID)
		target.State = models.ClanFrozen

		// The state file may be absent; the constant then falls back to an
		// empty pin, empty gates and depth 0.
		state, stateErr := s.stateStore.Load(c.Worktree)
		if stateErr == nil && state.State != models.ClanFrozen {
			state.State = models.ClanFrozen
			if err := s.stateStore.Save(c.Worktree, state); err != nil {
				return nil, err
			}
		}

		freezeHash, err := s.git.Commit(ctx, c.Worktree, collapse.FreezeCommitMessage(req.WindowName))
		if err != nil {
			return nil, fmt.Errorf("failed to freeze clan %s: %w", c.ID, err)
		}

		tag := coreclan.ConstantTag(c.ID)
		if err := s.git.Tag(ctx, c.Worktree, tag); err != nil {
			return nil, fmt.Errorf("failed to tag clan %s: %w", c.ID, err)
		}

		constant := collapse.BuildConstant(coreclan.ConstantID(c.ID), c, state, tag, freezeHash)
		if err := s.constantStore.Write(root, c.ID, &constant); err != nil {
			return nil, err
		}

		if err := s.steps.MarkDone(ctx, step.ID, freezeHash, tag); err != nil {
			return nil, err
		}

		produced = append(produced, constant)
		clanNames = append(clanNames, c.Name)
	}

	windowBranch := coreclan.WindowBranch(req.WindowName)
	if err := s.git.Branch(ctx, root, windowBranch); err != nil {
		return nil, err
	}

	mergeHash, err := s.git.Commit(ctx, root,
		collapse.MergeCommitMessage(clanNames, req.WindowName), "constants")
	if err != nil {
		return nil, fmt.Errorf("failed to commit collapse: %w", err)
	}

	window := collapse.FoldWindow(parent, windowID, req.WindowName, windowBranch, mergeHash, produced)
	project.Windows = append(project.Windows, window)
	project.ActiveWindow = window.ID

	if err := s.store.Save(root, project, loadedVersion); err != nil {
		return nil, err
	}

	_ = s.journal.LogCreate(ctx, project.ID, "window", window.ID)
	_ = s.journal.LogUpdate(ctx, project.ID, "collapse", window.ID,
		collapse.MergeCommitMessage(clanNames, req.WindowName))

	return &primary.CollapseResponse{
		WindowID:        window.ID,
		Constants:       produced,
		SynthesisPrompt: collapse.BuildSynthesisPrompt(&window, mergeHash),
		MergeHash:       mergeHash,
	}, nil
}

// PendingSteps reports journaled freeze steps of collapses that never
// completed for the given project.
func (s *CollapseServiceImpl) PendingSteps(ctx context.Context, projectID string) ([]primary.PendingStep, error) {
	steps, err := s.steps.ListPending(ctx, projectID)
	if err != nil {
		return nil, err
	}

	pending := make([]primary.PendingStep, len(steps))
	for i, st := range steps {
		pending[i] = primary.PendingStep{
			CollapseID: st.CollapseID,
			ClanID:     st.ClanID,
			CreatedAt:  st.CreatedAt,
		}
	}
	return pending, nil
}

// Ensure CollapseServiceImpl implements the interface
var _ primary.CollapseService = (*CollapseServiceImpl)(nil)

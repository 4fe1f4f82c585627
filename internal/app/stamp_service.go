package app

import (
	"context"
	"time"

	"github.com/example/hearth/internal/core/stamp"
	"github.com/example/hearth/internal/ports/primary"
	"github.com/example/hearth/internal/ports/secondary"
)

// StampServiceImpl implements the StampService interface. Stamps read the
// same persisted state the other services write but never mutate it; every
// request recomputes the string from scratch.
type StampServiceImpl struct {
	git        secondary.GitAdapter
	store      secondary.ProjectStore
	stateStore secondary.ClanStateStore
	registry   secondary.ProjectRegistry
	// now is injectable for deterministic rendering in tests.
	now func() time.Time
}

// NewStampService creates a new StampService with injected dependencies.
func NewStampService(
	git secondary.GitAdapter,
	store secondary.ProjectStore,
	stateStore secondary.ClanStateStore,
	registry secondary.ProjectRegistry,
) *StampServiceImpl {
	return &StampServiceImpl{
		git:        git,
		store:      store,
		stateStore: stateStore,
		registry:   registry,
		now:        time.Now,
	}
}

// GenerateStamp renders the stamp for a clan, or the fixed sentinel stamp
// when the clan does not exist in the project document.
func (s *StampServiceImpl) GenerateStamp(ctx context.Context, projectID, clanID string) (string, error) {
	record, err := s.registry.GetByID(ctx, projectID)
	if err != nil {
		return "", err
	}

	project, err := s.store.Load(record.Path)
	if err != nil {
		return "", err
	}

	clan := project.FindClan(clanID)
	if clan == nil {
		return stamp.Sentinel, nil
	}

	state, err := s.stateStore.Load(clan.Worktree)
	if err != nil {
		return "", err
	}

	shortHash, err := s.git.ResolveShortHash(ctx, clan.Worktree)
	if err != nil {
		return "", err
	}

	return stamp.Render(clan.Branch, state, shortHash, s.now()), nil
}

// Ensure StampServiceImpl implements the interface
var _ primary.StampService = (*StampServiceImpl)(nil)

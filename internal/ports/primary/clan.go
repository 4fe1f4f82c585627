package primary

import (
	"context"

	"github.com/example/hearth/internal/models"
)

// AddClanRequest carries the inputs for clan creation.
type AddClanRequest struct {
	ProjectID string
	Name      string
	// Context is the free-text context document written into the new
	// worktree alongside the state file.
	Context string
}

// AddClanResponse is returned by ClanService.AddClan.
type AddClanResponse struct {
	Clan     *models.Clan
	Worktree string
}

// ClanService manages branchable units of work.
type ClanService interface {
	// AddClan creates a new clan: worktree on branch clan/<id>, context and
	// state files committed, clan record appended to the project document.
	AddClan(ctx context.Context, req AddClanRequest) (*AddClanResponse, error)

	// ListClans returns the project-facing clan records.
	ListClans(ctx context.Context, projectID string) ([]models.Clan, error)

	// GetClanState reads a clan's worktree state file.
	GetClanState(ctx context.Context, projectID, clanID string) (*models.ClanState, error)
}

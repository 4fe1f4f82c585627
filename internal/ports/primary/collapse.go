package primary

import (
	"context"

	"github.com/example/hearth/internal/models"
)

// CollapseRequest carries the inputs for a collapse.
type CollapseRequest struct {
	ProjectID  string
	ClanIDs    []string
	WindowName string
}

// CollapseResponse is returned by a successful collapse. A collapse with
// fewer than two active source clans returns (nil, nil): a quiet no-op with
// no partial effects.
type CollapseResponse struct {
	WindowID        string
	Constants       []models.Constant
	SynthesisPrompt string
	MergeHash       string
}

// CollapseService freezes active clans into constants and folds them into a
// newly created window. This is the only multi-entity transaction in hearth;
// per-clan freezes are journaled, and a failure mid-way leaves earlier
// freezes committed (tags are permanent) with pending journal rows for the
// caller to repair.
type CollapseService interface {
	Collapse(ctx context.Context, req CollapseRequest) (*CollapseResponse, error)

	// PendingSteps reports journaled freeze steps of collapses that never
	// completed for the given project.
	PendingSteps(ctx context.Context, projectID string) ([]PendingStep, error)
}

// PendingStep is a caller-facing view of an unfinished collapse step.
type PendingStep struct {
	CollapseID string
	ClanID     string
	CreatedAt  string
}

package secondary

import "context"

// ProjectRecord is a row in the cross-project registry, resolving a project
// id to its on-disk root.
type ProjectRecord struct {
	ID        string
	Name      string
	Path      string
	CreatedAt string
}

// ProjectRegistry is the cross-project index kept in the hearth database.
// The per-project JSON document remains the source of truth for project
// contents; the registry only resolves ids to paths.
type ProjectRegistry interface {
	Register(ctx context.Context, record *ProjectRecord) error
	GetByID(ctx context.Context, id string) (*ProjectRecord, error)
	List(ctx context.Context) ([]*ProjectRecord, error)
}

// JournalWriter records entity mutations in the operation journal. Failures
// to journal are reported but must not abort the mutation they describe.
type JournalWriter interface {
	LogCreate(ctx context.Context, projectID, entityType, entityID string) error
	LogUpdate(ctx context.Context, projectID, entityType, entityID, detail string) error
}

// Collapse step status constants.
const (
	StepPending = "pending"
	StepDone    = "done"
)

// CollapseStep is one journaled per-clan freeze step of a collapse. A collapse
// that dies between freezes leaves pending rows behind, which is how a caller
// detects and repairs a partial collapse.
type CollapseStep struct {
	ID         int64
	CollapseID string
	ProjectID  string
	ClanID     string
	FreezeHash string
	Tag        string
	Status     string
	CreatedAt  string
}

// CollapseStepRepository journals per-clan freeze steps.
type CollapseStepRepository interface {
	Begin(ctx context.Context, step *CollapseStep) error
	MarkDone(ctx context.Context, id int64, freezeHash, tag string) error
	ListPending(ctx context.Context, projectID string) ([]*CollapseStep, error)
}

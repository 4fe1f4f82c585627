package secondary

import (
	"errors"

	"github.com/example/hearth/internal/models"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("not found")

// ErrVersionConflict is returned when a project save loses the optimistic
// version check: another writer rewrote the document since it was loaded.
var ErrVersionConflict = errors.New("project document version conflict")

// ErrClanFrozen is returned when a write targets the state file of a clan
// that has already been frozen.
var ErrClanFrozen = errors.New("clan is frozen")

// ProjectStore persists the single project document. Every save rewrites the
// whole document; Save compares the stored version against the version the
// caller loaded and fails with ErrVersionConflict on mismatch.
type ProjectStore interface {
	Load(root string) (*models.Project, error)
	// Save writes project with its Version bumped, provided the stored
	// document still carries expectedVersion.
	Save(root string, project *models.Project, expectedVersion int) error
	// Write writes the initial document unconditionally (project creation).
	Write(root string, project *models.Project) error
}

// ClanStateStore persists the per-worktree clan state file.
type ClanStateStore interface {
	Load(worktree string) (*models.ClanState, error)
	// Save writes the state file. Writes are refused with ErrClanFrozen when
	// the stored state is already frozen, unless the write itself performs
	// the freeze transition.
	Save(worktree string, state *models.ClanState) error
}

// ConstantStore persists standalone constant documents under the project's
// constants/ directory, keyed by the source clan id.
type ConstantStore interface {
	Write(root, clanID string, constant *models.Constant) error
	Read(root, clanID string) (*models.Constant, error)
}

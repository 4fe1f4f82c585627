package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	coreclan "github.com/example/hearth/internal/core/clan"
	"github.com/example/hearth/internal/models"
	"github.com/example/hearth/internal/ports/secondary"
)

// ClanStateFile is the filename of the state document inside each worktree.
const ClanStateFile = "clan.json"

// ClanStateStore persists the per-worktree clan state file.
type ClanStateStore struct{}

// NewClanStateStore creates a new clan state store.
func NewClanStateStore() *ClanStateStore {
	return &ClanStateStore{}
}

// Load reads the state file from a clan's worktree.
func (s *ClanStateStore) Load(worktree string) (*models.ClanState, error) {
	path := filepath.Join(worktree, ClanStateFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: clan state at %s", secondary.ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read clan state: %w", err)
	}

	var state models.ClanState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse clan state: %w", err)
	}
	return &state, nil
}

// Save writes the state file. A frozen clan's state file is immutable: the
// write is refused unless the write itself performs the freeze transition.
func (s *ClanStateStore) Save(worktree string, state *models.ClanState) error {
	if stored, err := s.Load(worktree); err == nil {
		if result := coreclan.CanWriteState(state.ID, stored.State); !result.Allowed {
			return fmt.Errorf("%w: %s", secondary.ErrClanFrozen, result.Reason)
		}
	}
	return writeJSON(filepath.Join(worktree, ClanStateFile), state)
}

// Ensure ClanStateStore implements the interface
var _ secondary.ClanStateStore = (*ClanStateStore)(nil)

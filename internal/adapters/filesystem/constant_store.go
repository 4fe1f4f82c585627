package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/hearth/internal/models"
	"github.com/example/hearth/internal/ports/secondary"
)

// ConstantsDir is the per-project directory holding standalone constant
// documents, keyed by source clan id.
const ConstantsDir = "constants"

// ConstantStore persists constant documents. Constants are append-only and
// never rewritten after creation.
type ConstantStore struct{}

// NewConstantStore creates a new constant store.
func NewConstantStore() *ConstantStore {
	return &ConstantStore{}
}

// Write persists a constant under constants/<clanID>.json.
func (s *ConstantStore) Write(root, clanID string, constant *models.Constant) error {
	dir := filepath.Join(root, ConstantsDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create constants directory: %w", err)
	}
	return writeJSON(filepath.Join(dir, clanID+".json"), constant)
}

// Read retrieves a constant document by source clan id.
func (s *ConstantStore) Read(root, clanID string) (*models.Constant, error) {
	path := filepath.Join(root, ConstantsDir, clanID+".json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: constant at %s", secondary.ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read constant: %w", err)
	}

	var constant models.Constant
	if err := json.Unmarshal(data, &constant); err != nil {
		return nil, fmt.Errorf("failed to parse constant: %w", err)
	}
	return &constant, nil
}

// Ensure ConstantStore implements the interface
var _ secondary.ConstantStore = (*ConstantStore)(nil)

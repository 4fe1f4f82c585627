package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	coreclan "github.com/example/hearth/internal/core/clan"
	"github.com/example/hearth/internal/models"
	"github.com/example/hearth/internal/ports/secondary"
)

// Ensure mocks implement the interfaces
var (
	_ secondary.GitAdapter             = (*mockGitAdapter)(nil)
	_ secondary.ProjectStore           = (*mockProjectStore)(nil)
	_ secondary.ClanStateStore         = (*mockClanStateStore)(nil)
	_ secondary.ConstantStore          = (*mockConstantStore)(nil)
	_ secondary.ProjectRegistry        = (*mockRegistry)(nil)
	_ secondary.JournalWriter          = (*mockJournal)(nil)
	_ secondary.CollapseStepRepository = (*mockStepRepo)(nil)
)

// mockGitAdapter records git calls and hands out sequential short hashes.
type mockGitAdapter struct {
	commits   []string // messages, in call order
	tags      []string
	branches  []string
	worktrees []string
	hashSeq   int
	commitErr error
}

func newMockGitAdapter() *mockGitAdapter {
	return &mockGitAdapter{}
}

func (m *mockGitAdapter) nextHash() string {
	m.hashSeq++
	return fmt.Sprintf("hash%03d", m.hashSeq)
}

func (m *mockGitAdapter) Initialize(ctx context.Context, dir string) (string, error) {
	return m.nextHash(), nil
}

func (m *mockGitAdapter) Branch(ctx context.Context, dir, name string) error {
	m.branches = append(m.branches, name)
	return nil
}

func (m *mockGitAdapter) AttachWorktree(ctx context.Context, dir, path, branch string) error {
	// The real backend creates the worktree directory; callers write into it.
	if err := os.MkdirAll(path, 0755); err != nil {
		return err
	}
	m.worktrees = append(m.worktrees, path)
	return nil
}

func (m *mockGitAdapter) Commit(ctx context.Context, dir, message string, files ...string) (string, error) {
	if m.commitErr != nil {
		return "", m.commitErr
	}
	m.commits = append(m.commits, message)
	return m.nextHash(), nil
}

func (m *mockGitAdapter) Tag(ctx context.Context, dir, name string) error {
	m.tags = append(m.tags, name)
	return nil
}

func (m *mockGitAdapter) ResolveShortHash(ctx context.Context, dir string) (string, error) {
	if m.hashSeq == 0 {
		return secondary.UnknownHash, nil
	}
	return fmt.Sprintf("hash%03d", m.hashSeq), nil
}

// mockProjectStore keeps project documents in memory with the same version
// semantics as the filesystem store. Load returns a deep copy, as a file
// read would.
type mockProjectStore struct {
	projects map[string]*models.Project
	saves    int
}

func newMockProjectStore() *mockProjectStore {
	return &mockProjectStore{projects: make(map[string]*models.Project)}
}

func copyProject(p *models.Project) *models.Project {
	data, _ := json.Marshal(p)
	var out models.Project
	_ = json.Unmarshal(data, &out)
	return &out
}

func (m *mockProjectStore) Load(root string) (*models.Project, error) {
	p, ok := m.projects[root]
	if !ok {
		return nil, fmt.Errorf("project document at %s %w", root, secondary.ErrNotFound)
	}
	return copyProject(p), nil
}

func (m *mockProjectStore) Write(root string, project *models.Project) error {
	m.projects[root] = copyProject(project)
	return nil
}

func (m *mockProjectStore) Save(root string, project *models.Project, expectedVersion int) error {
	stored, ok := m.projects[root]
	if !ok {
		return secondary.ErrNotFound
	}
	if stored.Version != expectedVersion {
		return fmt.Errorf("%w: expected %d, found %d", secondary.ErrVersionConflict, expectedVersion, stored.Version)
	}
	project.Version = expectedVersion + 1
	m.projects[root] = copyProject(project)
	m.saves++
	return nil
}

// mockClanStateStore keeps clan state files in memory, refusing writes to
// frozen clans like the real store.
type mockClanStateStore struct {
	states map[string]*models.ClanState
}

func newMockClanStateStore() *mockClanStateStore {
	return &mockClanStateStore{states: make(map[string]*models.ClanState)}
}

func (m *mockClanStateStore) Load(worktree string) (*models.ClanState, error) {
	s, ok := m.states[worktree]
	if !ok {
		return nil, fmt.Errorf("clan state at %s %w", worktree, secondary.ErrNotFound)
	}
	copied := *s
	copied.Gates = append([]models.Gate(nil), s.Gates...)
	return &copied, nil
}

func (m *mockClanStateStore) Save(worktree string, state *models.ClanState) error {
	if stored, ok := m.states[worktree]; ok {
		if result := coreclan.CanWriteState(state.ID, stored.State); !result.Allowed {
			return fmt.Errorf("%w: %s", secondary.ErrClanFrozen, result.Reason)
		}
	}
	copied := *state
	copied.Gates = append([]models.Gate(nil), state.Gates...)
	m.states[worktree] = &copied
	return nil
}

// mockConstantStore keeps constant documents in memory.
type mockConstantStore struct {
	constants map[string]*models.Constant // key: root + "/" + clanID
}

func newMockConstantStore() *mockConstantStore {
	return &mockConstantStore{constants: make(map[string]*models.Constant)}
}

func (m *mockConstantStore) Write(root, clanID string, constant *models.Constant) error {
	copied := *constant
	m.constants[root+"/"+clanID] = &copied
	return nil
}

func (m *mockConstantStore) Read(root, clanID string) (*models.Constant, error) {
	c, ok := m.constants[root+"/"+clanID]
	if !ok {
		return nil, secondary.ErrNotFound
	}
	return c, nil
}

// mockRegistry keeps project records in memory.
type mockRegistry struct {
	records map[string]*secondary.ProjectRecord
}

func newMockRegistry() *mockRegistry {
	return &mockRegistry{records: make(map[string]*secondary.ProjectRecord)}
}

func (m *mockRegistry) Register(ctx context.Context, record *secondary.ProjectRecord) error {
	m.records[record.ID] = record
	return nil
}

func (m *mockRegistry) GetByID(ctx context.Context, id string) (*secondary.ProjectRecord, error) {
	r, ok := m.records[id]
	if !ok {
		return nil, fmt.Errorf("project %s %w", id, secondary.ErrNotFound)
	}
	return r, nil
}

func (m *mockRegistry) List(ctx context.Context) ([]*secondary.ProjectRecord, error) {
	var out []*secondary.ProjectRecord
	for _, r := range m.records {
		out = append(out, r)
	}
	return out, nil
}

// mockJournal records journal entries.
type mockJournal struct {
	entries []string
}

func newMockJournal() *mockJournal {
	return &mockJournal{}
}

func (m *mockJournal) LogCreate(ctx context.Context, projectID, entityType, entityID string) error {
	m.entries = append(m.entries, fmt.Sprintf("create %s %s/%s", entityType, projectID, entityID))
	return nil
}

func (m *mockJournal) LogUpdate(ctx context.Context, projectID, entityType, entityID, detail string) error {
	m.entries = append(m.entries, fmt.Sprintf("update %s %s/%s", entityType, projectID, entityID))
	return nil
}

// mockStepRepo records collapse steps in memory.
type mockStepRepo struct {
	steps  []*secondary.CollapseStep
	nextID int64
}

func newMockStepRepo() *mockStepRepo {
	return &mockStepRepo{}
}

func (m *mockStepRepo) Begin(ctx context.Context, step *secondary.CollapseStep) error {
	m.nextID++
	step.ID = m.nextID
	step.Status = secondary.StepPending
	m.steps = append(m.steps, step)
	return nil
}

func (m *mockStepRepo) MarkDone(ctx context.Context, id int64, freezeHash, tag string) error {
	for _, s := range m.steps {
		if s.ID == id {
			s.Status = secondary.StepDone
			s.FreezeHash = freezeHash
			s.Tag = tag
			return nil
		}
	}
	return secondary.ErrNotFound
}

func (m *mockStepRepo) ListPending(ctx context.Context, projectID string) ([]*secondary.CollapseStep, error) {
	var out []*secondary.CollapseStep
	for _, s := range m.steps {
		if s.ProjectID == projectID && s.Status == secondary.StepPending {
			out = append(out, s)
		}
	}
	return out, nil
}

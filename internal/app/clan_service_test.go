package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/hearth/internal/models"
	"github.com/example/hearth/internal/ports/primary"
	"github.com/example/hearth/internal/ports/secondary"
)

// ============================================================================
// Test Helper
// ============================================================================

type clanTestEnv struct {
	service    *ClanServiceImpl
	git        *mockGitAdapter
	store      *mockProjectStore
	stateStore *mockClanStateStore
	registry   *mockRegistry
}

func newTestClanService(t *testing.T) *clanTestEnv {
	t.Helper()

	git := newMockGitAdapter()
	store := newMockProjectStore()
	stateStore := newMockClanStateStore()
	registry := newMockRegistry()

	// Seed a project the way CreateProject would.
	root := t.TempDir()
	_ = registry.Register(context.Background(), &secondary.ProjectRecord{
		ID: "demo", Name: "Demo", Path: root,
	})
	_ = store.Write(root, &models.Project{
		SchemaVersion: models.SchemaVersion,
		Version:       1,
		ID:            "demo",
		Name:          "Demo",
		Gates:         models.DefaultGates(),
		Clans:         []models.Clan{},
		Windows:       []models.Window{models.RootWindow()},
		ActiveWindow:  models.RootWindowID,
	})

	return &clanTestEnv{
		service:    NewClanService(git, store, stateStore, registry, newMockJournal()),
		git:        git,
		store:      store,
		stateStore: stateStore,
		registry:   registry,
	}
}

// ============================================================================
// AddClan Tests
// ============================================================================

func TestAddClan_InitialState(t *testing.T) {
	env := newTestClanService(t)
	ctx := context.Background()

	resp, err := env.service.AddClan(ctx, primary.AddClanRequest{
		ProjectID: "demo",
		Name:      "Alpha",
		Context:   "explore the auth flow",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if resp.Clan.ID != "clan-0-alpha" {
		t.Errorf("clan id = %q, want clan-0-alpha", resp.Clan.ID)
	}
	if resp.Clan.Branch != "clan/clan-0-alpha" {
		t.Errorf("branch = %q", resp.Clan.Branch)
	}
	if resp.Clan.State != models.ClanActive {
		t.Errorf("state = %q, want active", resp.Clan.State)
	}
	if resp.Clan.DesktopChatID == "" {
		t.Error("expected a desktop chat id to be assigned")
	}

	// Context document lands inside the attached worktree.
	contextDoc, err := os.ReadFile(filepath.Join(resp.Worktree, ContextFile))
	if err != nil {
		t.Fatalf("context document not written: %v", err)
	}
	if string(contextDoc) != "explore the auth flow" {
		t.Errorf("context = %q", contextDoc)
	}

	// State file written with the initial values.
	state, err := env.stateStore.Load(resp.Worktree)
	if err != nil {
		t.Fatalf("state file not written: %v", err)
	}
	if state.Depth != 0 {
		t.Errorf("depth = %d, want 0", state.Depth)
	}
	if state.State != models.ClanActive {
		t.Errorf("state = %q, want active", state.State)
	}
	if len(state.Gates) != 0 {
		t.Errorf("gates = %d, want 0", len(state.Gates))
	}
	if state.Pin != "" {
		t.Errorf("pin = %q, want empty", state.Pin)
	}
}

func TestAddClan_OrdinalGrowsWithClanCount(t *testing.T) {
	env := newTestClanService(t)
	ctx := context.Background()

	first, err := env.service.AddClan(ctx, primary.AddClanRequest{ProjectID: "demo", Name: "Alpha"})
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	second, err := env.service.AddClan(ctx, primary.AddClanRequest{ProjectID: "demo", Name: "Beta"})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if first.Clan.ID != "clan-0-alpha" || second.Clan.ID != "clan-1-beta" {
		t.Errorf("ids = %s, %s", first.Clan.ID, second.Clan.ID)
	}
}

func TestAddClan_CommitsAndAppendsToProject(t *testing.T) {
	env := newTestClanService(t)
	ctx := context.Background()

	if _, err := env.service.AddClan(ctx, primary.AddClanRequest{ProjectID: "demo", Name: "Alpha"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(env.git.worktrees) != 1 {
		t.Errorf("worktrees attached = %d, want 1", len(env.git.worktrees))
	}
	found := false
	for _, msg := range env.git.commits {
		if strings.HasPrefix(msg, "clan-start: Alpha") {
			found = true
		}
	}
	if !found {
		t.Errorf("no clan-start commit in %v", env.git.commits)
	}

	clans, err := env.service.ListClans(ctx, "demo")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(clans) != 1 || clans[0].ID != "clan-0-alpha" {
		t.Errorf("clans = %+v", clans)
	}
}

func TestAddClan_UnknownProject(t *testing.T) {
	env := newTestClanService(t)

	_, err := env.service.AddClan(context.Background(), primary.AddClanRequest{ProjectID: "ghost", Name: "Alpha"})
	if err == nil {
		t.Fatal("expected error for unknown project, got nil")
	}
}

// ============================================================================
// GetClanState Tests
// ============================================================================

func TestGetClanState(t *testing.T) {
	env := newTestClanService(t)
	ctx := context.Background()

	if _, err := env.service.AddClan(ctx, primary.AddClanRequest{ProjectID: "demo", Name: "Alpha"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	state, err := env.service.GetClanState(ctx, "demo", "clan-0-alpha")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if state.ID != "clan-0-alpha" || state.Depth != 0 {
		t.Errorf("state = %+v", state)
	}

	if _, err := env.service.GetClanState(ctx, "demo", "clan-9-ghost"); err == nil {
		t.Fatal("expected error for unknown clan, got nil")
	}
}

package models

// Clan state constants
const (
	ClanActive = "active"
	ClanFrozen = "frozen"
)

// Clan is the project-facing record of a branchable unit of work. The mutable
// working state lives in the clan's own worktree (see ClanState), decoupled
// from the project document.
type Clan struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Branch        string `json:"branch"`
	Worktree      string `json:"worktree"`
	State         string `json:"state"`
	DesktopChatID string `json:"desktopChatId"`
}

// ClanState is the per-worktree state file (clan.json inside the worktree).
type ClanState struct {
	SchemaVersion int    `json:"schemaVersion"`
	ID            string `json:"id"`
	Name          string `json:"name"`
	Depth         int    `json:"depth"`
	Pin           string `json:"pin"`
	State         string `json:"state"`
	Gates         []Gate `json:"gates"`
}

// NewClanState returns the initial state for a freshly created clan.
func NewClanState(id, name string) *ClanState {
	return &ClanState{
		SchemaVersion: SchemaVersion,
		ID:            id,
		Name:          name,
		Depth:         0,
		Pin:           "",
		State:         ClanActive,
		Gates:         []Gate{},
	}
}

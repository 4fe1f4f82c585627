// Package models contains the typed persisted documents for hearth entities.
// Every document carries a schemaVersion so readers can detect drift between
// what the collapse engine writes and what the stamp formatter expects.
package models

// SchemaVersion is the current version of all persisted hearth documents.
const SchemaVersion = 1

// Gate state constants
const (
	GateOpen = "open"
	GateYes  = "yes"
	GateNo   = "no"
	GateHalf = "half"
)

// Gate is one entry in a project's fixed five-gate template, or in a clan's
// per-worktree checklist (where Question is left empty).
type Gate struct {
	Letter   string `json:"letter"`
	Question string `json:"question,omitempty"`
	State    string `json:"state"`
}

// Project is the root container document, persisted as a single JSON file at
// the project root. Every mutation rewrites the whole document; Version is an
// optimistic counter bumped on each save.
type Project struct {
	SchemaVersion int      `json:"schemaVersion"`
	Version       int      `json:"version"`
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Created       string   `json:"created"`
	Gates         []Gate   `json:"gates"`
	Clans         []Clan   `json:"clans"`
	Windows       []Window `json:"windows"`
	ActiveWindow  string   `json:"activeWindow"`
}

// DefaultGates returns the fixed five-gate template, all open.
func DefaultGates() []Gate {
	return []Gate{
		{Letter: "A", Question: "Is the goal understood?", State: GateOpen},
		{Letter: "B", Question: "Is the approach agreed?", State: GateOpen},
		{Letter: "C", Question: "Is the work reviewed?", State: GateOpen},
		{Letter: "D", Question: "Are the checks passing?", State: GateOpen},
		{Letter: "E", Question: "Is it ready to collapse?", State: GateOpen},
	}
}

// FindClan returns the clan with the given id, or nil.
func (p *Project) FindClan(id string) *Clan {
	for i := range p.Clans {
		if p.Clans[i].ID == id {
			return &p.Clans[i]
		}
	}
	return nil
}

// FindWindow returns the window with the given id, or nil.
func (p *Project) FindWindow(id string) *Window {
	for i := range p.Windows {
		if p.Windows[i].ID == id {
			return &p.Windows[i]
		}
	}
	return nil
}

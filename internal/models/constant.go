package models

// Constant is an immutable snapshot of one frozen clan. Constants are
// append-only; each is also persisted as its own standalone document under
// constants/<clanID>.json for independent retrieval.
type Constant struct {
	SchemaVersion int    `json:"schemaVersion"`
	ID            string `json:"id"`
	SourceName    string `json:"sourceName"`
	Summary       string `json:"summary"`
	GateSnapshot  []Gate `json:"gateSnapshot"`
	GitTag        string `json:"gitTag"`
	GitCommit     string `json:"gitCommit"`
	Depth         int    `json:"depth"`
}

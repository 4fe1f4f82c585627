package db

// SchemaSQL is the complete schema for fresh hearth installs.
//
// This is the single source of truth for the database schema. All repository
// tests load it via GetSchemaSQL() against an in-memory database, so a
// repository referencing a column that does not exist here fails immediately
// with "no such column".
//
// The per-project JSON documents remain the source of truth for project
// contents; these tables are the cross-project layer: id-to-path resolution,
// the operation journal, and the collapse step journal.
const SchemaSQL = `
-- Projects (registry: id to on-disk root)
CREATE TABLE IF NOT EXISTS projects (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	path TEXT NOT NULL UNIQUE,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Operation journal (entity mutations)
CREATE TABLE IF NOT EXISTS journal (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	project_id TEXT NOT NULL,
	entity_type TEXT NOT NULL CHECK(entity_type IN ('project', 'clan', 'window', 'constant', 'collapse')),
	entity_id TEXT NOT NULL,
	action TEXT NOT NULL CHECK(action IN ('create', 'update')),
	detail TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Collapse steps (per-clan freeze journal; pending rows mark a collapse
-- that died mid-way)
CREATE TABLE IF NOT EXISTS collapse_steps (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	collapse_id TEXT NOT NULL,
	project_id TEXT NOT NULL,
	clan_id TEXT NOT NULL,
	freeze_hash TEXT,
	tag TEXT,
	status TEXT NOT NULL CHECK(status IN ('pending', 'done')) DEFAULT 'pending',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_journal_project ON journal(project_id);
CREATE INDEX IF NOT EXISTS idx_collapse_steps_project ON collapse_steps(project_id, status);
`

// GetSchemaSQL returns the authoritative schema SQL.
func GetSchemaSQL() string {
	return SchemaSQL
}

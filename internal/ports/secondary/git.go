// Package secondary defines the driven-side ports: interfaces implemented by
// adapters (git, filesystem stores, sqlite registry).
package secondary

import "context"

// UnknownHash is the sentinel returned by ResolveShortHash when a directory
// has no history yet. Callers must treat it as "unknown", never as a valid
// reference.
const UnknownHash = "0000000"

// GitAdapter wraps the external version-control backend with the six
// primitives hearth needs. The backend is assumed available and correct;
// hearth is not a version-control system.
type GitAdapter interface {
	// Initialize creates the backend store at dir with an empty first commit,
	// so a hash always exists to branch from. Returns the short hash of that
	// commit.
	Initialize(ctx context.Context, dir string) (string, error)

	// Branch creates a branch at dir's current HEAD.
	Branch(ctx context.Context, dir, name string) error

	// AttachWorktree attaches a worktree for branch at path. Idempotent with
	// respect to branch existence: if the branch already exists, creation is
	// skipped and the attach proceeds.
	AttachWorktree(ctx context.Context, dir, path, branch string) error

	// Commit stages the given files (creating parents and empty placeholders
	// for any that are absent) and commits with --allow-empty, so a fresh
	// commit is always produced even when no bytes changed. A nothing-to-commit
	// condition from the backend is swallowed. Returns the new short hash.
	Commit(ctx context.Context, dir, message string, files ...string) (string, error)

	// Tag creates a permanent tag at dir's current HEAD.
	Tag(ctx context.Context, dir, name string) error

	// ResolveShortHash returns the short hash of dir's HEAD, or UnknownHash
	// when there is no history.
	ResolveShortHash(ctx context.Context, dir string) (string, error)
}

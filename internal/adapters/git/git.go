// Package git implements secondary.GitAdapter by shelling out to the git
// binary. The backend is treated as external and correct; this adapter only
// wraps the six primitives hearth needs.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/example/hearth/internal/ports/secondary"
)

// Adapter is the exec-based git adapter.
type Adapter struct{}

// NewAdapter creates a new git adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Initialize creates the repository at dir with an empty first commit, so a
// hash always exists to branch from. Returns the short hash of that commit.
func (a *Adapter) Initialize(ctx context.Context, dir string) (string, error) {
	if err := a.run(ctx, dir, "init", "-b", "main"); err != nil {
		return "", fmt.Errorf("failed to initialize repository: %w", err)
	}
	err := a.run(ctx, dir,
		"-c", "user.name=hearth", "-c", "user.email=hearth@localhost",
		"commit", "--allow-empty", "-m", "hearth: init")
	if err != nil {
		return "", fmt.Errorf("failed to create initial commit: %w", err)
	}
	return a.ResolveShortHash(ctx, dir)
}

// Branch creates a branch at dir's current HEAD.
func (a *Adapter) Branch(ctx context.Context, dir, name string) error {
	if err := a.run(ctx, dir, "branch", name); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", name, err)
	}
	return nil
}

// AttachWorktree attaches a worktree for branch at path. If the branch
// already exists, creation is skipped and the existing branch is attached,
// so clan setup can be re-run without manual cleanup.
func (a *Adapter) AttachWorktree(ctx context.Context, dir, path, branch string) error {
	exists := a.run(ctx, dir, "rev-parse", "--verify", "--quiet", "refs/heads/"+branch) == nil

	var err error
	if exists {
		err = a.run(ctx, dir, "worktree", "add", path, branch)
	} else {
		err = a.run(ctx, dir, "worktree", "add", path, "-b", branch)
	}
	if err != nil {
		return fmt.Errorf("failed to attach worktree at %s: %w", path, err)
	}
	return nil
}

// Commit stages the given files and commits with --allow-empty, so a fresh
// commit is always produced even when no bytes changed. Absent files are
// created as empty placeholders (with parent directories) so a commit target
// always exists. A nothing-to-commit condition is swallowed.
func (a *Adapter) Commit(ctx context.Context, dir, message string, files ...string) (string, error) {
	for _, f := range files {
		if err := touch(filepath.Join(dir, f)); err != nil {
			return "", fmt.Errorf("failed to touch %s: %w", f, err)
		}
	}

	addArgs := append([]string{"add", "--"}, files...)
	if len(files) == 0 {
		addArgs = []string{"add", "-A"}
	}
	if err := a.run(ctx, dir, addArgs...); err != nil {
		return "", fmt.Errorf("failed to stage files: %w", err)
	}

	err := a.run(ctx, dir,
		"-c", "user.name=hearth", "-c", "user.email=hearth@localhost",
		"commit", "--allow-empty", "-m", message)
	if err != nil && !strings.Contains(err.Error(), "nothing to commit") {
		return "", fmt.Errorf("failed to commit: %w", err)
	}

	return a.ResolveShortHash(ctx, dir)
}

// Tag creates a permanent tag at dir's current HEAD.
func (a *Adapter) Tag(ctx context.Context, dir, name string) error {
	if err := a.run(ctx, dir, "tag", name); err != nil {
		return fmt.Errorf("failed to tag %s: %w", name, err)
	}
	return nil
}

// ResolveShortHash returns the short hash of dir's HEAD, or the all-zero
// sentinel when the directory has no history yet.
func (a *Adapter) ResolveShortHash(ctx context.Context, dir string) (string, error) {
	output, err := a.runOutput(ctx, dir, "rev-parse", "--short", "HEAD")
	if err != nil {
		return secondary.UnknownHash, nil
	}
	return strings.TrimSpace(output), nil
}

// touch creates an empty placeholder at path if absent, including parents.
func touch(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, nil, 0644)
}

// run executes a git command in dir and returns an error if it fails.
func (a *Adapter) run(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s", err, stderr.String())
	}
	return nil
}

// runOutput executes a git command in dir and returns its stdout.
func (a *Adapter) runOutput(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %s", err, stderr.String())
	}
	return stdout.String(), nil
}

// Ensure Adapter implements the interface
var _ secondary.GitAdapter = (*Adapter)(nil)

// Package tmux wraps the gotmux library for opening clan worktrees in tmux
// windows.
package tmux

import (
	"fmt"

	"github.com/GianlucaP106/gotmux/gotmux"
)

// Adapter wraps gotmux for session and window management.
type Adapter struct {
	tmux *gotmux.Tmux
}

// NewAdapter creates a new gotmux adapter.
func NewAdapter() (*Adapter, error) {
	t, err := gotmux.DefaultTmux()
	if err != nil {
		return nil, fmt.Errorf("failed to create tmux client: %w", err)
	}
	return &Adapter{tmux: t}, nil
}

// OpenClanWindow opens a window named after the clan in the given session,
// starting in the clan's worktree. The session is created if absent.
func (a *Adapter) OpenClanWindow(sessionName, clanName, worktree string) error {
	session, err := a.getSession(sessionName)
	if err != nil {
		return err
	}

	if session == nil {
		session, err = a.tmux.NewSession(&gotmux.SessionOptions{
			Name:           sessionName,
			StartDirectory: worktree,
		})
		if err != nil {
			return fmt.Errorf("failed to create session %s: %w", sessionName, err)
		}

		// Rename the auto-created first window instead of adding a second.
		windows, err := session.ListWindows()
		if err != nil || len(windows) == 0 {
			return fmt.Errorf("failed to get initial window: %w", err)
		}
		if err := windows[0].Rename(clanName); err != nil {
			return fmt.Errorf("failed to rename window: %w", err)
		}
		return nil
	}

	_, err = session.NewWindow(&gotmux.NewWindowOptions{
		WindowName:     clanName,
		StartDirectory: worktree,
		DoNotAttach:    true,
	})
	if err != nil {
		return fmt.Errorf("failed to create window %s: %w", clanName, err)
	}
	return nil
}

// SessionExists checks if a tmux session exists.
func (a *Adapter) SessionExists(name string) bool {
	session, err := a.getSession(name)
	return err == nil && session != nil
}

func (a *Adapter) getSession(name string) (*gotmux.Session, error) {
	sessions, err := a.tmux.ListSessions()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	for _, s := range sessions {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, nil
}

package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/hearth/internal/config"
	"github.com/example/hearth/internal/models"
	"github.com/example/hearth/internal/ports/primary"
	"github.com/example/hearth/internal/tmux"
	"github.com/example/hearth/internal/wire"
)

// ClanCmd returns the clan command
func ClanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clan",
		Short: "Manage clans (parallel units of work)",
		Long:  `Create and manage clans - branchable units of work, each in its own worktree.`,
	}

	cmd.AddCommand(clanAddCmd())
	cmd.AddCommand(clanListCmd())
	cmd.AddCommand(clanOpenCmd())

	return cmd
}

func clanAddCmd() *cobra.Command {
	var contextText string

	cmd := &cobra.Command{
		Use:   "add [project-id] [name]",
		Short: "Add a new clan to a project",
		Long: `Add a new clan with its own branch and worktree.

This command:
1. Attaches a worktree on branch clan/<id> under worktrees/
2. Writes CONTEXT.md and the clan state file (depth 0, active)
3. Commits both and appends the clan to the project document

Examples:
  hearth clan add demo "Alpha"
  hearth clan add demo "Beta" --context "explore the other approach"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.ClanService().AddClan(cmd.Context(), primary.AddClanRequest{
				ProjectID: args[0],
				Name:      args[1],
				Context:   contextText,
			})
			if err != nil {
				return fmt.Errorf("failed to add clan: %w", err)
			}

			fmt.Printf("✓ Created clan %s: %s\n", resp.Clan.ID, resp.Clan.Name)
			fmt.Printf("  Branch:   %s\n", resp.Clan.Branch)
			fmt.Printf("  Worktree: %s\n", resp.Worktree)
			fmt.Printf("  Chat:     %s\n", resp.Clan.DesktopChatID)
			fmt.Println()
			fmt.Printf("Start working: cd %s\n", resp.Worktree)

			return nil
		},
	}

	cmd.Flags().StringVarP(&contextText, "context", "c", "", "Free-text context written to CONTEXT.md")

	return cmd
}

func clanListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [project-id]",
		Short: "List a project's clans",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clans, err := wire.ClanService().ListClans(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list clans: %w", err)
			}

			if len(clans) == 0 {
				fmt.Println("No clans found.")
				fmt.Println()
				fmt.Printf("Add one: hearth clan add %s <name>\n", args[0])
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tBRANCH\tSTATE\tWORKTREE")
			fmt.Fprintln(w, "--\t----\t------\t-----\t--------")
			for _, c := range clans {
				state := c.State
				if c.State == models.ClanFrozen {
					state = color.New(color.FgCyan).Sprint(c.State)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Branch, state, c.Worktree)
			}
			w.Flush()
			return nil
		},
	}
}

func clanOpenCmd() *cobra.Command {
	var (
		sessionName string
		saveSession bool
	)

	cmd := &cobra.Command{
		Use:   "open [project-id] [clan-id]",
		Short: "Open a clan's worktree in a tmux window",
		Long: `Open a clan by creating a tmux window starting in its worktree.
The session is created if it does not exist yet.

Examples:
  hearth clan open demo clan-0-alpha
  hearth clan open demo clan-1-beta --session work
  hearth clan open demo clan-1-beta --session work --save`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The config's tmux_session applies unless --session overrides it.
			if !cmd.Flags().Changed("session") {
				if cfg, err := config.LoadConfig(); err == nil && cfg.TmuxSession != "" {
					sessionName = cfg.TmuxSession
				}
			}

			clans, err := wire.ClanService().ListClans(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list clans: %w", err)
			}

			var clan *models.Clan
			for i := range clans {
				if clans[i].ID == args[1] {
					clan = &clans[i]
					break
				}
			}
			if clan == nil {
				return fmt.Errorf("clan %s not found in project %s", args[1], args[0])
			}

			if _, err := os.Stat(clan.Worktree); os.IsNotExist(err) {
				return fmt.Errorf("clan worktree not found at %s", clan.Worktree)
			}

			adapter, err := tmux.NewAdapter()
			if err != nil {
				return err
			}
			creating := !adapter.SessionExists(sessionName)
			if err := adapter.OpenClanWindow(sessionName, clan.Name, clan.Worktree); err != nil {
				return fmt.Errorf("failed to open clan window: %w", err)
			}

			if saveSession {
				cfg, err := config.LoadConfig()
				if err != nil {
					return err
				}
				cfg.TmuxSession = sessionName
				if err := config.SaveConfig(cfg); err != nil {
					return fmt.Errorf("failed to save session to config: %w", err)
				}
			}

			if creating {
				fmt.Printf("✓ Created session %s\n", sessionName)
			}
			fmt.Printf("✓ Opened clan %s (%s)\n", clan.ID, clan.Name)
			fmt.Printf("  Window: %s:%s\n", sessionName, clan.Name)
			fmt.Printf("  Path: %s\n", clan.Worktree)

			return nil
		},
	}

	cmd.Flags().StringVarP(&sessionName, "session", "s", "hearth", "tmux session to open the window in (overrides config tmux_session)")
	cmd.Flags().BoolVar(&saveSession, "save", false, "remember the session as config tmux_session")

	return cmd
}

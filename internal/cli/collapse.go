package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/hearth/internal/ports/primary"
	"github.com/example/hearth/internal/wire"
)

// CollapseCmd returns the collapse command
func CollapseCmd() *cobra.Command {
	var clanIDs []string

	cmd := &cobra.Command{
		Use:   "collapse [project-id] [window-name]",
		Short: "Freeze clans into constants and fold them into a new window",
		Long: `Collapse a set of active clans into immutable constants.

Each selected clan is frozen (commit + permanent const/<clan-id> tag), its
pin and gate checklist are snapshotted into a constant, and a new window is
created whose constant list extends the active window's. Fewer than two
valid source clans is a quiet no-op.

Examples:
  hearth collapse demo "Synth" --clans clan-0-alpha,clan-1-beta`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, windowName := args[0], args[1]

			pending, err := wire.CollapseService().PendingSteps(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			for _, p := range pending {
				fmt.Printf("⚠️  Unfinished collapse %s: clan %s frozen but never folded (%s)\n",
					p.CollapseID, p.ClanID, p.CreatedAt)
			}

			resp, err := wire.CollapseService().Collapse(cmd.Context(), primary.CollapseRequest{
				ProjectID:  projectID,
				ClanIDs:    clanIDs,
				WindowName: windowName,
			})
			if err != nil {
				return fmt.Errorf("collapse failed: %w", err)
			}
			if resp == nil {
				fmt.Println("Nothing to collapse: fewer than 2 of the given clans are present and active.")
				fmt.Println("The project was left untouched.")
				return nil
			}

			fmt.Printf("✓ Collapsed %d clans into window %s\n", len(resp.Constants), resp.WindowID)
			fmt.Printf("  Merge commit: %s\n", resp.MergeHash)
			for _, c := range resp.Constants {
				fmt.Printf("  %s %s (%s)\n", color.New(color.FgCyan).Sprint(c.GitTag), c.ID, c.SourceName)
			}
			fmt.Println()
			fmt.Println(resp.SynthesisPrompt)

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&clanIDs, "clans", nil, "Comma-separated clan ids to collapse")
	cmd.MarkFlagRequired("clans")

	return cmd
}

package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/hearth/internal/wire"
)

// WindowCmd returns the window command
func WindowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Inspect windows (collapse checkpoints)",
	}

	cmd.AddCommand(windowListCmd())

	return cmd
}

func windowListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [project-id]",
		Short: "List a project's windows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := wire.ProjectService().GetProject(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get project: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPARENT\tBRANCH\tCONSTANTS")
			fmt.Fprintln(w, "--\t----\t------\t------\t---------")
			for _, win := range project.Windows {
				id := win.ID
				if win.ID == project.ActiveWindow {
					id = win.ID + color.New(color.FgHiMagenta).Sprint(" ←")
				}
				parent := win.ParentWindow
				if parent == "" {
					parent = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", id, win.Name, parent, win.GitBranch, len(win.Constants))
			}
			w.Flush()
			return nil
		},
	}
}

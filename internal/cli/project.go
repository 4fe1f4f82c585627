// Package cli contains the cobra command constructors for hearth.
package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/hearth/internal/wire"
)

// ProjectCmd returns the project command
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
		Long:  `Create and inspect projects - the root containers for clans and windows.`,
	}

	cmd.AddCommand(projectCreateCmd())
	cmd.AddCommand(projectListCmd())
	cmd.AddCommand(projectShowCmd())

	return cmd
}

func projectCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new project",
		Long: `Create a new project with its on-disk layout and git repository.

This command:
1. Creates the project root with worktrees/, constants/, artifacts/, stamps/
2. Initializes a git repository with an empty first commit
3. Writes and commits the initial project document (5 gates, root window)

Examples:
  hearth project create "Demo"
  hearth project create "Side Quest"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.ProjectService().CreateProject(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to create project: %w", err)
			}

			fmt.Printf("✓ Created project %s: %s\n", resp.Project.ID, resp.Project.Name)
			fmt.Printf("  Path: %s\n", resp.Path)
			fmt.Printf("  Gates: %d (all open)\n", len(resp.Project.Gates))
			fmt.Printf("  Active window: %s\n", resp.Project.ActiveWindow)
			fmt.Println()
			fmt.Printf("Add your first clan: hearth clan add %s <name>\n", resp.Project.ID)

			return nil
		},
	}
}

func projectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := wire.ProjectService().ListProjects(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list projects: %w", err)
			}

			if len(projects) == 0 {
				fmt.Println("No projects found.")
				fmt.Println()
				fmt.Println("Create your first project:")
				fmt.Println("  hearth project create \"My Project\"")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPATH\tCREATED")
			fmt.Fprintln(w, "--\t----\t----\t-------")
			for _, p := range projects {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Path, p.CreatedAt)
			}
			w.Flush()
			return nil
		},
	}
}

func projectShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [project-id]",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := wire.ProjectService().GetProject(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get project: %w", err)
			}

			fmt.Printf("\nProject: %s\n", project.ID)
			fmt.Printf("Name:    %s\n", project.Name)
			fmt.Printf("Created: %s\n", project.Created)
			fmt.Printf("Clans:   %d\n", len(project.Clans))
			fmt.Printf("Windows: %d (active: %s)\n", len(project.Windows), project.ActiveWindow)
			fmt.Println("Gates:")
			for _, g := range project.Gates {
				fmt.Printf("  %s [%s] %s\n", g.Letter, g.State, g.Question)
			}
			fmt.Println()

			return nil
		},
	}
}

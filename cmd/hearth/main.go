package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/hearth/internal/cli"
	"github.com/example/hearth/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "hearth",
		Short:   "hearth - clans, constants and windows over git worktrees",
		Version: version.String(),
		Long: `hearth manages long-lived branchable units of work (clans) inside a
project, and collapses groups of them into immutable constants that seed a
new window. Each clan lives in its own git worktree.`,
	}

	rootCmd.AddCommand(cli.ProjectCmd())
	rootCmd.AddCommand(cli.ClanCmd())
	rootCmd.AddCommand(cli.CollapseCmd())
	rootCmd.AddCommand(cli.WindowCmd())
	rootCmd.AddCommand(cli.StampCmd())
	rootCmd.AddCommand(cli.HashCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

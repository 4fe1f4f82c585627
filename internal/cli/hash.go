package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	gitadapter "github.com/example/hearth/internal/adapters/git"
)

// HashCmd returns the hash command
func HashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash [dir]",
		Short: "Resolve the short hash of a directory's HEAD",
		Long: `Resolve the current short commit hash of any repository or worktree
directory. Prints the all-zero sentinel when the directory has no history.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := gitadapter.NewAdapter().ResolveShortHash(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(hash)
			return nil
		},
	}
}

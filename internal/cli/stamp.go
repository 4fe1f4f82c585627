package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/hearth/internal/wire"
)

// StampCmd returns the stamp command
func StampCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stamp [project-id] [clan-id]",
		Short: "Render the status stamp for a clan",
		Long: `Render the compact single-line status string for a clan: branch, depth,
gate glyphs, pin, short hash and timestamp. Stamps are recomputed on every
request and never persisted.

Examples:
  hearth stamp demo clan-0-alpha`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := wire.StampService().GenerateStamp(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to generate stamp: %w", err)
			}
			fmt.Println(line)
			return nil
		},
	}
}

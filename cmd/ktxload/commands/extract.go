package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract [library...]",
		Short: "Extract bundled libraries into the cache without loading them",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := c.app.Extract(cmd.Context(), c.cacheOptions(args))
			if err != nil {
				return err
			}
			for _, e := range entries {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), e.Path)
			}
			return nil
		},
	}
}

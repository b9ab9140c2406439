package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ktxload/internal/app"
)

func (c *CLI) newLoadCmd() *cobra.Command {
	var deps []string

	cmd := &cobra.Command{
		Use:   "load [library]",
		Short: "Load a native library, extracting it from the bundle if needed",
		Long: "Load tries the system library search path first and falls back to the " +
			"bundled resources. Without an argument the configured default library is loaded.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.LoadOptions{
				ConfigPath:   c.configPath,
				Dependencies: deps,
			}
			if len(args) == 1 {
				opts.Library = args[0]
			}
			return c.app.Load(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringSliceVarP(&deps, "dep", "d", nil, "Dependency to load first (repeatable, replaces configured dependencies)")

	return cmd
}

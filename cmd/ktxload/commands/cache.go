package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/ktxload/internal/core/domain"
	"go.trai.ch/ktxload/internal/ui/output"
	"go.trai.ch/ktxload/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and clean extracted libraries",
	}
	cmd.AddCommand(c.newCacheVerifyCmd())
	cmd.AddCommand(c.newCacheCleanCmd())
	return cmd
}

func (c *CLI) newCacheVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [library...]",
		Short: "Compare cached libraries with the bundled resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := c.app.VerifyCache(cmd.Context(), c.cacheOptions(args))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			r := output.NewRenderer(w)
			mismatched := 0
			for _, report := range reports {
				ok := report.State == domain.CacheValid || report.State == domain.CacheMissing
				if !ok {
					mismatched++
				}
				text := fmt.Sprintf("%-8s %s", report.State, report.Entry.Path)
				if report.State == domain.CacheValid && report.Recorded == nil {
					text += " (no extraction record)"
				}
				_, _ = fmt.Fprintln(w, style.State(r, ok, text))
			}

			if mismatched > 0 {
				err := zerr.Wrap(domain.ErrCacheMismatch, "cache verification failed")
				return zerr.With(err, "mismatched", mismatched)
			}
			return nil
		},
	}
}

func (c *CLI) newCacheCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean [library...]",
		Short: "Remove cached libraries and their extraction records",
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := c.app.CleanCache(cmd.Context(), c.cacheOptions(args))
			for _, path := range removed {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return err
		},
	}
}

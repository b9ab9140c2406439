// Package commands implements the CLI commands for ktxload.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/ktxload/internal/app"
	"go.trai.ch/ktxload/internal/build"
	"go.trai.ch/ktxload/internal/core/domain"
)

// CLI represents the command line interface for ktxload.
type CLI struct {
	app     Application
	output  OutputSettings
	rootCmd *cobra.Command

	configPath string
	jsonOutput bool
	verbose    bool
}

// Application represents the application logic interface.
type Application interface {
	Load(ctx context.Context, opts app.LoadOptions) error
	Platform(ctx context.Context, opts app.PlatformOptions) (*app.PlatformReport, error)
	Extract(ctx context.Context, opts app.CacheOptions) ([]domain.CacheEntry, error)
	VerifyCache(ctx context.Context, opts app.CacheOptions) ([]domain.CacheReport, error)
	CleanCache(ctx context.Context, opts app.CacheOptions) ([]string, error)
}

// OutputSettings is implemented by loggers whose format can be switched at runtime.
type OutputSettings interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// New creates a new CLI instance with the given app. output may be nil.
func New(a Application, output OutputSettings) *CLI {
	rootCmd := &cobra.Command{
		Use:           "ktxload",
		Short:         "Resolve and load the native KTX libraries",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		output:  output,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "Path to "+domain.ConfigFileName+" (default: working directory)")
	flags.BoolVar(&c.jsonOutput, "json", false, "Emit logs and reports as JSON")
	flags.BoolVar(&c.verbose, "verbose", false, "Show debug output, including loader spans")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if c.output != nil {
			c.output.SetJSON(c.jsonOutput)
			c.output.SetVerbose(c.verbose)
		}
	}

	rootCmd.AddCommand(c.newLoadCmd())
	rootCmd.AddCommand(c.newPlatformCmd())
	rootCmd.AddCommand(c.newExtractCmd())
	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) cacheOptions(args []string) app.CacheOptions {
	return app.CacheOptions{ConfigPath: c.configPath, Libraries: args}
}

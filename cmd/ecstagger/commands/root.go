// Package commands implements the CLI commands for the ecstagger Lambda.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/ecstagger/internal/app"
	"go.trai.ch/ecstagger/internal/build"
)

// ComponentsLoader builds the application components on first use.
type ComponentsLoader func(ctx context.Context) (*app.Components, error)

// CLI represents the command line interface for ecstagger.
type CLI struct {
	load    ComponentsLoader
	rootCmd *cobra.Command
}

// New creates a new CLI instance. Commands that need AWS access call load.
func New(load ComponentsLoader) *CLI {
	rootCmd := &cobra.Command{
		Use:           "ecstagger",
		Short:         "Classify and enrich stopped ECS tasks",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		load:    load,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newReplayCmd())
	rootCmd.AddCommand(c.newClassifyCmd())
	rootCmd.AddCommand(c.newMatchCmd())
	rootCmd.AddCommand(c.newPatternCmd())
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(out io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(out)
}

// SetInput replaces stdin for commands reading events. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

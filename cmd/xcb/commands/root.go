// Package commands implements the CLI commands for the xcb tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/xcb/internal/app"
)

// CLI represents the command line interface for xcb.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "xcb",
		Short:         "Query xcodebuild build settings and supported SDKs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newSettingsCmd())
	rootCmd.AddCommand(c.newSDKsCmd())
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

package commands

// Root command: fetches contributions and writes the animated SVG
// Subcommands: render (offline, from a JSON file)

import (
	"context"

	"mario-graph/internal/config"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree with fresh flag sets.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mario-graph",
		Short: "Render a GitHub contribution graph with an animated Mario as SVG",
		Long: `mario-graph fetches the last year of GitHub contributions for a user, keeps the most
recent days and writes dist/mario-contribution-graph.svg: a bar per day and a small
Mario sprite that walks across the chart and jumps every sixth step.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runGenerate,
	}

	config.RegisterFlags(rootCmd.Flags())
	rootCmd.AddCommand(newRenderCmd())
	return rootCmd
}

// Execute runs the CLI with ctx as the command context.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

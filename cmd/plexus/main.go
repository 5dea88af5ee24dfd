// Package main provides the entry point for the plexus CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plexus-metrics/plexus/cmd/plexus/commands"
	"github.com/plexus-metrics/plexus/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "plexus",
		Short: "Plexus computes per-module complexity and project dependency metrics",
		Long: `Plexus walks a project's modules, computing Halstead and cyclomatic
complexity per function, and derives a project-wide dependency graph:
adjacency, transitive visibility, first-order density, change cost, and
core size.

Commands:
  analyze   Run the module and project analysers over a set of inputs
  diff      Compare two analysis results
  serve     Expose Prometheus metrics for a long-running instance`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "path to plexus.yaml (default: search . and /etc/plexus)")

	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(commands.NewDiffCommand())
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "plexus %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}

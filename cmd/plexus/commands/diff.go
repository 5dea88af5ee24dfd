package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/plexus-metrics/plexus/pkg/project"
	"github.com/plexus-metrics/plexus/pkg/report"
)

// NewDiffCommand creates and configures the diff command.
func NewDiffCommand() *cobra.Command {
	cobraCmd := &cobra.Command{
		Use:   "diff <before.yaml> <after.yaml>",
		Short: "Compare two analyze --format=yaml results",
		Long: `Diff loads two project results previously written by
"plexus analyze --format=yaml" and prints a line-level diff of their
module summaries and project-wide metrics.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args[0], args[1])
		},
	}

	return cobraCmd
}

func runDiff(beforePath, afterPath string) error {
	before, err := loadResult(beforePath)
	if err != nil {
		return err
	}

	after, err := loadResult(afterPath)
	if err != nil {
		return err
	}

	out, err := report.Diff(before, after)
	if err != nil {
		return fmt.Errorf("diff: %w", err)
	}

	fmt.Println(out)

	return nil
}

func loadResult(path string) (*project.Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("diff: read %s: %w", path, err)
	}

	var result project.Result
	if err := yaml.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("diff: parse %s: %w", path, err)
	}

	return &result, nil
}

package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/plexus-metrics/plexus/pkg/metrics"
	"github.com/plexus-metrics/plexus/pkg/project"
)

func writeResultFixture(t *testing.T, maintainability float64) string {
	t.Helper()

	result := &project.Result{
		Reports: []*metrics.ModuleReport{
			{Path: "a.js"},
		},
		Maintainability: maintainability,
	}

	raw, err := yaml.Marshal(result)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "result.yaml")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	return path
}

func TestDiffCommand_ReportsChange(t *testing.T) {
	t.Parallel()

	before := writeResultFixture(t, 80)
	after := writeResultFixture(t, 90)

	cmd := NewDiffCommand()
	cmd.SetArgs([]string{before, after})

	err := cmd.Execute()
	require.NoError(t, err)
}

func TestDiffCommand_MissingFile(t *testing.T) {
	t.Parallel()

	after := writeResultFixture(t, 90)

	cmd := NewDiffCommand()
	cmd.SetArgs([]string{"/nonexistent/before.yaml", after})

	err := cmd.Execute()
	require.Error(t, err)
}

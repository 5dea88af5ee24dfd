package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocumentA = `{
	"path": "a.js",
	"events": [
		{"type": "createScope", "hasName": true, "name": "main", "hasLine": true, "line": 1, "params": 0},
		{"type": "lloc", "count": 3},
		{"type": "cyclomatic", "count": 1},
		{"type": "operator", "identifier": "+"},
		{"type": "operand", "identifier": "x"},
		{"type": "dependency", "dependencyType": "require", "dependencyPath": "b.js"},
		{"type": "popScope"}
	]
}`

const sampleDocumentB = `{
	"path": "b.js",
	"events": [
		{"type": "createScope", "hasName": true, "name": "helper", "hasLine": true, "line": 1, "params": 1},
		{"type": "lloc", "count": 2},
		{"type": "cyclomatic", "count": 1},
		{"type": "operator", "identifier": "-"},
		{"type": "operand", "identifier": "y"},
		{"type": "popScope"}
	]
}`

func writeSampleInputs(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(sampleDocumentA), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte(sampleDocumentB), 0o644))

	return dir
}

func TestAnalyzeCommand_TableOutput(t *testing.T) {
	t.Parallel()

	dir := writeSampleInputs(t)

	cmd := NewAnalyzeCommand()
	cmd.SetArgs([]string{dir, "--no-color"})

	err := cmd.Execute()
	require.NoError(t, err)
}

func TestAnalyzeCommand_WritesChart(t *testing.T) {
	t.Parallel()

	dir := writeSampleInputs(t)
	chartPath := filepath.Join(t.TempDir(), "chart.html")

	cmd := NewAnalyzeCommand()
	cmd.SetArgs([]string{dir, "--chart", chartPath, "--format", "json"})

	err := cmd.Execute()
	require.NoError(t, err)

	data, readErr := os.ReadFile(chartPath)
	require.NoError(t, readErr)
	require.Contains(t, string(data), "<html>")
}

func TestAnalyzeCommand_JSONOutputIncludesMatrices(t *testing.T) {
	t.Parallel()

	dir := writeSampleInputs(t)

	var out bytes.Buffer

	cmd := NewAnalyzeCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{dir, "--format", "json"})

	err := cmd.Execute()
	require.NoError(t, err)

	var decoded struct {
		AdjacencyMatrix struct {
			N     int   `json:"n"`
			Cells []int `json:"cells"`
		} `json:"AdjacencyMatrix"`
		VisibilityMatrix struct {
			N     int   `json:"n"`
			Cells []int `json:"cells"`
		} `json:"VisibilityMatrix"`
	}

	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))

	assert.Equal(t, 2, decoded.AdjacencyMatrix.N)
	assert.NotNil(t, decoded.AdjacencyMatrix.Cells)
	assert.Equal(t, []int{0, 1, 0, 0}, decoded.AdjacencyMatrix.Cells)
	assert.Equal(t, 2, decoded.VisibilityMatrix.N)
	assert.NotNil(t, decoded.VisibilityMatrix.Cells)
}

func TestAnalyzeCommand_RejectsMissingInputDir(t *testing.T) {
	t.Parallel()

	cmd := NewAnalyzeCommand()
	cmd.SetArgs([]string{"/nonexistent/input/dir"})

	err := cmd.Execute()
	require.Error(t, err)
}

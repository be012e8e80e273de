package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI and returns exit status, stdout and stderr.
func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func writeMap(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

const islandMap = `
intersections:
  0: [0, 0]
  1: [1, 0]
  2: [5, 5]
roads:
  0: [1]
  1: [0]
`

func TestPlan_DemoMap(t *testing.T) {
	code, out, _ := execute(t, "plan", "--from", "5", "--to", "34")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "5 -> 16 -> 37 -> 12 -> 34\n")
	assert.Contains(t, out, "cost: 0.592330")
}

func TestPlan_JSON(t *testing.T) {
	code, out, _ := execute(t, "plan", "--from", "5", "--to", "34", "--json")
	require.Equal(t, exitOK, code)

	var got planOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Found)
	assert.Equal(t, []int{5, 16, 37, 12, 34}, toInts(got.Path))
	assert.InDelta(t, 0.5923296099639734, got.Cost, 1e-12)
}

func TestPlan_NoPathExitStatus(t *testing.T) {
	path := writeMap(t, islandMap)

	code, out, stderr := execute(t, "plan", "--map", path, "--from", "0", "--to", "2")
	assert.Equal(t, exitNoPath, code)
	assert.Equal(t, "no path found\n", out)
	assert.NotContains(t, stderr, "Error:")

	code, out, _ = execute(t, "plan", "--map", path, "--from", "0", "--to", "1")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "0 -> 1\n")
}

func TestPlan_UnknownNode(t *testing.T) {
	code, _, stderr := execute(t, "plan", "--from", "5", "--to", "99")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "unknown node")
}

func TestPlan_RequiresEndpoints(t *testing.T) {
	code, _, stderr := execute(t, "plan", "--from", "5")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "to")
}

func TestPlan_MaxExpansionsFromConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "routeplan.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("search:\n  max_expansions: 1\n"), 0o644))

	code, _, stderr := execute(t, "--config", cfgPath, "plan", "--from", "5", "--to", "34")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "expansion budget")
}

func TestRoot_MissingConfigFile(t *testing.T) {
	code, _, stderr := execute(t, "--config", filepath.Join(t.TempDir(), "typo.yaml"), "version")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "load config file")
}

func TestPlan_DebugLogsToStderr(t *testing.T) {
	code, _, stderr := execute(t, "--log-level", "debug", "--log-format", "json", "plan", "--from", "5", "--to", "34")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stderr, `"msg":"route planned"`)
	assert.Contains(t, stderr, `"map":"demo:map40"`)
}

func TestRoot_BadLogFormat(t *testing.T) {
	code, _, stderr := execute(t, "--log-format", "xml", "version")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "logging.format")
}

func TestValidate(t *testing.T) {
	code, out, _ := execute(t, "validate")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "demo:map40: ok (40 intersections,")

	path := writeMap(t, islandMap)
	code, out, _ = execute(t, "validate", "--map", path, "--json")
	require.Equal(t, exitOK, code)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, true, got["valid"])
	assert.EqualValues(t, 3, got["nodes"])
	assert.EqualValues(t, 2, got["roads"])
}

func TestValidate_BadMap(t *testing.T) {
	path := writeMap(t, "intersections:\n  0: [0, 0]\nroads:\n  0: [7]\n")
	code, _, stderr := execute(t, "validate", "--map", path)
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "unknown node")

	code, _, _ = execute(t, "validate", "--map", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Equal(t, exitError, code)
}

func TestVersion(t *testing.T) {
	code, out, _ := execute(t, "version")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "routeplan version "+version+"\n", out)
}

func toInts[T ~int](ids []T) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}

	return out
}

//go:build basic

package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runIsolated runs the datascope binary with HOME pointed at a temp dir so
// the sqlite run database never touches the real home directory.
func runIsolated(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(getDatascopeBinary(), args...)
	cmd.Dir = "../"
	cmd.Env = append(os.Environ(), "HOME="+home)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
	}
	return string(output), err
}

// TestDatascopeSQLiteLifecycle exercises the full command surface against
// the default sqlite backend.
func TestDatascopeSQLiteLifecycle(t *testing.T) {
	home := t.TempDir()
	dataset := writeSampleDataset(t)

	// Profile, clean and score all record runs
	out, err := runIsolated(t, home, "profile", dataset)
	require.NoError(t, err)
	assert.Contains(t, out, "Profile completed in")

	cleanedFile := filepath.Join(t.TempDir(), "cleaned.csv")
	_, err = runIsolated(t, home, "clean", dataset, "--cleaned-file", cleanedFile)
	require.NoError(t, err)
	assert.FileExists(t, cleanedFile)

	out, err = runIsolated(t, home, "score", dataset)
	require.NoError(t, err)
	assert.Contains(t, out, "Rows: 6")

	// History should contain all three runs
	out, err = runIsolated(t, home, "runs", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "profile")
	assert.Contains(t, out, "clean")
	assert.Contains(t, out, "score")

	_, err = runIsolated(t, home, "runs", "status")
	require.NoError(t, err)

	// Export to Parquet
	exportFile := filepath.Join(t.TempDir(), "runs.parquet")
	_, err = runIsolated(t, home, "runs", "export", "--output-file", exportFile)
	require.NoError(t, err)
	assert.FileExists(t, exportFile)

	// Clear removes the database file
	_, err = runIsolated(t, home, "runs", "clear")
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(home, ".datascope_runs.db"))
}

// TestDatascopeOutputFormats checks the json and csv renderers end to end.
func TestDatascopeOutputFormats(t *testing.T) {
	home := t.TempDir()
	dataset := writeSampleDataset(t)

	out, err := runIsolated(t, home, "score", dataset, "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"score"`)

	out, err = runIsolated(t, home, "profile", dataset, "--output", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "column")

	// Invalid format is rejected
	out, err = runIsolated(t, home, "score", dataset, "--output", "xml")
	require.Error(t, err)
	assert.True(t, strings.Contains(out, "invalid output format") || out == "")
}

// TestDatascopeNoneBackend confirms run tracking can be disabled.
func TestDatascopeNoneBackend(t *testing.T) {
	home := t.TempDir()
	dataset := writeSampleDataset(t)

	_, err := runIsolated(t, home, "score", dataset, "--run-backend", "none")
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(home, ".datascope_runs.db"))
}

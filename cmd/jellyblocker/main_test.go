package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	// flag variables outlive a single Execute
	flagConfig, flagDifficulty, flagConfigFormat, flagClearScores = "", "", "yaml", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--log-file", filepath.Join(t.TempDir(), "test.log")))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigCommandPrintsYAML(t *testing.T) {
	out, err := execute(t, "config", "--difficulty", "hard", "--format", "yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "board:")
	assert.Contains(t, out, "colors: 5")
	assert.Contains(t, out, "falling_interval: 70")
}

func TestConfigCommandPrintsTOML(t *testing.T) {
	out, err := execute(t, "config", "--difficulty", "normal", "--format", "toml")
	require.NoError(t, err)

	assert.Contains(t, out, "[board]")
	assert.Contains(t, out, "pop_threshold = 4")
}

func TestConfigCommandRejectsBadInput(t *testing.T) {
	_, err := execute(t, "config", "--format", "json")
	assert.ErrorContains(t, err, "unknown format")

	_, err = execute(t, "config", "--format", "yaml", "--difficulty", "brutal")
	assert.ErrorContains(t, err, "unknown difficulty")
}

func TestConfigCommandReadsCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[board]\nwidth = 8\n"), 0o600))

	out, err := execute(t, "config", "--config", path, "--difficulty", "normal", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "width: 8")
}

func TestPresetsCommandListsBuiltins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mine.yaml"),
		[]byte("id: mine\nname: Mine\nrows:\n  - \"RRR...\"\n"), 0o600))

	out, err := execute(t, "presets", "--presets-dir", dir)
	require.NoError(t, err)

	for _, id := range []string{"empty", "garbage-floor", "pillars", "setup", "staircase", "mine"} {
		assert.Contains(t, out, id)
	}
}

func TestScoresCommandEmptyMode(t *testing.T) {
	out, err := execute(t, "scores", "normal", "--db", filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	assert.Contains(t, out, "No scores recorded yet.")
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, "x", "y"), expandHome("~/x/y"))
	assert.Equal(t, "/abs/path", expandHome("/abs/path"))
}

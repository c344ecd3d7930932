package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/jisho/internal/config"
	"github.com/at-ishikawa/jisho/internal/dictionary"
	"github.com/at-ishikawa/jisho/internal/testutil"
)

// setDictionary replaces the dictionary constructor and registers a cleanup to restore it.
func setDictionary(t *testing.T, dict dictionary.Dictionary) {
	t.Helper()
	oldNewDictionary := newDictionary
	newDictionary = func(*config.Config) dictionary.Dictionary {
		return dict
	}
	t.Cleanup(func() { newDictionary = oldNewDictionary })
}

// setupConfigFile writes a config file for a Jisho API that must not be reached.
func setupConfigFile(t *testing.T) string {
	t.Helper()
	return testutil.SetupTestConfig(t, t.TempDir(), "http://127.0.0.1:1/api/v1/search/words")
}

// setupBrokenConfigFile creates a config file with invalid YAML that causes Load() to fail.
func setupBrokenConfigFile(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{{invalid yaml content"), 0644))
	return cfgPath
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")

	s := Settings{
		Model:        "claude-3-sonnet",
		MaxTurns:     10,
		MaxBudgetUSD: 5.0,
	}
	data, _ := json.Marshal(s)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	result, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "claude-3-sonnet", result.Model)
	assert.Equal(t, 10, result.MaxTurns)
	assert.Equal(t, 5.0, result.MaxBudgetUSD)
}

func TestLoadSettings_MergeOrder(t *testing.T) {
	dir := t.TempDir()

	// User settings (loaded first)
	userPath := filepath.Join(dir, "user.json")
	userData, _ := json.Marshal(Settings{Model: "claude-3-haiku", MaxTurns: 5})
	require.NoError(t, os.WriteFile(userPath, userData, 0o644))

	// Project settings (loaded second, overrides user)
	projPath := filepath.Join(dir, "project.json")
	projData, _ := json.Marshal(Settings{Model: "claude-3-opus", SystemPrompt: "Be helpful"})
	require.NoError(t, os.WriteFile(projPath, projData, 0o644))

	result, err := LoadSettings(userPath, projPath)
	require.NoError(t, err)

	assert.Equal(t, "claude-3-opus", result.Model, "project should override user")
	assert.Equal(t, 5, result.MaxTurns, "user value preserved when project doesn't set it")
	assert.Equal(t, "Be helpful", result.SystemPrompt)
}

func TestLoadSettings_MissingFileSkipped(t *testing.T) {
	result, err := LoadSettings("/nonexistent/path.json")
	require.NoError(t, err)
	assert.Equal(t, "", result.Model)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	result, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "", result.Model) // Invalid file skipped
}

func TestLoadSettings_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	data, _ := json.Marshal(Settings{APIKey: "ggt_from_file", BaseURL: "https://file.example.com"})
	require.NoError(t, os.WriteFile(path, data, 0o644))

	t.Setenv(EnvAPIKey, "ggt_from_env")

	result, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "ggt_from_env", result.APIKey, "env should override file")
	assert.Equal(t, "https://file.example.com", result.BaseURL)
}

func TestDefaultSettingsPaths(t *testing.T) {
	paths := DefaultSettingsPaths("/proj")
	require.NotEmpty(t, paths)
	assert.Equal(t, filepath.Join("/proj", ".gagiteck", "settings.json"), paths[len(paths)-1])
}

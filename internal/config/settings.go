// Package config handles settings loading for the Gagiteck SDK.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Environment variables recognized by the SDK.
const (
	EnvAPIKey  = "GAGITECK_API_KEY"
	EnvBaseURL = "GAGITECK_BASE_URL"
)

// Settings holds merged configuration from multiple sources.
// Later sources override earlier ones (user < project).
type Settings struct {
	APIKey       string  `json:"apiKey,omitempty"`
	BaseURL      string  `json:"baseUrl,omitempty"`
	Model        string  `json:"model,omitempty"`
	SystemPrompt string  `json:"systemPrompt,omitempty"`
	MaxTurns     int     `json:"maxTurns,omitempty"`
	MaxTokens    int     `json:"maxTokens,omitempty"`
	MaxBudgetUSD float64 `json:"maxBudgetUSD,omitempty"`
}

// LoadSettings merges settings from multiple JSON file paths.
// Later paths override earlier ones. Missing or invalid files are silently skipped.
// Environment variables override everything.
func LoadSettings(paths ...string) (*Settings, error) {
	merged := &Settings{}

	for _, path := range paths {
		s, err := loadSettingsFile(path)
		if err != nil {
			continue
		}
		mergeSettings(merged, s)
	}

	applyEnv(merged)
	return merged, nil
}

// DefaultSettingsPaths returns the standard settings file search paths.
func DefaultSettingsPaths(projectDir string) []string {
	home, _ := os.UserHomeDir()
	var paths []string

	// User-level settings
	if home != "" {
		paths = append(paths, filepath.Join(home, ".gagiteck", "settings.json"))
	}

	// Project-level settings
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".gagiteck", "settings.json"))
	}

	return paths
}

func loadSettingsFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func mergeSettings(dst, src *Settings) {
	if src.APIKey != "" {
		dst.APIKey = src.APIKey
	}
	if src.BaseURL != "" {
		dst.BaseURL = src.BaseURL
	}
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.SystemPrompt != "" {
		dst.SystemPrompt = src.SystemPrompt
	}
	if src.MaxTurns > 0 {
		dst.MaxTurns = src.MaxTurns
	}
	if src.MaxTokens > 0 {
		dst.MaxTokens = src.MaxTokens
	}
	if src.MaxBudgetUSD > 0 {
		dst.MaxBudgetUSD = src.MaxBudgetUSD
	}
}

func applyEnv(s *Settings) {
	if v := os.Getenv(EnvAPIKey); v != "" {
		s.APIKey = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		s.BaseURL = v
	}
}

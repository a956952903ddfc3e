package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadNeonStrike loads Neon Strike configuration.
// Search order: customPath -> ~/.arcade/configs/neonstrike.yaml -> ./configs/neonstrike.yaml -> embedded default
func LoadNeonStrike(customPath string) (NeonStrikeConfig, error) {
	cfg, err := load("neonstrike", customPath, GetDefaultYAML("neonstrike"), DefaultNeonStrikeConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultNeonStrikeConfig(), fmt.Errorf("config: neonstrike: %w", err)
	}
	return cfg, nil
}

// LoadVoidRunner loads Void Runner configuration.
// Search order: customPath -> ~/.arcade/configs/voidrunner.yaml -> ./configs/voidrunner.yaml -> embedded default
func LoadVoidRunner(customPath string) (VoidRunnerConfig, error) {
	cfg, err := load("voidrunner", customPath, GetDefaultYAML("voidrunner"), DefaultVoidRunnerConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultVoidRunnerConfig(), fmt.Errorf("config: voidrunner: %w", err)
	}
	return cfg, nil
}

// load resolves a game config. Files are decoded on top of the hardcoded
// defaults, so a partial file only overrides the keys it names.
func load[T any](gameID, customPath string, embedded []byte, defaults func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return defaults(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"
	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	// Try user config directory, then local configs directory
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	userConfigName  = "flappy/flappy.yaml"
	localConfigPath = "configs/flappy.yaml"
)

// userConfigPath returns the first existing user config file, or empty if none.
// Replaced in tests.
var userConfigPath = func() string {
	path, err := xdg.SearchConfigFile(userConfigName)
	if err != nil {
		return ""
	}
	return path
}

// Load loads the game configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/flappy/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Files only need the keys they change; everything else keeps its default.
// A custom path that cannot be read or parsed is an error; other locations are skipped silently.
func Load(customPath string) (GameConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return GameConfig{}, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(), localConfigPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := parse(data)
		if err != nil {
			continue
		}
		if err := cfg.Validate(); err != nil {
			return GameConfig{}, fmt.Errorf("%s: %w", path, err)
		}
		return cfg, nil
	}

	cfg, err := parse(defaultYAML)
	if err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse overlays YAML onto the hard-coded defaults.
func parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg GameConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// WriteUserDefault writes the embedded default file to the XDG config directory
// and returns its path. An existing file is left untouched.
func WriteUserDefault() (string, error) {
	path, err := xdg.ConfigFile(userConfigName)
	if err != nil {
		return "", fmt.Errorf("config: cannot resolve user config path: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("config: cannot stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, defaultYAML, 0o644); err != nil {
		return "", fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return path, nil
}

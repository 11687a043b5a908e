// Package config provides YAML-based settings loading for asciiwar.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultYAML []byte

// Settings holds everything that can be tuned without rebuilding.
type Settings struct {
	LogLevel  string              `yaml:"log_level"`  // debug, info, warn, error
	LogFile   string              `yaml:"log_file"`   // Empty discards logs while the screen is active
	Telemetry bool                `yaml:"telemetry"`  // Export traces over OTLP
	MatchFile string              `yaml:"match_file"` // Optional JSON match definition replacing the built-in one
	Keys      map[string][]string `yaml:"keys"`       // Action name -> key names or single runes
}

// Default returns the built-in settings.
func Default() Settings {
	var s Settings
	if err := yaml.Unmarshal(defaultYAML, &s); err != nil {
		// defaults.yaml is compiled in; failing here is a build defect
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return s
}

// Load reads settings and layers them over the defaults.
// Search order: customPath -> ~/.asciiwar/config.yaml -> ./configs/asciiwar.yaml -> defaults.
// An explicit customPath that cannot be read is an error; the other locations are optional.
func Load(customPath string) (Settings, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := merge(&cfg, data); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "asciiwar.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := merge(&cfg, data); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	return cfg, nil
}

// merge overlays a YAML document on cfg. Key bindings replace the defaults
// per action, so a file may rebind one action and keep the rest.
func merge(cfg *Settings, data []byte) error {
	defaults := cfg.Keys
	cfg.Keys = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg.Keys = defaults
		return err
	}
	keys := make(map[string][]string, len(defaults))
	for action, names := range defaults {
		keys[action] = names
	}
	for action, names := range cfg.Keys {
		keys[action] = names
	}
	cfg.Keys = keys
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".asciiwar", filename)
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the global deckplan configuration, loaded from config.yaml under
// the deckplan root. Every field is optional; zero values mean "use the
// built-in default".
type Config struct {
	// PlannerVersion overrides the version string recorded in plan metadata
	PlannerVersion string `yaml:"planner_version"`

	// PlatformTargets overrides the platforms plans are generated for
	PlatformTargets []string `yaml:"platform_targets"`

	// LayoutStrategy overrides the global layout role table. When set, it
	// replaces the built-in table entirely.
	LayoutStrategy []RoleOverride `yaml:"layout_strategy"`
}

// RoleOverride maps one named layout role to a layout name and fallback
// category.
type RoleOverride struct {
	// Role is the strategy role name, e.g. "title_slide_index"
	Role string `yaml:"role"`

	// Layout is the preferred layout name for this role
	Layout string `yaml:"layout"`

	// Category is the fallback category when the named layout is absent
	Category string `yaml:"category"`
}

// Load reads the config file at path. A missing file is not an error: the
// zero Config is returned so callers fall back to built-in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	for i, role := range cfg.LayoutStrategy {
		if role.Role == "" || role.Layout == "" {
			return nil, fmt.Errorf("config %s: layout_strategy[%d] needs both 'role' and 'layout'", path, i)
		}
	}

	return &cfg, nil
}

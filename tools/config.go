package tools

import (
	"github.com/effective-security/x/configloader"
	"github.com/effective-security/x/values"
)

// Config defines the toolset exposed to the model, allowing a deployment
// to disable tools from a larger catalog or override their descriptions
// without code changes.
type Config struct {
	Tools []*ToolConfig `json:"tools" yaml:"tools"`
}

// ToolConfig specifies per tool overrides.
type ToolConfig struct {
	Name        string `json:"name" yaml:"name"`
	Disabled    bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// LoadConfig from file
func LoadConfig(file string) (*Config, error) {
	cfg := new(Config)
	if file == "" {
		return cfg, nil
	}

	err := configloader.UnmarshalAndExpand(file, cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) find(name string) *ToolConfig {
	for _, tc := range cfg.Tools {
		if tc.Name == name {
			return tc
		}
	}
	return nil
}

// Build registers the catalog tools into a new Registry, skipping
// disabled tools and applying description overrides. Tools absent from
// the config are registered as is.
func (cfg *Config) Build(catalog ...ITool) *Registry {
	return cfg.Populate(NewRegistry(), catalog...)
}

// Populate applies the config to the catalog and registers the result
// into the given registry.
func (cfg *Config) Populate(r *Registry, catalog ...ITool) *Registry {
	for _, t := range catalog {
		tc := cfg.find(t.Name())
		if tc == nil {
			r.Register(t)
			continue
		}
		if tc.Disabled {
			continue
		}
		if tc.Description != "" {
			t = &describedTool{
				ITool:       t,
				description: values.StringsCoalesce(tc.Description, t.Description()),
			}
		}
		r.Register(t)
	}
	return r
}

// describedTool overrides the advertised description,
// delegating everything else to the wrapped tool.
type describedTool struct {
	ITool
	description string
}

func (t *describedTool) Description() string {
	return t.description
}

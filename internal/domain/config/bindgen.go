package config

// PluginType names a binding generator plugin
type PluginType string

const (
	// PluginFoundry reads compiled contracts from forge artifacts
	PluginFoundry PluginType = "foundry"
	// PluginAbigen emits Go bindings
	PluginAbigen PluginType = "abigen"
	// PluginABI writes plain ABI JSON files
	PluginABI PluginType = "abi"
)

// BindgenConfig is the content of bindgen.toml
type BindgenConfig struct {
	Out       string           `toml:"out"`
	Contracts []DirectContract `toml:"contracts"`
	Plugins   []PluginConfig   `toml:"plugins"`
}

// DirectContract is a contract given by ABI file instead of a forge artifact
type DirectContract struct {
	Name string `toml:"name"`
	ABI  string `toml:"abi"`
}

// PluginConfig configures one plugin. Fields only apply to the matching type.
type PluginConfig struct {
	Type PluginType `toml:"type"`

	// foundry
	Project string   `toml:"project,omitempty"`
	Include []string `toml:"include,omitempty"`

	// abigen
	Package string `toml:"package,omitempty"`

	// abi
	Dir string `toml:"dir,omitempty"`
}

// Source returns the foundry plugin, or nil if none is configured
func (c *BindgenConfig) Source() *PluginConfig {
	for i := range c.Plugins {
		if c.Plugins[i].Type == PluginFoundry {
			return &c.Plugins[i]
		}
	}
	return nil
}

// Emitters returns every plugin that writes output
func (c *BindgenConfig) Emitters() []PluginConfig {
	var out []PluginConfig
	for _, p := range c.Plugins {
		if p.Type != PluginFoundry {
			out = append(out, p)
		}
	}
	return out
}

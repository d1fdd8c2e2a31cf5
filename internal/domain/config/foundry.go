package config

// FoundryConfig represents the parts of foundry.toml the registry reads
type FoundryConfig struct {
	Profile      map[string]ProfileConfig `toml:"profile"`
	RpcEndpoints map[string]string        `toml:"rpc_endpoints"`
}

// ProfileConfig represents a profile's foundry configuration
type ProfileConfig struct {
	SrcPath     string   `toml:"src,omitempty"`
	OutPath     string   `toml:"out,omitempty"`
	LibPaths    []string `toml:"libs,omitempty"`
	Remappings  []string `toml:"remappings,omitempty"`
	SolcVersion string   `toml:"solc_version,omitempty"`
}

// OutDir returns the artifact directory of the default profile
func (f *FoundryConfig) OutDir() string {
	if f != nil {
		if p, ok := f.Profile["default"]; ok && p.OutPath != "" {
			return p.OutPath
		}
	}
	return "out"
}

package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	// HasProject is false when no foundry.toml was found; registry-only commands still work
	HasProject bool

	// Context settings
	// NetworkName is the raw --network value, resolved by the commands that use it
	NetworkName string

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration

	// Command-specific settings
	BindgenConfigPath string
	Build             bool
	RPCURL            string

	// Resolved configurations
	FoundryConfig *FoundryConfig
}

// Network represents network configuration
type Network struct {
	ChainID uint64 `json:"chainId"`
	Name    string `json:"name"`
	RPCURL  string `json:"rpcUrl"`
}

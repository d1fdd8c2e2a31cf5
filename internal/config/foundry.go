package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/rdatadao/rdat-registry/internal/domain/config"
)

// LoadFoundryConfig loads and parses foundry.toml
func LoadFoundryConfig(projectRoot string) (*config.FoundryConfig, error) {
	// Load .env files first for variable expansion
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}

	foundryPath := filepath.Join(projectRoot, "foundry.toml")
	var cfg config.FoundryConfig
	if _, err := toml.DecodeFile(foundryPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	if cfg.Profile == nil {
		cfg.Profile = make(map[string]config.ProfileConfig)
	}

	endpoints := make(map[string]string, len(cfg.RpcEndpoints))
	for name, url := range cfg.RpcEndpoints {
		endpoints[name] = os.ExpandEnv(url)
	}
	cfg.RpcEndpoints = endpoints

	return &cfg, nil
}

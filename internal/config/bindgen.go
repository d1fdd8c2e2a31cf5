package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rdatadao/rdat-registry/internal/domain"
	"github.com/rdatadao/rdat-registry/internal/domain/config"
)

// DefaultBindgenConfig returns the generator setup used by the RDAT contracts repo
func DefaultBindgenConfig() *config.BindgenConfig {
	return &config.BindgenConfig{
		Out:       "bindings/generated.go",
		Contracts: []config.DirectContract{},
		Plugins: []config.PluginConfig{
			{
				Type:    config.PluginFoundry,
				Project: "./",
				Include: []string{
					// Token contracts
					"MockRDAT.sol/MockRDAT.json",
					"RDATUpgradeable.sol/RDATUpgradeable.json",

					// Migration contracts
					"RdatMigration.sol/RdatMigration.json",
					"RdatDistributor.sol/RdatDistributor.json",

					// Chain-specific contracts
					"BaseOnlyContract.sol/BaseOnlyContract.json",
					"VanaDataContract.sol/VanaDataContract.json",
					"MultiChainRegistry.sol/MultiChainRegistry.json",
				},
			},
			{
				Type: config.PluginAbigen,
			},
		},
	}
}

// LoadBindgenConfig reads and validates a bindgen.toml file
func LoadBindgenConfig(filePath string) (*config.BindgenConfig, error) {
	if _, err := os.Stat(filePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", domain.ErrInvalidBindgenConfig, filePath)
		}
		return nil, err
	}

	var cfg config.BindgenConfig
	md, err := toml.DecodeFile(filePath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, &domain.ConfigErrors{
			Path:   filePath,
			Issues: []string{fmt.Sprintf("unknown keys: %s", strings.Join(keys, ", "))},
		}
	}

	if err := ValidateBindgenConfig(filePath, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidateBindgenConfig reports every problem in cfg at once
func ValidateBindgenConfig(filePath string, cfg *config.BindgenConfig) error {
	var issues []string

	if strings.TrimSpace(cfg.Out) == "" {
		issues = append(issues, "out is required")
	}

	sources := 0
	emitters := 0
	for i, p := range cfg.Plugins {
		switch p.Type {
		case config.PluginFoundry:
			sources++
			for _, inc := range p.Include {
				if !validInclude(inc) {
					issues = append(issues, fmt.Sprintf("plugins[%d]: include %q must look like File.sol/Contract.json", i, inc))
				}
			}
		case config.PluginAbigen:
			emitters++
		case config.PluginABI:
			emitters++
			if p.Dir == "" {
				issues = append(issues, fmt.Sprintf("plugins[%d]: abi plugin requires dir", i))
			}
		case "":
			issues = append(issues, fmt.Sprintf("plugins[%d]: type is required", i))
		default:
			issues = append(issues, fmt.Sprintf("plugins[%d]: unknown plugin type %q", i, p.Type))
		}
	}
	if sources > 1 {
		issues = append(issues, "at most one foundry plugin may be configured")
	}
	if emitters == 0 {
		issues = append(issues, "no output plugin configured (abigen or abi)")
	}

	for i, c := range cfg.Contracts {
		if c.Name == "" || c.ABI == "" {
			issues = append(issues, fmt.Sprintf("contracts[%d]: name and abi are required", i))
		}
	}

	if len(issues) > 0 {
		return &domain.ConfigErrors{Path: filePath, Issues: issues}
	}
	return nil
}

func validInclude(include string) bool {
	dir, file := path.Split(include)
	return strings.HasSuffix(strings.TrimSuffix(dir, "/"), ".sol") && strings.HasSuffix(file, ".json")
}

// SaveBindgenConfig encodes cfg to filePath. An existing file is only
// replaced when overwrite is set.
func SaveBindgenConfig(filePath string, cfg *config.BindgenConfig, overwrite bool) error {
	if err := ValidateBindgenConfig(filePath, cfg); err != nil {
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(filePath, flags, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, "# Contract binding generator config. Run `rdat generate` after editing."); err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filePath, err)
	}
	return f.Close()
}

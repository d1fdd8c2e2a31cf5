package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rdatadao/rdat-registry/internal/domain"
	"github.com/rdatadao/rdat-registry/internal/domain/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultBindgenFile is the generator config looked up in the project root
const DefaultBindgenFile = "bindgen.toml"

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	hasProject := projectRoot != ""
	if !hasProject {
		// Registry commands work outside a project
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		projectRoot = cwd
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:       projectRoot,
		HasProject:        hasProject,
		Debug:             v.GetBool("debug"),
		NonInteractive:    v.GetBool("non_interactive"),
		Timeout:           v.GetDuration("timeout"),
		BindgenConfigPath: v.GetString("config"),
		Build:             v.GetBool("build"),
		RPCURL:            v.GetString("rpc"),
		NetworkName:       v.GetString("network"),
	}

	if cfg.BindgenConfigPath == "" {
		cfg.BindgenConfigPath = filepath.Join(projectRoot, DefaultBindgenFile)
	} else if !filepath.IsAbs(cfg.BindgenConfigPath) {
		cfg.BindgenConfigPath = filepath.Join(projectRoot, cfg.BindgenConfigPath)
	}

	if hasProject {
		foundryConfig, err := LoadFoundryConfig(projectRoot)
		if err != nil {
			return nil, fmt.Errorf("failed to load foundry config: %w", err)
		}
		cfg.FoundryConfig = foundryConfig
	} else {
		cfg.FoundryConfig = &config.FoundryConfig{}
	}

	return cfg, nil
}

// FindProjectRoot walks up from dir to find foundry.toml
func FindProjectRoot(dir string) (string, error) {
	for {
		foundryToml := filepath.Join(dir, "foundry.toml")
		if _, err := os.Stat(foundryToml); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", domain.ErrNoProject
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance. projectRoot may be
// empty when the command runs outside a Foundry project.
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	if projectRoot != "" {
		v.SetConfigName("config.local")
		v.SetConfigType("json")
		v.AddConfigPath(filepath.Join(projectRoot, ".rdat"))
	}

	// Set up environment variables
	v.SetEnvPrefix("RDAT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	if projectRoot != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				fmt.Fprintf(os.Stderr, "Warning: failed to read .rdat/config.local.json: %v\n", err)
			}
		}
	}

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil {
				panic(err)
			}
		})
	}

	return v
}

package config

import (
	"context"

	"github.com/rdatadao/rdat-registry/internal/config"
	domainconfig "github.com/rdatadao/rdat-registry/internal/domain/config"
	"github.com/rdatadao/rdat-registry/internal/usecase"
)

// BindgenLoaderAdapter reads and writes bindgen.toml files
type BindgenLoaderAdapter struct{}

// NewBindgenLoaderAdapter creates a new loader adapter
func NewBindgenLoaderAdapter() *BindgenLoaderAdapter {
	return &BindgenLoaderAdapter{}
}

// Load reads and validates the config at path
func (a *BindgenLoaderAdapter) Load(ctx context.Context, path string) (*domainconfig.BindgenConfig, error) {
	return config.LoadBindgenConfig(path)
}

// Default returns the starter config
func (a *BindgenLoaderAdapter) Default() *domainconfig.BindgenConfig {
	return config.DefaultBindgenConfig()
}

// Save writes cfg to path
func (a *BindgenLoaderAdapter) Save(ctx context.Context, path string, cfg *domainconfig.BindgenConfig, overwrite bool) error {
	return config.SaveBindgenConfig(path, cfg, overwrite)
}

var (
	_ usecase.BindgenConfigLoader = (*BindgenLoaderAdapter)(nil)
	_ usecase.BindgenConfigWriter = (*BindgenLoaderAdapter)(nil)
)

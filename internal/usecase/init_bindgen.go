package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rdatadao/rdat-registry/internal/domain"
	"github.com/rdatadao/rdat-registry/internal/domain/config"
)

// InitBindgenParams contains parameters for writing a starter config
type InitBindgenParams struct {
	ConfigPath string
	Force      bool
}

// InitBindgenResult describes the written config
type InitBindgenResult struct {
	Path   string
	Config *config.BindgenConfig
}

// InitBindgen writes the default bindgen.toml into the project
type InitBindgen struct {
	config *config.RuntimeConfig
	writer BindgenConfigWriter
}

// NewInitBindgen creates a new InitBindgen use case
func NewInitBindgen(cfg *config.RuntimeConfig, writer BindgenConfigWriter) *InitBindgen {
	return &InitBindgen{
		config: cfg,
		writer: writer,
	}
}

// Run executes the use case
func (uc *InitBindgen) Run(ctx context.Context, params InitBindgenParams) (*InitBindgenResult, error) {
	if !uc.config.HasProject {
		return nil, domain.ErrNoProject
	}

	path := uc.config.BindgenConfigPath
	if params.ConfigPath != "" {
		path = params.ConfigPath
	}

	cfg := uc.writer.Default()
	if err := uc.writer.Save(ctx, path, cfg, params.Force); err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%s already exists (use --force to replace it)", filepath.Base(path))
		}
		return nil, err
	}

	return &InitBindgenResult{Path: path, Config: cfg}, nil
}

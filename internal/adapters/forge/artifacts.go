package forge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	appconfig "github.com/rdatadao/rdat-registry/internal/config"
	"github.com/rdatadao/rdat-registry/internal/domain"
	"github.com/rdatadao/rdat-registry/internal/domain/config"
	"github.com/rdatadao/rdat-registry/internal/domain/models"
	"github.com/rdatadao/rdat-registry/internal/usecase"
	"github.com/samber/lo"
)

// Builder compiles a Foundry project
type Builder interface {
	Build(ctx context.Context, dir string) error
}

// ArtifactSource collects contracts from forge artifacts and plain ABI files
type ArtifactSource struct {
	cfg     *config.RuntimeConfig
	builder Builder
	log     *slog.Logger
}

// NewArtifactSource creates a new artifact source
func NewArtifactSource(cfg *config.RuntimeConfig, builder *ForgeAdapter, log *slog.Logger) *ArtifactSource {
	return newArtifactSource(cfg, builder, log)
}

func newArtifactSource(cfg *config.RuntimeConfig, builder Builder, log *slog.Logger) *ArtifactSource {
	return &ArtifactSource{
		cfg:     cfg,
		builder: builder,
		log:     log.With("component", "ArtifactSource"),
	}
}

// Collect returns the included artifacts followed by the direct contracts
func (s *ArtifactSource) Collect(ctx context.Context, bindgen *config.BindgenConfig) ([]*models.Contract, error) {
	var contracts []*models.Contract

	if plugin := bindgen.Source(); plugin != nil {
		collected, err := s.collectArtifacts(ctx, plugin)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, collected...)
	}

	for _, direct := range bindgen.Contracts {
		contract, err := s.readABIFile(direct)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, contract)
	}

	dupes := lo.FindDuplicates(lo.Map(contracts, func(c *models.Contract, _ int) string { return c.Name }))
	if len(dupes) > 0 {
		return nil, fmt.Errorf("duplicate contract names: %s", strings.Join(dupes, ", "))
	}
	return contracts, nil
}

func (s *ArtifactSource) collectArtifacts(ctx context.Context, plugin *config.PluginConfig) ([]*models.Contract, error) {
	projectDir := s.resolve(plugin.Project)

	if s.cfg.Build {
		if err := s.builder.Build(ctx, projectDir); err != nil {
			return nil, err
		}
	}

	outDir, err := s.outDir(projectDir)
	if err != nil {
		return nil, err
	}
	s.log.Debug("reading artifacts", "dir", outDir, "includes", len(plugin.Include))

	var contracts []*models.Contract
	for _, include := range plugin.Include {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(outDir, filepath.FromSlash(include))
		contract, err := s.readArtifact(path)
		if err != nil {
			return nil, err
		}
		if !contract.HasABI() {
			s.log.Debug("skipping artifact with empty ABI", "artifact", include)
			continue
		}
		contracts = append(contracts, contract)
	}
	return contracts, nil
}

func (s *ArtifactSource) readArtifact(path string) (*models.Contract, error) {
	rel := s.relative(path)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s (run forge build or pass --build)", domain.ErrArtifactNotFound, rel)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", rel, err)
	}

	var artifact models.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", rel, err)
	}

	name := artifact.ContractName()
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return &models.Contract{
		Name:         name,
		ArtifactPath: rel,
		ABI:          artifact.ABI,
		Bytecode:     artifact.Bytecode.Object,
	}, nil
}

func (s *ArtifactSource) readABIFile(direct config.DirectContract) (*models.Contract, error) {
	path := s.resolve(direct.ABI)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ABI for %s: %w", direct.Name, err)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("ABI for %s is not a JSON array: %w", direct.Name, err)
	}

	return &models.Contract{Name: direct.Name, ABI: json.RawMessage(data)}, nil
}

// outDir returns the artifact directory of a project. The runtime foundry
// config is used for the main project; other projects load their own.
func (s *ArtifactSource) outDir(projectDir string) (string, error) {
	foundry := s.cfg.FoundryConfig
	if filepath.Clean(projectDir) != filepath.Clean(s.cfg.ProjectRoot) || foundry == nil {
		loaded, err := appconfig.LoadFoundryConfig(projectDir)
		if err != nil {
			return "", fmt.Errorf("failed to load foundry config of %s: %w", projectDir, err)
		}
		foundry = loaded
	}
	return filepath.Join(projectDir, foundry.OutDir()), nil
}

func (s *ArtifactSource) resolve(p string) string {
	if p == "" {
		return s.cfg.ProjectRoot
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.cfg.ProjectRoot, p)
}

func (s *ArtifactSource) relative(p string) string {
	if rel, err := filepath.Rel(s.cfg.ProjectRoot, p); err == nil {
		return rel
	}
	return p
}

var _ usecase.ContractSource = (*ArtifactSource)(nil)

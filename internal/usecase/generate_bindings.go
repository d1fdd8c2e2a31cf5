package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/rdatadao/rdat-registry/internal/domain/config"
	"github.com/rdatadao/rdat-registry/internal/domain/models"
)

// GenerateBindingsParams contains parameters for binding generation
type GenerateBindingsParams struct {
	// ConfigPath overrides the runtime bindgen config path
	ConfigPath string
	DryRun     bool
}

// GenerateBindingsResult describes what was generated
type GenerateBindingsResult struct {
	ConfigPath string
	Contracts  []*models.Contract
	Files      []GeneratedFile
	DryRun     bool
}

// GenerateBindings runs the configured generator plugins
type GenerateBindings struct {
	config   *config.RuntimeConfig
	loader   BindgenConfigLoader
	source   ContractSource
	emitter  BindingEmitter
	writer   FileWriter
	progress ProgressSink
	log      *slog.Logger
}

// NewGenerateBindings creates a new GenerateBindings use case
func NewGenerateBindings(
	cfg *config.RuntimeConfig,
	loader BindgenConfigLoader,
	source ContractSource,
	emitter BindingEmitter,
	writer FileWriter,
	progress ProgressSink,
	log *slog.Logger,
) *GenerateBindings {
	return &GenerateBindings{
		config:   cfg,
		loader:   loader,
		source:   source,
		emitter:  emitter,
		writer:   writer,
		progress: progress,
		log:      log.With("component", "GenerateBindings"),
	}
}

// Run executes the use case
func (uc *GenerateBindings) Run(ctx context.Context, params GenerateBindingsParams) (*GenerateBindingsResult, error) {
	configPath := uc.config.BindgenConfigPath
	if params.ConfigPath != "" {
		configPath = params.ConfigPath
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "config", Message: "Loading " + filepath.Base(configPath), Spinner: true})
	bindgen, err := uc.loader.Load(ctx, configPath)
	if err != nil {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: "config"})
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "collect", Message: "Collecting contracts", Spinner: true})
	contracts, err := uc.source.Collect(ctx, bindgen)
	if err != nil {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: "collect"})
		return nil, fmt.Errorf("failed to collect contracts: %w", err)
	}
	if len(contracts) == 0 {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: "collect"})
		return nil, fmt.Errorf("no contracts to generate bindings for")
	}
	uc.log.Debug("collected contracts", "count", len(contracts))

	result := &GenerateBindingsResult{
		ConfigPath: configPath,
		Contracts:  contracts,
		DryRun:     params.DryRun,
	}

	emitters := bindgen.Emitters()
	for i, plugin := range emitters {
		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   "emit",
			Current: i + 1,
			Total:   len(emitters),
			Message: fmt.Sprintf("Running %s plugin", plugin.Type),
			Spinner: true,
		})

		files, err := uc.emitter.Emit(ctx, plugin, uc.resolve(bindgen.Out), contracts)
		if err != nil {
			uc.progress.OnProgress(ctx, ProgressEvent{Stage: "emit"})
			return nil, fmt.Errorf("%s plugin failed: %w", plugin.Type, err)
		}
		result.Files = append(result.Files, files...)
	}

	if !params.DryRun {
		for _, f := range result.Files {
			if err := uc.writer.EnsureDirectory(ctx, filepath.Dir(f.Path)); err != nil {
				uc.progress.OnProgress(ctx, ProgressEvent{Stage: "write"})
				return nil, fmt.Errorf("failed to create directory for %s: %w", f.Path, err)
			}
			if err := uc.writer.WriteFile(ctx, f.Path, f.Content); err != nil {
				uc.progress.OnProgress(ctx, ProgressEvent{Stage: "write"})
				return nil, fmt.Errorf("failed to write %s: %w", f.Path, err)
			}
			uc.log.Debug("wrote file", "path", f.Path, "bytes", len(f.Content))
		}
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "done"})
	return result, nil
}

// resolve makes config-relative paths relative to the project root
func (uc *GenerateBindings) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(uc.config.ProjectRoot, p)
}

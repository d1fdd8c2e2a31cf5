// Package bindgen renders contract bindings for the configured output plugins.
package bindgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/ethereum/go-ethereum/accounts/abi/abigen"
	"github.com/rdatadao/rdat-registry/internal/domain/config"
	"github.com/rdatadao/rdat-registry/internal/domain/models"
	"github.com/rdatadao/rdat-registry/internal/usecase"
	"github.com/samber/lo"
)

const defaultPackage = "bindings"

// EmitterAdapter dispatches contracts to the abigen and abi plugins
type EmitterAdapter struct {
	cfg *config.RuntimeConfig
	log *slog.Logger
}

// NewEmitterAdapter creates a new emitter
func NewEmitterAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *EmitterAdapter {
	return &EmitterAdapter{
		cfg: cfg,
		log: log.With("component", "EmitterAdapter"),
	}
}

// Emit renders the files of one plugin
func (e *EmitterAdapter) Emit(ctx context.Context, plugin config.PluginConfig, out string, contracts []*models.Contract) ([]usecase.GeneratedFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch plugin.Type {
	case config.PluginAbigen:
		file, err := e.emitGo(plugin, out, contracts)
		if err != nil {
			return nil, err
		}
		return []usecase.GeneratedFile{*file}, nil
	case config.PluginABI:
		return e.emitABI(plugin, contracts)
	default:
		return nil, fmt.Errorf("plugin type %q does not emit files", plugin.Type)
	}
}

func (e *EmitterAdapter) emitGo(plugin config.PluginConfig, out string, contracts []*models.Contract) (*usecase.GeneratedFile, error) {
	pkg := plugin.Package
	if pkg == "" {
		pkg = PackageFromPath(out)
	}

	types := lo.Map(contracts, func(c *models.Contract, _ int) string { return c.Name })
	abis := lo.Map(contracts, func(c *models.Contract, _ int) string { return string(c.ABI) })
	bytecodes := lo.Map(contracts, func(c *models.Contract, _ int) string {
		if !c.HasBytecode() {
			return ""
		}
		if strings.HasPrefix(c.Bytecode, "0x") {
			return c.Bytecode
		}
		return "0x" + c.Bytecode
	})

	e.log.Debug("running abigen", "package", pkg, "contracts", len(contracts))
	code, err := abigen.BindV2(types, abis, bytecodes, pkg, map[string]string{}, map[string]string{})
	if err != nil {
		return nil, fmt.Errorf("failed to generate Go bindings: %w", err)
	}

	return &usecase.GeneratedFile{
		Path:    out,
		Content: []byte(code),
		Plugin:  config.PluginAbigen,
	}, nil
}

func (e *EmitterAdapter) emitABI(plugin config.PluginConfig, contracts []*models.Contract) ([]usecase.GeneratedFile, error) {
	dir := plugin.Dir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(e.cfg.ProjectRoot, dir)
	}

	files := make([]usecase.GeneratedFile, 0, len(contracts))
	for _, c := range contracts {
		var buf bytes.Buffer
		if err := json.Indent(&buf, c.ABI, "", "  "); err != nil {
			return nil, fmt.Errorf("invalid ABI for %s: %w", c.Name, err)
		}
		buf.WriteByte('\n')

		files = append(files, usecase.GeneratedFile{
			Path:    filepath.Join(dir, c.Name+".json"),
			Content: buf.Bytes(),
			Plugin:  config.PluginABI,
		})
	}
	return files, nil
}

// PackageFromPath derives a Go package name from the directory of an output file
func PackageFromPath(out string) string {
	base := filepath.Base(filepath.Dir(out))
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, base)

	if name == "" || unicode.IsDigit(rune(name[0])) {
		return defaultPackage
	}
	return name
}

var _ usecase.BindingEmitter = (*EmitterAdapter)(nil)

package bindgen

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/rdatadao/rdat-registry/internal/domain/config"
	"github.com/rdatadao/rdat-registry/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const supplyABI = `[{"type":"function","name":"totalSupply","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"}]`

func newEmitter(root string) *EmitterAdapter {
	return NewEmitterAdapter(&config.RuntimeConfig{ProjectRoot: root}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testContracts() []*models.Contract {
	return []*models.Contract{
		{Name: "RDATUpgradeable", ABI: json.RawMessage(supplyABI), Bytecode: "0x6080"},
		{Name: "Bridge", ABI: json.RawMessage(`[]`)},
	}
}

func TestEmitABI(t *testing.T) {
	root := t.TempDir()
	e := newEmitter(root)

	files, err := e.Emit(context.Background(), config.PluginConfig{Type: config.PluginABI, Dir: "abis"}, "", testContracts())
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, filepath.Join(root, "abis", "RDATUpgradeable.json"), files[0].Path)
	assert.Equal(t, config.PluginABI, files[0].Plugin)
	assert.Contains(t, string(files[0].Content), "\n  {\n    \"type\": \"function\"")
	assert.Equal(t, "[]\n", string(files[1].Content))
}

func TestEmitABIAbsoluteDir(t *testing.T) {
	dir := t.TempDir()
	files, err := newEmitter("/project").Emit(context.Background(), config.PluginConfig{Type: config.PluginABI, Dir: dir}, "", testContracts()[:1])
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "RDATUpgradeable.json"), files[0].Path)
}

func TestEmitGo(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "bindings", "generated.go")

	files, err := newEmitter(root).Emit(context.Background(), config.PluginConfig{Type: config.PluginAbigen}, out, testContracts()[:1])
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, out, files[0].Path)
	assert.Equal(t, config.PluginAbigen, files[0].Plugin)
	code := string(files[0].Content)
	assert.Contains(t, code, "package bindings")
	assert.Contains(t, code, "RDATUpgradeableMetaData")
}

func TestEmitGoExplicitPackage(t *testing.T) {
	files, err := newEmitter(t.TempDir()).Emit(context.Background(),
		config.PluginConfig{Type: config.PluginAbigen, Package: "rdat"}, "gen/out.go", testContracts()[:1])
	require.NoError(t, err)
	assert.Contains(t, string(files[0].Content), "package rdat")
}

func TestEmitRejectsSourcePlugin(t *testing.T) {
	_, err := newEmitter(t.TempDir()).Emit(context.Background(), config.PluginConfig{Type: config.PluginFoundry}, "", nil)
	assert.EqualError(t, err, `plugin type "foundry" does not emit files`)
}

func TestPackageFromPath(t *testing.T) {
	tests := map[string]string{
		"bindings/generated.go":    "bindings",
		"pkg/RDAT-Bindings/gen.go": "rdatbindings",
		"generated.go":             "bindings",
		"/tmp/2024/gen.go":         "bindings",
	}
	for in, want := range tests {
		assert.Equal(t, want, PackageFromPath(in), in)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFoundryConfig(t *testing.T) {
	root := writeFoundryProject(t, `
[profile.default]
src = "src"
out = "out"
libs = ["lib"]

[rpc_endpoints]
vana = "${VANA_RPC_URL}"
base = "https://mainnet.base.org"
`)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("VANA_RPC_URL=https://vana.example/rpc\n"), 0644))
	t.Cleanup(func() {
		os.Unsetenv("VANA_RPC_URL")
	})

	cfg, err := LoadFoundryConfig(root)
	require.NoError(t, err)

	assert.Equal(t, "https://vana.example/rpc", cfg.RpcEndpoints["vana"])
	assert.Equal(t, "https://mainnet.base.org", cfg.RpcEndpoints["base"])
	assert.Equal(t, []string{"lib"}, cfg.Profile["default"].LibPaths)
	assert.Equal(t, "out", cfg.OutDir())
}

func TestLoadFoundryConfigInvalid(t *testing.T) {
	root := writeFoundryProject(t, "[profile.default\nout=")

	_, err := LoadFoundryConfig(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse foundry.toml")
}

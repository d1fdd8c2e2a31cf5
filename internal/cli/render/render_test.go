package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/rdatadao/rdat-registry/internal/domain/config"
	"github.com/rdatadao/rdat-registry/internal/domain/models"
	"github.com/rdatadao/rdat-registry/internal/usecase"
	"github.com/rdatadao/rdat-registry/pkg/chains"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func mokshaTable() *models.ChainAddresses {
	return &models.ChainAddresses{
		ChainID: chains.VanaMokshaID,
		Network: "vanaMoksha",
		Entries: []models.AddressEntry{
			{Name: "RDAT", Address: "0xC1aC75130533c7F93BDa67f6645De65C9DEE9a3A", ABI: "RDATUpgradeable"},
			{Name: "TokenVesting", ABI: "TokenVesting"},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatTable, "table": FormatTable, "json": FormatJSON, "yaml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("csv")
	assert.EqualError(t, err, `unknown format "csv" (expected table, json or yaml)`)
}

func TestAddressesRendererTable(t *testing.T) {
	var buf bytes.Buffer
	err := NewAddressesRenderer(&buf, FormatTable).Render(&usecase.ShowAddressesResult{
		Chains: []*models.ChainAddresses{mokshaTable()},
	})
	require.NoError(t, err)

	out := stripAnsiCodes(buf.String())
	assert.Contains(t, out, "vanaMoksha")
	assert.Contains(t, out, "14800")
	assert.Contains(t, out, "0xC1aC75130533c7F93BDa67f6645De65C9DEE9a3A")
	assert.Contains(t, out, "not deployed")
	assert.Contains(t, out, "1/2 deployed")
	assert.Contains(t, out, "https://moksha-explorer.vana.network")
}

func TestAddressesRendererJSON(t *testing.T) {
	var buf bytes.Buffer
	err := NewAddressesRenderer(&buf, FormatJSON).Render(&usecase.ShowAddressesResult{
		Chains: []*models.ChainAddresses{mokshaTable()},
	})
	require.NoError(t, err)

	var decoded models.ChainAddresses
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *mokshaTable(), decoded)

	buf.Reset()
	err = NewAddressesRenderer(&buf, FormatJSON).Render(&usecase.ShowAddressesResult{
		Chains: []*models.ChainAddresses{mokshaTable(), {ChainID: chains.BaseID, Network: "base"}},
	})
	require.NoError(t, err)
	var list []models.ChainAddresses
	require.NoError(t, json.Unmarshal(buf.Bytes(), &list))
	assert.Len(t, list, 2)
}

func TestAddressesRendererYAML(t *testing.T) {
	var buf bytes.Buffer
	err := NewAddressesRenderer(&buf, FormatYAML).Render(&usecase.ShowAddressesResult{
		Chains: []*models.ChainAddresses{mokshaTable()},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "chainId: 14800\n")

	var decoded models.ChainAddresses
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "vanaMoksha", decoded.Network)
	assert.Len(t, decoded.Entries, 2)
}

func TestNetworksRenderer(t *testing.T) {
	var buf bytes.Buffer
	err := NewNetworksRenderer(&buf).Render(&usecase.ListNetworksResult{
		Networks: []usecase.NetworkStatus{
			{Chain: chains.Vana, RPCURL: "https://rpc.vana.network", HasAddresses: true, Pending: 10},
			{Chain: chains.VanaMoksha, RPCURL: "http://localhost:8545", RPCOverride: true, HasAddresses: true, Deployed: 9, Pending: 3},
			{Chain: chains.Base, Error: errors.New("boom")},
		},
	})
	require.NoError(t, err)

	out := stripAnsiCodes(buf.String())
	assert.Contains(t, out, "Mainnet")
	assert.Contains(t, out, "Testnet")
	assert.Contains(t, out, "http://localhost:8545 (foundry.toml)")
	assert.Contains(t, out, "9/12 deployed")
	assert.Contains(t, out, "error: boom")
}

func TestABIRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewABIRenderer(&buf).Render(&usecase.ShowABIResult{Names: []string{"RDATUpgradeable", "vRDAT"}}))
	assert.Contains(t, buf.String(), "  vRDAT\n")

	buf.Reset()
	require.NoError(t, NewABIRenderer(&buf).Render(&usecase.ShowABIResult{Name: "X", Raw: []byte(`[{"type":"fallback"}]`)}))
	assert.Equal(t, "[\n  {\n    \"type\": \"fallback\"\n  }\n]\n", buf.String())

	buf.Reset()
	require.NoError(t, NewABIRenderer(&buf).Render(&usecase.ShowABIResult{
		Name:    "vRDAT",
		Summary: &usecase.ABISummary{Methods: []string{"function a()", "function b()"}},
	}))
	assert.Contains(t, buf.String(), "Methods (2)")
	assert.NotContains(t, buf.String(), "Events")
}

func TestCheckRenderer(t *testing.T) {
	var buf bytes.Buffer
	err := NewCheckRenderer(&buf).Render(&usecase.CheckDeploymentsResult{
		Network: &config.Network{ChainID: chains.VanaMokshaID, Name: "vanaMoksha", RPCURL: "https://rpc.moksha.vana.org"},
		Checks: []models.DeploymentCheck{
			{Entry: mokshaTable().Entries[0], Status: models.StatusDeployed, CodeSize: 1024},
			{Entry: mokshaTable().Entries[1], Status: models.StatusPending},
		},
	})
	require.NoError(t, err)

	out := stripAnsiCodes(buf.String())
	assert.Contains(t, out, "1024 bytes")
	assert.Contains(t, out, "✓ Deployed")
	assert.Contains(t, out, "○ Pending")
	assert.Contains(t, out, "1 deployed, 1 pending, 0 without code, 0 failed")
	assert.Contains(t, out, "✅")
	assert.Contains(t, out, "https://moksha-explorer.vana.network/address/0xC1aC75130533c7F93BDa67f6645De65C9DEE9a3A")
	assert.Equal(t, 1, bytes.Count([]byte(out), []byte("/address/")))
}

func TestAuditRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewAuditRenderer(&buf).Render(&usecase.AuditRegistryResult{Chains: 4, Entries: 1}))
	assert.Contains(t, buf.String(), "Registry is consistent (4 chains, 1 entry)")

	buf.Reset()
	err := NewAuditRenderer(&buf).Render(&usecase.AuditRegistryResult{
		Chains:  2,
		Entries: 12,
		Findings: []models.AuditFinding{
			{Contract: "GovernanceCore", Severity: models.SeverityWarning, Message: "ABI is not referenced by any address table"},
			{ChainID: chains.BaseSepoliaID, Contract: "V1TokenMock", Severity: models.SeverityWarning, Message: "no bundled ABI for this contract"},
			{ChainID: chains.VanaMokshaID, Contract: "RDAT", Severity: models.SeverityError, Message: "malformed address"},
		},
	})
	require.NoError(t, err)

	out := stripAnsiCodes(buf.String())
	moksha := bytes.Index([]byte(out), []byte("vanaMoksha"))
	sepolia := bytes.Index([]byte(out), []byte("baseSepolia"))
	bundle := bytes.Index([]byte(out), []byte("ABI bundle"))
	assert.True(t, moksha < sepolia && sepolia < bundle, out)
	assert.Contains(t, out, "3 findings (1 errors) in 2 chains, 12 entries")
}

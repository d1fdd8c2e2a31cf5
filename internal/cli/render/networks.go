package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rdatadao/rdat-registry/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// Render renders the known networks with their RPC and registry status
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := newTable(table.Row{"CHAIN ID", "NAME", "TYPE", "RPC", "EXPLORER", "CONTRACTS"})
	for _, n := range result.Networks {
		kind := "mainnet"
		if n.Chain.Testnet {
			kind = "testnet"
		}

		rpc := n.RPCURL
		switch {
		case n.Error != nil:
			rpc = failStyle.Sprintf("error: %v", n.Error)
		case n.RPCOverride:
			rpc += faintStyle.Sprint(" (foundry.toml)")
		}

		contracts := faintStyle.Sprint("-")
		if n.HasAddresses {
			contracts = fmt.Sprintf("%d/%d deployed", n.Deployed, n.Deployed+n.Pending)
			if n.Deployed > 0 {
				contracts = okStyle.Sprint(contracts)
			}
		}

		t.AppendRow(table.Row{
			n.Chain.ID,
			nameStyle.Sprint(n.Chain.Name),
			titleCaser.String(kind),
			rpc,
			n.Chain.Explorer.URL,
			contracts,
		})
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}

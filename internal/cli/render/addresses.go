package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rdatadao/rdat-registry/internal/domain/models"
	"github.com/rdatadao/rdat-registry/internal/usecase"
	"github.com/rdatadao/rdat-registry/pkg/chains"
)

// AddressesRenderer renders address tables
type AddressesRenderer struct {
	out    io.Writer
	format Format
}

// NewAddressesRenderer creates a new addresses renderer
func NewAddressesRenderer(out io.Writer, format Format) *AddressesRenderer {
	return &AddressesRenderer{
		out:    out,
		format: format,
	}
}

// Render prints one table per chain. Structured formats print a single
// object for one chain and a list otherwise.
func (r *AddressesRenderer) Render(result *usecase.ShowAddressesResult) error {
	if r.format != FormatTable {
		if len(result.Chains) == 1 {
			return writeStructured(r.out, r.format, result.Chains[0])
		}
		return writeStructured(r.out, r.format, result.Chains)
	}

	for i, chain := range result.Chains {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		r.renderChain(chain)
	}
	return nil
}

func (r *AddressesRenderer) renderChain(chain *models.ChainAddresses) {
	fmt.Fprintln(r.out, chainBanner(chain.Network, chain.ChainID))

	if len(chain.Entries) == 0 {
		fmt.Fprintln(r.out, faintStyle.Sprint("  no contracts"))
		return
	}

	explorer, _ := chains.ByID(chain.ChainID)

	t := newTable(table.Row{"CONTRACT", "ADDRESS", "ABI"})
	deployed := 0
	for _, e := range chain.Entries {
		address := pendingStyle.Sprint("not deployed")
		if e.Deployed() {
			deployed++
			address = addressStyle.Sprint(e.Address)
		}
		abiName := faintStyle.Sprint("-")
		if e.ABI != "" {
			abiName = e.ABI
		}
		t.AppendRow(table.Row{nameStyle.Sprint(e.Name), address, abiName})
	}
	fmt.Fprintln(r.out, t.Render())

	summary := fmt.Sprintf("  %d/%d deployed", deployed, len(chain.Entries))
	if explorer.Explorer.URL != "" {
		summary += " · " + explorer.Explorer.URL
	}
	fmt.Fprintln(r.out, faintStyle.Sprint(summary))
}

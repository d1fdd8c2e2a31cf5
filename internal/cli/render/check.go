package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rdatadao/rdat-registry/internal/domain/models"
	"github.com/rdatadao/rdat-registry/internal/usecase"
	"github.com/rdatadao/rdat-registry/pkg/chains"
)

// CheckRenderer renders on-chain deployment checks
type CheckRenderer struct {
	out io.Writer
}

// NewCheckRenderer creates a new check renderer
func NewCheckRenderer(out io.Writer) *CheckRenderer {
	return &CheckRenderer{out: out}
}

// Render prints one row per address table entry and a summary line
func (r *CheckRenderer) Render(result *usecase.CheckDeploymentsResult) error {
	fmt.Fprintln(r.out, chainBanner(result.Network.Name, result.Network.ChainID))
	fmt.Fprintln(r.out, faintStyle.Sprintf("  rpc: %s", result.Network.RPCURL))

	// chains without an explorer leave the link column empty
	chain, _ := chains.ByID(result.Network.ChainID)

	t := newTable(table.Row{"CONTRACT", "ADDRESS", "STATUS", "DETAIL", "EXPLORER"})
	for _, c := range result.Checks {
		address := addressStyle.Sprint(c.Entry.Address)
		link := faintStyle.Sprint(chain.AddressURL(c.Entry.Address))
		if !c.Entry.Deployed() {
			address = faintStyle.Sprint("-")
			link = ""
		}

		detail := c.Reason
		if c.Status == models.StatusDeployed {
			detail = fmt.Sprintf("%d bytes", c.CodeSize)
		}

		t.AppendRow(table.Row{nameStyle.Sprint(c.Entry.Name), address, statusCell(c.Status), detail, link})
	}
	fmt.Fprintln(r.out, t.Render())
	fmt.Fprintln(r.out)

	summary := fmt.Sprintf("%d deployed, %d pending, %d without code, %d failed",
		result.Count(models.StatusDeployed),
		result.Count(models.StatusPending),
		result.Count(models.StatusNoCode),
		result.Count(models.StatusError))
	if result.Healthy() {
		fmt.Fprintln(r.out, FormatSuccess(summary))
	} else {
		fmt.Fprintln(r.out, FormatWarning(summary))
	}
	return nil
}

func statusCell(status models.DeploymentStatus) string {
	label := titleCaser.String(string(status))
	switch status {
	case models.StatusDeployed:
		return okStyle.Sprint("✓ " + label)
	case models.StatusPending:
		return pendingStyle.Sprint("○ " + label)
	default:
		return failStyle.Sprint("✗ " + label)
	}
}

package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/rdatadao/rdat-registry/internal/domain/models"
	"github.com/rdatadao/rdat-registry/internal/usecase"
	"github.com/rdatadao/rdat-registry/pkg/chains"
	"github.com/samber/lo"
)

// AuditRenderer renders registry audit findings
type AuditRenderer struct {
	out io.Writer
}

// NewAuditRenderer creates a new audit renderer
func NewAuditRenderer(out io.Writer) *AuditRenderer {
	return &AuditRenderer{out: out}
}

// Render prints findings grouped by chain, bundle-level findings last
func (r *AuditRenderer) Render(result *usecase.AuditRegistryResult) error {
	scope := fmt.Sprintf("%s, %s", plural(result.Chains, "chain", "chains"), plural(result.Entries, "entry", "entries"))
	if len(result.Findings) == 0 {
		fmt.Fprintln(r.out, FormatSuccess("Registry is consistent ("+scope+")"))
		return nil
	}

	groups := lo.GroupBy(result.Findings, func(f models.AuditFinding) uint64 { return f.ChainID })
	ids := lo.Keys(groups)
	// chain 0 holds the ABI bundle findings and sorts last
	sort.Slice(ids, func(i, j int) bool {
		if ids[i] == 0 || ids[j] == 0 {
			return ids[j] == 0 && ids[i] != 0
		}
		return ids[i] < ids[j]
	})

	for _, id := range ids {
		if id == 0 {
			fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("ABI bundle"))
		} else {
			name := fmt.Sprintf("chain %d", id)
			if c, err := chains.ByID(id); err == nil {
				name = c.Name
			}
			fmt.Fprintln(r.out, chainBanner(name, id))
		}
		for _, f := range groups[id] {
			fmt.Fprintf(r.out, "  %s %s %s\n", severityIcon(f.Severity), nameStyle.Sprint(f.Contract), f.Message)
		}
		fmt.Fprintln(r.out)
	}

	errs := lo.CountBy(result.Findings, func(f models.AuditFinding) bool { return f.Severity == models.SeverityError })
	summary := fmt.Sprintf("%s (%d errors) in %s", plural(len(result.Findings), "finding", "findings"), errs, scope)
	if errs > 0 {
		fmt.Fprintln(r.out, FormatError(summary))
	} else {
		fmt.Fprintln(r.out, FormatWarning(summary))
	}
	return nil
}

func severityIcon(s models.FindingSeverity) string {
	if s == models.SeverityError {
		return failStyle.Sprint("✗")
	}
	return pendingStyle.Sprint("⚠")
}

package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rdatadao/rdat-registry/internal/domain/models"
	"github.com/samber/lo"
)

// AuditRegistryParams contains parameters for the registry audit
type AuditRegistryParams struct {
	// Strict turns address table warnings into errors
	Strict bool
}

// AuditRegistryResult contains every finding
type AuditRegistryResult struct {
	Findings []models.AuditFinding
	Chains   int
	Entries  int
}

// HasErrors reports whether any finding is an error
func (r *AuditRegistryResult) HasErrors() bool {
	return r.ErrorCount() > 0
}

// ErrorCount returns the number of error findings
func (r *AuditRegistryResult) ErrorCount() int {
	return lo.CountBy(r.Findings, func(f models.AuditFinding) bool { return f.Severity == models.SeverityError })
}

// AuditRegistry checks the address tables and ABI bundle against each other
type AuditRegistry struct {
	registry AddressRegistry
	abis     ABIRegistry
}

// NewAuditRegistry creates a new AuditRegistry use case
func NewAuditRegistry(registry AddressRegistry, abis ABIRegistry) *AuditRegistry {
	return &AuditRegistry{
		registry: registry,
		abis:     abis,
	}
}

// Run executes the use case
func (uc *AuditRegistry) Run(ctx context.Context, params AuditRegistryParams) (*AuditRegistryResult, error) {
	result := &AuditRegistryResult{}
	warn := models.SeverityWarning
	if params.Strict {
		warn = models.SeverityError
	}

	referenced := make(map[string]bool)

	for _, chainID := range uc.registry.ChainIDs() {
		table, err := uc.registry.GetAddresses(ctx, chainID)
		if err != nil {
			return nil, err
		}
		result.Chains++

		seen := make(map[string][]string)
		for _, entry := range table.Entries {
			result.Entries++

			if abiName, ok := uc.abis.ContractFor(entry.Name); ok {
				referenced[abiName] = true
			} else {
				result.Findings = append(result.Findings, models.AuditFinding{
					ChainID:  chainID,
					Contract: entry.Name,
					Severity: warn,
					Message:  "no bundled ABI for this contract",
				})
			}

			if !entry.Deployed() {
				continue
			}

			if !common.IsHexAddress(entry.Address) {
				result.Findings = append(result.Findings, models.AuditFinding{
					ChainID:  chainID,
					Contract: entry.Name,
					Severity: models.SeverityError,
					Message:  fmt.Sprintf("malformed address %q", entry.Address),
				})
				continue
			}

			addr := common.HexToAddress(entry.Address)
			if entry.Address != addr.Hex() {
				result.Findings = append(result.Findings, models.AuditFinding{
					ChainID:  chainID,
					Contract: entry.Name,
					Severity: warn,
					Message:  fmt.Sprintf("address is not checksummed (expected %s)", addr.Hex()),
				})
			}
			seen[addr.Hex()] = append(seen[addr.Hex()], entry.Name)
		}

		dupAddrs := lo.Keys(seen)
		sort.Strings(dupAddrs)
		for _, addr := range dupAddrs {
			names := seen[addr]
			if len(names) < 2 {
				continue
			}
			sort.Strings(names)
			result.Findings = append(result.Findings, models.AuditFinding{
				ChainID:  chainID,
				Contract: names[0],
				Severity: warn,
				Message:  fmt.Sprintf("address %s is shared by %v", addr, names),
			})
		}
	}

	for _, name := range uc.abis.Names() {
		if !referenced[name] {
			result.Findings = append(result.Findings, models.AuditFinding{
				Contract: name,
				Severity: warn,
				Message:  "ABI is not referenced by any address table",
			})
		}
	}

	return result, nil
}

package registry

import (
	"context"

	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/rdatadao/rdat-registry/internal/domain/models"
	"github.com/rdatadao/rdat-registry/internal/usecase"
	"github.com/rdatadao/rdat-registry/pkg/abi"
	"github.com/rdatadao/rdat-registry/pkg/addresses"
	"github.com/rdatadao/rdat-registry/pkg/chains"
)

// StaticRegistryAdapter serves the compiled-in address tables and ABI bundle
type StaticRegistryAdapter struct{}

// NewStaticRegistryAdapter creates a new registry adapter
func NewStaticRegistryAdapter() *StaticRegistryAdapter {
	return &StaticRegistryAdapter{}
}

// ChainIDs returns every chain with an address table
func (r *StaticRegistryAdapter) ChainIDs() []uint64 {
	return addresses.ChainIDs()
}

// GetAddresses returns one chain's table as sorted entries
func (r *StaticRegistryAdapter) GetAddresses(ctx context.Context, chainID uint64) (*models.ChainAddresses, error) {
	table, err := addresses.GetAddresses(chainID)
	if err != nil {
		return nil, err
	}

	result := &models.ChainAddresses{ChainID: chainID}
	if chain, err := chains.ByID(chainID); err == nil {
		result.Network = chain.Name
	}

	for _, name := range table.Names() {
		entry := models.AddressEntry{Name: name, Address: table[name]}
		if abiName, ok := abi.ContractFor(name); ok {
			entry.ABI = abiName
		}
		result.Entries = append(result.Entries, entry)
	}
	return result, nil
}

// Names returns the bundled ABI names
func (r *StaticRegistryAdapter) Names() []string {
	return abi.Names()
}

// Raw returns an ABI document
func (r *StaticRegistryAdapter) Raw(name string) ([]byte, error) {
	return abi.Raw(name)
}

// Parse decodes an ABI document
func (r *StaticRegistryAdapter) Parse(name string) (*gethabi.ABI, error) {
	return abi.Parse(name)
}

// ContractFor maps an address table entry to its ABI name
func (r *StaticRegistryAdapter) ContractFor(entry string) (string, bool) {
	return abi.ContractFor(entry)
}

// Ensure the adapter implements the interfaces
var (
	_ usecase.AddressRegistry = (*StaticRegistryAdapter)(nil)
	_ usecase.ABIRegistry     = (*StaticRegistryAdapter)(nil)
)

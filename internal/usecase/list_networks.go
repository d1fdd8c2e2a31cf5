package usecase

import (
	"context"

	"github.com/rdatadao/rdat-registry/pkg/chains"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct{}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Chain        chains.Chain
	RPCURL       string
	RPCOverride  bool
	HasAddresses bool
	Deployed     int
	Pending      int
	Error        error
}

// ListNetworks is a use case for listing known networks
type ListNetworks struct {
	resolver NetworkResolver
	registry AddressRegistry
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(resolver NetworkResolver, registry AddressRegistry) *ListNetworks {
	return &ListNetworks{
		resolver: resolver,
		registry: registry,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	all := uc.resolver.Chains()
	networks := make([]NetworkStatus, 0, len(all))

	for _, chain := range all {
		status := NetworkStatus{
			Chain:       chain,
			RPCOverride: uc.resolver.HasOverride(chain.Name),
		}

		if info, err := uc.resolver.ResolveNetwork(ctx, chain.Name); err != nil {
			status.Error = err
		} else {
			status.RPCURL = info.RPCURL
		}

		if table, err := uc.registry.GetAddresses(ctx, chain.ID); err == nil {
			status.HasAddresses = true
			for _, e := range table.Entries {
				if e.Deployed() {
					status.Deployed++
				} else {
					status.Pending++
				}
			}
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{Networks: networks}, nil
}

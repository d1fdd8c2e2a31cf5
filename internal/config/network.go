package config

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/rdatadao/rdat-registry/internal/domain/config"
	"github.com/rdatadao/rdat-registry/pkg/chains"
)

// NetworkResolver resolves chain names or IDs to network configurations.
// RPC endpoints from foundry.toml take precedence over the built-in defaults.
type NetworkResolver struct {
	foundryConfig *config.FoundryConfig
}

// NewNetworkResolver creates a new network resolver
func NewNetworkResolver(foundryConfig *config.FoundryConfig) *NetworkResolver {
	return &NetworkResolver{foundryConfig: foundryConfig}
}

// Resolve resolves a chain name or decimal chain ID
func (r *NetworkResolver) Resolve(nameOrID string) (*config.Network, error) {
	chain, err := chains.Parse(nameOrID)
	if err != nil {
		return nil, err
	}

	network := &config.Network{
		ChainID: chain.ID,
		Name:    chain.Name,
		RPCURL:  chain.RPCURL,
	}

	if rpcURL, ok := r.endpoint(chain, nameOrID); ok {
		network.RPCURL = rpcURL
	}

	if network.RPCURL == "" {
		return nil, fmt.Errorf("no RPC URL configured for %s", chain.Name)
	}

	return network, nil
}

// Overrides returns the foundry.toml endpoint names that map to known chains, sorted
func (r *NetworkResolver) Overrides() []string {
	var names []string
	for _, chain := range chains.All() {
		if _, ok := r.endpoint(chain, ""); ok {
			names = append(names, chain.Name)
		}
	}
	sort.Strings(names)
	return names
}

// endpoint looks up foundry.toml rpc_endpoints by symbolic name, then by chain ID, then by the raw input
func (r *NetworkResolver) endpoint(chain chains.Chain, raw string) (string, bool) {
	if r.foundryConfig == nil || r.foundryConfig.RpcEndpoints == nil {
		return "", false
	}
	for _, key := range []string{chain.Name, strconv.FormatUint(chain.ID, 10), raw} {
		if key == "" {
			continue
		}
		if url, ok := r.foundryConfig.RpcEndpoints[key]; ok && url != "" {
			return url, true
		}
	}
	return "", false
}

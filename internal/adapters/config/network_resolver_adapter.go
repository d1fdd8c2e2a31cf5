package config

import (
	"context"

	"github.com/rdatadao/rdat-registry/internal/config"
	domainconfig "github.com/rdatadao/rdat-registry/internal/domain/config"
	"github.com/rdatadao/rdat-registry/internal/usecase"
	"github.com/rdatadao/rdat-registry/pkg/chains"
	"github.com/samber/lo"
)

// NetworkResolverAdapter adapts the config.NetworkResolver to the usecase.NetworkResolver interface
type NetworkResolverAdapter struct {
	resolver  *config.NetworkResolver
	overrides []string
}

// NewNetworkResolverAdapter creates a new adapter
func NewNetworkResolverAdapter(cfg *domainconfig.RuntimeConfig) *NetworkResolverAdapter {
	resolver := config.NewNetworkResolver(cfg.FoundryConfig)
	return &NetworkResolverAdapter{
		resolver:  resolver,
		overrides: resolver.Overrides(),
	}
}

// Chains returns every known chain
func (a *NetworkResolverAdapter) Chains() []chains.Chain {
	return chains.All()
}

// ResolveNetwork resolves a chain name or ID to its configuration
func (a *NetworkResolverAdapter) ResolveNetwork(ctx context.Context, nameOrID string) (*domainconfig.Network, error) {
	return a.resolver.Resolve(nameOrID)
}

// HasOverride reports whether foundry.toml supplies the chain's RPC URL
func (a *NetworkResolverAdapter) HasOverride(chainName string) bool {
	return lo.Contains(a.overrides, chainName)
}

// Ensure the adapter implements the interface
var _ usecase.NetworkResolver = (*NetworkResolverAdapter)(nil)

package usecase

import (
	"context"
	"fmt"

	"github.com/rdatadao/rdat-registry/internal/domain"
	"github.com/rdatadao/rdat-registry/internal/domain/config"
	"github.com/rdatadao/rdat-registry/internal/domain/models"
	"github.com/rdatadao/rdat-registry/pkg/chains"
	"github.com/samber/lo"
)

// ShowAddressesParams contains parameters for showing address tables
type ShowAddressesParams struct {
	// Chain is a chain ID or symbolic name; empty means prompt (or all with All)
	Chain        string
	All          bool
	DeployedOnly bool
}

// ShowAddressesResult contains the selected address tables
type ShowAddressesResult struct {
	Chains []*models.ChainAddresses
}

// ShowAddresses is a use case for reading the deployed address tables
type ShowAddresses struct {
	config   *config.RuntimeConfig
	registry AddressRegistry
	selector InteractiveSelector
}

// NewShowAddresses creates a new ShowAddresses use case
func NewShowAddresses(cfg *config.RuntimeConfig, registry AddressRegistry, selector InteractiveSelector) *ShowAddresses {
	return &ShowAddresses{
		config:   cfg,
		registry: registry,
		selector: selector,
	}
}

// Run executes the use case
func (uc *ShowAddresses) Run(ctx context.Context, params ShowAddressesParams) (*ShowAddressesResult, error) {
	chainIDs, err := uc.resolveChains(ctx, params)
	if err != nil {
		return nil, err
	}

	result := &ShowAddressesResult{}
	for _, id := range chainIDs {
		table, err := uc.registry.GetAddresses(ctx, id)
		if err != nil {
			return nil, err
		}
		if params.DeployedOnly {
			table.Entries = lo.Filter(table.Entries, func(e models.AddressEntry, _ int) bool { return e.Deployed() })
		}
		result.Chains = append(result.Chains, table)
	}
	return result, nil
}

func (uc *ShowAddresses) resolveChains(ctx context.Context, params ShowAddressesParams) ([]uint64, error) {
	switch {
	case params.All:
		return uc.registry.ChainIDs(), nil
	case params.Chain != "":
		chain, err := chains.Parse(params.Chain)
		if err != nil {
			return nil, err
		}
		return []uint64{chain.ID}, nil
	case uc.config.NetworkName != "":
		chain, err := chains.Parse(uc.config.NetworkName)
		if err != nil {
			return nil, fmt.Errorf("invalid --network: %w", err)
		}
		return []uint64{chain.ID}, nil
	}

	if uc.config.NonInteractive {
		return nil, fmt.Errorf("%w: pass a chain or --all", domain.ErrNonInteractive)
	}

	options := lo.Filter(chains.All(), func(c chains.Chain, _ int) bool {
		return lo.Contains(uc.registry.ChainIDs(), c.ID)
	})
	chain, err := uc.selector.SelectChain(ctx, options, "Select a network")
	if err != nil {
		return nil, err
	}
	return []uint64{chain.ID}, nil
}

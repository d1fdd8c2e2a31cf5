package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rdatadao/rdat-registry/internal/domain/config"
	"github.com/rdatadao/rdat-registry/internal/domain/models"
	"github.com/rdatadao/rdat-registry/pkg/chains"
)

// CheckDeploymentsParams contains parameters for checking deployments
type CheckDeploymentsParams struct {
	// Chain is a chain ID or symbolic name; falls back to --network
	Chain string
	// RPCURL overrides the resolved RPC endpoint
	RPCURL string
}

// CheckDeploymentsResult contains the per-entry checks of one chain
type CheckDeploymentsResult struct {
	Network *config.Network
	Checks  []models.DeploymentCheck
}

// Count returns how many checks ended in status
func (r *CheckDeploymentsResult) Count(status models.DeploymentStatus) int {
	n := 0
	for _, c := range r.Checks {
		if c.Status == status {
			n++
		}
	}
	return n
}

// Healthy reports whether every recorded address has code
func (r *CheckDeploymentsResult) Healthy() bool {
	return r.Count(models.StatusNoCode) == 0 && r.Count(models.StatusError) == 0
}

// CheckDeployments verifies that recorded addresses hold contract code
type CheckDeployments struct {
	config   *config.RuntimeConfig
	registry AddressRegistry
	resolver NetworkResolver
	checker  BlockchainChecker
	progress ProgressSink
	log      *slog.Logger
}

// NewCheckDeployments creates a new CheckDeployments use case
func NewCheckDeployments(
	cfg *config.RuntimeConfig,
	registry AddressRegistry,
	resolver NetworkResolver,
	checker BlockchainChecker,
	progress ProgressSink,
	log *slog.Logger,
) *CheckDeployments {
	return &CheckDeployments{
		config:   cfg,
		registry: registry,
		resolver: resolver,
		checker:  checker,
		progress: progress,
		log:      log.With("component", "CheckDeployments"),
	}
}

// Run executes the use case
func (uc *CheckDeployments) Run(ctx context.Context, params CheckDeploymentsParams) (*CheckDeploymentsResult, error) {
	network, err := uc.network(ctx, params)
	if err != nil {
		return nil, err
	}

	table, err := uc.registry.GetAddresses(ctx, network.ChainID)
	if err != nil {
		return nil, err
	}

	result := &CheckDeploymentsResult{Network: network}

	// Nothing to dial for when no entry has an address yet
	hasDeployed := false
	for _, e := range table.Entries {
		if e.Deployed() {
			hasDeployed = true
			break
		}
	}
	if hasDeployed {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: "connect", Message: "Connecting to " + network.Name, Spinner: true})
		if err := uc.checker.Connect(ctx, network.RPCURL, network.ChainID); err != nil {
			uc.progress.OnProgress(ctx, ProgressEvent{Stage: "connect"})
			return nil, fmt.Errorf("failed to connect to %s: %w", network.Name, err)
		}
		defer uc.checker.Close()
	}

	for i, entry := range table.Entries {
		check := models.DeploymentCheck{Entry: entry}
		if !entry.Deployed() {
			check.Status = models.StatusPending
			result.Checks = append(result.Checks, check)
			continue
		}

		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   "check",
			Current: i + 1,
			Total:   len(table.Entries),
			Message: "Checking " + entry.Name,
			Spinner: true,
		})

		size, err := uc.checker.CodeSize(ctx, entry.Address)
		switch {
		case err != nil:
			check.Status = models.StatusError
			check.Reason = err.Error()
			uc.log.Debug("code lookup failed", "contract", entry.Name, "error", err)
		case size == 0:
			check.Status = models.StatusNoCode
			check.Reason = "no code at address"
		default:
			check.Status = models.StatusDeployed
			check.CodeSize = size
		}
		result.Checks = append(result.Checks, check)
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "done"})
	return result, nil
}

func (uc *CheckDeployments) network(ctx context.Context, params CheckDeploymentsParams) (*config.Network, error) {
	nameOrID := params.Chain
	if nameOrID == "" {
		nameOrID = uc.config.NetworkName
	}
	if nameOrID == "" {
		return nil, fmt.Errorf("no network given: pass a chain or --network (known: %s)", knownChainNames())
	}

	network, err := uc.resolver.ResolveNetwork(ctx, nameOrID)
	if err != nil {
		return nil, err
	}

	rpcURL := params.RPCURL
	if rpcURL == "" {
		rpcURL = uc.config.RPCURL
	}
	if rpcURL != "" {
		network.RPCURL = rpcURL
	}
	return network, nil
}

func knownChainNames() string {
	names := ""
	for i, c := range chains.All() {
		if i > 0 {
			names += ", "
		}
		names += c.Name
	}
	return names
}

package blockchain

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rdatadao/rdat-registry/internal/domain"
	"github.com/rdatadao/rdat-registry/internal/usecase"
)

// CheckerAdapter implements the BlockchainChecker interface using ethclient
type CheckerAdapter struct {
	client  *ethclient.Client
	chainID uint64
	timeout time.Duration
}

// NewCheckerAdapter creates a new blockchain checker adapter
func NewCheckerAdapter() *CheckerAdapter {
	return &CheckerAdapter{timeout: 5 * time.Second}
}

// Connect establishes connection to the blockchain
func (c *CheckerAdapter) Connect(ctx context.Context, rpcURL string, chainID uint64) error {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return fmt.Errorf("failed to connect to RPC: %w", err)
	}

	// Verify chain ID matches
	idCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	networkChainID, err := client.ChainID(idCtx)
	if err != nil {
		client.Close()
		return fmt.Errorf("failed to get chain ID: %w", err)
	}

	// If chainID was 0, use the network's chain ID
	if chainID == 0 {
		chainID = networkChainID.Uint64()
	} else if networkChainID.Uint64() != chainID {
		client.Close()
		return fmt.Errorf("%w: expected %d, got %d", domain.ErrNetworkMismatch, chainID, networkChainID.Uint64())
	}

	c.client = client
	c.chainID = chainID
	return nil
}

// CodeSize returns the length of the runtime code at address
func (c *CheckerAdapter) CodeSize(ctx context.Context, address string) (int, error) {
	if c.client == nil {
		return 0, fmt.Errorf("not connected to blockchain")
	}
	if !common.IsHexAddress(address) {
		return 0, fmt.Errorf("%w %q", domain.ErrInvalidAddress, address)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	code, err := c.client.CodeAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to check code: %w", err)
	}
	return len(code), nil
}

// Close releases the RPC connection
func (c *CheckerAdapter) Close() {
	if c.client != nil {
		c.client.Close()
		c.client = nil
	}
}

// Ensure the adapter implements the interface
var _ usecase.BlockchainChecker = (*CheckerAdapter)(nil)

package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/rdatadao/rdat-registry/internal/domain/config"
	"github.com/rdatadao/rdat-registry/internal/domain/models"
	"github.com/rdatadao/rdat-registry/pkg/chains"
)

// AddressRegistry provides the deployed address tables
type AddressRegistry interface {
	ChainIDs() []uint64
	GetAddresses(ctx context.Context, chainID uint64) (*models.ChainAddresses, error)
}

// ABIRegistry provides the bundled interface definitions
type ABIRegistry interface {
	Names() []string
	Raw(name string) ([]byte, error)
	Parse(name string) (*abi.ABI, error)
	// ContractFor maps an address table entry to its ABI name
	ContractFor(entry string) (string, bool)
}

// NetworkResolver resolves chains to RPC configuration
type NetworkResolver interface {
	Chains() []chains.Chain
	ResolveNetwork(ctx context.Context, nameOrID string) (*config.Network, error)
	// HasOverride reports whether foundry.toml supplies the RPC for a chain
	HasOverride(chainName string) bool
}

// BlockchainChecker inspects deployed code on a chain
type BlockchainChecker interface {
	Connect(ctx context.Context, rpcURL string, chainID uint64) error
	CodeSize(ctx context.Context, address string) (int, error)
	Close()
}

// BindgenConfigLoader loads the binding generator configuration
type BindgenConfigLoader interface {
	Load(ctx context.Context, path string) (*config.BindgenConfig, error)
}

// BindgenConfigWriter writes a starter bindgen config
type BindgenConfigWriter interface {
	Default() *config.BindgenConfig
	Save(ctx context.Context, path string, cfg *config.BindgenConfig, overwrite bool) error
}

// ContractSource collects the contracts to generate bindings for
type ContractSource interface {
	Collect(ctx context.Context, cfg *config.BindgenConfig) ([]*models.Contract, error)
}

// GeneratedFile is one file produced by an emit plugin
type GeneratedFile struct {
	Path    string
	Content []byte
	Plugin  config.PluginType
}

// BindingEmitter renders output files for one plugin
type BindingEmitter interface {
	Emit(ctx context.Context, plugin config.PluginConfig, out string, contracts []*models.Contract) ([]GeneratedFile, error)
}

// FileWriter handles file system writes
type FileWriter interface {
	WriteFile(ctx context.Context, path string, content []byte) error
	EnsureDirectory(ctx context.Context, path string) error
}

// InteractiveSelector prompts the user to pick from options
type InteractiveSelector interface {
	SelectChain(ctx context.Context, options []chains.Chain, prompt string) (chains.Chain, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

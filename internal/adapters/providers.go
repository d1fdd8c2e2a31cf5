package adapters

import (
	"github.com/google/wire"
	"github.com/rdatadao/rdat-registry/internal/adapters/bindgen"
	"github.com/rdatadao/rdat-registry/internal/adapters/blockchain"
	internalconfig "github.com/rdatadao/rdat-registry/internal/adapters/config"
	"github.com/rdatadao/rdat-registry/internal/adapters/forge"
	"github.com/rdatadao/rdat-registry/internal/adapters/fs"
	"github.com/rdatadao/rdat-registry/internal/adapters/interactive"
	"github.com/rdatadao/rdat-registry/internal/adapters/progress"
	"github.com/rdatadao/rdat-registry/internal/adapters/registry"
	"github.com/rdatadao/rdat-registry/internal/usecase"
)

// RegistrySet provides the bundled address tables and ABIs
var RegistrySet = wire.NewSet(
	registry.NewStaticRegistryAdapter,
	wire.Bind(new(usecase.AddressRegistry), new(*registry.StaticRegistryAdapter)),
	wire.Bind(new(usecase.ABIRegistry), new(*registry.StaticRegistryAdapter)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewFileWriterAdapter,
	wire.Bind(new(usecase.FileWriter), new(*fs.FileWriterAdapter)),
)

// ForgeSet provides forge-based implementations
var ForgeSet = wire.NewSet(
	forge.NewForgeAdapter,
	forge.NewArtifactSource,
	wire.Bind(new(usecase.ContractSource), new(*forge.ArtifactSource)),
)

// BindgenSet provides the binding output plugins
var BindgenSet = wire.NewSet(
	bindgen.NewEmitterAdapter,
	wire.Bind(new(usecase.BindingEmitter), new(*bindgen.EmitterAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.InteractiveSelector), new(*interactive.SelectorAdapter)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	internalconfig.NewNetworkResolverAdapter,
	wire.Bind(new(usecase.NetworkResolver), new(*internalconfig.NetworkResolverAdapter)),

	internalconfig.NewBindgenLoaderAdapter,
	wire.Bind(new(usecase.BindgenConfigLoader), new(*internalconfig.BindgenLoaderAdapter)),
	wire.Bind(new(usecase.BindgenConfigWriter), new(*internalconfig.BindgenLoaderAdapter)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewCheckerAdapter,
	wire.Bind(new(usecase.BlockchainChecker), new(*blockchain.CheckerAdapter)),
)

// ProgressSet provides the progress sink for long running commands
var ProgressSet = wire.NewSet(
	progress.NewProgressSink,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	RegistrySet,
	FSSet,
	ForgeSet,
	BindgenSet,
	InteractiveSet,
	ConfigSet,
	BlockchainSet,
	ProgressSet,
)

// Package addresses holds the deployed contract addresses of the RDAT system
// keyed by chain ID.
//
// The table is edited by hand after each deployment. An empty address means
// the contract has not been deployed to that chain yet.
package addresses

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rdatadao/rdat-registry/pkg/chains"
	"github.com/samber/lo"
)

// ErrUnsupportedChain is returned when no address table exists for a chain
var ErrUnsupportedChain = errors.New("unsupported chain ID")

// ErrUnknownContract is returned when a contract name is not in a chain's table
var ErrUnknownContract = errors.New("unknown contract")

// ChainID identifies a network that has an address table
type ChainID uint64

const (
	Vana        ChainID = ChainID(chains.VanaID)
	Base        ChainID = ChainID(chains.BaseID)
	VanaMoksha  ChainID = ChainID(chains.VanaMokshaID)
	BaseSepolia ChainID = ChainID(chains.BaseSepoliaID)
)

// ContractName is a contract name of the Vana mainnet table
type ContractName string

const (
	RDAT                ContractName = "RDAT"
	VRDAT               ContractName = "vRDAT"
	StakingPositions    ContractName = "StakingPositions"
	TreasuryWallet      ContractName = "TreasuryWallet"
	TokenVesting        ContractName = "TokenVesting"
	VanaMigrationBridge ContractName = "VanaMigrationBridge"
	RevenueCollector    ContractName = "RevenueCollector"
	RewardsManager      ContractName = "RewardsManager"
	EmergencyPause      ContractName = "EmergencyPause"
	ProofOfContribution ContractName = "ProofOfContribution"
)

// ContractNames lists every ContractName in table order
var ContractNames = []ContractName{
	RDAT,
	VRDAT,
	StakingPositions,
	TreasuryWallet,
	TokenVesting,
	VanaMigrationBridge,
	RevenueCollector,
	RewardsManager,
	EmergencyPause,
	ProofOfContribution,
}

// Addresses maps contract names to deployed addresses for one chain
type Addresses map[string]string

// contractAddresses is the address table. Never hand it out directly.
var contractAddresses = map[ChainID]Addresses{
	// Vana Mainnet
	Vana: {
		"RDAT":                "",
		"vRDAT":               "",
		"StakingPositions":    "",
		"TreasuryWallet":      "",
		"TokenVesting":        "",
		"VanaMigrationBridge": "",
		"RevenueCollector":    "",
		"RewardsManager":      "",
		"EmergencyPause":      "",
		"ProofOfContribution": "",
	},
	// Base Mainnet
	Base: {
		"BaseMigrationBridge": "",
		"V1Token":             "",
	},
	// Vana Moksha Testnet
	VanaMoksha: {
		"RDAT":                "0xC1aC75130533c7F93BDa67f6645De65C9DEE9a3A",
		"RDATImplementation":  "0xd546C45872eeA596155EAEAe9B8495f02ca4fc58",
		"CREATE2Factory":      "0x87C5F9661E7223D9d97899B3Ba89327FCaf51EFB",
		"vRDAT":               "0x386f44505DB03a387dF1402884d5326247DCaaC8",
		"StakingPositions":    "0x3f2236ef5360BEDD999378672A145538f701E662",
		"TreasuryWallet":      "0x31C3e3F091FB2A25d4dac82474e7dc709adE754a",
		"TokenVesting":        "",
		"VanaMigrationBridge": "",
		"RevenueCollector":    "0x5588e399206880Fcd2C7Ca8dE04126854ce273cE",
		"RewardsManager":      "",
		"EmergencyPause":      "0xF73c6216d7D6218d722968e170Cfff6654A8936c",
		"ProofOfContribution": "0xdbb1926C6cA2a68A8832d550d94C648c19Dbae6b",
	},
	// Base Sepolia
	BaseSepolia: {
		"BaseMigrationBridge": "0xb7d6f8eadfD4415cb27686959f010771FE94561b",
		"V1TokenMock":         "0x2c1CB448cAf3579B2374EFe20068Ea97F72A996E",
	},
}

// GetAddresses returns a copy of the address table for a chain
func GetAddresses(chainID uint64) (Addresses, error) {
	table, ok := contractAddresses[ChainID(chainID)]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChain, chainID)
	}
	return table.clone(), nil
}

// GetAddressesByNetwork returns the address table for a symbolic network name such as "vana" or "vanaMoksha"
func GetAddressesByNetwork(network string) (Addresses, error) {
	chain, err := chains.ByName(network)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedChain, network)
	}
	return GetAddresses(chain.ID)
}

// Address returns one entry of a chain's table. deployed is false when the
// entry exists but no address has been recorded yet.
func Address(chainID uint64, name string) (address string, deployed bool, err error) {
	table, ok := contractAddresses[ChainID(chainID)]
	if !ok {
		return "", false, fmt.Errorf("%w: %d", ErrUnsupportedChain, chainID)
	}
	address, ok = table[name]
	if !ok {
		return "", false, fmt.Errorf("%w: %s on chain %d", ErrUnknownContract, name, chainID)
	}
	return address, address != "", nil
}

// ChainIDs returns every chain with an address table, sorted ascending
func ChainIDs() []uint64 {
	ids := lo.Map(lo.Keys(contractAddresses), func(id ChainID, _ int) uint64 { return uint64(id) })
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Supported reports whether a chain has an address table
func Supported(chainID uint64) bool {
	_, ok := contractAddresses[ChainID(chainID)]
	return ok
}

// Names returns the contract names sorted alphabetically
func (a Addresses) Names() []string {
	names := lo.Keys(a)
	sort.Strings(names)
	return names
}

// Deployed returns the names that have an address, sorted
func (a Addresses) Deployed() []string {
	return lo.Filter(a.Names(), func(name string, _ int) bool { return a[name] != "" })
}

// Pending returns the names still waiting for a deployment, sorted
func (a Addresses) Pending() []string {
	return lo.Filter(a.Names(), func(name string, _ int) bool { return a[name] == "" })
}

func (a Addresses) clone() Addresses {
	out := make(Addresses, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

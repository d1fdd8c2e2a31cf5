// Package abi bundles the interface definitions of the RDAT V2 contracts.
//
// The JSON documents are produced by the contract build and regenerated with
// `rdat generate`. They are exported as raw bytes; Parse turns one into a
// go-ethereum ABI when a caller needs typed access.
package abi

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/sahilm/fuzzy"
)

// ErrUnknownABI is returned when no bundled ABI exists for a name
var ErrUnknownABI = errors.New("unknown ABI")

// Core contracts

//go:embed RDATUpgradeable.json
var RDATUpgradeableABI []byte

//go:embed vRDAT.json
var VRDATABI []byte

//go:embed StakingPositions.json
var StakingPositionsABI []byte

//go:embed TreasuryWallet.json
var TreasuryWalletABI []byte

//go:embed TokenVesting.json
var TokenVestingABI []byte

//go:embed BaseMigrationBridge.json
var BaseMigrationBridgeABI []byte

//go:embed VanaMigrationBridge.json
var VanaMigrationBridgeABI []byte

//go:embed EmergencyPause.json
var EmergencyPauseABI []byte

//go:embed RevenueCollector.json
var RevenueCollectorABI []byte

//go:embed RewardsManager.json
var RewardsManagerABI []byte

//go:embed ProofOfContributionStub.json
var ProofOfContributionStubABI []byte

//go:embed Create2Factory.json
var Create2FactoryABI []byte

// Governance contracts

//go:embed GovernanceCore.json
var GovernanceCoreABI []byte

//go:embed GovernanceVoting.json
var GovernanceVotingABI []byte

//go:embed GovernanceExecution.json
var GovernanceExecutionABI []byte

var documents = map[string][]byte{
	"RDATUpgradeable":         RDATUpgradeableABI,
	"vRDAT":                   VRDATABI,
	"StakingPositions":        StakingPositionsABI,
	"TreasuryWallet":          TreasuryWalletABI,
	"TokenVesting":            TokenVestingABI,
	"BaseMigrationBridge":     BaseMigrationBridgeABI,
	"VanaMigrationBridge":     VanaMigrationBridgeABI,
	"EmergencyPause":          EmergencyPauseABI,
	"RevenueCollector":        RevenueCollectorABI,
	"RewardsManager":          RewardsManagerABI,
	"ProofOfContributionStub": ProofOfContributionStubABI,
	"Create2Factory":          Create2FactoryABI,
	"GovernanceCore":          GovernanceCoreABI,
	"GovernanceVoting":        GovernanceVotingABI,
	"GovernanceExecution":     GovernanceExecutionABI,
}

// address table names that are deployed from a differently named contract
var contractAliases = map[string]string{
	"RDAT":                "RDATUpgradeable",
	"RDATImplementation":  "RDATUpgradeable",
	"ProofOfContribution": "ProofOfContributionStub",
	"CREATE2Factory":      "Create2Factory",
}

// UnknownABIError reports a lookup miss together with close matches
type UnknownABIError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownABIError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown ABI %q", e.Name)
	}
	return fmt.Sprintf("unknown ABI %q (did you mean %s?)", e.Name, strings.Join(e.Suggestions, ", "))
}

func (e *UnknownABIError) Unwrap() error {
	return ErrUnknownABI
}

// Names returns the bundled ABI names sorted alphabetically
func Names() []string {
	names := make([]string, 0, len(documents))
	for name := range documents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether an ABI is bundled under name
func Has(name string) bool {
	_, ok := documents[name]
	return ok
}

// Raw returns the JSON document for name
func Raw(name string) ([]byte, error) {
	doc, ok := documents[name]
	if !ok {
		return nil, unknown(name)
	}
	return doc, nil
}

// Parse decodes the bundled ABI for name
func Parse(name string) (*gethabi.ABI, error) {
	doc, err := Raw(name)
	if err != nil {
		return nil, err
	}
	parsed, err := gethabi.JSON(bytes.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s ABI: %w", name, err)
	}
	return &parsed, nil
}

// MustParse is like Parse but panics on error
func MustParse(name string) *gethabi.ABI {
	parsed, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return parsed
}

// ContractFor maps an address table entry to the name of its bundled ABI.
// ok is false when no ABI is bundled for the entry.
func ContractFor(addressName string) (string, bool) {
	if alias, ok := contractAliases[addressName]; ok {
		return alias, true
	}
	if Has(addressName) {
		return addressName, true
	}
	return "", false
}

func unknown(name string) error {
	var suggestions []string
	for _, match := range fuzzy.Find(strings.ToLower(name), lowerNames()) {
		suggestions = append(suggestions, Names()[match.Index])
		if len(suggestions) == 3 {
			break
		}
	}
	return &UnknownABIError{Name: name, Suggestions: suggestions}
}

func lowerNames() []string {
	names := Names()
	for i, n := range names {
		names[i] = strings.ToLower(n)
	}
	return names
}

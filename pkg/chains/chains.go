// Package chains describes the networks the RDAT contracts are deployed to.
package chains

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownChain is returned when a chain ID or name is not one of the known networks
var ErrUnknownChain = errors.New("unknown chain")

// NativeCurrency describes the gas token of a chain
type NativeCurrency struct {
	Name     string `json:"name" yaml:"name"`
	Symbol   string `json:"symbol" yaml:"symbol"`
	Decimals uint8  `json:"decimals" yaml:"decimals"`
}

// Explorer is a block explorer for a chain
type Explorer struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// Chain is a network definition
type Chain struct {
	ID             uint64         `json:"id" yaml:"id"`
	Name           string         `json:"name" yaml:"name"`
	DisplayName    string         `json:"displayName" yaml:"displayName"`
	NativeCurrency NativeCurrency `json:"nativeCurrency" yaml:"nativeCurrency"`
	RPCURL         string         `json:"rpcUrl" yaml:"rpcUrl"`
	Explorer       Explorer       `json:"explorer" yaml:"explorer"`
	Testnet        bool           `json:"testnet" yaml:"testnet"`
}

// Known chain IDs
const (
	VanaID        uint64 = 1480
	BaseID        uint64 = 8453
	VanaMokshaID  uint64 = 14800
	BaseSepoliaID uint64 = 84532
)

var (
	Vana = Chain{
		ID:          VanaID,
		Name:        "vana",
		DisplayName: "Vana",
		NativeCurrency: NativeCurrency{
			Name:     "VANA",
			Symbol:   "VANA",
			Decimals: 18,
		},
		RPCURL:   "https://rpc.vana.network",
		Explorer: Explorer{Name: "Vana Explorer", URL: "https://explorer.vana.network"},
	}

	VanaMoksha = Chain{
		ID:          VanaMokshaID,
		Name:        "vanaMoksha",
		DisplayName: "Vana Moksha Testnet",
		NativeCurrency: NativeCurrency{
			Name:     "Vana",
			Symbol:   "VANA",
			Decimals: 18,
		},
		RPCURL:   "https://moksha-rpc.vana.network",
		Explorer: Explorer{Name: "Vana Moksha Explorer", URL: "https://moksha-explorer.vana.network"},
		Testnet:  true,
	}

	Base = Chain{
		ID:          BaseID,
		Name:        "base",
		DisplayName: "Base",
		NativeCurrency: NativeCurrency{
			Name:     "Ether",
			Symbol:   "ETH",
			Decimals: 18,
		},
		RPCURL:   "https://mainnet.base.org",
		Explorer: Explorer{Name: "Basescan", URL: "https://basescan.org"},
	}

	BaseSepolia = Chain{
		ID:          BaseSepoliaID,
		Name:        "baseSepolia",
		DisplayName: "Base Sepolia",
		NativeCurrency: NativeCurrency{
			Name:     "Sepolia Ether",
			Symbol:   "ETH",
			Decimals: 18,
		},
		RPCURL:   "https://sepolia.base.org",
		Explorer: Explorer{Name: "Basescan", URL: "https://sepolia.basescan.org"},
		Testnet:  true,
	}
)

var known = []Chain{Vana, Base, VanaMoksha, BaseSepolia}

// All returns every known chain ordered by chain ID
func All() []Chain {
	out := make([]Chain, len(known))
	copy(out, known)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ByID returns the chain with the given ID
func ByID(id uint64) (Chain, error) {
	for _, c := range known {
		if c.ID == id {
			return c, nil
		}
	}
	return Chain{}, fmt.Errorf("%w: %d", ErrUnknownChain, id)
}

// ByName returns the chain with the given symbolic name. Matching is case-insensitive.
func ByName(name string) (Chain, error) {
	for _, c := range known {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return Chain{}, fmt.Errorf("%w: %q", ErrUnknownChain, name)
}

// Parse resolves either a decimal chain ID or a symbolic chain name
func Parse(s string) (Chain, error) {
	s = strings.TrimSpace(s)
	if id, err := strconv.ParseUint(s, 10, 64); err == nil {
		return ByID(id)
	}
	return ByName(s)
}

// TxURL returns the explorer link for a transaction hash
func (c Chain) TxURL(hash string) string {
	if c.Explorer.URL == "" {
		return ""
	}
	return strings.TrimSuffix(c.Explorer.URL, "/") + "/tx/" + hash
}

// AddressURL returns the explorer link for an address
func (c Chain) AddressURL(address string) string {
	if c.Explorer.URL == "" {
		return ""
	}
	return strings.TrimSuffix(c.Explorer.URL, "/") + "/address/" + address
}

package usecase

import (
	"context"
	"sort"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ShowABIParams contains parameters for showing bundled ABIs
type ShowABIParams struct {
	// Name of the ABI or of an address table entry; empty lists every ABI
	Name    string
	Summary bool
}

// ABISummary lists the signatures of a parsed ABI
type ABISummary struct {
	Constructor string
	Methods     []string
	Events      []string
	Errors      []string
}

// ShowABIResult contains either the ABI list or one document
type ShowABIResult struct {
	Names   []string
	Name    string
	Raw     []byte
	Summary *ABISummary
}

// ShowABI is a use case for reading the bundled interface definitions
type ShowABI struct {
	abis ABIRegistry
}

// NewShowABI creates a new ShowABI use case
func NewShowABI(abis ABIRegistry) *ShowABI {
	return &ShowABI{abis: abis}
}

// Run executes the use case
func (uc *ShowABI) Run(ctx context.Context, params ShowABIParams) (*ShowABIResult, error) {
	if params.Name == "" {
		return &ShowABIResult{Names: uc.abis.Names()}, nil
	}

	name := params.Name
	if mapped, ok := uc.abis.ContractFor(name); ok {
		name = mapped
	}

	raw, err := uc.abis.Raw(name)
	if err != nil {
		return nil, err
	}
	result := &ShowABIResult{Name: name, Raw: raw}

	if params.Summary {
		parsed, err := uc.abis.Parse(name)
		if err != nil {
			return nil, err
		}
		result.Summary = summarize(parsed)
	}
	return result, nil
}

func summarize(parsed *abi.ABI) *ABISummary {
	s := &ABISummary{}
	if len(parsed.Constructor.Inputs) > 0 {
		s.Constructor = parsed.Constructor.String()
	}
	for _, m := range parsed.Methods {
		s.Methods = append(s.Methods, m.String())
	}
	for _, e := range parsed.Events {
		s.Events = append(s.Events, e.String())
	}
	for _, e := range parsed.Errors {
		s.Errors = append(s.Errors, e.String())
	}
	sort.Strings(s.Methods)
	sort.Strings(s.Events)
	sort.Strings(s.Errors)
	return s
}

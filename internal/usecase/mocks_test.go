package usecase_test

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/rdatadao/rdat-registry/internal/domain/config"
	"github.com/rdatadao/rdat-registry/internal/domain/models"
	"github.com/rdatadao/rdat-registry/internal/usecase"
	"github.com/rdatadao/rdat-registry/pkg/chains"
	"github.com/stretchr/testify/mock"
)

// fakeRegistry serves fixed address tables
type fakeRegistry struct {
	tables map[uint64][]models.AddressEntry
}

func (f *fakeRegistry) ChainIDs() []uint64 {
	ids := make([]uint64, 0, len(f.tables))
	for id := range f.tables {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (f *fakeRegistry) GetAddresses(ctx context.Context, chainID uint64) (*models.ChainAddresses, error) {
	entries, ok := f.tables[chainID]
	if !ok {
		return nil, fmt.Errorf("unsupported chain ID: %d", chainID)
	}
	copied := make([]models.AddressEntry, len(entries))
	copy(copied, entries)
	return &models.ChainAddresses{ChainID: chainID, Entries: copied}, nil
}

// fakeABIs serves ABIs by name
type fakeABIs struct {
	docs    map[string]string
	aliases map[string]string
}

func (f *fakeABIs) Names() []string {
	names := make([]string, 0, len(f.docs))
	for n := range f.docs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (f *fakeABIs) Raw(name string) ([]byte, error) {
	doc, ok := f.docs[name]
	if !ok {
		return nil, fmt.Errorf("unknown ABI %q", name)
	}
	return []byte(doc), nil
}

func (f *fakeABIs) Parse(name string) (*abi.ABI, error) {
	doc, err := f.Raw(name)
	if err != nil {
		return nil, err
	}
	parsed, err := abi.JSON(bytes.NewReader(doc))
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func (f *fakeABIs) ContractFor(entry string) (string, bool) {
	if alias, ok := f.aliases[entry]; ok {
		return alias, true
	}
	if _, ok := f.docs[entry]; ok {
		return entry, true
	}
	return "", false
}

// MockChecker is a mock implementation of BlockchainChecker
type MockChecker struct {
	mock.Mock
}

func (m *MockChecker) Connect(ctx context.Context, rpcURL string, chainID uint64) error {
	args := m.Called(ctx, rpcURL, chainID)
	return args.Error(0)
}

func (m *MockChecker) CodeSize(ctx context.Context, address string) (int, error) {
	args := m.Called(ctx, address)
	return args.Int(0), args.Error(1)
}

func (m *MockChecker) Close() {
	m.Called()
}

// MockSelector is a mock implementation of InteractiveSelector
type MockSelector struct {
	mock.Mock
}

func (m *MockSelector) SelectChain(ctx context.Context, options []chains.Chain, prompt string) (chains.Chain, error) {
	args := m.Called(ctx, options, prompt)
	return args.Get(0).(chains.Chain), args.Error(1)
}

// fakeResolver resolves against the built-in chains with optional RPC overrides
type fakeResolver struct {
	overrides map[string]string
}

func (f *fakeResolver) Chains() []chains.Chain {
	return chains.All()
}

func (f *fakeResolver) ResolveNetwork(ctx context.Context, nameOrID string) (*config.Network, error) {
	chain, err := chains.Parse(nameOrID)
	if err != nil {
		return nil, err
	}
	rpc := chain.RPCURL
	if o, ok := f.overrides[chain.Name]; ok {
		rpc = o
	}
	return &config.Network{ChainID: chain.ID, Name: chain.Name, RPCURL: rpc}, nil
}

func (f *fakeResolver) HasOverride(chainName string) bool {
	_, ok := f.overrides[chainName]
	return ok
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(string)  {}
func (m *MockProgressSink) Error(string) {}

var (
	_ usecase.AddressRegistry     = (*fakeRegistry)(nil)
	_ usecase.ABIRegistry         = (*fakeABIs)(nil)
	_ usecase.BlockchainChecker   = (*MockChecker)(nil)
	_ usecase.InteractiveSelector = (*MockSelector)(nil)
	_ usecase.NetworkResolver     = (*fakeResolver)(nil)
	_ usecase.ProgressSink        = (*MockProgressSink)(nil)
)

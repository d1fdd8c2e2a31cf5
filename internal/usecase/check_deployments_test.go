package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rdatadao/rdat-registry/internal/domain/config"
	"github.com/rdatadao/rdat-registry/internal/domain/models"
	"github.com/rdatadao/rdat-registry/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func checkRegistry() *fakeRegistry {
	return &fakeRegistry{tables: map[uint64][]models.AddressEntry{
		14800: {
			{Name: "RDAT", Address: "0xC1aC75130533c7F93BDa67f6645De65C9DEE9a3A"},
			{Name: "vRDAT", Address: "0x386f44505DB03a387dF1402884d5326247DCaaC8"},
			{Name: "EmergencyPause", Address: "0xF73c6216d7D6218d722968e170Cfff6654A8936c"},
			{Name: "TokenVesting"},
		},
		8453: {
			{Name: "BaseMigrationBridge"},
			{Name: "V1Token"},
		},
	}}
}

func TestCheckDeployments(t *testing.T) {
	ctx := context.Background()

	t.Run("classifies every entry", func(t *testing.T) {
		checker := &MockChecker{}
		checker.On("Connect", mock.Anything, "https://moksha-rpc.vana.network", uint64(14800)).Return(nil)
		checker.On("CodeSize", mock.Anything, "0xC1aC75130533c7F93BDa67f6645De65C9DEE9a3A").Return(2048, nil)
		checker.On("CodeSize", mock.Anything, "0x386f44505DB03a387dF1402884d5326247DCaaC8").Return(0, nil)
		checker.On("CodeSize", mock.Anything, "0xF73c6216d7D6218d722968e170Cfff6654A8936c").Return(0, errors.New("timeout"))
		checker.On("Close").Return()

		uc := usecase.NewCheckDeployments(&config.RuntimeConfig{}, checkRegistry(), &fakeResolver{}, checker, &MockProgressSink{}, discardLogger())
		result, err := uc.Run(ctx, usecase.CheckDeploymentsParams{Chain: "vanaMoksha"})
		require.NoError(t, err)

		require.Len(t, result.Checks, 4)
		assert.Equal(t, models.StatusDeployed, result.Checks[0].Status)
		assert.Equal(t, 2048, result.Checks[0].CodeSize)
		assert.Equal(t, models.StatusNoCode, result.Checks[1].Status)
		assert.Equal(t, models.StatusError, result.Checks[2].Status)
		assert.Equal(t, "timeout", result.Checks[2].Reason)
		assert.Equal(t, models.StatusPending, result.Checks[3].Status)

		assert.Equal(t, 1, result.Count(models.StatusDeployed))
		assert.False(t, result.Healthy())
		checker.AssertExpectations(t)
	})

	t.Run("pending-only chain never dials", func(t *testing.T) {
		checker := &MockChecker{}
		uc := usecase.NewCheckDeployments(&config.RuntimeConfig{}, checkRegistry(), &fakeResolver{}, checker, &MockProgressSink{}, discardLogger())

		result, err := uc.Run(ctx, usecase.CheckDeploymentsParams{Chain: "8453"})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Count(models.StatusPending))
		assert.True(t, result.Healthy())
		checker.AssertNotCalled(t, "Connect", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rpc override and network flag", func(t *testing.T) {
		checker := &MockChecker{}
		checker.On("Connect", mock.Anything, "http://localhost:8545", uint64(14800)).Return(nil)
		checker.On("CodeSize", mock.Anything, mock.Anything).Return(10, nil)
		checker.On("Close").Return()

		cfg := &config.RuntimeConfig{
			NetworkName: "vanaMoksha",
			RPCURL:      "http://localhost:8545",
		}
		uc := usecase.NewCheckDeployments(cfg, checkRegistry(), &fakeResolver{}, checker, &MockProgressSink{}, discardLogger())

		result, err := uc.Run(ctx, usecase.CheckDeploymentsParams{})
		require.NoError(t, err)
		assert.True(t, result.Healthy())
		assert.Equal(t, uint64(14800), result.Network.ChainID)
		assert.Equal(t, "http://localhost:8545", result.Network.RPCURL)
		checker.AssertExpectations(t)
	})

	t.Run("connect failure", func(t *testing.T) {
		checker := &MockChecker{}
		checker.On("Connect", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("chain ID mismatch: expected 14800, got 1"))

		uc := usecase.NewCheckDeployments(&config.RuntimeConfig{}, checkRegistry(), &fakeResolver{}, checker, &MockProgressSink{}, discardLogger())
		_, err := uc.Run(ctx, usecase.CheckDeploymentsParams{Chain: "vanaMoksha"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to connect to vanaMoksha")
	})

	t.Run("no network", func(t *testing.T) {
		uc := usecase.NewCheckDeployments(&config.RuntimeConfig{}, checkRegistry(), &fakeResolver{}, &MockChecker{}, &MockProgressSink{}, discardLogger())
		_, err := uc.Run(ctx, usecase.CheckDeploymentsParams{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "vana, base, vanaMoksha, baseSepolia")
	})
}

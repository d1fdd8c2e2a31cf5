package addresses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAddresses(t *testing.T) {
	t.Run("vana mainnet has every contract name pending", func(t *testing.T) {
		table, err := GetAddresses(1480)
		require.NoError(t, err)
		require.NotNil(t, table)

		assert.Len(t, table, len(ContractNames))
		for _, name := range ContractNames {
			addr, ok := table[string(name)]
			assert.True(t, ok, "missing %s", name)
			assert.Empty(t, addr)
		}
	})

	t.Run("moksha has the deployed token", func(t *testing.T) {
		table, err := GetAddresses(14800)
		require.NoError(t, err)
		assert.Equal(t, "0xC1aC75130533c7F93BDa67f6645De65C9DEE9a3A", table["RDAT"])
		for _, name := range ContractNames {
			assert.Contains(t, table, string(name))
		}
		assert.Equal(t, []string{
			"CREATE2Factory",
			"EmergencyPause",
			"ProofOfContribution",
			"RDAT",
			"RDATImplementation",
			"RevenueCollector",
			"RewardsManager",
			"StakingPositions",
			"TokenVesting",
			"TreasuryWallet",
			"VanaMigrationBridge",
			"vRDAT",
		}, table.Names())
	})

	t.Run("base bridge is not deployed yet", func(t *testing.T) {
		table, err := GetAddresses(8453)
		require.NoError(t, err)
		addr, ok := table["BaseMigrationBridge"]
		assert.True(t, ok)
		assert.Equal(t, "", addr)
		assert.Equal(t, []string{"BaseMigrationBridge", "V1Token"}, table.Names())
	})

	t.Run("base sepolia", func(t *testing.T) {
		table, err := GetAddresses(84532)
		require.NoError(t, err)
		assert.Equal(t, []string{"BaseMigrationBridge", "V1TokenMock"}, table.Names())
	})

	t.Run("unknown chain fails", func(t *testing.T) {
		table, err := GetAddresses(9999)
		require.Error(t, err)
		assert.Nil(t, table)
		assert.ErrorIs(t, err, ErrUnsupportedChain)
		assert.Equal(t, "unsupported chain ID: 9999", err.Error())
	})

	t.Run("zero chain fails", func(t *testing.T) {
		_, err := GetAddresses(0)
		assert.ErrorIs(t, err, ErrUnsupportedChain)
	})
}

func TestGetAddressesReturnsCopy(t *testing.T) {
	table, err := GetAddresses(14800)
	require.NoError(t, err)
	table["RDAT"] = "0x0000000000000000000000000000000000000000"
	delete(table, "vRDAT")

	again, err := GetAddresses(14800)
	require.NoError(t, err)
	assert.Equal(t, "0xC1aC75130533c7F93BDa67f6645De65C9DEE9a3A", again["RDAT"])
	assert.Contains(t, again, "vRDAT")
}

func TestGetAddressesByNetwork(t *testing.T) {
	byName, err := GetAddressesByNetwork("vanaMoksha")
	require.NoError(t, err)
	byID, err := GetAddresses(14800)
	require.NoError(t, err)
	assert.Equal(t, byID, byName)

	vana, err := GetAddressesByNetwork("vana")
	require.NoError(t, err)
	assert.Len(t, vana, 10)

	_, err = GetAddressesByNetwork("optimism")
	assert.ErrorIs(t, err, ErrUnsupportedChain)
}

func TestAddress(t *testing.T) {
	addr, deployed, err := Address(84532, "BaseMigrationBridge")
	require.NoError(t, err)
	assert.True(t, deployed)
	assert.Equal(t, "0xb7d6f8eadfD4415cb27686959f010771FE94561b", addr)

	addr, deployed, err = Address(8453, "V1Token")
	require.NoError(t, err)
	assert.False(t, deployed)
	assert.Empty(t, addr)

	_, _, err = Address(8453, "RDAT")
	assert.ErrorIs(t, err, ErrUnknownContract)

	_, _, err = Address(1, "RDAT")
	assert.ErrorIs(t, err, ErrUnsupportedChain)
}

func TestChainIDs(t *testing.T) {
	assert.Equal(t, []uint64{1480, 8453, 14800, 84532}, ChainIDs())
	for _, id := range ChainIDs() {
		assert.True(t, Supported(id))
	}
	assert.False(t, Supported(1))
}

func TestDeployedAndPending(t *testing.T) {
	table, err := GetAddresses(14800)
	require.NoError(t, err)

	assert.Equal(t, []string{"RewardsManager", "TokenVesting", "VanaMigrationBridge"}, table.Pending())
	assert.Len(t, table.Deployed(), len(table)-3)
	assert.Contains(t, table.Deployed(), "RDAT")
}

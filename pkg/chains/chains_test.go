package chains

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllOrderedByID(t *testing.T) {
	all := All()
	require.Len(t, all, 4)

	ids := make([]uint64, len(all))
	for i, c := range all {
		ids[i] = c.ID
	}
	assert.Equal(t, []uint64{1480, 8453, 14800, 84532}, ids)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint64
		wantErr bool
	}{
		{name: "decimal id", input: "1480", want: VanaID},
		{name: "symbolic name", input: "vanaMoksha", want: VanaMokshaID},
		{name: "case insensitive", input: "BASESEPOLIA", want: BaseSepoliaID},
		{name: "surrounding space", input: " base ", want: BaseID},
		{name: "unknown id", input: "9999", wantErr: true},
		{name: "unknown name", input: "mainnet", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownChain)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.ID)
		})
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "mutated"

	c, err := ByID(VanaID)
	require.NoError(t, err)
	assert.Equal(t, "vana", c.Name)
}

func TestExplorerLinks(t *testing.T) {
	assert.Equal(t, "https://moksha-explorer.vana.network/address/0xabc", VanaMoksha.AddressURL("0xabc"))
	assert.Equal(t, "https://basescan.org/tx/0x01", Base.TxURL("0x01"))
	assert.Empty(t, Chain{}.AddressURL("0xabc"))
	assert.True(t, VanaMoksha.Testnet)
	assert.False(t, Vana.Testnet)
}

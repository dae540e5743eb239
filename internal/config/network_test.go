package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/studio-mirai/prime-machin-contracts/internal/errors"
)

func TestKnownNetworks(t *testing.T) {
	assert.Equal(t, []string{"localnet", "mirainet", "testnet", "mainnet"}, KnownNetworks())
}

func TestResolveNetwork(t *testing.T) {
	tests := []struct {
		id        string
		rpc       string
		faucet    string
		hasFaucet bool
	}{
		{"localnet", "http://127.0.0.1:9000", "http://127.0.0.1:9123/gas", true},
		{"mirainet", "https://mirainet.fly.dev", "https://mirainet.fly.dev/gas", true},
		{"testnet", "https://fullnode.testnet.sui.io:443", "", false},
		{"mainnet", "https://fullnode.mainnet.sui.io:443", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			p, err := ResolveNetwork(tt.id, nil)
			require.NoError(t, err)
			assert.Equal(t, NetworkID(tt.id), p.ID)
			assert.Equal(t, tt.rpc, p.RPCURL)
			assert.Equal(t, tt.faucet, p.FaucetURL)
			assert.Equal(t, tt.hasFaucet, p.HasFaucet())
			assert.Equal(t, DefaultTreasuryAddress, p.TreasuryAddress)
		})
	}
}

func TestResolveNetwork_Unknown(t *testing.T) {
	for _, id := range []string{"devnet", "", "Localnet"} {
		_, err := ResolveNetwork(id, nil)
		require.Error(t, err, id)
		assert.ErrorIs(t, err, oerrors.ErrUnknownNetwork)
		assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
	}
}

func TestResolveNetwork_Overrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TreasuryAddress = "0xabc"
	cfg.Networks = map[string]NetworkOverride{
		"testnet": {RPCURL: "http://10.0.0.5:9000", FaucetURL: "http://10.0.0.5:9123/gas"},
		"mainnet": {TreasuryAddress: "0xdef"},
	}

	p, err := ResolveNetwork("testnet", cfg)
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:9000", p.RPCURL)
	assert.True(t, p.HasFaucet())
	assert.Equal(t, "0xabc", p.TreasuryAddress)

	p, err = ResolveNetwork("mainnet", cfg)
	require.NoError(t, err)
	assert.Equal(t, "https://fullnode.mainnet.sui.io:443", p.RPCURL)
	assert.Equal(t, "0xdef", p.TreasuryAddress)
}

func TestProfiles(t *testing.T) {
	profiles := Profiles(nil)
	require.Len(t, profiles, 4)
	assert.Equal(t, Localnet, profiles[0].ID)
	assert.Equal(t, Mainnet, profiles[3].ID)
}

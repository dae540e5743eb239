package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/studio-mirai/prime-machin-contracts/internal/errors"
)

func TestValidate(t *testing.T) {
	t.Run("collects every problem", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Network = "devnet"
		cfg.TreasuryAddress = "treasury"
		cfg.Faucet.Attempts = -1
		cfg.Networks = map[string]NetworkOverride{
			"testnet": {RPCURL: "not a url"},
			"bogus":   {},
		}

		err := Validate(cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, oerrors.ErrValidation)

		var verrs ValidationErrors
		require.ErrorAs(t, err, &verrs)
		fields := make([]string, len(verrs))
		for i, v := range verrs {
			fields[i] = v.Field
		}
		assert.Equal(t, []string{
			"faucet.attempts",
			"network",
			"networks.bogus",
			"networks.testnet.rpcUrl",
			"treasuryAddress",
		}, fields)
		assert.Contains(t, err.Error(), "config validation failed")
	})

	t.Run("accepts overrides", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Network = "testnet"
		cfg.Networks = map[string]NetworkOverride{
			"testnet": {RPCURL: "http://10.0.0.5:9000", TreasuryAddress: "0x1"},
		}
		assert.NoError(t, Validate(cfg))
	})
}

func TestIsAddress(t *testing.T) {
	assert.True(t, IsAddress(DefaultTreasuryAddress))
	assert.True(t, IsAddress("0x2"))
	assert.False(t, IsAddress("0x"))
	assert.False(t, IsAddress("de00"))
	assert.False(t, IsAddress("0xzz"))
}

func TestValidateFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("network: devnet\n"), 0o644))

	err := ValidateFile(configFile)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, DefaultTreasuryAddress, cfg.TreasuryAddress)
	assert.Equal(t, DefaultFaucetRecipient, cfg.Faucet.Recipient)
	assert.Equal(t, 5, cfg.Faucet.Attempts)
	assert.False(t, cfg.Faucet.Strict)
	assert.Equal(t, "sui", cfg.Sui.Binary)
	assert.Equal(t, uint64(1_000_000_000), cfg.Sui.GasBudget)
	assert.Equal(t, DefaultSettleDelay, cfg.Deploy.SettleDelay)
	assert.Equal(t, "Koto", cfg.Project.Name)
	assert.Equal(t, "koto", cfg.Project.CoinModule)
	assert.Equal(t, "KOTO", cfg.Project.CoinSymbol)
	assert.Empty(t, cfg.Network)
}

func TestDefaultConfigValidates(t *testing.T) {
	assert.NoError(t, Validate(DefaultConfig()))
}

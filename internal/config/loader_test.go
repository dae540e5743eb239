package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		content := `
network: mirainet
outputDir: /srv/api/package
treasuryAddress: "0xabc"
faucet:
  attempts: 2
  strict: true
sui:
  binary: /opt/sui/bin/sui
  gasBudget: 5000
deploy:
  settleDelay: 500ms
  strictKeys: true
project:
  name: Prime
networks:
  testnet:
    rpcUrl: http://10.0.0.5:9000
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "mirainet", cfg.Network)
		assert.Equal(t, "/srv/api/package", cfg.OutputDir)
		assert.Equal(t, "0xabc", cfg.TreasuryAddress)
		assert.Equal(t, 2, cfg.Faucet.Attempts)
		assert.True(t, cfg.Faucet.Strict)
		assert.Equal(t, DefaultFaucetRecipient, cfg.Faucet.Recipient)
		assert.Equal(t, "/opt/sui/bin/sui", cfg.Sui.Binary)
		assert.Equal(t, uint64(5000), cfg.Sui.GasBudget)
		assert.Equal(t, 500*time.Millisecond, cfg.Deploy.SettleDelay)
		assert.True(t, cfg.Deploy.StrictKeys)
		assert.Equal(t, "Prime", cfg.Project.Name)
		assert.Equal(t, "koto", cfg.Project.CoinModule)
		assert.Equal(t, "http://10.0.0.5:9000", cfg.Networks["testnet"].RPCURL)
		assert.Equal(t, configFile, loader.ConfigFileUsed())
	})

	t.Run("returns defaults for missing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "nonexistent.yaml")

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
		assert.Equal(t, DefaultFaucetAttempts, cfg.Faucet.Attempts)
		assert.Equal(t, DefaultSettleDelay, cfg.Deploy.SettleDelay)
	})

	t.Run("env overrides file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("outputDir: /from/file\nfaucet:\n  attempts: 2\n"), 0o644))

		t.Setenv("PMC_OUTPUT_DIR", "/from/env")
		t.Setenv("PMC_FAUCET_ATTEMPTS", "9")

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "/from/env", cfg.OutputDir)
		assert.Equal(t, 9, cfg.Faucet.Attempts)
	})

	t.Run("expands tilde in output dir", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("outputDir: ~/pkg\n"), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "pkg"), cfg.OutputDir)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("faucet: [unclosed\n"), 0o644))

		_, err := NewLoader().Load(configFile)
		assert.Error(t, err)
	})
}

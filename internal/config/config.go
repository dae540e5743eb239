// Package config provides configuration loading and management.
package config

import "time"

// Built-in defaults.
const (
	// DefaultTreasuryAddress receives the package UpgradeCap after publishing.
	DefaultTreasuryAddress = "0xde0053243f3226649701a7fe2c3988be11941bf3ff3535f3c8c5bf32fc600220"

	// DefaultFaucetRecipient is the account funded on faucet-capable networks.
	DefaultFaucetRecipient = "0x43888ff633a296d4d87026ee10a4d9f3ca649ea3403190a45ddd9712948d73cb"

	// DefaultFaucetAttempts is the number of warm-up faucet requests.
	DefaultFaucetAttempts = 5

	// DefaultGasBudget is the gas budget for publish and transfer.
	DefaultGasBudget uint64 = 1_000_000_000

	// DefaultSettleDelay is the pause between publish and classification.
	DefaultSettleDelay = 3 * time.Second

	// DefaultOutputDir is where <network>.json files are written.
	DefaultOutputDir = "../prime-machin-api/prime_machin_api/package"
)

// FaucetConfig contains faucet warm-up settings.
type FaucetConfig struct {
	// Recipient is the address that receives faucet funds.
	Recipient string `mapstructure:"recipient" yaml:"recipient"`

	// Attempts is how many funding requests are sent.
	Attempts int `mapstructure:"attempts" yaml:"attempts"`

	// Strict aborts the deployment if any attempt failed.
	Strict bool `mapstructure:"strict" yaml:"strict"`

	// RatePerSecond paces requests. Zero means no pacing.
	RatePerSecond float64 `mapstructure:"ratePerSecond" yaml:"ratePerSecond"`
}

// SuiConfig contains settings for the external sui CLI.
type SuiConfig struct {
	// Binary is the sui executable name or path.
	Binary string `mapstructure:"binary" yaml:"binary"`

	// GasBudget is passed as --gas-budget to publish and transfer.
	GasBudget uint64 `mapstructure:"gasBudget" yaml:"gasBudget"`

	// PackagePath is the Move package directory. Empty means the working directory.
	PackagePath string `mapstructure:"packagePath" yaml:"packagePath,omitempty"`
}

// DeploySettings contains pipeline settings.
type DeploySettings struct {
	// SettleDelay is the pause after publish before classification.
	SettleDelay time.Duration `mapstructure:"settleDelay" yaml:"settleDelay"`

	// StrictKeys rejects key collisions instead of overwriting.
	StrictKeys bool `mapstructure:"strictKeys" yaml:"strictKeys"`

	// MetricsFile, when set, receives Prometheus text-format metrics.
	MetricsFile string `mapstructure:"metricsFile" yaml:"metricsFile,omitempty"`
}

// ProjectConfig names the project's native coin for classification keys.
type ProjectConfig struct {
	// Name prefixes coin keys, e.g. "Koto" yields KotoCoin.
	Name string `mapstructure:"name" yaml:"name"`

	// CoinModule is the Move module declaring the coin type.
	CoinModule string `mapstructure:"coinModule" yaml:"coinModule"`

	// CoinSymbol is the coin's one-time-witness type name.
	CoinSymbol string `mapstructure:"coinSymbol" yaml:"coinSymbol"`
}

// NetworkOverride replaces endpoints of a built-in network profile.
type NetworkOverride struct {
	RPCURL          string `mapstructure:"rpcUrl" yaml:"rpcUrl,omitempty"`
	FaucetURL       string `mapstructure:"faucetUrl" yaml:"faucetUrl,omitempty"`
	TreasuryAddress string `mapstructure:"treasuryAddress" yaml:"treasuryAddress,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the pmc configuration.
// Loaded from ~/.pmc/config.yaml with PMC_* environment overrides.
type Config struct {
	// Network is the default network identifier.
	// Env: NETWORK or PMC_NETWORK
	Network string `mapstructure:"network" yaml:"network,omitempty"`

	// OutputDir is where deployment configs are written.
	// Env: PMC_OUTPUT_DIR
	OutputDir string `mapstructure:"outputDir" yaml:"outputDir"`

	// TreasuryAddress receives the UpgradeCap on every network unless overridden.
	TreasuryAddress string `mapstructure:"treasuryAddress" yaml:"treasuryAddress"`

	Faucet   FaucetConfig               `mapstructure:"faucet" yaml:"faucet"`
	Sui      SuiConfig                  `mapstructure:"sui" yaml:"sui"`
	Deploy   DeploySettings             `mapstructure:"deploy" yaml:"deploy"`
	Project  ProjectConfig              `mapstructure:"project" yaml:"project"`
	Networks map[string]NetworkOverride `mapstructure:"networks" yaml:"networks,omitempty"`
	Log      LogConfig                  `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `pmc config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:       DefaultOutputDir,
		TreasuryAddress: DefaultTreasuryAddress,
		Faucet: FaucetConfig{
			Recipient: DefaultFaucetRecipient,
			Attempts:  DefaultFaucetAttempts,
		},
		Sui: SuiConfig{
			Binary:    "sui",
			GasBudget: DefaultGasBudget,
		},
		Deploy: DeploySettings{
			SettleDelay: DefaultSettleDelay,
		},
		Project: ProjectConfig{
			Name:       "Koto",
			CoinModule: "koto",
			CoinSymbol: "KOTO",
		},
	}
}

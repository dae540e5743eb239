package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for pmc configuration.
const envPrefix = "PMC"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	// Environment: PMC_FAUCET_ATTEMPTS overrides faucet.attempts, and so on.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// network is resolved separately with NETWORK taking precedence.
	_ = v.BindEnv("outputDir", "PMC_OUTPUT_DIR")
	_ = v.BindEnv("treasuryAddress", "PMC_TREASURY_ADDRESS")

	setDefaults(v, DefaultConfig())

	return &Loader{v: v}
}

// setDefaults registers every key so that AutomaticEnv can override nested
// values during Unmarshal.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("outputDir", d.OutputDir)
	v.SetDefault("treasuryAddress", d.TreasuryAddress)
	v.SetDefault("faucet.recipient", d.Faucet.Recipient)
	v.SetDefault("faucet.attempts", d.Faucet.Attempts)
	v.SetDefault("faucet.strict", d.Faucet.Strict)
	v.SetDefault("faucet.ratePerSecond", d.Faucet.RatePerSecond)
	v.SetDefault("sui.binary", d.Sui.Binary)
	v.SetDefault("sui.gasBudget", d.Sui.GasBudget)
	v.SetDefault("sui.packagePath", d.Sui.PackagePath)
	v.SetDefault("deploy.settleDelay", d.Deploy.SettleDelay)
	v.SetDefault("deploy.strictKeys", d.Deploy.StrictKeys)
	v.SetDefault("deploy.metricsFile", d.Deploy.MetricsFile)
	v.SetDefault("project.name", d.Project.Name)
	v.SetDefault("project.coinModule", d.Project.CoinModule)
	v.SetDefault("project.coinSymbol", d.Project.CoinSymbol)
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// Environment variables take precedence over file values.
// A missing config file is not an error.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.OutputDir, err = ExpandPath(cfg.OutputDir); err != nil {
		return nil, fmt.Errorf("expanding output dir: %w", err)
	}

	return &cfg, nil
}

// ConfigFileUsed returns the config file path viper read, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

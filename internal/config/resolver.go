package config

import (
	"os"
	"sort"

	"github.com/studio-mirai/prime-machin-contracts/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// Environment variables consulted for the network identifier, highest first.
const (
	EnvNetwork    = "NETWORK"
	EnvPMCNetwork = "PMC_NETWORK"
	EnvPMCConfig  = "PMC_CONFIG"
)

// ResolvedValue is a configuration value together with its origin.
type ResolvedValue struct {
	// Key is the configuration key, e.g. "network".
	Key string
	// Value is the winning value. Empty if nothing was set.
	Value string
	// Source indicates where the value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	// Keys are sources such as "env:NETWORK".
	Shadowed map[string]string
}

type candidate struct {
	source ConfigSource
	label  string
	value  string
}

// resolve picks the first non-empty candidate and records the rest as shadowed.
func resolve(key string, candidates []candidate) ResolvedValue {
	result := ResolvedValue{Key: key, Shadowed: make(map[string]string)}
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.label] = c.value
	}
	return result
}

// ResolveNetworkOptions contains options for network resolution.
type ResolveNetworkOptions struct {
	// FlagValue is the --network flag value (empty if not set).
	FlagValue string
	// ConfigValue is the network value from config file (empty if not set).
	ConfigValue string
}

// ResolveNetworkID resolves the target network using precedence:
// (1) --network flag, (2) NETWORK env, (3) PMC_NETWORK env, (4) config.network.
// There is no default; an empty Value means no network was selected.
func ResolveNetworkID(opts ResolveNetworkOptions) ResolvedValue {
	return resolve("network", []candidate{
		{SourceFlag, string(SourceFlag), opts.FlagValue},
		{SourceEnv, "env:" + EnvNetwork, os.Getenv(EnvNetwork)},
		{SourceEnv, "env:" + EnvPMCNetwork, os.Getenv(EnvPMCNetwork)},
		{SourceConfig, string(SourceConfig), opts.ConfigValue},
	})
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) PMC_CONFIG env, (3) ~/.pmc/config.yaml default.
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{Key: "config", Shadowed: map[string]string{}}, err
	}

	return resolve("config", []candidate{
		{SourceFlag, string(SourceFlag), flagValue},
		{SourceEnv, "env:" + EnvPMCConfig, os.Getenv(EnvPMCConfig)},
		{SourceDefault, string(SourceDefault), paths.ConfigFile},
	}), nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		labels := make([]string, 0, len(v.Shadowed))
		for label := range v.Shadowed {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", label,
				"shadowed_value", v.Shadowed[label],
			)
		}
	}
}

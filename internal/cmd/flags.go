package cmd

import (
	"strings"

	"github.com/studio-mirai/prime-machin-contracts/internal/classify"
	"github.com/studio-mirai/prime-machin-contracts/internal/config"
	oerrors "github.com/studio-mirai/prime-machin-contracts/internal/errors"
	"github.com/studio-mirai/prime-machin-contracts/internal/output"
)

// resolveProfile validates the loaded configuration, picks the target
// network and returns its profile.
func resolveProfile(g *GlobalConfig) (config.NetworkProfile, error) {
	if err := config.Validate(g.Config); err != nil {
		return config.NetworkProfile{}, err
	}

	resolved := config.ResolveNetworkID(config.ResolveNetworkOptions{
		FlagValue:   g.NetworkFlag,
		ConfigValue: g.Config.Network,
	})
	config.LogResolvedValues([]config.ResolvedValue{resolved})

	if resolved.Value == "" {
		return config.NetworkProfile{}, oerrors.NewValidationError(
			"no network selected",
			"",
			"Set NETWORK or pass --network ("+strings.Join(config.KnownNetworks(), ", ")+").",
		)
	}

	profile, err := config.ResolveNetwork(resolved.Value, g.Config)
	if err != nil {
		return config.NetworkProfile{}, err
	}
	output.Debug("network resolved",
		"network", profile.ID,
		"rpc", profile.RPCURL,
		"faucet", profile.FaucetURL,
		"source", resolved.Source,
	)
	return profile, nil
}

// project returns the coin naming used by the classifier.
func project(cfg *config.Config) classify.Project {
	p := classify.DefaultProject()
	if cfg.Project.Name != "" {
		p.Name = cfg.Project.Name
	}
	if cfg.Project.CoinModule != "" {
		p.CoinModule = cfg.Project.CoinModule
	}
	if cfg.Project.CoinSymbol != "" {
		p.CoinSymbol = cfg.Project.CoinSymbol
	}
	return p
}

// stringOr returns flag when the flag was set, else fallback.
func stringOr(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}

package config

import (
	oerrors "github.com/studio-mirai/prime-machin-contracts/internal/errors"
)

// NetworkID identifies a deployment target.
type NetworkID string

// Known networks.
const (
	// Localnet is a local validator started with `sui start`.
	Localnet NetworkID = "localnet"

	// Mirainet is the studio development network.
	Mirainet NetworkID = "mirainet"

	// Testnet is the public test network.
	Testnet NetworkID = "testnet"

	// Mainnet is the public main network.
	Mainnet NetworkID = "mainnet"
)

// NetworkProfile holds the endpoints of one network.
type NetworkProfile struct {
	ID              NetworkID
	RPCURL          string
	FaucetURL       string
	TreasuryAddress string
}

// HasFaucet reports whether the network supports faucet funding.
func (p NetworkProfile) HasFaucet() bool {
	return p.FaucetURL != ""
}

// networkOrder is the display order of built-in networks.
var networkOrder = []NetworkID{Localnet, Mirainet, Testnet, Mainnet}

var builtinProfiles = map[NetworkID]NetworkProfile{
	Localnet: {
		ID:        Localnet,
		RPCURL:    "http://127.0.0.1:9000",
		FaucetURL: "http://127.0.0.1:9123/gas",
	},
	Mirainet: {
		ID:        Mirainet,
		RPCURL:    "https://mirainet.fly.dev",
		FaucetURL: "https://mirainet.fly.dev/gas",
	},
	Testnet: {
		ID:     Testnet,
		RPCURL: "https://fullnode.testnet.sui.io:443",
	},
	Mainnet: {
		ID:     Mainnet,
		RPCURL: "https://fullnode.mainnet.sui.io:443",
	},
}

// KnownNetworks returns the known network identifiers in display order.
func KnownNetworks() []string {
	out := make([]string, len(networkOrder))
	for i, id := range networkOrder {
		out[i] = string(id)
	}
	return out
}

// ParseNetworkID validates a network identifier.
func ParseNetworkID(s string) (NetworkID, error) {
	id := NetworkID(s)
	if _, ok := builtinProfiles[id]; !ok {
		return "", oerrors.NewUnknownNetworkError(s, KnownNetworks())
	}
	return id, nil
}

// ResolveNetwork returns the profile for the given identifier with the
// treasury address and any per-network overrides from cfg applied.
// cfg may be nil. There is no fallback for unknown identifiers.
func ResolveNetwork(id string, cfg *Config) (NetworkProfile, error) {
	nid, err := ParseNetworkID(id)
	if err != nil {
		return NetworkProfile{}, err
	}

	profile := builtinProfiles[nid]
	profile.TreasuryAddress = DefaultTreasuryAddress
	if cfg == nil {
		return profile, nil
	}

	if cfg.TreasuryAddress != "" {
		profile.TreasuryAddress = cfg.TreasuryAddress
	}
	if o, ok := cfg.Networks[id]; ok {
		if o.RPCURL != "" {
			profile.RPCURL = o.RPCURL
		}
		if o.FaucetURL != "" {
			profile.FaucetURL = o.FaucetURL
		}
		if o.TreasuryAddress != "" {
			profile.TreasuryAddress = o.TreasuryAddress
		}
	}

	return profile, nil
}

// Profiles resolves every known network against cfg, in display order.
func Profiles(cfg *Config) []NetworkProfile {
	out := make([]NetworkProfile, 0, len(networkOrder))
	for _, id := range networkOrder {
		p, _ := ResolveNetwork(string(id), cfg)
		out = append(out, p)
	}
	return out
}

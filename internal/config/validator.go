package config

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	oerrors "github.com/studio-mirai/prime-machin-contracts/internal/errors"
)

// addressRegex matches a 0x-prefixed Sui address or object ID.
var addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{1,64}$`)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return oerrors.ErrValidation
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		fmt.Fprintf(&sb, "  %s: %s\n", err.Field, err.Message)
	}
	return sb.String()
}

// Unwrap lets errors.Is match ErrValidation.
func (e ValidationErrors) Unwrap() error {
	return oerrors.ErrValidation
}

// IsAddress reports whether s looks like a Sui address.
func IsAddress(s string) bool {
	return addressRegex.MatchString(s)
}

// Validate checks cfg for values that would only fail later at runtime.
func Validate(cfg *Config) error {
	var errs ValidationErrors
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}

	if cfg.Network != "" {
		if _, err := ParseNetworkID(cfg.Network); err != nil {
			add("network", fmt.Sprintf("unknown network %q (known: %s)", cfg.Network, strings.Join(KnownNetworks(), ", ")))
		}
	}
	if cfg.TreasuryAddress != "" && !IsAddress(cfg.TreasuryAddress) {
		add("treasuryAddress", "must be a 0x-prefixed hex address")
	}
	if cfg.Faucet.Recipient != "" && !IsAddress(cfg.Faucet.Recipient) {
		add("faucet.recipient", "must be a 0x-prefixed hex address")
	}
	if cfg.Faucet.Attempts < 0 {
		add("faucet.attempts", "must not be negative")
	}
	if cfg.Faucet.RatePerSecond < 0 {
		add("faucet.ratePerSecond", "must not be negative")
	}
	if cfg.Deploy.SettleDelay < 0 {
		add("deploy.settleDelay", "must not be negative")
	}
	if strings.TrimSpace(cfg.Sui.Binary) == "" {
		add("sui.binary", "must not be empty")
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		add("outputDir", "must not be empty")
	}

	ids := make([]string, 0, len(cfg.Networks))
	for id := range cfg.Networks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		o := cfg.Networks[id]
		field := "networks." + id
		if _, err := ParseNetworkID(id); err != nil {
			add(field, "overrides an unknown network")
			continue
		}
		for name, raw := range map[string]string{"rpcUrl": o.RPCURL, "faucetUrl": o.FaucetURL} {
			if raw == "" {
				continue
			}
			if u, err := url.Parse(raw); err != nil || u.Scheme == "" || u.Host == "" {
				add(field+"."+name, "must be an absolute URL")
			}
		}
		if o.TreasuryAddress != "" && !IsAddress(o.TreasuryAddress) {
			add(field+".treasuryAddress", "must be a 0x-prefixed hex address")
		}
	}

	if len(errs) > 0 {
		sort.SliceStable(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
		return errs
	}
	return nil
}

// ValidateFile loads and validates a configuration file at the given path.
func ValidateFile(path string) error {
	cfg, err := NewLoader().Load(path)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}
	return Validate(cfg)
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/studio-mirai/prime-machin-contracts/internal/config"
	oerrors "github.com/studio-mirai/prime-machin-contracts/internal/errors"
	"github.com/studio-mirai/prime-machin-contracts/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(g *GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage pmc configuration",
	}

	c.AddCommand(newConfigInitCmd(g))
	c.AddCommand(newConfigShowCmd(g))
	c.AddCommand(newConfigValidateCmd(g))

	return c
}

func newConfigInitCmd(g *GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		Long: `Write a config file with every key set to its default value.

The file is written to the resolved config path (--config, PMC_CONFIG or
~/.pmc/config.yaml). Existing files are kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runConfigInit(g, c.OutOrStdout(), force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	return c
}

func runConfigInit(g *GlobalConfig, w io.Writer, force bool) error {
	path, err := config.ExpandPath(g.ConfigPath.Value)
	if err != nil {
		return fail(err)
	}
	if path == "" {
		return fail(oerrors.NewValidationError("no config path resolved", "", "Pass --config or set PMC_CONFIG."))
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fail(oerrors.NewValidationError(
			"config file already exists", path,
			"Use --force to overwrite it.",
		))
	}

	data, err := marshalConfig(config.DefaultConfig())
	if err != nil {
		return fail(err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return failf(err, "creating config directory")
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return failf(err, "writing config file")
	}

	fmt.Fprintln(w, output.FormatCheckmark("Config written to "+path))
	return nil
}

func newConfigShowCmd(g *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show where the config file and target network were resolved from,
followed by the effective configuration as YAML.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runConfigShow(g, c.OutOrStdout())
		},
	}
}

func runConfigShow(g *GlobalConfig, w io.Writer) error {
	network := config.ResolveNetworkID(config.ResolveNetworkOptions{
		FlagValue:   g.NetworkFlag,
		ConfigValue: g.Config.Network,
	})

	tbl := output.NewTable("KEY", "VALUE", "SOURCE")
	for _, v := range []config.ResolvedValue{g.ConfigPath, network} {
		value, source := v.Value, string(v.Source)
		if value == "" {
			value, source = "-", "unset"
		}
		tbl.Row(v.Key, value, source)
	}
	fmt.Fprintln(w, tbl.String())
	fmt.Fprintln(w)

	data, err := marshalConfig(g.Config)
	if err != nil {
		return fail(err)
	}
	fmt.Fprint(w, string(data))
	return nil
}

func newConfigValidateCmd(g *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the config file",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if err := config.ValidateFile(g.ConfigPath.Value); err != nil {
				return fail(err)
			}
			fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config is valid"))
			return nil
		},
	}
}

// marshalConfig renders cfg as YAML. Durations are written in their
// string form so the file stays readable.
func marshalConfig(cfg *config.Config) ([]byte, error) {
	doc := map[string]any{
		"outputDir":       cfg.OutputDir,
		"treasuryAddress": cfg.TreasuryAddress,
		"faucet":          cfg.Faucet,
		"sui":             cfg.Sui,
		"deploy": map[string]any{
			"settleDelay": cfg.Deploy.SettleDelay.String(),
			"strictKeys":  cfg.Deploy.StrictKeys,
			"metricsFile": cfg.Deploy.MetricsFile,
		},
		"project": cfg.Project,
	}
	if cfg.Network != "" {
		doc["network"] = cfg.Network
	}
	if len(cfg.Networks) > 0 {
		doc["networks"] = cfg.Networks
	}
	if cfg.Log.Timestamps != nil {
		doc["log"] = map[string]bool{"timestamps": *cfg.Log.Timestamps}
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

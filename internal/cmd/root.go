// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/studio-mirai/prime-machin-contracts/internal/config"
	"github.com/studio-mirai/prime-machin-contracts/internal/output"
)

// GlobalConfig holds CLI-wide configuration resolved during
// PersistentPreRunE. It is passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded configuration with defaults applied.
	Config *config.Config

	// ConfigPath is the resolved --config path and its source.
	ConfigPath config.ResolvedValue

	// NetworkFlag is the raw --network flag value.
	NetworkFlag string

	Verbose bool
}

// NewRootCmd creates the root command for the pmc CLI.
func NewRootCmd() *cobra.Command {
	g := &GlobalConfig{Config: config.DefaultConfig()}

	var (
		configFlag     string
		timestampsFlag bool
	)

	rootCmd := &cobra.Command{
		Use:   "pmc",
		Short: "Publish Move packages and record their objects",
		Long: `pmc publishes the Move package in the working directory to a Sui network,
classifies the objects the publish transaction created into a flat
key -> object id map, writes it to <outputDir>/<network>.json and hands the
package UpgradeCap over to the treasury.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, g, configFlag, timestampsFlag)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: PMC_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&g.NetworkFlag, "network", "", "Target network: localnet, mirainet, testnet, mainnet (env: NETWORK, PMC_NETWORK)")
	rootCmd.PersistentFlags().BoolVarP(&g.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewDeployCmd(g))
	rootCmd.AddCommand(NewClassifyCmd(g))
	rootCmd.AddCommand(NewFundCmd(g))
	rootCmd.AddCommand(NewHandoffCmd(g))
	rootCmd.AddCommand(NewNetworkCmd(g))
	rootCmd.AddCommand(NewConfigCmd(g))
	rootCmd.AddCommand(NewVersionCmd(g))

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, g *GlobalConfig, configFlag string, timestampsFlag bool) error {
	configPath, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return err
	}
	g.ConfigPath = configPath

	cfg, err := config.NewLoader().Load(configPath.Value)
	if err != nil {
		return fail(err)
	}
	g.Config = cfg

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: g.Verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	config.LogResolvedValues([]config.ResolvedValue{configPath})
	return nil
}

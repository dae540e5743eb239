package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studio-mirai/prime-machin-contracts/internal/config"
	"github.com/studio-mirai/prime-machin-contracts/internal/output"
)

// NewNetworkCmd creates the network command group.
func NewNetworkCmd(g *GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "network",
		Short: "Inspect network profiles",
	}

	c.AddCommand(newNetworkListCmd(g))

	return c
}

func newNetworkListCmd(g *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known networks with overrides applied",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			tbl := output.NewTable("NETWORK", "RPC", "FAUCET", "TREASURY")
			for _, p := range config.Profiles(g.Config) {
				tbl.Row(string(p.ID), p.RPCURL, p.FaucetURL, p.TreasuryAddress)
			}
			fmt.Fprintln(c.OutOrStdout(), tbl.String())
			return nil
		},
	}
}

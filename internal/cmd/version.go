package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studio-mirai/prime-machin-contracts/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(g *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show the pmc version and the sui binary found on PATH.`,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			sui := version.DetectSuiBinary(c.Context(), g.Config.Sui.Binary)
			fmt.Fprintln(c.OutOrStdout(), version.FullVersionString(version.Get(), sui))
			return nil
		},
	}
}

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/studio-mirai/prime-machin-contracts/internal/config"
	"github.com/studio-mirai/prime-machin-contracts/internal/deployconfig"
	"github.com/studio-mirai/prime-machin-contracts/internal/handoff"
	"github.com/studio-mirai/prime-machin-contracts/internal/output"
	"github.com/studio-mirai/prime-machin-contracts/internal/suicli"
)

// NewHandoffCmd creates the handoff command.
func NewHandoffCmd(g *GlobalConfig) *cobra.Command {
	var outputDir string

	c := &cobra.Command{
		Use:   "handoff",
		Short: "Transfer the UpgradeCap of the last deployment",
		Long: `Transfer the UpgradeCap recorded in <outputDir>/<network>.json to the
treasury address. Use this to finish a deployment whose transfer step failed.`,
		RunE: func(c *cobra.Command, args []string) error {
			return runHandoff(c.Context(), g, outputDir)
		},
	}

	c.Flags().StringVar(&outputDir, "output-dir", "", "Directory holding <network>.json (config: outputDir)")

	return c
}

func runHandoff(ctx context.Context, g *GlobalConfig, outputDirFlag string) error {
	cfg := g.Config

	profile, err := resolveProfile(g)
	if err != nil {
		return fail(err)
	}

	dir, err := config.ExpandPath(stringOr(outputDirFlag, cfg.OutputDir))
	if err != nil {
		return fail(err)
	}

	dc, err := deployconfig.Read(dir, string(profile.ID))
	if err != nil {
		return fail(err)
	}

	h := &handoff.Handoff{
		Transferrer: suicli.NewClient(cfg.Sui.Binary, cfg.Sui.GasBudget, suicli.ExecRunner{}),
		Treasury:    profile.TreasuryAddress,
	}
	if _, err := h.TransferUpgradeCap(ctx, dc); err != nil {
		return fail(err)
	}

	output.Println(output.FormatCheckmark("UpgradeCap transferred to " + output.StyleNoun.Render(profile.TreasuryAddress)))
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	oerrors "github.com/studio-mirai/prime-machin-contracts/internal/errors"
	"github.com/studio-mirai/prime-machin-contracts/internal/faucet"
)

// fundOptions holds the flags for the fund command.
type fundOptions struct {
	attempts  int
	recipient string
}

// NewFundCmd creates the fund command.
func NewFundCmd(g *GlobalConfig) *cobra.Command {
	opts := &fundOptions{}

	c := &cobra.Command{
		Use:   "fund",
		Short: "Request faucet funds without deploying",
		Long: `Send the faucet warm-up requests that 'pmc deploy' sends before publishing.
Only networks with a faucet (localnet, mirainet) are supported.`,
		RunE: func(c *cobra.Command, args []string) error {
			return runFund(c.Context(), g, c.OutOrStdout(), opts)
		},
	}

	c.Flags().IntVar(&opts.attempts, "attempts", 0, "Number of requests (config: faucet.attempts)")
	c.Flags().StringVar(&opts.recipient, "recipient", "", "Address to fund (config: faucet.recipient)")

	return c
}

func runFund(ctx context.Context, g *GlobalConfig, w io.Writer, opts *fundOptions) error {
	cfg := g.Config

	profile, err := resolveProfile(g)
	if err != nil {
		return fail(err)
	}
	if !profile.HasFaucet() {
		return fail(oerrors.NewValidationError(
			fmt.Sprintf("network %s has no faucet", profile.ID), "",
			"Use localnet or mirainet, or set networks."+string(profile.ID)+".faucetUrl.",
		))
	}

	attempts := cfg.Faucet.Attempts
	if opts.attempts > 0 {
		attempts = opts.attempts
	}

	report := faucet.WarmUp(ctx, faucet.NewClient(profile.FaucetURL), stringOr(opts.recipient, cfg.Faucet.Recipient), faucet.WarmUpOptions{
		Attempts:      attempts,
		RatePerSecond: cfg.Faucet.RatePerSecond,
	})

	fmt.Fprintf(w, "%d of %d funding requests succeeded\n", report.Succeeded(), len(report.Attempts))

	if err := report.Err(); err != nil && (cfg.Faucet.Strict || report.Succeeded() == 0) {
		return fail(err)
	}
	return nil
}

